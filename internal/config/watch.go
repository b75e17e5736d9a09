package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Update is a re-parsed configuration delivered by Watch.
// Err is set when the file changed but could not be parsed.
type Update struct {
	Config SnakeConfig
	Err    error
}

// Watch reports a fresh Update every time the config file at path is written or
// recreated. The parent directory is watched so that editors which replace the file
// are handled. The channel is closed when ctx is done.
func Watch(ctx context.Context, path string) (<-chan Update, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	updates := make(chan Update, 1)
	go func() {
		defer close(updates)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, parseErr := ParseFile(abs)
				select {
				case updates <- Update{Config: cfg, Err: parseErr}:
				case <-ctx.Done():
					return
				}
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case updates <- Update{Err: werr}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}
