package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDeliversUpdates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("training:\n  elite: 1\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("training:\n  elite: 4\n"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case u, ok := <-updates:
			require.True(t, ok, "updates closed before the change arrived")
			if u.Err != nil {
				continue
			}
			if u.Config.Training.Elite == 4 {
				assert.Equal(t, 30, u.Config.Board.Size)
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for config update")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, DefaultYAML(), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-updates:
		for ok {
			_, ok = <-updates
		}
	case <-time.After(5 * time.Second):
		t.Fatal("updates channel not closed after cancel")
	}
}
