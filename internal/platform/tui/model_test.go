package tui

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/img"
)

func TestScreenshotUsesBoardConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.CellSize = 7
	cfg.Board.OriginOffset = 3

	m := NewModel(snake.NewWithConfig(cfg), nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()
	m.shotDir = t.TempDir()
	m.saveScreenshot()

	pngs, err := filepath.Glob(filepath.Join(m.shotDir, "*.png"))
	if err != nil || len(pngs) != 1 {
		t.Fatalf("expected one PNG, got %v (%v)", pngs, err)
	}
	if !strings.HasPrefix(filepath.Base(pngs[0]), "snake_") {
		t.Errorf("file name = %q", filepath.Base(pngs[0]))
	}

	f, err := os.Open(pngs[0])
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := img.GeometryFrom(cfg.Board).CanvasSize()
	if got := decoded.Bounds().Dx(); got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if want == img.DefaultGeometry().CanvasSize() {
		t.Fatal("custom geometry should differ from the default")
	}
}
