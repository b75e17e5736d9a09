// Package img renders board snapshots to raster images.
package img

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Geometry is the pixel layout of the board.
type Geometry struct {
	BoardSize int // Cells per side
	CellSize  int // Pixels per cell
	Offset    int // Pixels from the canvas edge to cell (0, 0)
}

// DefaultGeometry matches the fixed board constants.
func DefaultGeometry() Geometry {
	return Geometry{BoardSize: snake.BoardSize, CellSize: snake.CellSize, Offset: snake.OriginOffset}
}

// GeometryFrom reads the geometry from board config.
func GeometryFrom(cfg config.BoardConfig) Geometry {
	return Geometry{BoardSize: cfg.Size, CellSize: cfg.CellSize, Offset: cfg.OriginOffset}
}

// CanvasSize is the side length of the square image in pixels.
func (g Geometry) CanvasSize() int {
	return 2*g.Offset + g.BoardSize*g.CellSize
}

// CellOrigin returns the top-left pixel of cell c.
func (g Geometry) CellOrigin(c snake.Cell) (int, int) {
	return g.Offset + c.X*g.CellSize, g.Offset + c.Y*g.CellSize
}

var (
	background = color.RGBA{0, 0, 0, 255}
	wall       = color.RGBA{255, 255, 255, 255}
)

// rgb maps terminal palette colors to pixels.
var rgb = map[core.Color]color.RGBA{
	core.ColorRed:           {205, 49, 49, 255},
	core.ColorGreen:         {13, 188, 121, 255},
	core.ColorYellow:        {229, 229, 16, 255},
	core.ColorBlue:          {36, 114, 200, 255},
	core.ColorMagenta:       {188, 63, 188, 255},
	core.ColorCyan:          {17, 168, 205, 255},
	core.ColorWhite:         {229, 229, 229, 255},
	core.ColorBrightRed:     {241, 76, 76, 255},
	core.ColorBrightGreen:   {35, 209, 139, 255},
	core.ColorBrightYellow:  {245, 245, 67, 255},
	core.ColorBrightBlue:    {59, 142, 234, 255},
	core.ColorBrightMagenta: {214, 112, 214, 255},
	core.ColorBrightCyan:    {41, 184, 219, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 135, 0, 255},
	core.ColorGray:          {128, 128, 128, 255},
}

// SnakeColor returns the pixel color for the i-th snake on a shared board.
func SnakeColor(i int) color.RGBA {
	return rgb[core.PaletteColor(i)]
}

// RenderBoard draws the wall, then each snapshot's food and segments.
// Food takes the color of the snake it belongs to.
func RenderBoard(geo Geometry, snaps []snake.Snapshot) image.Image {
	size := geo.CanvasSize()
	dc := gg.NewContext(size, size)

	dc.SetColor(background)
	dc.Clear()

	side := float64(2 + geo.BoardSize*geo.CellSize)
	dc.SetColor(wall)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(geo.Offset)-0.5, float64(geo.Offset)-0.5, side-1, side-1)
	dc.Stroke()

	cell := float64(geo.CellSize)
	for i, s := range snaps {
		if !s.HasFood {
			continue
		}
		x, y := geo.CellOrigin(s.Food)
		dc.SetColor(SnakeColor(i))
		dc.DrawRectangle(float64(x), float64(y), cell, cell)
		dc.Fill()
	}
	for i, s := range snaps {
		dc.SetColor(SnakeColor(i))
		for _, c := range s.Cells {
			x, y := geo.CellOrigin(c)
			dc.DrawRectangle(float64(x), float64(y), cell, cell)
		}
		dc.Fill()
	}

	return dc.Image()
}

// SavePNG renders the board and writes it to path, creating parent directories.
func SavePNG(path string, geo Geometry, snaps []snake.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("img: cannot create directory: %w", err)
	}
	if err := gg.SavePNG(path, RenderBoard(geo, snaps)); err != nil {
		return fmt.Errorf("img: cannot save %s: %w", path, err)
	}
	return nil
}
