package img

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func rgbaAt(t *testing.T, im interface {
	At(x, y int) color.Color
}, x, y int) color.RGBA {
	t.Helper()
	r, g, b, a := im.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func testSnapshot() snake.Snapshot {
	return snake.Snapshot{
		Cells:   []snake.Cell{{X: 14, Y: 14}, {X: 13, Y: 14}, {X: 12, Y: 14}},
		Food:    snake.Cell{X: 3, Y: 5},
		HasFood: true,
		Alive:   true,
	}
}

func TestGeometry(t *testing.T) {
	geo := DefaultGeometry()
	assert.Equal(t, 620, geo.CanvasSize())
	assert.Equal(t, geo, GeometryFrom(config.DefaultSnakeConfig().Board))

	x, y := geo.CellOrigin(snake.Cell{X: 14, Y: 2})
	assert.Equal(t, 290, x)
	assert.Equal(t, 50, y)
}

func TestRenderBoard(t *testing.T) {
	geo := DefaultGeometry()
	im := RenderBoard(geo, []snake.Snapshot{testSnapshot()})

	require.Equal(t, 620, im.Bounds().Dx())
	require.Equal(t, 620, im.Bounds().Dy())

	center := func(c snake.Cell) (int, int) {
		x, y := geo.CellOrigin(c)
		return x + geo.CellSize/2, y + geo.CellSize/2
	}

	x, y := center(snake.Cell{X: 14, Y: 14})
	assert.Equal(t, SnakeColor(0), rgbaAt(t, im, x, y))

	x, y = center(snake.Cell{X: 3, Y: 5})
	assert.Equal(t, SnakeColor(0), rgbaAt(t, im, x, y))

	x, y = center(snake.Cell{X: 25, Y: 25})
	assert.Equal(t, background, rgbaAt(t, im, x, y))

	// The wall sits one pixel outside the cell area.
	assert.Equal(t, wall, rgbaAt(t, im, geo.Offset-1, 300))
	assert.Equal(t, background, rgbaAt(t, im, 2, 2))
}

func TestRenderSeveralSnakes(t *testing.T) {
	geo := DefaultGeometry()
	other := snake.Snapshot{Cells: []snake.Cell{{X: 0, Y: 0}}, Food: snake.Cell{X: 20, Y: 20}, HasFood: true}
	im := RenderBoard(geo, []snake.Snapshot{testSnapshot(), other})

	x, y := geo.CellOrigin(snake.Cell{X: 0, Y: 0})
	assert.Equal(t, SnakeColor(1), rgbaAt(t, im, x+5, y+5))
	assert.NotEqual(t, SnakeColor(0), SnakeColor(1))

	// Each food is drawn in its owner's color.
	x, y = geo.CellOrigin(snake.Cell{X: 20, Y: 20})
	assert.Equal(t, SnakeColor(1), rgbaAt(t, im, x+5, y+5))
	x, y = geo.CellOrigin(snake.Cell{X: 3, Y: 5})
	assert.Equal(t, SnakeColor(0), rgbaAt(t, im, x+5, y+5))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shots", "board.png")
	require.NoError(t, SavePNG(path, DefaultGeometry(), []snake.Snapshot{testSnapshot()}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 620, decoded.Bounds().Dx())
}
