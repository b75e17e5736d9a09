// Package neatsnake is the watch-only game where a population of
// controller-driven snakes evolves live on a shared board.
package neatsnake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/training"
)

const hudHeight = 2

// Game renders a trainer one tick per move interval.
type Game struct {
	cfg     config.SnakeConfig
	trainer *training.Trainer
	last    training.GenerationStats
	err     error

	moveTicker int
	paused     bool
	tooSmall   bool
	screenW    int
	screenH    int
	boardX     int
}

// New creates the game; config is loaded on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates the game with an explicit config.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("snake_neat", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake_neat"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake (Neuro-evolution)"
}

// Reset starts a fresh population.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cfg.Board.Size == 0 {
		g.cfg = snake.LoadConfig()
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.moveTicker = 0
	g.paused = false
	g.last = training.GenerationStats{}

	g.trainer, g.err = training.New(g.cfg, cfg.Seed)
	if g.err == nil {
		g.err = g.trainer.StartGeneration()
	}
	g.layout()
}

// Resize adapts the layout to a new screen size without restarting training.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

func (g *Game) layout() {
	r := snake.BoardRect(0, 0, snake.NewGrid(g.cfg.Board.Size))
	g.tooSmall = !r.FitsIn(g.screenW, g.screenH-hudHeight)
	g.boardX = r.CenterIn(g.screenW, g.screenH).X
}

// Step advances one platform tick; the population moves every
// neat.move_every_ticks ticks.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.err != nil || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.moveTicker++
	if g.moveTicker < max(1, g.cfg.Neat.MoveEveryTicks) {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	g.trainer.Tick()
	if g.trainer.Done() {
		g.last = g.trainer.FinishGeneration()
		g.err = g.trainer.StartGeneration()
	}
	return core.StepResult{State: g.State(), Moved: true}
}

// Render draws every live snake, each with its own food.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Error: "+g.err.Error())
		return
	}

	live := g.trainer.Live()
	hud := fmt.Sprintf(" Gen %d  Alive %d/%d  Tick %d  Last best %.0f (score %d)",
		g.trainer.Generation(), len(live), g.cfg.Training.Population, g.trainer.Ticks(), g.last.Best, g.last.BestScore)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	layers := make([]snake.Layer, 0, len(live))
	for _, a := range live {
		c := core.PaletteColor(a.Index)
		layers = append(layers, snake.Layer{Snap: a.Snake.Snapshot(), Body: c, Head: c, Food: c})
	}
	snake.RenderBoard(dst, g.boardX, hudHeight, snake.NewGrid(g.cfg.Board.Size), core.ColorGray, layers...)

	if g.paused {
		dst.DrawTextCentered(dst.Height()-1, "Paused - press P to continue")
	}
}

// State reports the best score of the last finished generation. The watch
// mode never ends on its own.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.last.BestScore,
		Paused: g.paused,
	}
}

// Board returns the grid and the snapshots of every live snake.
func (g *Game) Board() (snake.Grid, []snake.Snapshot) {
	grid := snake.NewGrid(g.cfg.Board.Size)
	if g.trainer == nil {
		return grid, nil
	}
	live := g.trainer.Live()
	snaps := make([]snake.Snapshot, len(live))
	for i, a := range live {
		snaps[i] = a.Snake.Snapshot()
	}
	return grid, snaps
}

// BoardConfig returns the board settings, pixel geometry included.
func (g *Game) BoardConfig() config.BoardConfig {
	return g.cfg.Board
}

// Trainer exposes the underlying trainer.
func (g *Game) Trainer() *training.Trainer {
	return g.trainer
}
