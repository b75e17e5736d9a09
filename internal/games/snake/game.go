package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// LoadConfig returns the config selected via SetConfigPath, falling back to
// defaults when it cannot be loaded.
func LoadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	return cfg
}

const hudHeight = 2

// Game is the keyboard-controlled snake on a walled board.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rules      Rules

	rng   *rand.Rand
	snake *Snake
	tick  uint64

	moveTicker int
	pending    Command // Buffered direction request, consumed on the next move

	paused   bool
	gameOver bool
	tooSmall bool

	screenW int
	screenH int
	boardX  int
	boardY  int
}

// New creates a classic game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a classic game with an explicit config.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cfg.Board.Size == 0 {
		g.cfg = LoadConfig()
		config.ApplyClassicPreset(&g.cfg, difficultyPreset)
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Classic.Difficulty)
	g.rules = ClassicRules(g.cfg)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.snake = NewSnake(g.rules, g.rng)
	g.snake.EnsureFood()
	g.tick = 0
	g.moveTicker = 0
	g.pending = nil
	g.paused = false
	g.gameOver = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout()
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

// layout centers the board below the HUD.
func (g *Game) layout() {
	r := BoardRect(0, 0, g.rules.Grid)
	g.tooSmall = !r.FitsIn(g.screenW, g.screenH-hudHeight)
	g.boardX = r.CenterIn(g.screenW, g.screenH).X
	g.boardY = hudHeight
}

// Step advances the game by one platform tick. The board moves every
// MoveInterval ticks.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(input.Last); ok && input.Has(input.Last) {
		g.pending = Absolute{Dir: dir}
	}

	g.moveTicker++
	if g.moveTicker < g.MoveInterval() {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	if g.snake.Step(g.pending) == Terminal {
		g.gameOver = true
	} else {
		// Food reappears in the move that ate it.
		g.snake.EnsureFood()
	}
	g.pending = nil

	return core.StepResult{State: g.State(), Moved: true}
}

// MoveInterval returns the platform ticks between board moves at the current score.
func (g *Game) MoveInterval() int {
	return g.difficulty.MoveInterval(g.cfg.Classic.MoveEveryTicks, g.snake.Score(), int(g.tick))
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	RenderBoard(dst, g.boardX, g.boardY, g.rules.Grid, core.ColorGray, Layer{
		Snap: g.snake.Snapshot(),
		Body: core.ColorGreen,
		Head: core.ColorBrightGreen,
		Food: core.ColorBrightRed,
	})

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake · Score: %d  Length: %d  Speed: %d", g.snake.Score(), g.snake.Len(), g.cfg.Classic.MoveEveryTicks+1-g.MoveInterval())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, w, 5).CenterIn(dst.Width(), dst.Height())

	inner := box.Inner()
	for y := inner.Y; y < inner.Bottom(); y++ {
		dst.DrawHLine(inner.X, y, inner.W, ' ')
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snake.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board returns the grid and the current episode snapshot for exporters.
func (g *Game) Board() (Grid, []Snapshot) {
	return g.rules.Grid, []Snapshot{g.snake.Snapshot()}
}

// BoardConfig returns the board settings, pixel geometry included.
func (g *Game) BoardConfig() config.BoardConfig {
	return g.cfg.Board
}

// Snake exposes the running episode.
func (g *Game) Snake() *Snake {
	return g.snake
}

