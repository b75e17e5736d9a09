package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

// stepMove feeds frames until the board advances once.
func stepMove(g *Game, in core.InputFrame) {
	for i := 0; i < 100; i++ {
		if g.Step(in).Moved {
			return
		}
		in = core.NewInputFrame()
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 20 {
			input.Set(core.ActionDown)
		}
		if i == 80 {
			input.Set(core.ActionLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	s1 := g1.Snake().Snapshot()
	s2 := g2.Snake().Snapshot()

	if s1.Tick != s2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", s1.Tick, s2.Tick)
	}
	if s1.Score != s2.Score {
		t.Errorf("Score mismatch: %d vs %d", s1.Score, s2.Score)
	}
	if !equalCells(s1.Cells, s2.Cells) {
		t.Errorf("Cells mismatch: %v vs %v", s1.Cells, s2.Cells)
	}
	if s1.Food != s2.Food {
		t.Errorf("Food mismatch: %v vs %v", s1.Food, s2.Food)
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(1)
	s := g.Snake().Snapshot()

	want := []Cell{{14, 14}, {13, 14}, {12, 14}}
	if !equalCells(s.Cells, want) {
		t.Errorf("cells = %v, want %v", s.Cells, want)
	}
	if s.Dir != DirRight {
		t.Errorf("direction = %v, want right", s.Dir)
	}
	if !s.HasFood {
		t.Error("food should be placed on reset")
	}
}

func TestMovesEveryInterval(t *testing.T) {
	g := newTestGame(1)
	interval := g.MoveInterval()
	if interval != 6 {
		t.Fatalf("MoveInterval() = %d, want 6", interval)
	}

	empty := core.NewInputFrame()
	for i := 1; i < interval; i++ {
		if g.Step(empty).Moved {
			t.Fatalf("board moved on tick %d", i)
		}
	}
	if !g.Step(empty).Moved {
		t.Fatalf("board did not move on tick %d", interval)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)
	g.Snake().PlaceFood(Cell{0, 0})

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	stepMove(g, input)

	if d := g.Snake().Direction(); d != DirRight {
		t.Errorf("direction = %v, want right", d)
	}
	if h := g.Snake().Head(); h != (Cell{15, 14}) {
		t.Errorf("head = %v, want (15,14)", h)
	}

	input = core.NewInputFrame()
	input.Set(core.ActionDown)
	stepMove(g, input)

	if d := g.Snake().Direction(); d != DirDown {
		t.Errorf("direction = %v, want down", d)
	}
}

func TestLastDirectionWins(t *testing.T) {
	g := newTestGame(3)
	g.Snake().PlaceFood(Cell{0, 0})

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	input.Set(core.ActionDown)
	stepMove(g, input)

	if d := g.Snake().Direction(); d != DirDown {
		t.Errorf("direction = %v, want down", d)
	}
}

func TestFoodRespawnsOnEatingMove(t *testing.T) {
	g := newTestGame(7)
	g.Snake().PlaceFood(Cell{15, 14})

	stepMove(g, core.NewInputFrame())

	if g.Snake().Score() != 1 {
		t.Fatalf("score = %d, want 1", g.Snake().Score())
	}
	food, ok := g.Snake().Food()
	if !ok {
		t.Fatal("food should be respawned in the move that ate it")
	}
	for _, c := range g.Snake().Snapshot().Cells {
		if c == food {
			t.Errorf("food %v spawned on the snake", food)
		}
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(1)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	head := g.Snake().Head()
	empty := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(empty)
	}
	if g.Snake().Head() != head {
		t.Error("snake moved while paused")
	}

	g.Step(input)
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(5)
	g.Snake().PlaceFood(Cell{0, 0})

	empty := core.NewInputFrame()
	for i := 0; i < 1000 && !g.State().GameOver; i++ {
		g.Step(empty)
	}
	if !g.State().GameOver {
		t.Fatal("snake should hit the right wall")
	}
	if c := g.Snake().Snapshot().Cause; c != CauseWall {
		t.Errorf("cause = %v, want wall", c)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.State().GameOver {
		t.Error("restart should clear game over")
	}
	if g.Snake().Head() != (Cell{14, 14}) {
		t.Errorf("head after restart = %v", g.Snake().Head())
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(1)
	g.Snake().PlaceFood(Cell{20, 3})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	r := BoardRect(g.boardX, g.boardY, g.rules.Grid)
	if screen.Get(r.X, r.Y) != '┌' || screen.Get(r.Right()-1, r.Bottom()-1) != '┘' {
		t.Error("board border not drawn")
	}

	// (14,14) is the top half of terminal row 7.
	head := screen.GetGlyph(r.X+1+14, r.Y+1+7)
	if head.Rune != '▀' || head.Fg != core.ColorBrightGreen {
		t.Errorf("head glyph = %+v", head)
	}
	// (20,3) is the bottom half of terminal row 1.
	food := screen.GetGlyph(r.X+1+20, r.Y+1+1)
	if food.Rune != '▄' || food.Fg != core.ColorBrightRed {
		t.Errorf("food glyph = %+v", food)
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
}

func TestTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small overlay")
	}
	if g.Step(core.NewInputFrame()).Moved {
		t.Error("board should not move while too small")
	}
}
