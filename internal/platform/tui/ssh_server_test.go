package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// overGame is a registry game that ends on its first step.
type overGame struct{ steps int }

func (g *overGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *overGame) ID() string               { return "tui_over" }
func (g *overGame) Title() string            { return "Over" }
func (g *overGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *overGame) Render(*core.Screen)      {}
func (g *overGame) State() core.GameState    { return core.GameState{GameOver: g.steps > 0} }

func init() {
	registry.Register("tui_over", func() registry.Game { return &overGame{} })
}

func testSession() SessionModel {
	return NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
}

func send(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

// selectGame moves the session menu cursor onto the given game.
func selectGame(t *testing.T, m SessionModel, id string) SessionModel {
	t.Helper()
	for range m.menu.items {
		if m.menu.items[m.menu.cursor].GameID == id {
			return m
		}
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	t.Fatalf("game %q not in menu", id)
	return m
}

func TestSessionGameAndBack(t *testing.T) {
	m := selectGame(t, testSession(), "tui_over")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	if m.gameModel.game.ID() != "tui_over" {
		t.Fatalf("started %q, expected tui_over", m.gameModel.game.ID())
	}

	m, _ = send(t, m, TickMsg{})
	if !m.gameModel.gameState.GameOver {
		t.Fatal("game should be over after one tick")
	}

	m, cmd := send(t, m, runeKey('b'))
	if m.gameModel != nil || m.quitting {
		t.Fatal("back after game over should return to the menu")
	}
	if cmd != nil {
		if _, isQuit := cmd().(tea.QuitMsg); isQuit {
			t.Error("returning to the menu must not end the session")
		}
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := testSession()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard view is empty")
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if cmd != nil {
		if _, isQuit := cmd().(tea.QuitMsg); isQuit {
			t.Error("closing the scoreboard must not end the session")
		}
	}
}

func TestSessionQuit(t *testing.T) {
	m := testSession()

	m, cmd := send(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := testSession()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config size = %dx%d, expected 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "keys", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("host key directory not created: %v", err)
	}

	t.Setenv("HOME", dir)
	got, err = resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath default: %v", err)
	}
	if got != filepath.Join(dir, ".snake", "host_key") {
		t.Errorf("default path = %q", got)
	}
}

func TestShutdownReleasesStore(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.store == nil {
		t.Fatal("server should open the scores database")
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if srv.store != nil {
		t.Error("store should be closed after the server stops")
	}
}
