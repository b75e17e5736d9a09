package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenKeepsGeometry(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, '█', core.ColorGreen)
	s.SetGlyph(3, 0, core.Glyph{Rune: '▀', Fg: core.ColorBrightGreen, Bg: core.ColorGreen})
	s.DrawText(0, 1, "snake")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Errorf("default-colored run should be unstyled, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "snake") {
		t.Errorf("line 1 = %q, expected to contain snake", lines[1])
	}
}

func TestStyleForIsCached(t *testing.T) {
	a := styleFor(core.ColorRed, core.ColorDefault)
	b := styleFor(core.ColorRed, core.ColorDefault)
	if a.Render("x") != b.Render("x") {
		t.Error("cached style should render identically")
	}

	stylesMu.Lock()
	_, ok := styles[colorPair{core.ColorRed, core.ColorDefault}]
	stylesMu.Unlock()
	if !ok {
		t.Error("style was not cached")
	}
}
