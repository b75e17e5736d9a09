package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ansi maps core.Color to terminal color codes. ColorDefault has no entry.
var ansi = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

type colorPair struct {
	fg, bg core.Color
}

// styles caches one lipgloss style per foreground/background pair.
// SSH sessions render concurrently.
var (
	stylesMu sync.Mutex
	styles   = map[colorPair]lipgloss.Style{}
)

func styleFor(fg, bg core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	key := colorPair{fg, bg}
	if s, ok := styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := ansi[fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := ansi[bg]; ok {
		s = s.Background(c)
	}
	styles[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors are grouped to minimize ANSI escapes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetGlyph(x, y)
			run.Reset()
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Fg != start.Fg || g.Bg != start.Bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
