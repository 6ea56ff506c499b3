package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/swallow/internal/core"
)

// paletteCodes maps each palette entry to an ANSI 256-color code.
// Hues run from the darkest shade to the brightest.
var paletteCodes = map[core.Color]string{
	core.ColorPlayer:  "15",
	core.ColorRed1:    "52",
	core.ColorRed2:    "88",
	core.ColorRed3:    "124",
	core.ColorRed4:    "160",
	core.ColorRed5:    "196",
	core.ColorGreen1:  "22",
	core.ColorGreen2:  "28",
	core.ColorGreen3:  "34",
	core.ColorGreen4:  "40",
	core.ColorGreen5:  "46",
	core.ColorBlue1:   "17",
	core.ColorBlue2:   "18",
	core.ColorBlue3:   "19",
	core.ColorBlue4:   "20",
	core.ColorBlue5:   "21",
	core.ColorYellow1: "58",
	core.ColorYellow2: "100",
	core.ColorYellow3: "142",
	core.ColorYellow4: "184",
	core.ColorYellow5: "226",
	core.ColorPurple1: "53",
	core.ColorPurple2: "90",
	core.ColorPurple3: "127",
	core.ColorPurple4: "164",
	core.ColorPurple5: "201",
	core.ColorCyan1:   "23",
	core.ColorCyan2:   "30",
	core.ColorCyan3:   "37",
	core.ColorCyan4:   "44",
	core.ColorCyan5:   "51",
	core.ColorGrey1:   "240",
	core.ColorGrey2:   "248",
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(paletteCodes)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range paletteCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
