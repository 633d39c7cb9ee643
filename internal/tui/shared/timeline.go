package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTimeline renders phases as "✓ Count ── ◉ Copy ── ○ Done".
// Phases before current are complete and the last phase never shows as
// active. A current of the form "<phase>_error" marks that phase failed and
// the rest cancelled. An unknown current selects the first phase.
func RenderTimeline(phases []string, current string) string {
	phase := strings.ToLower(strings.TrimSpace(current))

	isError := strings.HasSuffix(phase, "_error")
	phase = strings.TrimSuffix(phase, "_error")

	currentIdx := 0

	for i, name := range phases {
		if strings.EqualFold(name, phase) {
			currentIdx = i

			break
		}
	}

	parts := make([]string, 0, len(phases))

	for idx, name := range phases {
		var (
			symbol string
			style  lipgloss.Style
		)

		switch {
		case isError && idx == currentIdx:
			symbol, style = ErrorSymbol(), lipgloss.NewStyle().Foreground(ErrorColor())
		case isError && idx > currentIdx:
			symbol, style = CancelledSymbol(), DimStyle()
		case idx < currentIdx, idx == currentIdx && idx == len(phases)-1:
			symbol, style = SuccessSymbol(), lipgloss.NewStyle().Foreground(SuccessColor())
		case idx == currentIdx:
			symbol, style = ActiveSymbol(), lipgloss.NewStyle().Foreground(PrimaryColor())
		default:
			symbol, style = PendingSymbol(), DimStyle()
		}

		parts = append(parts, style.Render(symbol+" "+name))
	}

	return strings.Join(parts, DimStyle().Render(" ── "))
}
