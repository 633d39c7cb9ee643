package shared

import "github.com/charmbracelet/lipgloss"

// RenderWidgetBox renders content in a titled box with borders.
// Width includes borders and padding; zero lets the box fit its content.
func RenderWidgetBox(title, content string, width int) string {
	const widthOverhead = 4 // Account for borders (2) and padding (2)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor())

	boxStyle := BoxStyle()
	if width > widthOverhead {
		boxStyle = boxStyle.Width(width - widthOverhead)
	}

	return boxStyle.Render(titleStyle.Render(title) + "\n" + content)
}
