package shared

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
)

// NewProgressModel creates a progress bar of the given width in the UI colors.
func NewProgressModel(width int) progress.Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = width
	bar.ShowPercentage = false

	if !colorsDisabled {
		bar.EmptyColor = dimColorCode
		bar.FullColor = accentColorCode
	}

	return bar
}

// RenderASCIIProgress renders percent (0.0 to 1.0) as a bar of the given
// width, e.g. "[=========>          ] 45%".
func RenderASCIIProgress(percent float64, width int) string {
	const (
		minWideBarWidth    = 3
		arrowSpaceReserved = 2
	)

	filled := int(percent * float64(width))

	var bar strings.Builder

	bar.WriteString("[")

	switch {
	case filled >= width:
		bar.WriteString(strings.Repeat("=", width))
	case percent > 0:
		equalsCount := max(0, filled-1)
		if filled >= minWideBarWidth {
			equalsCount = filled - arrowSpaceReserved
		}

		bar.WriteString(strings.Repeat("=", equalsCount))
		bar.WriteString(">")
		bar.WriteString(strings.Repeat(" ", width-equalsCount-1))
	default:
		bar.WriteString(strings.Repeat(" ", width))
	}

	bar.WriteString("]")

	return fmt.Sprintf("%s %d%%", bar.String(), int(percent*ProgressPercentageScale))
}

// RenderProgress uses the bubbles bar, or the ASCII bar under NO_COLOR or TERM=dumb.
func RenderProgress(model progress.Model, percent float64) string {
	if colorsDisabled {
		return RenderASCIIProgress(percent, model.Width)
	}

	return model.ViewAs(percent)
}
