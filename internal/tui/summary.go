package tui

import (
	"fmt"
	"strings"

	"github.com/joe/pathkit/internal/tui/shared"
)

// RenderSummary renders the final totals of an operation in a box, followed
// by any failed entries with suggestions.
func RenderSummary(result Result, width int) string {
	var lines []string

	stats := result.Stats
	for _, row := range []struct {
		label string
		count int
	}{
		{"Files copied", stats.Files},
		{"Symlinks copied", stats.Symlinks},
		{"Directories created", stats.Directories},
		{"Entries removed", stats.Removed},
		{"Entries skipped", stats.Skipped},
		{"Failures", len(stats.Failed)},
	} {
		if row.count > 0 {
			lines = append(lines, fmt.Sprintf("%-20s %d", row.label+":", row.count))
		}
	}

	if stats.Bytes > 0 {
		lines = append(lines, fmt.Sprintf("%-20s %s", "Bytes:", shared.FormatBytes(stats.Bytes)))
	}

	lines = append(lines, fmt.Sprintf("%-20s %s", "Elapsed:", shared.FormatDuration(result.Elapsed)))

	var b strings.Builder

	b.WriteString(shared.RenderWidgetBox(summaryTitle(result), strings.Join(lines, "\n"), width))
	b.WriteString("\n")

	if result.Err != nil && !result.Cancelled && len(stats.Failed) == 0 {
		b.WriteString(shared.RenderErrorList(shared.ErrorListConfig{
			Errors:   []shared.FailedEntry{{Err: result.Err}},
			Context:  shared.ContextComplete,
			MaxWidth: width,
		}))
	}

	if len(stats.Failed) > 0 {
		b.WriteString(shared.RenderErrorList(shared.ErrorListConfig{
			Errors:   stats.Failed,
			Context:  shared.ContextComplete,
			MaxWidth: width,
		}))
	}

	return b.String()
}

func summaryTitle(result Result) string {
	switch {
	case result.Cancelled:
		return shared.CancelledSymbol() + " Cancelled"
	case result.Err != nil:
		return shared.ErrorSymbol() + " Failed"
	case len(result.Stats.Failed) > 0:
		return shared.ErrorSymbol() + " Finished with errors"
	default:
		return shared.SuccessSymbol() + " Complete"
	}
}
