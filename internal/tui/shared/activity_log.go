package shared

import (
	"strings"
)

// RenderActivityLog renders entries oldest first under an optional title.
// If maxEntries > 0, only the most recent maxEntries are shown.
func RenderActivityLog(title string, entries []string, maxEntries int) string {
	var builder strings.Builder

	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle != "" {
		builder.WriteString(RenderLabel(trimmedTitle))
		builder.WriteString("\n")
	}

	if maxEntries > 0 && maxEntries < len(entries) {
		entries = entries[len(entries)-maxEntries:]
	}

	for i, entry := range entries {
		builder.WriteString("  ")
		builder.WriteString(entry)

		if i < len(entries)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
