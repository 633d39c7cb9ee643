package shared

import (
	"fmt"
	"strings"

	"github.com/joe/pathkit/pkg/errors"
)

// Error display limits for different screen contexts
const (
	// ErrorLimitInProgress is for the live progress view
	ErrorLimitInProgress = 3

	// ErrorLimitComplete is for the summary after an operation finished
	ErrorLimitComplete = 10
)

// ErrorDisplayContext defines the context in which errors are being displayed
type ErrorDisplayContext int

const (
	// ContextInProgress indicates errors shown while an operation runs
	ContextInProgress ErrorDisplayContext = iota
	// ContextComplete indicates errors shown in the final summary
	ContextComplete
)

// FailedEntry is an entry an operation could not process.
type FailedEntry struct {
	Path string
	Err  error
}

// ErrorListConfig holds configuration for rendering error lists
type ErrorListConfig struct {
	Errors []FailedEntry

	// Context determines the display limit and overflow message
	Context ErrorDisplayContext

	// MaxWidth truncates paths and messages when positive
	MaxWidth int
}

// RenderErrorList renders a list of errors with appropriate limits and formatting
// based on the display context. Returns the rendered error list as a string.
func RenderErrorList(config ErrorListConfig) string {
	if len(config.Errors) == 0 {
		return ""
	}

	var builder strings.Builder

	enricher := errors.NewEnricher()
	limit := getErrorLimit(config.Context)

	for i, failed := range config.Errors {
		if i >= limit {
			fmt.Fprintf(&builder, "%s\n", getOverflowMessage(config.Context, len(config.Errors)-limit))

			break
		}

		enrichedErr := enricher.Enrich(failed.Err, failed.Path)

		fmt.Fprintf(&builder, "  %s %s\n",
			ErrorSymbol(),
			FileItemErrorStyle().Render(TruncatePath(failed.Path, config.MaxWidth)))

		errMsg := enrichedErr.Error()
		if config.MaxWidth > ProgressEllipsisLength && len(errMsg) > config.MaxWidth {
			errMsg = errMsg[:config.MaxWidth-ProgressEllipsisLength] + "..."
		}

		fmt.Fprintf(&builder, "    %s\n", errMsg)

		// Suggestions only make sense once the operation is over
		if config.Context == ContextComplete {
			if suggestions := errors.FormatSuggestions(enrichedErr); suggestions != "" {
				fmt.Fprintf(&builder, "%s\n", "    "+strings.ReplaceAll(suggestions, "\n", "\n    "))
			}
		}
	}

	return builder.String()
}

func getErrorLimit(context ErrorDisplayContext) int {
	if context == ContextInProgress {
		return ErrorLimitInProgress
	}

	return ErrorLimitComplete
}

func getOverflowMessage(context ErrorDisplayContext, remaining int) string {
	if context == ContextInProgress {
		return fmt.Sprintf("  ... and %d more (see summary)", remaining)
	}

	return fmt.Sprintf("... and %d more error(s)", remaining)
}
