// Package errors classifies filesystem failures and turns them into
// actionable messages.
//
// Every failed operation in pathkit returns a *PathError carrying a Kind:
//
//	_, err := fileops.CopyFile(from, to, false)
//	if errors.Is(err, fserrors.KindNotFound) {
//	    // source is missing
//	}
//
// For display, the Enricher attaches suggestions keyed by the error's kind:
//
//	enriched := fserrors.NewEnricher().Enrich(err, "")
//	fmt.Println(enriched.Error())
//	fmt.Println(fserrors.FormatSuggestions(enriched))
package errors

import "strings"

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Kind() Kind
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	kind Kind,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		kind:          kind,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list.
// Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

type actionableError struct {
	originalError string
	kind          Kind
	suggestions   []string
	affectedPath  string
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Kind returns the failure kind.
func (e *actionableError) Kind() Kind {
	return e.kind
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// Is lets errors.Is match an actionable error against a Kind.
func (e *actionableError) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.kind
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}
