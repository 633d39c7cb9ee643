package errors

import (
	"errors"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled regexes shared across all enricher instances
	pathExtractionPatterns = []*regexp.Regexp{
		// Unix/Linux paths (absolute and relative)
		regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`),
		// Windows paths with backslashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:\\[^\s:]+):`),
		// Windows paths with forward slashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:/[^\s:]+):`),
	}
)

type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich attaches a kind and suggestions to err.
// If the error is already an ActionableError, it is returned unchanged.
// The kind comes from a PathError or errno in the chain when one is present,
// and from the message text otherwise. If affectedPath is empty, the path is
// taken from a PathError or extracted from the message.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()

	var pathErr *PathError
	hasPathErr := errors.As(err, &pathErr)

	if affectedPath == "" && hasPathErr {
		affectedPath = pathErr.Path
	}

	if affectedPath == "" {
		affectedPath = extractPath(errMsg)
	}

	kind := KindOf(err)
	if kind == KindSystemError {
		kind = e.matcher.Match(errMsg)
	}

	return NewActionableError(
		errMsg,
		kind,
		e.generator.Generate(kind, affectedPath, errMsg),
		affectedPath,
	)
}

// extractPath pulls a file path out of common Go error message formats:
//   - "open /path/to/file: permission denied"
//   - "remove C:\Windows\temp\data: directory not empty"
//
// Returns empty string if no path is found.
func extractPath(errorMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			path := strings.TrimSpace(matches[1])
			if path != "" {
				return path
			}
		}
	}

	return ""
}
