package errors

import "strings"

// PatternMatcher maps error messages to kinds using string patterns.
// It is the fallback for errors that carry no errno or PathError.
type PatternMatcher interface {
	Match(errorMsg string) Kind
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: []kindPatterns{
			{KindPermissionDenied, []string{
				"permission denied",
				"access denied",
				"access is denied",
				"operation not permitted",
			}},
			{KindNotFound, []string{
				"no such file or directory",
				"file not found",
				"cannot find the path",
				"cannot find the file",
				"does not exist",
			}},
			{KindDirectoryNotEmpty, []string{
				"directory not empty",
				"directory is not empty",
			}},
			{KindAlreadyExists, []string{
				"file exists",
				"already exists",
			}},
			{KindWrongType, []string{
				"not a directory",
				"is a directory",
				"not a regular file",
			}},
			{KindEquivalentPath, []string{
				"same file",
				"equivalent",
			}},
			{KindInvalidArgument, []string{
				"invalid argument",
				"invalid parameter",
			}},
		},
	}
}

type kindPatterns struct {
	kind     Kind
	patterns []string
}

type patternMatcher struct {
	patterns []kindPatterns
}

// Match returns the first kind whose patterns occur in errorMsg.
func (m *patternMatcher) Match(errorMsg string) Kind {
	lowerMsg := strings.ToLower(errorMsg)

	for _, entry := range m.patterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return entry.kind
			}
		}
	}

	return KindSystemError
}
