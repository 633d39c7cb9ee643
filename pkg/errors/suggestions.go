package errors

import (
	"fmt"
	"strings"
)

// SuggestionGenerator generates actionable suggestions for a failure kind.
type SuggestionGenerator interface {
	Generate(kind Kind, affectedPath string, errorMsg string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

type suggestionGenerator struct{}

// Generate returns suggestions for kind. errorMsg refines the advice for
// opaque system errors such as a full disk.
func (g *suggestionGenerator) Generate(kind Kind, affectedPath string, errorMsg string) []string {
	switch kind {
	case KindPermissionDenied:
		return g.generatePermissionSuggestions(affectedPath)
	case KindNotFound:
		return g.generateNotFoundSuggestions(affectedPath)
	case KindDirectoryNotEmpty:
		return g.generateNotEmptySuggestions(affectedPath)
	case KindAlreadyExists:
		return g.generateExistsSuggestions(affectedPath)
	case KindWrongType:
		return g.generateWrongTypeSuggestions(affectedPath)
	case KindEquivalentPath:
		return []string{
			"Source and destination refer to the same file",
			"Choose a different destination path",
		}
	case KindInvalidArgument:
		return []string{
			"Check the arguments passed to the operation",
			"Verify the path style matches the target platform (--style)",
		}
	case KindSystemError:
		return g.generateSystemSuggestions(affectedPath, errorMsg)
	default:
		return g.generateSystemSuggestions(affectedPath, errorMsg)
	}
}

func (g *suggestionGenerator) generateExistsSuggestions(path string) []string {
	suggestions := []string{
		"The destination already exists",
		"Use --overwrite to replace it, or --update to replace only older files",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Inspect it with 'ls -la %s'", path))
	}

	return suggestions
}

func (g *suggestionGenerator) generateNotEmptySuggestions(path string) []string {
	suggestions := []string{
		"Ensure the directory is empty before attempting to remove it",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("List contents with 'ls -la %s'", path))
	}

	suggestions = append(suggestions, "Use a recursive remove (rm --recursive) if appropriate")

	return suggestions
}

func (g *suggestionGenerator) generateNotFoundSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
		suggestions = append(suggestions, "Ensure all parent directories exist for "+path)
	} else {
		suggestions = append(suggestions, "Ensure all parent directories exist")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read/write permissions for the files and directories",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la' on the affected path")
	}

	suggestions = append(suggestions, "Try running with appropriate permissions or as a privileged user")

	return suggestions
}

func (g *suggestionGenerator) generateSystemSuggestions(path string, errorMsg string) []string {
	lowerMsg := strings.ToLower(errorMsg)

	if strings.Contains(lowerMsg, "no space left") || strings.Contains(lowerMsg, "disk full") ||
		strings.Contains(lowerMsg, "quota exceeded") {
		suggestions := []string{
			"Free up space on the destination device",
			"Check available space with 'pathkit df' or 'df -h'",
		}
		if path != "" {
			suggestions = append(suggestions, "Verify disk usage for the filesystem containing "+path)
		}

		return suggestions
	}

	suggestions := []string{
		"Check the error message for more details",
		"Try the operation again - this may be a transient I/O error",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generateWrongTypeSuggestions(path string) []string {
	suggestions := []string{
		"The entry has a different file type than the operation requires",
	}

	if path != "" {
		suggestions = append(suggestions, "Inspect the entry with 'pathkit stat "+path+"'")
	}

	suggestions = append(suggestions, "Use --recursive to copy or remove directories")

	return suggestions
}
