package fspath

import (
	"fmt"
	"runtime"
	"strings"
)

// Style selects the grammar used to parse a path string.
type Style int

// Exported constants.
const (
	// Posix paths use '/' as the only separator and never carry a root-name.
	Posix Style = iota
	// Windows paths accept both '/' and '\', and may start with a drive,
	// UNC or device root-name.
	Windows
)

// NativeStyle returns the style of the host operating system.
func NativeStyle() Style {
	if runtime.GOOS == "windows" {
		return Windows
	}

	return Posix
}

// ParseStyle parses a style name. "native" resolves to the host style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "posix", "unix":
		return Posix, nil
	case "windows", "win":
		return Windows, nil
	case "native", "":
		return NativeStyle(), nil
	default:
		return Posix, fmt.Errorf("invalid path style: %s (valid: posix, windows, native)", name)
	}
}

// IsSeparator reports whether c separates path elements in this style.
func (s Style) IsSeparator(c byte) bool {
	if s == Windows {
		return c == '\\' || c == '/'
	}

	return c == '/'
}

// PreferredSeparator returns the separator inserted by Join.
func (s Style) PreferredSeparator() byte {
	if s == Windows {
		return '\\'
	}

	return '/'
}

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
