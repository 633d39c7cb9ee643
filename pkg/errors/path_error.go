package errors

import (
	"errors"
	"strings"
)

// PathError records a failed operation, the path(s) involved and the Kind of
// failure. It replaces any notion of a shared "last error": every operation
// returns its own PathError.
type PathError struct {
	Op    string
	Path  string
	Path2 string
	Kind  Kind
	Err   error
}

// New creates a PathError with an explicit kind.
func New(op, path string, kind Kind, err error) *PathError {
	return &PathError{Op: op, Path: path, Kind: kind, Err: err}
}

// New2 creates a PathError for a two-path operation such as copy or rename.
func New2(op, path, path2 string, kind Kind, err error) *PathError {
	return &PathError{Op: op, Path: path, Path2: path2, Kind: kind, Err: err}
}

// Wrap classifies err and records it against op and path.
// Returns nil when err is nil.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return &PathError{Op: op, Path: path, Kind: Classify(err), Err: err}
}

// Wrap2 is Wrap for two-path operations.
func Wrap2(op, path, path2 string, err error) error {
	if err == nil {
		return nil
	}

	return &PathError{Op: op, Path: path, Path2: path2, Kind: Classify(err), Err: err}
}

// Error formats as "op path: [KIND] cause" or "op path -> path2: [KIND] cause".
func (e *PathError) Error() string {
	var b strings.Builder

	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Path2 != "" {
		b.WriteString(" -> ")
		b.WriteString(e.Path2)
	}
	b.WriteString(": [")
	b.WriteString(string(e.Kind))
	b.WriteString("]")
	if e.Err != nil {
		b.WriteString(" ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *PathError) Unwrap() error {
	return e.Err
}

// Is matches a Kind target against the recorded kind.
func (e *PathError) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

// KindOf returns the kind recorded on the outermost PathError in err's
// chain, falling back to classifying err itself. Returns "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var pathErr *PathError
	if errors.As(err, &pathErr) && pathErr.Kind != "" {
		return pathErr.Kind
	}

	return Classify(err)
}
