package errors

// Kind classifies why a filesystem operation failed.
// Kinds are string-based so they read well in logs and error messages.
type Kind string

// Exported constants.
const (
	// KindNotFound indicates a path that does not exist.
	KindNotFound Kind = "NOT_FOUND"

	// KindWrongType indicates an entry of the wrong file type (a file where a
	// directory was required, a directory where a regular file was required).
	KindWrongType Kind = "WRONG_TYPE"

	// KindEquivalentPath indicates two paths that denote the same entity.
	KindEquivalentPath Kind = "EQUIVALENT_PATH"

	// KindAlreadyExists indicates the target of a create operation exists.
	KindAlreadyExists Kind = "ALREADY_EXISTS"

	// KindDirectoryNotEmpty indicates removal of a populated directory.
	KindDirectoryNotEmpty Kind = "DIRECTORY_NOT_EMPTY"

	// KindPermissionDenied indicates the caller lacks access.
	KindPermissionDenied Kind = "PERMISSION_DENIED"

	// KindInvalidArgument indicates an argument the platform rejected.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"

	// KindSystemError is an opaque platform failure.
	KindSystemError Kind = "SYSTEM_ERROR"
)

// Error lets a Kind be used as an errors.Is target:
//
//	if errors.Is(err, fserrors.KindNotFound) { ... }
func (k Kind) Error() string {
	return string(k)
}
