package errors

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/pkg/sftp"
)

// Classify maps a platform error to a Kind. It understands io/fs sentinels,
// syscall errnos and SFTP status codes. Anything else is KindSystemError.
// Returns "" for nil.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}

	switch {
	case isNotEmpty(err):
		return KindDirectoryNotEmpty
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.EISDIR):
		return KindWrongType
	case errors.Is(err, fs.ErrInvalid), errors.Is(err, syscall.EINVAL):
		return KindInvalidArgument
	}

	var status *sftp.StatusError
	if errors.As(err, &status) {
		switch status.FxCode() {
		case sftp.ErrSSHFxNoSuchFile:
			return KindNotFound
		case sftp.ErrSSHFxPermissionDenied:
			return KindPermissionDenied
		case sftp.ErrSSHFxOpUnsupported:
			return KindInvalidArgument
		default:
			return KindSystemError
		}
	}

	return KindSystemError
}
