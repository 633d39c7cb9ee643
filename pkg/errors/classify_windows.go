//go:build windows

package errors

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

func isNotEmpty(err error) bool {
	return errors.Is(err, windows.ERROR_DIR_NOT_EMPTY) || errors.Is(err, syscall.ENOTEMPTY)
}
