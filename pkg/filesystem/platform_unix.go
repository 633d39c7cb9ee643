//go:build unix

package filesystem

import (
	"fmt"
	"os"
	"syscall"
)

// errno values for conditions some platforms report less precisely.
var (
	errNotDir   = syscall.ENOTDIR
	errNotEmpty = syscall.ENOTEMPTY
)

func linkCount(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, fmt.Errorf("no link count available for %s: %w", path, ErrUnsupported)
	}

	return uint64(stat.Nlink), nil //nolint:unconvert // Nlink width differs per platform
}
