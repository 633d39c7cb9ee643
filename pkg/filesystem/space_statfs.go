//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

func diskSpace(path string) (SpaceInfo, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return SpaceInfo{}, &os.PathError{Op: "statfs", Path: path, Err: err}
	}

	blockSize := uint64(stat.Bsize) //nolint:gosec // block size is never negative

	return SpaceInfo{
		Capacity:  uint64(stat.Blocks) * blockSize,
		Free:      uint64(stat.Bfree) * blockSize,
		Available: uint64(stat.Bavail) * blockSize, //nolint:gosec // Bavail is signed on some BSDs
	}, nil
}
