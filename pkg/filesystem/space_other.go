//go:build unix && !(linux || darwin || freebsd || openbsd || netbsd || dragonfly)

package filesystem

import "os"

func diskSpace(path string) (SpaceInfo, error) {
	return SpaceInfo{}, &os.PathError{Op: "statfs", Path: path, Err: ErrUnsupported}
}
