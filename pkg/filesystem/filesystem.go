// Package filesystem is the thin platform layer under pathkit: every call maps
// onto one primitive of the underlying platform (local disk, an in-memory tree
// or an SFTP server). Paths are plain strings in the platform's Style.
//
// Errors are returned as the platform produced them (*os.PathError,
// *os.LinkError, errno values, sftp status errors) so that callers can
// classify them; the fileops package wraps them into typed errors.
package filesystem

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/joe/pathkit/pkg/fspath"
)

// File is an interface that abstracts file operations.
// This allows us to work with real, in-memory and remote files alike.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Stat() (os.FileInfo, error)
}

// DirStream is an open directory handle. Next returns entries one at a time
// (never "." or "..") and io.EOF once the directory is exhausted.
// Entries describe the entry itself; symlinks are not followed.
type DirStream interface {
	Next() (os.FileInfo, error)
	Close() error
}

// SpaceInfo reports filesystem capacity in bytes.
type SpaceInfo struct {
	Capacity  uint64
	Free      uint64
	Available uint64
}

// FileSystem is the set of platform primitives pathkit builds on.
type FileSystem interface {
	// Style is the path grammar the platform expects.
	Style() fspath.Style

	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	OpenDir(path string) (DirStream, error)

	Open(path string) (File, error)
	// Create opens path for writing, creating or truncating it.
	Create(path string, perm os.FileMode) (File, error)
	Mkdir(path string, perm os.FileMode) error
	Remove(path string) error
	Rename(oldpath, newpath string) error
	Symlink(target, link string) error
	Link(target, link string) error
	Readlink(path string) (string, error)

	Chmod(path string, mode os.FileMode) error
	Chtimes(path string, atime, mtime time.Time) error
	Truncate(path string, size int64) error

	// SameFile reports whether both paths resolve to the same entity.
	// It fails if either path does not exist.
	SameFile(path1, path2 string) (bool, error)
	LinkCount(path string) (uint64, error)
	Space(path string) (SpaceInfo, error)

	Getwd() (string, error)
	TempDir() string
}

// ErrUnsupported is returned for primitives a platform cannot provide.
var ErrUnsupported = errors.ErrUnsupported

// sliceDirStream serves a pre-read directory listing.
type sliceDirStream struct {
	infos []os.FileInfo
	pos   int
}

func newSliceDirStream(infos []os.FileInfo) *sliceDirStream {
	return &sliceDirStream{infos: infos}
}

func (s *sliceDirStream) Next() (os.FileInfo, error) {
	for s.pos < len(s.infos) {
		info := s.infos[s.pos]
		s.pos++

		if name := info.Name(); name == "." || name == ".." {
			continue
		}

		return info, nil
	}

	return nil, io.EOF
}

func (s *sliceDirStream) Close() error {
	s.infos = nil
	return nil
}
