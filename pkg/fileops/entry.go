package fileops

import (
	"time"

	"github.com/joe/pathkit/pkg/fspath"
)

// DirectoryEntry is one entry yielded by a directory iterator. It is a plain
// value that stays valid after the iterator advances.
type DirectoryEntry struct {
	path          fspath.Path
	symlinkStatus FileStatus
	status        FileStatus
}

// Path is the directory path joined with the entry's name.
func (e DirectoryEntry) Path() fspath.Path {
	return e.path
}

// Status is the entry's status with symlinks followed. For a dangling symlink
// the type is TypeNotFound.
func (e DirectoryEntry) Status() FileStatus {
	return e.status
}

// SymlinkStatus describes the entry itself.
func (e DirectoryEntry) SymlinkStatus() FileStatus {
	return e.symlinkStatus
}

// IsDirectory reports whether the entry is, or links to, a directory.
func (e DirectoryEntry) IsDirectory() bool { return e.status.IsDirectory() }

// IsRegularFile reports whether the entry is, or links to, a regular file.
func (e DirectoryEntry) IsRegularFile() bool { return e.status.IsRegularFile() }

// IsSymlink reports whether the entry itself is a symlink.
func (e DirectoryEntry) IsSymlink() bool { return e.symlinkStatus.IsSymlink() }

func (e DirectoryEntry) FileSize() int64 { return e.status.Size }

func (e DirectoryEntry) LastWriteTime() time.Time { return e.status.ModTime }
