// Package fileops implements filesystem operations over fspath paths: status
// queries, directory iteration, and create, copy and remove operations.
//
// Operations are methods on FileOps, which carries the platform they run
// against. The package-level functions use a FileOps over the local disk and
// native-style paths.
package fileops

import (
	"time"

	"github.com/joe/pathkit/pkg/filesystem"
	"github.com/joe/pathkit/pkg/fspath"
)

// Exported constants.
const (
	// BufferSize is the size of the buffer used for file copy operations (64KB)
	BufferSize = 64 * 1024
	// DefaultDirPermissions is the default permission mode for created directories
	DefaultDirPermissions = 0o750
	// DefaultFilePermissions is the mode for files created by CreateFile
	DefaultFilePermissions = 0o644
	// maxSymlinkHops bounds symlink resolution in Canonical.
	maxSymlinkHops = 40
)

// CountProgressCallback is called during entry counting to report progress
// Parameters: currentPath, countSoFar
type CountProgressCallback func(path string, count int)

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level functions share one local-disk FileOps
	defaultOps = NewRealFileOps()
)

// Status returns the status of p on the local disk, following symlinks.
func Status(p fspath.Path) (FileStatus, error) {
	return defaultOps.Status(p)
}

// SymlinkStatus returns the status of p on the local disk without following
// a final symlink.
func SymlinkStatus(p fspath.Path) (FileStatus, error) {
	return defaultOps.SymlinkStatus(p)
}

// Exists reports whether p exists on the local disk.
func Exists(p fspath.Path) (bool, error) {
	return defaultOps.Exists(p)
}

// IsDirectory reports whether p is a directory on the local disk.
func IsDirectory(p fspath.Path) (bool, error) {
	return defaultOps.IsDirectory(p)
}

// IsRegularFile reports whether p is a regular file on the local disk.
func IsRegularFile(p fspath.Path) (bool, error) {
	return defaultOps.IsRegularFile(p)
}

// FileSize returns the size of a regular file on the local disk.
func FileSize(p fspath.Path) (int64, error) {
	return defaultOps.FileSize(p)
}

// LastWriteTime returns the modification time of p on the local disk.
func LastWriteTime(p fspath.Path) (time.Time, error) {
	return defaultOps.LastWriteTime(p)
}

// CreateDirectory creates p on the local disk.
func CreateDirectory(p fspath.Path) (bool, error) {
	return defaultOps.CreateDirectory(p)
}

// CreateDirectories creates p and any missing parents on the local disk.
func CreateDirectories(p fspath.Path) (bool, error) {
	return defaultOps.CreateDirectories(p)
}

// CopyFile copies a regular file on the local disk.
func CopyFile(from, to fspath.Path, overwrite bool) (bool, error) {
	return defaultOps.CopyFile(from, to, overwrite)
}

// Copy copies files, directories or symlinks on the local disk.
func Copy(from, to fspath.Path, opts CopyOptions) error {
	return defaultOps.Copy(from, to, opts)
}

// Remove deletes a file or empty directory on the local disk.
func Remove(p fspath.Path) (bool, error) {
	return defaultOps.Remove(p)
}

// RemoveAll deletes p and everything below it on the local disk.
func RemoveAll(p fspath.Path) (int, error) {
	return defaultOps.RemoveAll(p)
}

// Rename moves from to to on the local disk.
func Rename(from, to fspath.Path) error {
	return defaultOps.Rename(from, to)
}

// Canonical returns the absolute, symlink-free form of an existing path.
func Canonical(p fspath.Path) (fspath.Path, error) {
	return defaultOps.Canonical(p)
}

// Absolute makes p absolute against the process working directory.
func Absolute(p fspath.Path) (fspath.Path, error) {
	return defaultOps.Absolute(p)
}

// CurrentPath returns the process working directory.
func CurrentPath() (fspath.Path, error) {
	return defaultOps.CurrentPath()
}

// TempDirectoryPath returns the directory for temporary files.
func TempDirectoryPath() fspath.Path {
	return defaultOps.TempDirectoryPath()
}

// Space reports the capacity of the filesystem holding p.
func Space(p fspath.Path) (filesystem.SpaceInfo, error) {
	return defaultOps.Space(p)
}

// ReadDir opens a directory iterator on the local disk.
func ReadDir(p fspath.Path) *DirectoryIterator {
	return defaultOps.ReadDir(p)
}

// Walk opens a recursive directory iterator on the local disk.
func Walk(p fspath.Path, opts RecursiveOptions) *RecursiveDirectoryIterator {
	return defaultOps.Walk(p, opts)
}

// CountEntries counts everything below root, reporting progress every 10
// entries when progress is non-nil. Directory symlinks are not followed.
func (fo *FileOps) CountEntries(root fspath.Path, progress CountProgressCallback) (int, error) {
	count := 0

	it := fo.Walk(root, RecursiveOptions{SkipPermissionDenied: true})
	defer it.Close()

	for it.Next() {
		count++

		// Report progress every 10 entries to avoid spam
		if progress != nil && count%10 == 0 {
			progress(it.Entry().Path().String(), count)
		}
	}

	return count, it.Err()
}
