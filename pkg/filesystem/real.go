package filesystem

import (
	"os"
	"time"

	"github.com/joe/pathkit/pkg/fspath"
)

// readDirBatch is how many entries a RealFileSystem directory stream reads per syscall.
const readDirBatch = 64

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Style returns the host's native path style.
func (fs *RealFileSystem) Style() fspath.Style {
	return fspath.NativeStyle()
}

// Chmod changes the mode of a file.
func (fs *RealFileSystem) Chmod(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}

// Chtimes changes the access and modification times of a file.
func (fs *RealFileSystem) Chtimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}

// Create creates or truncates a file for writing.
func (fs *RealFileSystem) Create(path string, perm os.FileMode) (File, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// Getwd returns the process working directory.
func (fs *RealFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Link creates a hard link.
func (fs *RealFileSystem) Link(target, link string) error {
	return os.Link(target, link)
}

// LinkCount returns the number of hard links to path.
func (fs *RealFileSystem) LinkCount(path string) (uint64, error) {
	return linkCount(path)
}

// Lstat returns file information without following a final symlink.
func (fs *RealFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Mkdir creates a single directory.
func (fs *RealFileSystem) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

// Open opens a file for reading.
func (fs *RealFileSystem) Open(path string) (File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// OpenDir opens a directory stream.
func (fs *RealFileSystem) OpenDir(path string) (DirStream, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := dir.Stat()
	if err != nil {
		_ = dir.Close()
		return nil, err
	}

	if !info.IsDir() {
		_ = dir.Close()
		return nil, &os.PathError{Op: "opendir", Path: path, Err: errNotDir}
	}

	return &realDirStream{dir: dir}, nil
}

// Readlink returns the target of a symlink.
func (fs *RealFileSystem) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

// Remove removes a file or empty directory.
func (fs *RealFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// Rename renames a file or directory.
func (fs *RealFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// SameFile compares device and inode (file index on Windows).
func (fs *RealFileSystem) SameFile(path1, path2 string) (bool, error) {
	info1, err := os.Stat(path1)
	if err != nil {
		return false, err
	}

	info2, err := os.Stat(path2)
	if err != nil {
		return false, err
	}

	return os.SameFile(info1, info2), nil
}

// Space reports capacity of the filesystem containing path.
func (fs *RealFileSystem) Space(path string) (SpaceInfo, error) {
	return diskSpace(path)
}

// Stat returns file information, following symlinks.
func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Symlink creates link pointing at target.
func (fs *RealFileSystem) Symlink(target, link string) error {
	return os.Symlink(target, link)
}

// TempDir returns the default directory for temporary files.
func (fs *RealFileSystem) TempDir() string {
	return os.TempDir()
}

// Truncate changes the size of a file.
func (fs *RealFileSystem) Truncate(path string, size int64) error {
	return os.Truncate(path, size)
}

// dirReader is the part of *os.File a realDirStream reads from.
type dirReader interface {
	Readdir(n int) ([]os.FileInfo, error)
	Close() error
}

// realDirStream hands out Readdir batches one entry at a time. An error that
// arrives with a partial batch is held until the batch has been consumed.
type realDirStream struct {
	dir     dirReader
	batch   []os.FileInfo
	pending error
}

func (s *realDirStream) Next() (os.FileInfo, error) {
	for len(s.batch) == 0 {
		if s.pending != nil {
			return nil, s.pending
		}

		infos, err := s.dir.Readdir(readDirBatch)
		s.batch = infos

		if err != nil {
			s.pending = err
		}
	}

	info := s.batch[0]
	s.batch = s.batch[1:]

	return info, nil
}

func (s *realDirStream) Close() error {
	return s.dir.Close()
}
