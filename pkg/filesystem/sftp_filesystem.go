package filesystem

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/sftp"

	"github.com/joe/pathkit/pkg/fspath"
)

// SFTPFileSystem implements FileSystem over a single SFTP session.
// Remote paths are always POSIX style.
type SFTPFileSystem struct {
	client *sftp.Client
	closer func() error
}

// NewSFTPFileSystem creates a filesystem over an established connection.
// Closing the filesystem closes the connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{client: conn.Client(), closer: conn.Close}
}

// NewSFTPFileSystemFromClient wraps an existing client; Close only closes the client.
func NewSFTPFileSystemFromClient(client *sftp.Client) *SFTPFileSystem {
	return &SFTPFileSystem{client: client, closer: client.Close}
}

// Style is always POSIX.
func (fs *SFTPFileSystem) Style() fspath.Style {
	return fspath.Posix
}

// Chmod changes the mode of a remote file.
func (fs *SFTPFileSystem) Chmod(path string, mode os.FileMode) error {
	return fs.client.Chmod(path, mode)
}

// Chtimes changes the access and modification times of a remote file.
func (fs *SFTPFileSystem) Chtimes(path string, atime, mtime time.Time) error {
	return fs.client.Chtimes(path, atime, mtime)
}

// Close closes the SFTP session.
func (fs *SFTPFileSystem) Close() error {
	if fs.closer == nil {
		return nil
	}

	return fs.closer()
}

// Create creates or truncates a remote file. perm is applied only to new files;
// a new file whose mode cannot be set is removed again.
func (fs *SFTPFileSystem) Create(path string, perm os.FileMode) (File, error) {
	_, statErr := fs.client.Lstat(path)
	isNew := os.IsNotExist(statErr)

	file, err := fs.client.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return nil, err
	}

	if isNew {
		if err := file.Chmod(perm); err != nil {
			_ = file.Close()
			_ = fs.client.Remove(path)

			return nil, fmt.Errorf("failed to set mode of %s: %w", path, err)
		}
	}

	return file, nil
}

// Getwd returns the remote working directory.
func (fs *SFTPFileSystem) Getwd() (string, error) {
	return fs.client.Getwd()
}

// Link creates a hard link on servers supporting the hardlink extension.
func (fs *SFTPFileSystem) Link(target, link string) error {
	return fs.client.Link(target, link)
}

// LinkCount is not exposed by the SFTP protocol.
func (fs *SFTPFileSystem) LinkCount(path string) (uint64, error) {
	if _, err := fs.client.Stat(path); err != nil {
		return 0, err
	}

	return 0, &os.PathError{Op: "linkcount", Path: path, Err: ErrUnsupported}
}

// Lstat returns remote file information without following a final symlink.
func (fs *SFTPFileSystem) Lstat(path string) (os.FileInfo, error) {
	return fs.client.Lstat(path)
}

// Mkdir creates a single remote directory.
func (fs *SFTPFileSystem) Mkdir(path string, perm os.FileMode) error {
	if err := fs.client.Mkdir(path); err != nil {
		return err
	}

	return fs.client.Chmod(path, perm)
}

// Open opens a remote file for reading.
func (fs *SFTPFileSystem) Open(path string) (File, error) {
	file, err := fs.client.Open(path)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// OpenDir reads a remote directory listing.
func (fs *SFTPFileSystem) OpenDir(path string) (DirStream, error) {
	info, err := fs.client.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, &os.PathError{Op: "opendir", Path: path, Err: errNotDir}
	}

	infos, err := fs.client.ReadDir(path)
	if err != nil {
		return nil, err
	}

	return newSliceDirStream(infos), nil
}

// Readlink returns the target of a remote symlink.
func (fs *SFTPFileSystem) Readlink(path string) (string, error) {
	return fs.client.ReadLink(path)
}

// Remove removes a remote file or empty directory. Servers report a populated
// directory as a generic failure, so emptiness is checked first.
func (fs *SFTPFileSystem) Remove(path string) error {
	info, err := fs.client.Lstat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		children, err := fs.client.ReadDir(path)
		if err != nil {
			return err
		}

		if len(children) > 0 {
			return &os.PathError{Op: "remove", Path: path, Err: errNotEmpty}
		}

		return fs.client.RemoveDirectory(path)
	}

	return fs.client.Remove(path)
}

// Rename uses the posix-rename extension when the server has it.
func (fs *SFTPFileSystem) Rename(oldpath, newpath string) error {
	if err := fs.client.PosixRename(oldpath, newpath); err == nil {
		return nil
	}

	return fs.client.Rename(oldpath, newpath)
}

// SameFile compares the server's canonical paths.
func (fs *SFTPFileSystem) SameFile(path1, path2 string) (bool, error) {
	if _, err := fs.client.Stat(path1); err != nil {
		return false, err
	}

	if _, err := fs.client.Stat(path2); err != nil {
		return false, err
	}

	real1, err := fs.client.RealPath(path1)
	if err != nil {
		return false, err
	}

	real2, err := fs.client.RealPath(path2)
	if err != nil {
		return false, err
	}

	return real1 == real2, nil
}

// Space uses the statvfs@openssh.com extension.
func (fs *SFTPFileSystem) Space(path string) (SpaceInfo, error) {
	vfs, err := fs.client.StatVFS(path)
	if err != nil {
		return SpaceInfo{}, err
	}

	return SpaceInfo{
		Capacity:  vfs.TotalSpace(),
		Free:      vfs.FreeSpace(),
		Available: vfs.Bavail * vfs.Frsize,
	}, nil
}

// Stat returns remote file information, following symlinks.
func (fs *SFTPFileSystem) Stat(path string) (os.FileInfo, error) {
	return fs.client.Stat(path)
}

// Symlink creates a remote symlink.
func (fs *SFTPFileSystem) Symlink(target, link string) error {
	return fs.client.Symlink(target, link)
}

// TempDir returns /tmp.
func (fs *SFTPFileSystem) TempDir() string {
	return "/tmp"
}

// Truncate changes the size of a remote file.
func (fs *SFTPFileSystem) Truncate(path string, size int64) error {
	return fs.client.Truncate(path, size)
}
