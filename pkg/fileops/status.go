package fileops

import (
	"os"
	"time"

	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/filesystem"
	"github.com/joe/pathkit/pkg/fspath"
)

// FileType classifies a filesystem entry.
type FileType int

// Exported constants.
const (
	// TypeNone means the status could not be determined.
	TypeNone FileType = iota
	TypeNotFound
	TypeRegular
	TypeDirectory
	TypeSymlink
	// TypeOther covers devices, sockets, pipes and similar entries.
	TypeOther
)

func (t FileType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeNotFound:
		return "not_found"
	case TypeRegular:
		return "regular"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeOther:
		return "other"
	default:
		return "unknown"
	}
}

// FileStatus is a snapshot of an entry's metadata. It is stale as soon as it
// is returned.
type FileStatus struct {
	Type        FileType
	Size        int64
	Permissions os.FileMode
	ModTime     time.Time
}

// Exists reports whether the entry was found.
func (s FileStatus) Exists() bool {
	return s.Type != TypeNone && s.Type != TypeNotFound
}

// IsDirectory reports whether the entry is a directory.
func (s FileStatus) IsDirectory() bool {
	return s.Type == TypeDirectory
}

// IsOther reports whether the entry exists but is not a regular file,
// directory or symlink.
func (s FileStatus) IsOther() bool {
	return s.Type == TypeOther
}

// IsRegularFile reports whether the entry is a regular file.
func (s FileStatus) IsRegularFile() bool {
	return s.Type == TypeRegular
}

// IsSymlink reports whether the entry is a symlink.
func (s FileStatus) IsSymlink() bool {
	return s.Type == TypeSymlink
}

// Status returns the metadata of p, following symlinks. A missing path yields
// TypeNotFound and a nil error.
func (fo *FileOps) Status(p fspath.Path) (FileStatus, error) {
	return statusOn(fo.FS, "status", p, true)
}

// SymlinkStatus is Status without following a final symlink.
func (fo *FileOps) SymlinkStatus(p fspath.Path) (FileStatus, error) {
	return statusOn(fo.FS, "symlink_status", p, false)
}

// Exists reports whether p exists, following symlinks.
func (fo *FileOps) Exists(p fspath.Path) (bool, error) {
	status, err := fo.Status(p)
	return status.Exists(), err
}

// IsDirectory reports whether p is a directory, following symlinks.
func (fo *FileOps) IsDirectory(p fspath.Path) (bool, error) {
	status, err := fo.Status(p)
	return status.IsDirectory(), err
}

// IsRegularFile reports whether p is a regular file, following symlinks.
func (fo *FileOps) IsRegularFile(p fspath.Path) (bool, error) {
	status, err := fo.Status(p)
	return status.IsRegularFile(), err
}

// IsSymlink reports whether p itself is a symlink.
func (fo *FileOps) IsSymlink(p fspath.Path) (bool, error) {
	status, err := fo.SymlinkStatus(p)
	return status.IsSymlink(), err
}

// IsOther reports whether p is a special file, following symlinks.
func (fo *FileOps) IsOther(p fspath.Path) (bool, error) {
	status, err := fo.Status(p)
	return status.IsOther(), err
}

// IsEmpty reports whether p is an empty directory or a zero-length file.
func (fo *FileOps) IsEmpty(p fspath.Path) (bool, error) {
	status, err := fo.Status(p)
	if err != nil {
		return false, err
	}

	switch status.Type {
	case TypeDirectory:
		it := fo.directoryIterator(fo.FS, p)
		defer it.Close()

		hasEntry := it.Next()
		if err := it.Err(); err != nil {
			return false, err
		}

		return !hasEntry, nil
	case TypeRegular:
		return status.Size == 0, nil
	case TypeNotFound:
		return false, fserrors.New("is_empty", p.String(), fserrors.KindNotFound, nil)
	default:
		return false, fserrors.New("is_empty", p.String(), fserrors.KindWrongType, nil)
	}
}

// FileSize returns the size of a regular file.
func (fo *FileOps) FileSize(p fspath.Path) (int64, error) {
	status, err := fo.requireExisting("file_size", p)
	if err != nil {
		return 0, err
	}

	if !status.IsRegularFile() {
		return 0, fserrors.New("file_size", p.String(), fserrors.KindWrongType, nil)
	}

	return status.Size, nil
}

// LastWriteTime returns the modification time of p, following symlinks.
func (fo *FileOps) LastWriteTime(p fspath.Path) (time.Time, error) {
	status, err := fo.requireExisting("last_write_time", p)
	if err != nil {
		return time.Time{}, err
	}

	return status.ModTime, nil
}

// SetLastWriteTime sets the modification time of p. The access time is set to
// the same value.
func (fo *FileOps) SetLastWriteTime(p fspath.Path, mtime time.Time) error {
	return fserrors.Wrap("last_write_time", p.String(), fo.FS.Chtimes(p.String(), mtime, mtime))
}

// PermOptions selects how Permissions combines the given bits with the
// current mode.
type PermOptions int

// Exported constants.
const (
	PermReplace PermOptions = iota
	PermAdd
	PermRemove
)

// Permissions changes the permission bits of p, following symlinks.
func (fo *FileOps) Permissions(p fspath.Path, perm os.FileMode, opts PermOptions) error {
	status, err := fo.requireExisting("permissions", p)
	if err != nil {
		return err
	}

	mode := perm.Perm()

	switch opts {
	case PermAdd:
		mode = status.Permissions | mode
	case PermRemove:
		mode = status.Permissions &^ mode
	case PermReplace:
	default:
		return fserrors.New("permissions", p.String(), fserrors.KindInvalidArgument, nil)
	}

	return fserrors.Wrap("permissions", p.String(), fo.FS.Chmod(p.String(), mode))
}

// HardLinkCount returns the number of hard links to p.
func (fo *FileOps) HardLinkCount(p fspath.Path) (uint64, error) {
	count, err := fo.FS.LinkCount(p.String())
	if err != nil {
		return 0, fserrors.Wrap("hard_link_count", p.String(), err)
	}

	return count, nil
}

// ReadSymlink returns the target stored in symlink p.
func (fo *FileOps) ReadSymlink(p fspath.Path) (fspath.Path, error) {
	return readSymlinkOn(fo.FS, p)
}

func (fo *FileOps) requireExisting(op string, p fspath.Path) (FileStatus, error) {
	status, err := fo.Status(p)
	if err != nil {
		return status, err
	}

	if !status.Exists() {
		return status, fserrors.New(op, p.String(), fserrors.KindNotFound, nil)
	}

	return status, nil
}

func readSymlinkOn(fs filesystem.FileSystem, p fspath.Path) (fspath.Path, error) {
	target, err := fs.Readlink(p.String())
	if err != nil {
		return fspath.Path{}, fserrors.Wrap("read_symlink", p.String(), err)
	}

	return fspath.NewStyled(target, fs.Style()), nil
}

func statusFromInfo(info os.FileInfo) FileStatus {
	status := FileStatus{
		Size:        info.Size(),
		Permissions: info.Mode().Perm(),
		ModTime:     info.ModTime(),
	}

	mode := info.Mode()

	switch {
	case mode&os.ModeSymlink != 0:
		status.Type = TypeSymlink
	case mode.IsDir():
		status.Type = TypeDirectory
	case mode.IsRegular():
		status.Type = TypeRegular
	default:
		status.Type = TypeOther
	}

	return status
}

func statusOn(fs filesystem.FileSystem, op string, p fspath.Path, follow bool) (FileStatus, error) {
	var (
		info os.FileInfo
		err  error
	)

	if follow {
		info, err = fs.Stat(p.String())
	} else {
		info, err = fs.Lstat(p.String())
	}

	if err != nil {
		kind := fserrors.Classify(err)
		// A file in a directory position means the path cannot exist.
		if kind == fserrors.KindNotFound || kind == fserrors.KindWrongType {
			return FileStatus{Type: TypeNotFound}, nil
		}

		return FileStatus{Type: TypeNone}, fserrors.New(op, p.String(), kind, err)
	}

	return statusFromInfo(info), nil
}
