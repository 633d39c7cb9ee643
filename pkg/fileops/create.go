package fileops

import (
	"io/fs"

	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/fspath"
)

// CreateDirectory creates a single directory. It returns false with a nil
// error when p is already a directory; any other existing entry is an
// ALREADY_EXISTS error.
func (fo *FileOps) CreateDirectory(p fspath.Path) (bool, error) {
	err := fo.FS.Mkdir(p.String(), DefaultDirPermissions)
	if err == nil {
		return true, nil
	}

	kind := fserrors.Classify(err)
	if kind != fserrors.KindAlreadyExists {
		return false, fserrors.New("create_directory", p.String(), kind, err)
	}

	status, statErr := fo.Status(p)
	if statErr != nil {
		return false, statErr
	}

	if status.IsDirectory() {
		return false, nil
	}

	return false, fserrors.New("create_directory", p.String(), fserrors.KindAlreadyExists, err)
}

// CreateDirectories creates p and every missing ancestor. It returns true if
// it created anything.
func (fo *FileOps) CreateDirectories(p fspath.Path) (bool, error) {
	if p.Empty() {
		return false, fserrors.New("create_directories", "", fserrors.KindInvalidArgument, nil)
	}

	var missing []fspath.Path

	for current := p; !current.Empty(); {
		status, err := fo.Status(current)
		if err != nil {
			return false, err
		}

		if status.IsDirectory() {
			break
		}

		if status.Exists() {
			return false, fserrors.New("create_directories", current.String(), fserrors.KindAlreadyExists, fs.ErrExist)
		}

		missing = append(missing, current)

		parent := current.ParentPath()
		if parent.String() == current.String() {
			break
		}

		current = parent
	}

	created := false

	for i := len(missing) - 1; i >= 0; i-- {
		made, err := fo.CreateDirectory(missing[i])
		if err != nil {
			return created, err
		}

		created = created || made
	}

	return created, nil
}

// CreateFile creates an empty regular file. It fails with ALREADY_EXISTS if
// anything exists at p.
func (fo *FileOps) CreateFile(p fspath.Path) error {
	status, err := fo.SymlinkStatus(p)
	if err != nil {
		return err
	}

	if status.Exists() {
		return fserrors.New("create_file", p.String(), fserrors.KindAlreadyExists, fs.ErrExist)
	}

	file, err := fo.FS.Create(p.String(), DefaultFilePermissions)
	if err != nil {
		return fserrors.Wrap("create_file", p.String(), err)
	}

	return fserrors.Wrap("create_file", p.String(), file.Close())
}

// CreateSymlink creates link pointing at target. target is stored verbatim
// and need not exist.
func (fo *FileOps) CreateSymlink(target, link fspath.Path) error {
	return fserrors.Wrap2("create_symlink", target.String(), link.String(), fo.FS.Symlink(target.String(), link.String()))
}

// CreateDirectorySymlink creates a symlink to a directory. Platforms that do
// not distinguish the two kinds treat it like CreateSymlink.
func (fo *FileOps) CreateDirectorySymlink(target, link fspath.Path) error {
	return fserrors.Wrap2("create_directory_symlink", target.String(), link.String(),
		fo.FS.Symlink(target.String(), link.String()))
}

// CreateHardLink creates link as another name for the existing target.
func (fo *FileOps) CreateHardLink(target, link fspath.Path) error {
	return fserrors.Wrap2("create_hard_link", target.String(), link.String(), fo.FS.Link(target.String(), link.String()))
}

// ResizeFile truncates or zero-extends a regular file.
func (fo *FileOps) ResizeFile(p fspath.Path, size int64) error {
	if size < 0 {
		return fserrors.New("resize_file", p.String(), fserrors.KindInvalidArgument, fs.ErrInvalid)
	}

	status, err := fo.requireExisting("resize_file", p)
	if err != nil {
		return err
	}

	if !status.IsRegularFile() {
		return fserrors.New("resize_file", p.String(), fserrors.KindWrongType, nil)
	}

	return fserrors.Wrap("resize_file", p.String(), fo.FS.Truncate(p.String(), size))
}
