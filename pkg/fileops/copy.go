package fileops

import (
	"errors"
	"io/fs"

	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/filesystem"
	"github.com/joe/pathkit/pkg/fspath"
)

// CopyOptions controls Copy and CopyFileWithOptions.
type CopyOptions struct {
	// Recursive copies directory trees.
	Recursive bool
	// DirectoriesOnly recreates the directory structure without files.
	DirectoriesOnly bool
	// SkipSymlinks ignores symlinks instead of recreating them.
	SkipSymlinks bool
	// FollowSymlinks copies what a symlink resolves to.
	FollowSymlinks bool
	// OverwriteExisting replaces existing destination files.
	OverwriteExisting bool
	// UpdateExisting replaces existing destination files older than the source.
	UpdateExisting bool
}

type copyJob struct {
	from, to fspath.Path
	topLevel bool
}

// CopyFile copies the regular file from to to. When to exists it is replaced
// only if overwrite is set; otherwise CopyFile returns false and a nil error.
func (fo *FileOps) CopyFile(from, to fspath.Path, overwrite bool) (bool, error) {
	return fo.CopyFileWithOptions(from, to, CopyOptions{OverwriteExisting: overwrite})
}

// CopyFileWithOptions is CopyFile honouring OverwriteExisting and
// UpdateExisting. Permissions and the modification time are carried over.
func (fo *FileOps) CopyFileWithOptions(from, to fspath.Path, opts CopyOptions) (bool, error) {
	const op = "copy_file"

	fromStatus, err := statusOn(fo.sourceFS(), op, from, true)
	if err != nil {
		return false, err
	}

	switch {
	case !fromStatus.Exists():
		return false, fserrors.New2(op, from.String(), to.String(), fserrors.KindNotFound, ErrFromNotFound)
	case !fromStatus.IsRegularFile():
		return false, fserrors.New2(op, from.String(), to.String(), fserrors.KindWrongType, ErrFromWrongType)
	}

	toStatus, err := statusOn(fo.destFS(), op, to, true)
	if err != nil {
		return false, err
	}

	if toStatus.Exists() {
		if err := fo.checkNotEquivalent(op, from, to); err != nil {
			return false, err
		}

		if !toStatus.IsRegularFile() {
			return false, fserrors.New2(op, from.String(), to.String(), fserrors.KindWrongType, ErrToWrongType)
		}

		if !replaceAllowed(fromStatus, toStatus, opts) {
			fo.log().Debug("destination exists, not replaced", "op", op, "path", to.String())
			fo.emit(EntrySkipped{Path: to.String(), Reason: "exists"})

			return false, nil
		}
	}

	written, err := fo.copyContents(from, to, fromStatus, !toStatus.Exists())
	if err != nil {
		return false, err
	}

	fo.emit(EntryCopied{From: from.String(), To: to.String(), Type: TypeRegular, Bytes: written})

	return true, nil
}

// CopySymlink recreates the symlink from at to, with the same stored target.
func (fo *FileOps) CopySymlink(from, to fspath.Path) error {
	target, err := readSymlinkOn(fo.sourceFS(), from)
	if err != nil {
		return err
	}

	resolved, err := statusOn(fo.sourceFS(), "copy_symlink", from, true)
	if err != nil {
		return err
	}

	linkTarget := fspath.NewStyled(target.String(), fo.destFS().Style())
	dest := fo.destOps()

	if resolved.IsDirectory() {
		err = dest.CreateDirectorySymlink(linkTarget, to)
	} else {
		err = dest.CreateSymlink(linkTarget, to)
	}

	if err != nil {
		return err
	}

	fo.emit(EntryCopied{From: from.String(), To: to.String(), Type: TypeSymlink})

	return nil
}

// Copy copies a file, symlink or directory. Directories are copied with their
// immediate non-directory children, or the whole tree when opts.Recursive is
// set. The first failure aborts the copy.
func (fo *FileOps) Copy(from, to fspath.Path, opts CopyOptions) error {
	stack := []copyJob{{from: from, to: to, topLevel: true}}

	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := fo.copyOne(job, opts)
		if err != nil {
			return err
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return nil
}

func (fo *FileOps) copyOne(job copyJob, opts CopyOptions) ([]copyJob, error) {
	const op = "copy"

	src, dst := fo.sourceFS(), fo.destFS()

	fromStatus, err := statusOn(src, op, job.from, opts.FollowSymlinks)
	if err != nil {
		return nil, err
	}

	switch {
	case !fromStatus.Exists():
		return nil, fserrors.New2(op, job.from.String(), job.to.String(), fserrors.KindNotFound, ErrFromNotFound)

	case fromStatus.IsSymlink():
		if opts.SkipSymlinks {
			fo.skip(job.from, "symlink")
			return nil, nil
		}

		toStatus, err := statusOn(dst, op, job.to, false)
		if err != nil {
			return nil, err
		}

		if toStatus.Exists() {
			return nil, fserrors.New2(op, job.from.String(), job.to.String(), fserrors.KindAlreadyExists, fs.ErrExist)
		}

		return nil, fo.CopySymlink(job.from, job.to)

	case fromStatus.IsRegularFile():
		if opts.DirectoriesOnly {
			fo.skip(job.from, "directories only")
			return nil, nil
		}

		toStatus, err := statusOn(dst, op, job.to, true)
		if err != nil {
			return nil, err
		}

		target := job.to
		if toStatus.IsDirectory() {
			target = job.to.JoinString(job.from.Filename().String())
		}

		_, err = fo.CopyFileWithOptions(job.from, target, opts)

		return nil, err

	case fromStatus.IsDirectory():
		return fo.copyDirectory(job, fromStatus, opts)

	default:
		return nil, fserrors.New2(op, job.from.String(), job.to.String(), fserrors.KindWrongType, ErrFromUnsupportedType)
	}
}

func (fo *FileOps) copyDirectory(job copyJob, fromStatus FileStatus, opts CopyOptions) ([]copyJob, error) {
	const op = "copy"

	dst := fo.destFS()

	toStatus, err := statusOn(dst, op, job.to, true)
	if err != nil {
		return nil, err
	}

	switch {
	case toStatus.IsDirectory():
		if err := fo.checkNotEquivalent(op, job.from, job.to); err != nil {
			return nil, err
		}
	case toStatus.Exists():
		return nil, fserrors.New2(op, job.from.String(), job.to.String(), fserrors.KindWrongType, ErrToWrongType)
	default:
		// Owner bits stay set so the copy can populate it.
		if err := dst.Mkdir(job.to.String(), fromStatus.Permissions|0o700); err != nil {
			return nil, fserrors.Wrap2(op, job.from.String(), job.to.String(), err)
		}

		fo.emit(DirectoryCreated{Path: job.to.String()})
	}

	if !opts.Recursive && !job.topLevel {
		return nil, nil
	}

	it := fo.directoryIterator(fo.sourceFS(), job.from)
	defer func() {
		_ = it.Close()
	}()

	var children []copyJob

	for entry := range it.Entries() {
		if !opts.Recursive && entry.SymlinkStatus().IsDirectory() {
			continue
		}

		children = append(children, copyJob{
			from: entry.Path(),
			to:   job.to.JoinString(entry.Path().Filename().String()),
		})
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return children, nil
}

// copyContents streams from into to and carries over permissions and the
// modification time. A destination created here is removed again on failure.
func (fo *FileOps) copyContents(from, to fspath.Path, fromStatus FileStatus, created bool) (int64, error) {
	const op = "copy_file"

	src, dst := fo.sourceFS(), fo.destFS()

	sourceFile, err := src.Open(from.String())
	if err != nil {
		return 0, fserrors.Wrap(op, from.String(), err)
	}

	defer func() {
		_ = sourceFile.Close()
	}()

	destFile, err := dst.Create(to.String(), fromStatus.Permissions)
	if err != nil {
		return 0, fserrors.Wrap2(op, from.String(), to.String(), err)
	}

	written, err := fo.copyLoop(sourceFile, destFile, fromStatus.Size, from.String())

	// Close the file before setting modification time
	// This is important for network filesystems like SMB
	closeErr := destFile.Close()
	if err == nil {
		err = closeErr
	}

	if err != nil {
		if created {
			_ = dst.Remove(to.String())
		}

		return written, fserrors.Wrap2(op, from.String(), to.String(), err)
	}

	if err := fo.preserveAttributes(dst, to, fromStatus); err != nil {
		return written, err
	}

	return written, nil
}

func (fo *FileOps) preserveAttributes(dst filesystem.FileSystem, to fspath.Path, fromStatus FileStatus) error {
	const op = "copy_file"

	err := dst.Chmod(to.String(), fromStatus.Permissions)
	if err != nil && !errors.Is(err, filesystem.ErrUnsupported) {
		return fserrors.Wrap(op, to.String(), err)
	}

	err = dst.Chtimes(to.String(), fromStatus.ModTime, fromStatus.ModTime)
	if errors.Is(err, filesystem.ErrUnsupported) {
		fo.log().Debug("modification time not preserved", "path", to.String(), "err", err)
		return nil
	}

	return fserrors.Wrap(op, to.String(), err)
}

// checkNotEquivalent fails with EQUIVALENT_PATH when both paths name the same
// entity. Across different platforms nothing can be equivalent.
func (fo *FileOps) checkNotEquivalent(op string, from, to fspath.Path) error {
	if !fo.sameFileSystem() {
		return nil
	}

	same, err := fo.sourceFS().SameFile(from.String(), to.String())
	if err != nil {
		return fserrors.Wrap2(op, from.String(), to.String(), err)
	}

	if same {
		return fserrors.New2(op, from.String(), to.String(), fserrors.KindEquivalentPath, ErrEquivalentPath)
	}

	return nil
}

// destOps is a FileOps bound to the destination platform.
func (fo *FileOps) destOps() *FileOps {
	if fo.sameFileSystem() {
		return fo
	}

	return &FileOps{FS: fo.destFS(), Logger: fo.Logger, Events: fo.Events}
}

func (fo *FileOps) skip(p fspath.Path, reason string) {
	fo.log().Debug("skipping entry", "path", p.String(), "reason", reason)
	fo.emit(EntrySkipped{Path: p.String(), Reason: reason})
}

func replaceAllowed(fromStatus, toStatus FileStatus, opts CopyOptions) bool {
	switch {
	case opts.UpdateExisting:
		return fromStatus.ModTime.After(toStatus.ModTime)
	case opts.OverwriteExisting:
		return true
	default:
		return false
	}
}
