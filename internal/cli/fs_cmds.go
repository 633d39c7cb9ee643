package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joe/pathkit/internal/config"
	"github.com/joe/pathkit/internal/tui"
	"github.com/joe/pathkit/internal/tui/shared"
	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/fileops"
	"github.com/joe/pathkit/pkg/filesystem"
	"github.com/joe/pathkit/pkg/fspath"
)

func (r *Runner) copy(cmd *config.CopyCmd) error {
	srcFS, dstFS, srcPath, dstPath, closer, err := filesystem.CreateFileSystemPairWith(cmd.From, cmd.To, r.Connect)
	if err != nil {
		return err
	}
	defer closer()

	fo := fileops.NewDualFileOps(srcFS, dstFS).WithLogger(r.Logger)
	from := fspath.NewStyled(srcPath, srcFS.Style())
	to := fspath.NewStyled(dstPath, dstFS.Style())

	opts := fileops.CopyOptions{
		Recursive:         cmd.Recursive,
		DirectoriesOnly:   cmd.DirectoriesOnly,
		SkipSymlinks:      cmd.SkipSymlinks,
		FollowSymlinks:    cmd.FollowSymlinks,
		OverwriteExisting: cmd.Overwrite,
		UpdateExisting:    cmd.Update,
	}

	var count tui.CountFunc

	if isDir, _ := fo.IsDirectory(from); isDir && cmd.Recursive {
		count = countWithRoot(fo, from)
	}

	result, err := r.track(fmt.Sprintf("Copying %s to %s", from, to), count, func(emitter fileops.EventEmitter) error {
		return fo.WithEvents(emitter).Copy(from, to, opts)
	})
	if err != nil {
		return err
	}

	if r.Progress == nil {
		stats := result.Stats
		r.printf("copied %d files, %d symlinks, %d directories (%s), skipped %d\n",
			stats.Files, stats.Symlinks, stats.Directories, shared.FormatBytes(stats.Bytes), stats.Skipped)
	}

	return nil
}

func (r *Runner) rm(cmd *config.RmCmd) error {
	fo, p, closer, err := r.open(cmd.Path)
	if err != nil {
		return err
	}
	defer closer()

	if !cmd.Recursive {
		removed, err := fo.Remove(p)
		if err != nil {
			return err
		}

		if !removed {
			r.warnf("%s does not exist", p)
		}

		return nil
	}

	policy := fileops.RemovePolicy{Mode: fileops.BestEffort}
	if cmd.FailFast {
		policy.Mode = fileops.FailFast
	}

	var count tui.CountFunc

	if isDir, _ := fo.IsDirectory(p); isDir {
		count = countWithRoot(fo, p)
	}

	var removed int

	result, err := r.track("Removing "+p.String(), count, func(emitter fileops.EventEmitter) error {
		var removeErr error
		removed, removeErr = fo.WithEvents(emitter).RemoveAllWithPolicy(p, policy)

		return removeErr
	})
	if err != nil {
		return err
	}

	if r.Progress == nil {
		r.printf("removed %d entries\n", removed)

		for _, failed := range result.Stats.Failed {
			r.warnf("%v", failed.Err)
		}
	}

	if failures := len(result.Stats.Failed); failures > 0 {
		return fmt.Errorf("%w: %d could not be removed", ErrIncomplete, failures)
	}

	return nil
}

func (r *Runner) df(cmd *config.DfCmd) error {
	fo, p, closer, err := r.open(cmd.Path)
	if err != nil {
		return err
	}
	defer closer()

	space, err := fo.Space(p)
	if err != nil {
		return err
	}

	for _, row := range []struct {
		name  string
		bytes uint64
	}{
		{"capacity", space.Capacity},
		{"free", space.Free},
		{"available", space.Available},
	} {
		r.printf("%-10s %12s %d\n", row.name, shared.FormatBytes(int64(row.bytes)), row.bytes) //nolint:gosec // Sizes fit in int64
	}

	return nil
}

func (r *Runner) stat(cmd *config.StatCmd) error {
	fo, p, closer, err := r.open(cmd.Path)
	if err != nil {
		return err
	}
	defer closer()

	status, err := fo.SymlinkStatus(p)
	if cmd.Follow {
		status, err = fo.Status(p)
	}

	if err != nil {
		return err
	}

	if !status.Exists() {
		return errNotFound("stat", p)
	}

	r.printf("%-12s %s\n", "path", p)
	r.printf("%-12s %s\n", "type", status.Type)
	r.printf("%-12s %d\n", "size", status.Size)
	r.printf("%-12s %s\n", "permissions", status.Permissions)
	r.printf("%-12s %s\n", "modified", status.ModTime.Format(time.RFC3339))

	if status.IsSymlink() {
		target, err := fo.ReadSymlink(p)
		if err != nil {
			return err
		}

		r.printf("%-12s %s\n", "target", target)
	}

	if links, err := fo.HardLinkCount(p); err == nil {
		r.printf("%-12s %d\n", "links", links)
	} else if !errors.Is(err, errors.ErrUnsupported) {
		r.Logger.Debug("hard link count unavailable", "path", p.String(), "err", err)
	}

	if cmd.Hash && status.IsRegularFile() {
		sum, err := fo.FileHash(p)
		if err != nil {
			return err
		}

		r.printf("%-12s %s\n", "sha256", sum)
	}

	return nil
}

func countWithRoot(fo *fileops.FileOps, root fspath.Path) tui.CountFunc {
	return func(progress fileops.CountProgressCallback) (int, error) {
		n, err := fo.CountEntries(root, progress)

		return n + 1, err
	}
}

func errNotFound(op string, p fspath.Path) error {
	return fserrors.New(op, p.String(), fserrors.KindNotFound, os.ErrNotExist)
}
