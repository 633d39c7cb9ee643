package cli

import (
	"slices"

	"github.com/joe/pathkit/internal/config"
	"github.com/joe/pathkit/pkg/fileops"
	"github.com/joe/pathkit/pkg/fspath"
)

const timeLayout = "2006-01-02 15:04"

func (r *Runner) ls(cmd *config.LsCmd) error {
	fo, root, closer, err := r.open(cmd.Path)
	if err != nil {
		return err
	}
	defer closer()

	// Listing something that is not a directory lists just that entry
	status, err := fo.Status(root)
	if err != nil {
		return err
	}

	if !status.IsDirectory() {
		symlinkStatus, err := fo.SymlinkStatus(root)
		if err != nil {
			return err
		}

		if !symlinkStatus.Exists() {
			return errNotFound("ls", root)
		}

		r.printEntry(fo, root.Filename(), root, status, symlinkStatus, cmd.Long)

		return nil
	}

	filter := NewGlobFilter(cmd.Match, cmd.Exclude)

	if cmd.Recursive {
		return r.lsRecursive(fo, root, filter, cmd)
	}

	it := fo.ReadDir(root)
	defer it.Close()

	entries := slices.SortedFunc(it.Entries(), func(a, b fileops.DirectoryEntry) int {
		return a.Path().Compare(b.Path())
	})
	if err := it.Err(); err != nil {
		return err
	}

	for _, entry := range entries {
		rel := entry.Path().LexicallyRelative(root)
		if filter.ShouldInclude(rel.GenericString()) {
			r.printEntry(fo, rel, entry.Path(), entry.Status(), entry.SymlinkStatus(), cmd.Long)
		}
	}

	return nil
}

func (r *Runner) lsRecursive(fo *fileops.FileOps, root fspath.Path, filter *GlobFilter, cmd *config.LsCmd) error {
	walker := fo.Walk(root, fileops.RecursiveOptions{
		FollowDirectorySymlink: cmd.FollowSymlinks,
		SkipPermissionDenied:   true,
	})
	defer walker.Close()

	for walker.Next() {
		entry := walker.Entry()
		rel := entry.Path().LexicallyRelative(root).GenericString()

		// An excluded directory hides everything below it
		if filter.Excluded(rel) {
			walker.DisableRecursionPending()
			continue
		}

		if filter.ShouldInclude(rel) {
			r.printEntry(fo, entry.Path().LexicallyRelative(root), entry.Path(),
				entry.Status(), entry.SymlinkStatus(), cmd.Long)
		}
	}

	return walker.Err()
}

func (r *Runner) printEntry(
	fo *fileops.FileOps,
	name, full fspath.Path,
	status, symlinkStatus fileops.FileStatus,
	long bool,
) {
	if !long {
		r.printf("%s\n", name)
		return
	}

	shown := status
	if symlinkStatus.IsSymlink() {
		shown = symlinkStatus
	}

	line := name.String()

	if symlinkStatus.IsSymlink() {
		if target, err := fo.ReadSymlink(full); err == nil {
			line += " -> " + target.String()
		}
	}

	r.printf("%-9s %s %10d %s %s\n",
		shown.Type, shown.Permissions, shown.Size, shown.ModTime.Format(timeLayout), line)
}
