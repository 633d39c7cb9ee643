package fileops

import (
	"errors"

	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/fspath"
)

// RecursiveOptions configures a RecursiveDirectoryIterator.
type RecursiveOptions struct {
	// FollowDirectorySymlink descends into symlinks that resolve to directories.
	FollowDirectorySymlink bool
	// SkipPermissionDenied skips directories that cannot be opened for lack of
	// permission instead of failing the walk.
	SkipPermissionDenied bool
}

// RecursiveDirectoryIterator walks a directory tree depth-first, pre-order.
// Each directory entry is yielded before its contents; the descent happens on
// the following Next unless DisableRecursionPending was called.
type RecursiveDirectoryIterator struct {
	fo      *FileOps
	opts    RecursiveOptions
	stack   []*DirectoryIterator
	entry   DirectoryEntry
	pending bool
	err     error
}

// Walk opens a recursive iterator rooted at p. The root itself is not
// yielded.
func (fo *FileOps) Walk(p fspath.Path, opts RecursiveOptions) *RecursiveDirectoryIterator {
	walker := &RecursiveDirectoryIterator{fo: fo, opts: opts}
	walker.push(p)

	return walker
}

// Next advances to the next entry of the tree.
func (w *RecursiveDirectoryIterator) Next() bool {
	if w.pending {
		w.pending = false

		if w.descendable(w.entry) && !w.push(w.entry.Path()) {
			return false
		}
	}

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]

		if top.Next() {
			w.entry = top.Entry()
			w.pending = true

			return true
		}

		if err := top.Err(); err != nil && !w.skippable(err) {
			w.fail(err)
			return false
		}

		w.stack = w.stack[:len(w.stack)-1]
	}

	w.entry = DirectoryEntry{}

	return false
}

// Entry returns the current entry.
func (w *RecursiveDirectoryIterator) Entry() DirectoryEntry {
	return w.entry
}

// Err returns the error that ended the walk, if any.
func (w *RecursiveDirectoryIterator) Err() error {
	return w.err
}

// Depth is the nesting level of the current entry; 0 for the root's children.
func (w *RecursiveDirectoryIterator) Depth() int {
	if len(w.stack) == 0 {
		return 0
	}

	return len(w.stack) - 1
}

// Options returns the options the walk was opened with.
func (w *RecursiveDirectoryIterator) Options() RecursiveOptions {
	return w.opts
}

// RecursionPending reports whether the next Next will descend into the
// current entry (when it is a directory).
func (w *RecursiveDirectoryIterator) RecursionPending() bool {
	return w.pending
}

// DisableRecursionPending prevents descending into the current entry.
func (w *RecursiveDirectoryIterator) DisableRecursionPending() {
	w.pending = false
}

// Pop abandons the deepest directory. The walk resumes in the parent after
// the entry that was descended into; popping the root exhausts the walk.
func (w *RecursiveDirectoryIterator) Pop() error {
	if len(w.stack) == 0 {
		return nil
	}

	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.pending = false
	w.entry = DirectoryEntry{}

	return top.Close()
}

// State returns StateActive while any directory is still open.
func (w *RecursiveDirectoryIterator) State() IteratorState {
	if len(w.stack) == 0 {
		return StateExhausted
	}

	return StateActive
}

// Equal follows the DirectoryIterator rule: exhausted walks are equal,
// an active walk equals only itself.
func (w *RecursiveDirectoryIterator) Equal(other *RecursiveDirectoryIterator) bool {
	if w.State() == StateExhausted || other.State() == StateExhausted {
		return w.State() == other.State()
	}

	return w == other
}

// Close releases every open directory stream.
func (w *RecursiveDirectoryIterator) Close() error {
	var errs []error

	for i := len(w.stack) - 1; i >= 0; i-- {
		errs = append(errs, w.stack[i].Close())
	}

	w.stack = nil
	w.pending = false

	return errors.Join(errs...)
}

func (w *RecursiveDirectoryIterator) descendable(entry DirectoryEntry) bool {
	if entry.SymlinkStatus().IsDirectory() {
		return true
	}

	return w.opts.FollowDirectorySymlink && entry.IsSymlink() && entry.IsDirectory()
}

func (w *RecursiveDirectoryIterator) fail(err error) {
	_ = w.Close()
	w.err = err
	w.entry = DirectoryEntry{}
}

// push opens dir and makes it the deepest level. It returns false when the
// walk failed.
func (w *RecursiveDirectoryIterator) push(dir fspath.Path) bool {
	child := w.fo.directoryIterator(w.fo.FS, dir)

	if err := child.Err(); err != nil {
		if w.skippable(err) {
			w.fo.log().Debug("skipping unreadable directory", "path", dir.String(), "err", err)
			return true
		}

		w.fail(err)

		return false
	}

	if child.State() == StateActive {
		w.stack = append(w.stack, child)
	}

	return true
}

func (w *RecursiveDirectoryIterator) skippable(err error) bool {
	return w.opts.SkipPermissionDenied && fserrors.KindOf(err) == fserrors.KindPermissionDenied
}
