package fileops

import (
	"errors"
	"io"
	"iter"

	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/filesystem"
	"github.com/joe/pathkit/pkg/fspath"
)

// IteratorState is the lifecycle state of a directory iterator.
type IteratorState int

// Exported constants.
const (
	// StateExhausted is the zero state: no stream is held.
	StateExhausted IteratorState = iota
	// StateActive means the iterator holds an open directory stream.
	StateActive
)

func (s IteratorState) String() string {
	if s == StateActive {
		return "active"
	}

	return "exhausted"
}

// DirectoryIterator yields the entries of one directory in platform order.
// It follows the scanner contract:
//
//	it := ops.ReadDir(dir)
//	defer it.Close()
//	for it.Next() {
//		use(it.Entry())
//	}
//	if err := it.Err(); err != nil { ... }
//
// The stream is released when the iterator is exhausted, fails or is closed.
// An iterator must not be shared between goroutines.
type DirectoryIterator struct {
	fs     filesystem.FileSystem
	dir    fspath.Path
	stream filesystem.DirStream
	state  IteratorState
	entry  DirectoryEntry
	err    error
}

// End returns an exhausted iterator. Every exhausted iterator is Equal to it.
func End() *DirectoryIterator {
	return &DirectoryIterator{}
}

// ReadDir opens an iterator over the entries of p.
//
// A missing path or a path that is not a directory yields an exhausted
// iterator with a nil Err; any other open failure is reported by Err.
func (fo *FileOps) ReadDir(p fspath.Path) *DirectoryIterator {
	return fo.directoryIterator(fo.FS, p)
}

func (fo *FileOps) directoryIterator(fs filesystem.FileSystem, p fspath.Path) *DirectoryIterator {
	it := &DirectoryIterator{fs: fs, dir: p}

	stream, err := fs.OpenDir(p.String())
	if err != nil {
		kind := fserrors.Classify(err)
		if kind != fserrors.KindNotFound && kind != fserrors.KindWrongType {
			it.err = fserrors.New("directory_iterator", p.String(), kind, err)
		}

		fo.log().Debug("directory not iterable", "path", p.String(), "err", err)

		return it
	}

	it.stream = stream
	it.state = StateActive

	return it
}

// Next advances to the next entry, returning false once the directory is
// exhausted or an error occurred.
func (it *DirectoryIterator) Next() bool {
	if it.state != StateActive {
		return false
	}

	info, err := it.stream.Next()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			it.err = fserrors.Wrap("directory_iterator", it.dir.String(), err)
		}

		it.release()

		return false
	}

	entryPath := it.dir.JoinString(info.Name())
	entry := DirectoryEntry{path: entryPath, symlinkStatus: statusFromInfo(info)}

	if entry.symlinkStatus.IsSymlink() {
		// Dangling links resolve to TypeNotFound; other failures leave TypeNone.
		entry.status, _ = statusOn(it.fs, "directory_iterator", entryPath, true)
	} else {
		entry.status = entry.symlinkStatus
	}

	it.entry = entry

	return true
}

// Entry returns the current entry. It is only meaningful after Next
// returned true.
func (it *DirectoryIterator) Entry() DirectoryEntry {
	return it.entry
}

// Err returns the error that ended iteration, if any.
func (it *DirectoryIterator) Err() error {
	return it.err
}

// State returns the iterator's lifecycle state.
func (it *DirectoryIterator) State() IteratorState {
	return it.state
}

// Equal reports whether two iterators are at the same position. All
// exhausted iterators are equal; an active iterator equals only itself.
func (it *DirectoryIterator) Equal(other *DirectoryIterator) bool {
	if it.state == StateExhausted || other.state == StateExhausted {
		return it.state == other.state
	}

	return it == other
}

// Close releases the directory stream. Closing twice is harmless.
func (it *DirectoryIterator) Close() error {
	if it.state != StateActive {
		return nil
	}

	return it.release()
}

// Entries returns a single-use sequence over the remaining entries. Check Err
// after ranging.
func (it *DirectoryIterator) Entries() iter.Seq[DirectoryEntry] {
	return func(yield func(DirectoryEntry) bool) {
		for it.Next() {
			if !yield(it.entry) {
				return
			}
		}
	}
}

func (it *DirectoryIterator) release() error {
	it.state = StateExhausted
	it.entry = DirectoryEntry{}

	if it.stream == nil {
		return nil
	}

	err := it.stream.Close()
	it.stream = nil

	return fserrors.Wrap("directory_iterator", it.dir.String(), err)
}
