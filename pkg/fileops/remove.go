package fileops

import (
	"slices"

	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/fspath"
)

// RemoveMode selects how RemoveAllWithPolicy reacts to a failed entry.
type RemoveMode int

// Exported constants.
const (
	// BestEffort reports failures and keeps going.
	BestEffort RemoveMode = iota
	// FailFast stops at the first failure.
	FailFast
)

// RemovePolicy configures RemoveAllWithPolicy.
type RemovePolicy struct {
	Mode RemoveMode
	// OnError is told about every entry that could not be removed.
	OnError func(path fspath.Path, err error)
}

// Remove deletes a file, symlink or empty directory. It returns false with a
// nil error when nothing exists at p.
func (fo *FileOps) Remove(p fspath.Path) (bool, error) {
	err := fo.FS.Remove(p.String())
	if err == nil {
		return true, nil
	}

	kind := fserrors.Classify(err)

	if kind == fserrors.KindNotFound || kind == fserrors.KindWrongType {
		status, statErr := fo.SymlinkStatus(p)
		if statErr == nil && !status.Exists() {
			return false, nil
		}
	}

	return false, fserrors.New("remove", p.String(), kind, err)
}

// RemoveAll deletes p and everything below it without following symlinks,
// returning how many entries were removed (p included). Failures below p are
// logged and skipped; see RemoveAllWithPolicy.
func (fo *FileOps) RemoveAll(p fspath.Path) (int, error) {
	return fo.RemoveAllWithPolicy(p, RemovePolicy{})
}

// RemoveAllWithPolicy is RemoveAll with explicit failure handling. In
// BestEffort mode the returned error is nil unless p itself could not be
// examined; in FailFast mode the first failure is returned with the count
// removed so far.
func (fo *FileOps) RemoveAllWithPolicy(p fspath.Path, policy RemovePolicy) (int, error) {
	status, err := fo.SymlinkStatus(p)
	if err != nil {
		return 0, err
	}

	if !status.Exists() {
		return 0, nil
	}

	return fo.removeTree(p, policy)
}

func (fo *FileOps) removeTree(p fspath.Path, policy RemovePolicy) (int, error) {
	removed, err := fo.removeCounted(p)
	if err == nil {
		return removed, nil
	}

	if fserrors.KindOf(err) != fserrors.KindDirectoryNotEmpty {
		return 0, fo.removeFailed(p, err, policy)
	}

	it := fo.ReadDir(p)
	entries := slices.Collect(it.Entries())
	_ = it.Close()

	if err := it.Err(); err != nil {
		return 0, fo.removeFailed(p, err, policy)
	}

	count := 0

	for _, entry := range entries {
		if entry.SymlinkStatus().IsDirectory() {
			n, err := fo.removeTree(entry.Path(), policy)
			count += n

			if err != nil {
				return count, err
			}

			continue
		}

		n, err := fo.removeCounted(entry.Path())
		count += n

		if err != nil {
			if err := fo.removeFailed(entry.Path(), err, policy); err != nil {
				return count, err
			}
		}
	}

	n, err := fo.removeCounted(p)
	count += n

	if err != nil {
		return count, fo.removeFailed(p, err, policy)
	}

	return count, nil
}

func (fo *FileOps) removeCounted(p fspath.Path) (int, error) {
	removed, err := fo.Remove(p)
	if err != nil || !removed {
		return 0, err
	}

	fo.emit(EntryRemoved{Path: p.String()})

	return 1, nil
}

// removeFailed records a failure and returns it only under FailFast.
func (fo *FileOps) removeFailed(p fspath.Path, err error, policy RemovePolicy) error {
	fo.log().Warn("remove failed", "op", "remove_all", "path", p.String(), "err", err)
	fo.emit(EntryFailed{Path: p.String(), Err: err})

	if policy.OnError != nil {
		policy.OnError(p, err)
	}

	if policy.Mode == FailFast {
		return err
	}

	return nil
}
