package fileops

import (
	"errors"

	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/filesystem"
	"github.com/joe/pathkit/pkg/fspath"
)

// unexported variables.
var (
	errSymlinkLoop = errors.New("too many levels of symbolic links")
)

// Rename moves from to to, replacing a compatible existing entry.
func (fo *FileOps) Rename(from, to fspath.Path) error {
	return fserrors.Wrap2("rename", from.String(), to.String(), fo.FS.Rename(from.String(), to.String()))
}

// Equivalent reports whether a and b resolve to the same entity. It is an
// error only when neither exists.
func (fo *FileOps) Equivalent(a, b fspath.Path) (bool, error) {
	statusA, err := fo.Status(a)
	if err != nil {
		return false, err
	}

	statusB, err := fo.Status(b)
	if err != nil {
		return false, err
	}

	if !statusA.Exists() && !statusB.Exists() {
		return false, fserrors.New2("equivalent", a.String(), b.String(), fserrors.KindNotFound, nil)
	}

	if !statusA.Exists() || !statusB.Exists() {
		return false, nil
	}

	same, err := fo.FS.SameFile(a.String(), b.String())
	if err != nil {
		return false, fserrors.Wrap2("equivalent", a.String(), b.String(), err)
	}

	return same, nil
}

// CurrentPath returns the working directory of the platform.
func (fo *FileOps) CurrentPath() (fspath.Path, error) {
	wd, err := fo.FS.Getwd()
	if err != nil {
		return fspath.Path{}, fserrors.Wrap("current_path", "", err)
	}

	return fo.Path(wd), nil
}

// TempDirectoryPath returns the platform's directory for temporary files.
func (fo *FileOps) TempDirectoryPath() fspath.Path {
	return fo.Path(fo.FS.TempDir())
}

// Absolute joins a relative p onto the working directory. It does not touch
// the entries p names.
func (fo *FileOps) Absolute(p fspath.Path) (fspath.Path, error) {
	if p.IsAbsolute() {
		return p, nil
	}

	wd, err := fo.CurrentPath()
	if err != nil {
		return fspath.Path{}, err
	}

	if p.Empty() {
		return wd, nil
	}

	return wd.Join(p), nil
}

// Canonical returns the absolute path of an existing entry with every symlink,
// "." and ".." resolved.
func (fo *FileOps) Canonical(p fspath.Path) (fspath.Path, error) {
	const op = "canonical"

	abs, err := fo.Absolute(p)
	if err != nil {
		return fspath.Path{}, err
	}

	result := abs.RootPath()
	pending := relativeNames(abs)
	hops := 0

	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]

		switch name {
		case ".":
			continue
		case "..":
			result = result.ParentPath()
			continue
		}

		next := result.JoinString(name)

		info, err := fo.FS.Lstat(next.String())
		if err != nil {
			return fspath.Path{}, fserrors.Wrap(op, p.String(), err)
		}

		if statusFromInfo(info).Type != TypeSymlink {
			result = next
			continue
		}

		hops++
		if hops > maxSymlinkHops {
			return fspath.Path{}, fserrors.New(op, p.String(), fserrors.KindSystemError, errSymlinkLoop)
		}

		target, err := readSymlinkOn(fo.FS, next)
		if err != nil {
			return fspath.Path{}, err
		}

		if target.HasRootDirectory() {
			result = target.RootPath()
			if !target.HasRootName() {
				result = abs.RootName().Concat(target.RootPath().String())
			}
		}

		pending = append(relativeNames(target), pending...)
	}

	if _, err := fo.FS.Stat(result.String()); err != nil {
		return fspath.Path{}, fserrors.Wrap(op, p.String(), err)
	}

	return result, nil
}

// WeaklyCanonical resolves the longest existing prefix of p with Canonical and
// appends the rest lexically normalised. p need not exist.
func (fo *FileOps) WeaklyCanonical(p fspath.Path) (fspath.Path, error) {
	names := relativeNames(p)
	prefix := p.RootPath()
	existing := 0

	for _, name := range names {
		next := prefix.JoinString(name)

		status, err := fo.Status(next)
		if err != nil {
			return fspath.Path{}, err
		}

		if !status.Exists() {
			break
		}

		prefix = next
		existing++
	}

	if existing == 0 && prefix.Empty() {
		return p.LexicallyNormal(), nil
	}

	result, err := fo.Canonical(prefix)
	if err != nil {
		return fspath.Path{}, err
	}

	for _, name := range names[existing:] {
		result = result.JoinString(name)
	}

	return result.LexicallyNormal(), nil
}

// Relative is the path of p relative to base after resolving both with
// WeaklyCanonical. The result is empty when no relative path exists.
func (fo *FileOps) Relative(p, base fspath.Path) (fspath.Path, error) {
	target, resolvedBase, err := fo.weaklyCanonicalPair(p, base)
	if err != nil {
		return fspath.Path{}, err
	}

	return target.LexicallyRelative(resolvedBase), nil
}

// Proximate is Relative, falling back to the resolved p.
func (fo *FileOps) Proximate(p, base fspath.Path) (fspath.Path, error) {
	target, resolvedBase, err := fo.weaklyCanonicalPair(p, base)
	if err != nil {
		return fspath.Path{}, err
	}

	return target.LexicallyProximate(resolvedBase), nil
}

// Space reports the capacity of the filesystem holding p.
func (fo *FileOps) Space(p fspath.Path) (filesystem.SpaceInfo, error) {
	info, err := fo.FS.Space(p.String())
	if err != nil {
		return filesystem.SpaceInfo{}, fserrors.Wrap("space", p.String(), err)
	}

	return info, nil
}

func (fo *FileOps) weaklyCanonicalPair(p, base fspath.Path) (fspath.Path, fspath.Path, error) {
	target, err := fo.WeaklyCanonical(p)
	if err != nil {
		return fspath.Path{}, fspath.Path{}, err
	}

	resolvedBase, err := fo.WeaklyCanonical(base)
	if err != nil {
		return fspath.Path{}, fspath.Path{}, err
	}

	return target, resolvedBase, nil
}

// relativeNames lists the non-empty filename elements after p's root path.
func relativeNames(p fspath.Path) []string {
	var names []string

	for _, elem := range p.RelativePath().Elements() {
		if name := elem.String(); name != "" {
			names = append(names, name)
		}
	}

	return names
}
