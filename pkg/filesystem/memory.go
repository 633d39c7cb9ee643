package filesystem

import (
	"errors"
	"os"
	"path"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/kr/fs"

	"github.com/joe/pathkit/pkg/fspath"
)

// DefaultMemoryCapacity is the capacity reported by Space for a MemoryFileSystem
// created without WithCapacity.
const DefaultMemoryCapacity uint64 = 1 << 30

const maxSymlinkHops = 40

// MemoryFileSystem is an in-memory POSIX-style platform backed by go-billy's memfs.
// Paths are resolved component by component, so symlinks to directories work
// anywhere in a path. Hard links are not supported.
//
// memfs keeps neither permission changes nor modification times, so both are
// held in an overlay keyed by resolved path.
type MemoryFileSystem struct {
	bfs      billy.Filesystem
	capacity uint64
	cwd      string

	mu   sync.Mutex
	meta map[string]memoryMeta
}

// memoryMeta is the overlay for one entry. perm applies only when hasPerm is
// set; a zero mtime falls back to memfs, which reports the current time.
type memoryMeta struct {
	perm    os.FileMode
	hasPerm bool
	mtime   time.Time
}

// MemoryOption configures a MemoryFileSystem.
type MemoryOption func(*MemoryFileSystem)

// WithCapacity sets the capacity reported by Space.
func WithCapacity(capacity uint64) MemoryOption {
	return func(m *MemoryFileSystem) {
		m.capacity = capacity
	}
}

// WithWorkingDirectory sets the directory relative paths resolve against.
// The directory is created if missing.
func WithWorkingDirectory(dir string) MemoryOption {
	return func(m *MemoryFileSystem) {
		m.cwd = path.Clean("/" + dir)
	}
}

// NewMemoryFileSystem creates an empty in-memory filesystem containing only
// the root, the working directory and /tmp.
func NewMemoryFileSystem(opts ...MemoryOption) *MemoryFileSystem {
	m := &MemoryFileSystem{
		bfs:      memfs.New(),
		capacity: DefaultMemoryCapacity,
		cwd:      "/",
		meta:     make(map[string]memoryMeta),
	}

	for _, opt := range opts {
		opt(m)
	}

	_ = m.bfs.MkdirAll("/tmp", 0o777|os.ModeDir)
	_ = m.bfs.MkdirAll(m.cwd, 0o755|os.ModeDir)

	for dir := m.cwd; ; dir = path.Dir(dir) {
		m.touch(dir)

		if dir == "/" {
			break
		}
	}

	m.touch("/tmp")

	return m
}

// Unwrap returns the underlying billy.Filesystem.
func (m *MemoryFileSystem) Unwrap() billy.Filesystem {
	return m.bfs
}

// Style is always POSIX.
func (m *MemoryFileSystem) Style() fspath.Style {
	return fspath.Posix
}

// Chmod changes the permission bits of a file, following symlinks.
func (m *MemoryFileSystem) Chmod(name string, mode os.FileMode) error {
	resolved, err := m.existing("chmod", name, true)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	meta := m.meta[resolved]
	meta.perm = mode.Perm()
	meta.hasPerm = true
	m.meta[resolved] = meta

	return nil
}

// Chtimes changes the modification time of a file, following symlinks.
// Access times are not tracked.
func (m *MemoryFileSystem) Chtimes(name string, _, mtime time.Time) error {
	resolved, err := m.existing("chtimes", name, true)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	meta := m.meta[resolved]
	meta.mtime = mtime
	m.meta[resolved] = meta

	return nil
}

// Create creates or truncates a file for writing. Unlike memfs itself, missing
// parent directories are an error.
func (m *MemoryFileSystem) Create(name string, perm os.FileMode) (File, error) {
	resolved, err := m.resolve(name, true)
	if err != nil {
		return nil, m.pathError("open", name, err)
	}

	if err := m.requireParentDir("open", name, resolved); err != nil {
		return nil, err
	}

	if info, err := m.bfs.Lstat(resolved); err == nil && info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: name, Err: syscall.EISDIR}
	}

	file, err := m.bfs.OpenFile(resolved, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, m.pathError("open", name, err)
	}

	m.touch(resolved)

	return &memoryFile{File: file, fs: m, path: resolved}, nil
}

// Getwd returns the configured working directory.
func (m *MemoryFileSystem) Getwd() (string, error) {
	return m.cwd, nil
}

// Link is not supported by the in-memory platform.
func (m *MemoryFileSystem) Link(target, link string) error {
	return &os.LinkError{Op: "link", Old: target, New: link, Err: ErrUnsupported}
}

// LinkCount is always 1 for existing entries.
func (m *MemoryFileSystem) LinkCount(name string) (uint64, error) {
	if _, err := m.existing("stat", name, true); err != nil {
		return 0, err
	}

	return 1, nil
}

// Lstat returns file information without following a final symlink.
func (m *MemoryFileSystem) Lstat(name string) (os.FileInfo, error) {
	resolved, err := m.resolve(name, false)
	if err != nil {
		return nil, m.pathError("lstat", name, err)
	}

	info, err := m.bfs.Lstat(resolved)
	if err != nil {
		return nil, m.pathError("lstat", name, err)
	}

	return m.withMeta(resolved, info), nil
}

// Mkdir creates a single directory; the parent must exist.
func (m *MemoryFileSystem) Mkdir(name string, perm os.FileMode) error {
	resolved, err := m.resolve(name, false)
	if err != nil {
		return m.pathError("mkdir", name, err)
	}

	if _, err := m.bfs.Lstat(resolved); err == nil {
		return &os.PathError{Op: "mkdir", Path: name, Err: syscall.EEXIST}
	}

	if err := m.requireParentDir("mkdir", name, resolved); err != nil {
		return err
	}

	if err := m.bfs.MkdirAll(resolved, perm|os.ModeDir); err != nil {
		return m.pathError("mkdir", name, err)
	}

	m.touch(resolved)

	return nil
}

// Open opens a file for reading.
func (m *MemoryFileSystem) Open(name string) (File, error) {
	resolved, err := m.existing("open", name, true)
	if err != nil {
		return nil, err
	}

	file, err := m.bfs.Open(resolved)
	if err != nil {
		return nil, m.pathError("open", name, err)
	}

	return &memoryFile{File: file, fs: m, path: resolved}, nil
}

// OpenDir lists a directory, following symlinks to it.
func (m *MemoryFileSystem) OpenDir(name string) (DirStream, error) {
	resolved, err := m.existing("opendir", name, true)
	if err != nil {
		return nil, err
	}

	info, err := m.bfs.Lstat(resolved)
	if err != nil {
		return nil, m.pathError("opendir", name, err)
	}

	if !info.IsDir() {
		return nil, &os.PathError{Op: "opendir", Path: name, Err: syscall.ENOTDIR}
	}

	infos, err := m.bfs.ReadDir(resolved)
	if err != nil {
		return nil, m.pathError("opendir", name, err)
	}

	for i, info := range infos {
		infos[i] = m.withMeta(path.Join(resolved, info.Name()), info)
	}

	return newSliceDirStream(infos), nil
}

// Readlink returns the target of a symlink.
func (m *MemoryFileSystem) Readlink(name string) (string, error) {
	resolved, err := m.existing("readlink", name, false)
	if err != nil {
		return "", err
	}

	info, err := m.bfs.Lstat(resolved)
	if err != nil {
		return "", m.pathError("readlink", name, err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return "", &os.PathError{Op: "readlink", Path: name, Err: syscall.EINVAL}
	}

	target, err := m.bfs.Readlink(resolved)
	if err != nil {
		return "", m.pathError("readlink", name, err)
	}

	return target, nil
}

// Remove removes a file, symlink or empty directory.
func (m *MemoryFileSystem) Remove(name string) error {
	resolved, err := m.existing("remove", name, false)
	if err != nil {
		return err
	}

	if err := m.requireEmptyIfDir("remove", name, resolved); err != nil {
		return err
	}

	if err := m.bfs.Remove(resolved); err != nil {
		return m.pathError("remove", name, err)
	}

	m.forget(resolved)

	return nil
}

// Rename moves oldpath to newpath, replacing a non-directory or empty
// directory at newpath.
func (m *MemoryFileSystem) Rename(oldpath, newpath string) error {
	from, err := m.existing("rename", oldpath, false)
	if err != nil {
		return err
	}

	to, err := m.resolve(newpath, false)
	if err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}

	if err := m.requireParentDir("rename", newpath, to); err != nil {
		return err
	}

	if from == to {
		return nil
	}

	if existing, err := m.bfs.Lstat(to); err == nil {
		source, _ := m.bfs.Lstat(from)
		if err := m.clearRenameTarget(oldpath, newpath, to, source, existing); err != nil {
			return err
		}
	}

	if err := m.bfs.Rename(from, to); err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: translate(err)}
	}

	m.moveMeta(from, to)

	return nil
}

// SameFile compares fully resolved paths.
func (m *MemoryFileSystem) SameFile(path1, path2 string) (bool, error) {
	resolved1, err := m.existing("stat", path1, true)
	if err != nil {
		return false, err
	}

	resolved2, err := m.existing("stat", path2, true)
	if err != nil {
		return false, err
	}

	return resolved1 == resolved2, nil
}

// Space reports the configured capacity minus the bytes held by regular files.
func (m *MemoryFileSystem) Space(name string) (SpaceInfo, error) {
	if _, err := m.existing("statfs", name, true); err != nil {
		return SpaceInfo{}, err
	}

	used := m.usage()

	free := uint64(0)
	if used < m.capacity {
		free = m.capacity - used
	}

	return SpaceInfo{Capacity: m.capacity, Free: free, Available: free}, nil
}

// Stat returns file information, following symlinks.
func (m *MemoryFileSystem) Stat(name string) (os.FileInfo, error) {
	resolved, err := m.existing("stat", name, true)
	if err != nil {
		return nil, err
	}

	info, err := m.bfs.Lstat(resolved)
	if err != nil {
		return nil, m.pathError("stat", name, err)
	}

	return m.withMeta(resolved, info), nil
}

// Symlink creates link pointing at target. The target is stored verbatim.
func (m *MemoryFileSystem) Symlink(target, link string) error {
	resolved, err := m.resolve(link, false)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: err}
	}

	if _, err := m.bfs.Lstat(resolved); err == nil {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: syscall.EEXIST}
	}

	if err := m.requireParentDir("symlink", link, resolved); err != nil {
		return err
	}

	if err := m.bfs.Symlink(target, resolved); err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: translate(err)}
	}

	m.touch(resolved)

	return nil
}

// TempDir returns /tmp.
func (m *MemoryFileSystem) TempDir() string {
	return "/tmp"
}

// Truncate changes the size of a regular file.
func (m *MemoryFileSystem) Truncate(name string, size int64) error {
	resolved, err := m.existing("truncate", name, true)
	if err != nil {
		return err
	}

	if info, err := m.bfs.Lstat(resolved); err == nil && info.IsDir() {
		return &os.PathError{Op: "truncate", Path: name, Err: syscall.EISDIR}
	}

	file, err := m.bfs.OpenFile(resolved, os.O_RDWR, 0)
	if err != nil {
		return m.pathError("truncate", name, err)
	}

	if err := file.Truncate(size); err != nil {
		_ = file.Close()
		return m.pathError("truncate", name, err)
	}

	m.touch(resolved)

	return m.pathError("truncate", name, file.Close())
}

func (m *MemoryFileSystem) abs(name string) string {
	if !path.IsAbs(name) {
		name = path.Join(m.cwd, name)
	}

	return path.Clean(name)
}

func (m *MemoryFileSystem) clearRenameTarget(oldpath, newpath, to string, source, existing os.FileInfo) error {
	switch {
	case source.IsDir() && !existing.IsDir():
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.ENOTDIR}
	case !source.IsDir() && existing.IsDir():
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EISDIR}
	}

	if existing.IsDir() {
		children, err := m.bfs.ReadDir(to)
		if err != nil {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: translate(err)}
		}

		if len(children) > 0 {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.ENOTEMPTY}
		}
	}

	if err := m.bfs.Remove(to); err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: translate(err)}
	}

	m.forget(to)

	return nil
}

// forget drops the overlay of a removed entry.
func (m *MemoryFileSystem) forget(resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.meta, resolved)
}

// moveMeta carries the overlay of from, and of everything below it, to to.
func (m *MemoryFileSystem) moveMeta(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	moved := make(map[string]memoryMeta)

	for key, meta := range m.meta {
		switch {
		case key == from:
			moved[to] = meta
		case strings.HasPrefix(key, from+"/"):
			moved[to+strings.TrimPrefix(key, from)] = meta
		default:
			continue
		}

		delete(m.meta, key)
	}

	for key, meta := range moved {
		m.meta[key] = meta
	}
}

// touch sets the modification time of resolved to now.
func (m *MemoryFileSystem) touch(resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	meta := m.meta[resolved]
	meta.mtime = time.Now()
	m.meta[resolved] = meta
}

// withMeta applies the overlay for resolved to info.
func (m *MemoryFileSystem) withMeta(resolved string, info os.FileInfo) os.FileInfo {
	m.mu.Lock()
	meta, ok := m.meta[resolved]
	m.mu.Unlock()

	if !ok {
		return info
	}

	return &memoryInfo{FileInfo: info, meta: meta}
}

// existing resolves name and fails with ENOENT if it does not exist.
func (m *MemoryFileSystem) existing(op, name string, followLast bool) (string, error) {
	resolved, err := m.resolve(name, followLast)
	if err != nil {
		return "", m.pathError(op, name, err)
	}

	if _, err := m.bfs.Lstat(resolved); err != nil {
		return "", m.pathError(op, name, err)
	}

	return resolved, nil
}

func (m *MemoryFileSystem) pathError(op, name string, err error) error {
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) && pathErr.Path == name {
		return pathErr
	}

	return &os.PathError{Op: op, Path: name, Err: translate(err)}
}

func (m *MemoryFileSystem) requireEmptyIfDir(op, name, resolved string) error {
	info, err := m.bfs.Lstat(resolved)
	if err != nil {
		return m.pathError(op, name, err)
	}

	if !info.IsDir() {
		return nil
	}

	children, err := m.bfs.ReadDir(resolved)
	if err != nil {
		return m.pathError(op, name, err)
	}

	if len(children) > 0 {
		return &os.PathError{Op: op, Path: name, Err: syscall.ENOTEMPTY}
	}

	return nil
}

func (m *MemoryFileSystem) requireParentDir(op, name, resolved string) error {
	parent := path.Dir(resolved)

	info, err := m.bfs.Stat(parent)
	if err != nil {
		return m.pathError(op, name, err)
	}

	if !info.IsDir() {
		return &os.PathError{Op: op, Path: name, Err: syscall.ENOTDIR}
	}

	return nil
}

// resolve turns name into an absolute path with every symlink in a directory
// position replaced by its target. The final component is resolved only when
// followLast is set. A missing component ends resolution early; the lexical
// remainder is kept so the caller sees ENOENT from the next lookup.
func (m *MemoryFileSystem) resolve(name string, followLast bool) (string, error) {
	rest := splitPath(m.abs(name))
	resolved := "/"
	hops := 0

	for i := 0; i < len(rest); i++ {
		next := path.Join(resolved, rest[i])

		if i == len(rest)-1 && !followLast {
			return next, nil
		}

		info, err := m.bfs.Lstat(next)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return path.Join(append([]string{next}, rest[i+1:]...)...), nil
			}

			return "", err
		}

		if info.Mode()&os.ModeSymlink == 0 {
			if i < len(rest)-1 && !info.IsDir() {
				return "", syscall.ENOTDIR
			}

			resolved = next

			continue
		}

		hops++
		if hops > maxSymlinkHops {
			return "", syscall.ELOOP
		}

		target, err := m.bfs.Readlink(next)
		if err != nil {
			return "", err
		}

		if !path.IsAbs(target) {
			target = path.Join(resolved, target)
		}

		rest = append(splitPath(path.Clean(target)), rest[i+1:]...)
		resolved = "/"
		i = -1
	}

	return resolved, nil
}

// usage walks the whole tree with kr/fs and totals regular file sizes.
func (m *MemoryFileSystem) usage() uint64 {
	var used uint64

	walker := fs.WalkFS("/", m.bfs)
	for walker.Step() {
		if walker.Err() != nil {
			continue
		}

		if info := walker.Stat(); info.Mode().IsRegular() {
			used += uint64(info.Size()) //nolint:gosec // sizes are never negative
		}
	}

	return used
}

type memoryFile struct {
	billy.File

	fs   *MemoryFileSystem
	path string
}

func (f *memoryFile) Stat() (os.FileInfo, error) {
	info, err := f.fs.bfs.Lstat(f.path)
	if err != nil {
		return nil, err //nolint:wrapcheck // Mirrors os.File.Stat
	}

	return f.fs.withMeta(f.path, info), nil
}

func (f *memoryFile) Write(p []byte) (int, error) {
	n, err := f.File.Write(p)
	if n > 0 {
		f.fs.touch(f.path)
	}

	return n, err //nolint:wrapcheck // Mirrors os.File.Write
}

func (f *memoryFile) Truncate(size int64) error {
	if err := f.File.Truncate(size); err != nil {
		return err //nolint:wrapcheck // Mirrors os.File.Truncate
	}

	f.fs.touch(f.path)

	return nil
}

// memoryInfo reports overlaid permissions and modification time.
type memoryInfo struct {
	os.FileInfo

	meta memoryMeta
}

func (i *memoryInfo) Mode() os.FileMode {
	if !i.meta.hasPerm {
		return i.FileInfo.Mode()
	}

	return i.FileInfo.Mode().Type() | i.meta.perm
}

func (i *memoryInfo) ModTime() time.Time {
	if i.meta.mtime.IsZero() {
		return i.FileInfo.ModTime()
	}

	return i.meta.mtime
}

func splitPath(clean string) []string {
	trimmed := strings.Trim(clean, "/")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "/")
}

// translate maps billy's bare sentinels to errno values.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return syscall.ENOENT
	case errors.Is(err, os.ErrExist):
		return syscall.EEXIST
	case errors.Is(err, os.ErrPermission):
		return syscall.EACCES
	default:
		return err
	}
}
