package fileops

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"

	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/filesystem"
	"github.com/joe/pathkit/pkg/fspath"
)

// FileOps performs filesystem operations against injected platforms.
// SourceFS and DestFS are optional; when set, copy operations read from
// SourceFS and write to DestFS (e.g. local to SFTP). Every other operation,
// and any unset side of a copy, uses FS.
type FileOps struct {
	FS filesystem.FileSystem

	SourceFS filesystem.FileSystem
	DestFS   filesystem.FileSystem

	// Logger receives debug and warning records; nil discards them.
	Logger *slog.Logger
	// Events receives progress events; nil disables them.
	Events EventEmitter
}

// NewFileOps creates a new FileOps instance with the given filesystem.
func NewFileOps(fs filesystem.FileSystem) *FileOps {
	return &FileOps{FS: fs}
}

// NewDualFileOps creates a FileOps that copies from sourceFS to destFS.
func NewDualFileOps(sourceFS, destFS filesystem.FileSystem) *FileOps {
	return &FileOps{
		FS:       sourceFS,
		SourceFS: sourceFS,
		DestFS:   destFS,
	}
}

// NewRealFileOps creates a FileOps over the local disk.
func NewRealFileOps() *FileOps {
	return &FileOps{FS: filesystem.NewRealFileSystem()}
}

// WithLogger returns fo after setting its logger.
func (fo *FileOps) WithLogger(logger *slog.Logger) *FileOps {
	fo.Logger = logger
	return fo
}

// WithEvents returns fo after setting its event emitter.
func (fo *FileOps) WithEvents(events EventEmitter) *FileOps {
	fo.Events = events
	return fo
}

// Path parses s in the style of the primary filesystem.
func (fo *FileOps) Path(s string) fspath.Path {
	return fspath.NewStyled(s, fo.FS.Style())
}

// ContentEqual reports whether two regular files hold the same bytes.
// a is read from the source filesystem and b from the destination.
func (fo *FileOps) ContentEqual(a, b fspath.Path) (bool, error) {
	file1, err := fo.sourceFS().Open(a.String())
	if err != nil {
		return false, fserrors.Wrap("compare", a.String(), err)
	}

	defer func() {
		_ = file1.Close()
	}()

	file2, err := fo.destFS().Open(b.String())
	if err != nil {
		return false, fserrors.Wrap("compare", b.String(), err)
	}

	defer func() {
		_ = file2.Close()
	}()

	info1, err := file1.Stat()
	if err != nil {
		return false, fserrors.Wrap("compare", a.String(), err)
	}

	info2, err := file2.Stat()
	if err != nil {
		return false, fserrors.Wrap("compare", b.String(), err)
	}

	if info1.Size() != info2.Size() {
		return false, nil
	}

	identical, err := compareFileContents(file1, file2)
	if err != nil {
		return false, fserrors.Wrap2("compare", a.String(), b.String(), err)
	}

	return identical, nil
}

// FileHash returns the hex SHA-256 of a regular file's contents.
func (fo *FileOps) FileHash(p fspath.Path) (string, error) {
	file, err := fo.FS.Open(p.String())
	if err != nil {
		return "", fserrors.Wrap("hash", p.String(), err)
	}

	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()

	if _, err := io.Copy(hash, file); err != nil {
		return "", fserrors.Wrap("hash", p.String(), err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

func (fo *FileOps) destFS() filesystem.FileSystem {
	if fo.DestFS != nil {
		return fo.DestFS
	}

	return fo.FS
}

func (fo *FileOps) emit(event Event) {
	if fo.Events != nil {
		fo.Events.Emit(event)
	}
}

func (fo *FileOps) log() *slog.Logger {
	if fo.Logger != nil {
		return fo.Logger
	}

	return discardLogger
}

// sameFileSystem reports whether copies stay on one platform, which is the
// only case where identity comparison between source and destination is meaningful.
func (fo *FileOps) sameFileSystem() bool {
	return fo.sourceFS() == fo.destFS()
}

func (fo *FileOps) sourceFS() filesystem.FileSystem {
	if fo.SourceFS != nil {
		return fo.SourceFS
	}

	return fo.FS
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Shared no-op logger for FileOps without one
	discardLogger = slog.New(slog.DiscardHandler)
)

// compareFileContents performs a chunked comparison of two open files.
func compareFileContents(file1, file2 filesystem.File) (bool, error) {
	buf1 := make([]byte, BufferSize)
	buf2 := make([]byte, BufferSize)

	for {
		//nolint:varnamelen // n1/n2 are idiomatic for bytes read
		n1, err1 := io.ReadFull(file1, buf1)
		n2, err2 := io.ReadFull(file2, buf2)

		if n1 != n2 || string(buf1[:n1]) != string(buf2[:n2]) {
			return false, nil
		}

		done1 := errors.Is(err1, io.EOF) || errors.Is(err1, io.ErrUnexpectedEOF)
		done2 := errors.Is(err2, io.EOF) || errors.Is(err2, io.ErrUnexpectedEOF)

		if done1 && done2 {
			return true, nil
		}

		if err1 != nil && !done1 {
			return false, fmt.Errorf("failed to read from first file: %w", err1)
		}

		if err2 != nil && !done2 {
			return false, fmt.Errorf("failed to read from second file: %w", err2)
		}

		if done1 != done2 {
			return false, nil
		}
	}
}

// copyLoop copies source to dest, emitting BytesCopied after each chunk.
func (fo *FileOps) copyLoop(sourceFile, destFile filesystem.File, sourceSize int64, srcPath string) (int64, error) {
	var written int64

	buf := make([]byte, BufferSize)

	for {
		nr, err := sourceFile.Read(buf) //nolint:varnamelen // nr is idiomatic for bytes read
		if nr > 0 {
			nw, err := destFile.Write(buf[0:nr]) //nolint:varnamelen // nw is idiomatic for bytes written
			if err != nil {
				return written, fmt.Errorf("failed to write to destination: %w", err)
			}

			if nr != nw {
				return written, fmt.Errorf("short write: %w", io.ErrShortWrite)
			}

			written += int64(nw)

			fo.emit(BytesCopied{Path: srcPath, Written: written, Total: sourceSize})
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return written, fmt.Errorf("failed to read from source: %w", err)
		}
	}

	return written, nil
}
