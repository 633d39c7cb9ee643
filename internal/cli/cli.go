// Package cli implements the pathkit subcommands on top of fspath and fileops.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joe/pathkit/internal/config"
	"github.com/joe/pathkit/internal/tui"
	"github.com/joe/pathkit/internal/tui/shared"
	fserrors "github.com/joe/pathkit/pkg/errors"
	"github.com/joe/pathkit/pkg/fileops"
	"github.com/joe/pathkit/pkg/filesystem"
	"github.com/joe/pathkit/pkg/fspath"
)

// Exported variables.
var (
	ErrIncomplete = errors.New("some entries could not be processed")
)

// ProgressFunc displays an operation while it runs. tui.Run is one.
type ProgressFunc func(title string, count tui.CountFunc, op tui.Operation) (tui.Result, error)

// Runner executes one parsed command.
type Runner struct {
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger

	// Connect opens sftp:// locations. Nil uses filesystem.SFTPConnector
	// with the configured known_hosts file.
	Connect filesystem.Connector

	// Progress shows copy and rm progress. Nil prints a one-line summary.
	Progress ProgressFunc
}

// NewRunner creates a Runner writing to out and errOut.
func NewRunner(out, errOut io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{Out: out, Err: errOut, Logger: logger}
}

// Run dispatches to the selected subcommand.
func (r *Runner) Run(cfg *config.Config) error {
	if r.Connect == nil {
		r.Connect = filesystem.SFTPConnector(cfg.KnownHostsFile)
	}

	r.Logger.Debug("running command", "command", cfg.Command())

	switch {
	case cfg.Parse != nil:
		return r.parse(cfg.Parse, cfg.Style)
	case cfg.Join != nil:
		return r.join(cfg.Join, cfg.Style)
	case cfg.Ls != nil:
		return r.ls(cfg.Ls)
	case cfg.Copy != nil:
		return r.copy(cfg.Copy)
	case cfg.Rm != nil:
		return r.rm(cfg.Rm)
	case cfg.Df != nil:
		return r.df(cfg.Df)
	case cfg.Stat != nil:
		return r.stat(cfg.Stat)
	default:
		return config.ErrNoCommand
	}
}

// FormatError renders err with the suggestions its kind calls for.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	enriched := fserrors.NewEnricher().Enrich(err, "")

	var b strings.Builder

	b.WriteString(shared.RenderError("Error: "))
	b.WriteString(enriched.Error())

	if suggestions := fserrors.FormatSuggestions(enriched); suggestions != "" {
		b.WriteString("\n")
		b.WriteString(suggestions)
	}

	return b.String()
}

func (r *Runner) open(location string) (*fileops.FileOps, fspath.Path, func(), error) {
	fs, path, closer, err := filesystem.CreateFileSystemWith(location, r.Connect)
	if err != nil {
		return nil, fspath.Path{}, nil, err
	}

	fo := fileops.NewFileOps(fs).WithLogger(r.Logger)

	return fo, fo.Path(path), closer, nil
}

// track runs op with progress display, or silently when none is set.
func (r *Runner) track(title string, count tui.CountFunc, op tui.Operation) (tui.Result, error) {
	if r.Progress != nil {
		return r.Progress(title, count, op)
	}

	var stats shared.Stats

	err := op(fileops.EventEmitterFunc(stats.Apply))

	return tui.Result{Stats: stats, Err: err}, err
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.Out, format, args...)
}

func (r *Runner) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.Err, "pathkit: "+format+"\n", args...)
}
