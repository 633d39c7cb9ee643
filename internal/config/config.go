// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexflint/go-arg"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/joe/pathkit/pkg/filesystem"
	"github.com/joe/pathkit/pkg/fspath"
)

// ParseCmd prints the components of a path.
type ParseCmd struct {
	Path string `arg:"positional,required" help:"Path to decompose"`
}

// JoinCmd folds paths together left to right.
type JoinCmd struct {
	Paths  []string `arg:"positional,required" help:"Paths to join"`
	Normal bool     `arg:"-n,--normal" help:"Print the lexically normal form"`
}

// LsCmd lists a directory.
type LsCmd struct {
	Path           string   `arg:"positional" default:"." help:"Directory (local path or sftp:// URL)"`
	Recursive      bool     `arg:"-r,--recursive" help:"Descend into subdirectories"`
	FollowSymlinks bool     `arg:"-L,--follow" help:"Descend into symlinked directories"`
	Match          []string `arg:"-m,--match,separate" help:"Only list entries whose relative path matches this glob (repeatable)"`
	Exclude        []string `arg:"-x,--exclude,separate" help:"Skip entries matching this glob (repeatable)"`
	Long           bool     `arg:"-l,--long" help:"Show type, size and modification time"`
}

// CopyCmd copies files, symlinks and directory trees.
type CopyCmd struct {
	From            string `arg:"positional,required" help:"Source (local path or sftp:// URL)"`
	To              string `arg:"positional,required" help:"Destination (local path or sftp:// URL)"`
	Recursive       bool   `arg:"-r,--recursive" help:"Copy directory trees"`
	Overwrite       bool   `arg:"--overwrite" help:"Replace existing files"`
	Update          bool   `arg:"-u,--update" help:"Replace existing files older than the source"`
	SkipSymlinks    bool   `arg:"--skip-symlinks" help:"Do not copy symlinks"`
	FollowSymlinks  bool   `arg:"-L,--follow" help:"Copy what symlinks point to"`
	DirectoriesOnly bool   `arg:"--dirs-only" help:"Recreate the directory structure only"`
}

// RmCmd removes files and directory trees.
type RmCmd struct {
	Path      string `arg:"positional,required" help:"Path to remove (local path or sftp:// URL)"`
	Recursive bool   `arg:"-r,--recursive" help:"Remove directories and their contents"`
	FailFast  bool   `arg:"--fail-fast" help:"Stop at the first entry that cannot be removed"`
}

// DfCmd reports filesystem capacity.
type DfCmd struct {
	Path string `arg:"positional" default:"." help:"Any path on the filesystem"`
}

// StatCmd prints the status of a path.
type StatCmd struct {
	Path   string `arg:"positional,required" help:"Path to examine (local path or sftp:// URL)"`
	Follow bool   `arg:"-L,--follow" help:"Follow a final symlink"`
	Hash   bool   `arg:"--hash" help:"Also print the SHA-256 of regular files"`
}

// Config holds the application configuration
type Config struct {
	Parse *ParseCmd `arg:"subcommand:parse" help:"Decompose a path into its components"`
	Join  *JoinCmd  `arg:"subcommand:join" help:"Join paths"`
	Ls    *LsCmd    `arg:"subcommand:ls" help:"List a directory"`
	Copy  *CopyCmd  `arg:"subcommand:copy" help:"Copy files or directories"`
	Rm    *RmCmd    `arg:"subcommand:rm" help:"Remove files or directories"`
	Df    *DfCmd    `arg:"subcommand:df" help:"Show filesystem capacity"`
	Stat  *StatCmd  `arg:"subcommand:stat" help:"Show the status of a path"`

	Style          fspath.Style `arg:"--style,env:PATHKIT_STYLE" help:"Path grammar for parse and join: posix|windows|native"`
	Verbose        bool         `arg:"-v,--verbose" help:"Log debug details to stderr"`
	Plain          bool         `arg:"--plain" help:"Plain output, no progress display"`
	KnownHostsFile string       `arg:"--known-hosts,env:PATHKIT_KNOWN_HOSTS" help:"known_hosts file for sftp:// locations"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Cross-platform path manipulation and filesystem operations"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "pathkit 1.0.0"
}

// Command returns the name of the selected subcommand, or "".
func (cfg *Config) Command() string {
	switch {
	case cfg.Parse != nil:
		return "parse"
	case cfg.Join != nil:
		return "join"
	case cfg.Ls != nil:
		return "ls"
	case cfg.Copy != nil:
		return "copy"
	case cfg.Rm != nil:
		return "rm"
	case cfg.Df != nil:
		return "df"
	case cfg.Stat != nil:
		return "stat"
	default:
		return ""
	}
}

// LogLevel is Debug with --verbose and Warn otherwise.
func (cfg *Config) LogLevel() slog.Level {
	if cfg.Verbose {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}

// Exported variables.
var (
	ErrNoCommand = errors.New("a command is required (parse, join, ls, copy, rm, df, stat)")
)

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := newConfig()

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// Parse parses args (without the program name). It returns arg.ErrHelp or
// arg.ErrVersion when those flags were given.
func Parse(args []string) (*Config, error) {
	cfg := newConfig()

	parser, err := arg.NewParser(arg.Config{Program: "pathkit"}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}

	if err := parser.Parse(args); err != nil {
		return nil, err //nolint:wrapcheck // Callers compare against arg.ErrHelp
	}

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Command() == "" {
		return nil, ErrNoCommand
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks locations and glob patterns of the selected subcommand.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Ls != nil:
		if err := validateLocation(cfg.Ls.Path); err != nil {
			return err
		}

		return validatePatterns(append(append([]string{}, cfg.Ls.Match...), cfg.Ls.Exclude...))
	case cfg.Copy != nil:
		if cfg.Copy.SkipSymlinks && cfg.Copy.FollowSymlinks {
			return errors.New("--skip-symlinks and --follow are mutually exclusive")
		}

		if err := validateLocation(cfg.Copy.From); err != nil {
			return fmt.Errorf("source: %w", err)
		}

		if err := validateLocation(cfg.Copy.To); err != nil {
			return fmt.Errorf("destination: %w", err)
		}
	case cfg.Rm != nil:
		return validateLocation(cfg.Rm.Path)
	case cfg.Df != nil:
		return validateLocation(cfg.Df.Path)
	case cfg.Stat != nil:
		return validateLocation(cfg.Stat.Path)
	}

	return nil
}

func newConfig() *Config {
	return &Config{Style: fspath.NativeStyle()}
}

func validateLocation(s string) error {
	if s == "" {
		return errors.New("path is required")
	}

	if _, err := filesystem.ParseLocation(s); err != nil {
		return fmt.Errorf("invalid location %q: %w", s, err)
	}

	return nil
}

func validatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid glob pattern: %s", pattern)
		}
	}

	return nil
}
