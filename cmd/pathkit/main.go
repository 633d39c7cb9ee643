// Package main is the entry point for the pathkit command.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/pathkit/internal/cli"
	"github.com/joe/pathkit/internal/config"
	"github.com/joe/pathkit/internal/tui"
	"github.com/joe/pathkit/internal/tui/shared"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	runner := cli.NewRunner(os.Stdout, os.Stderr, logger)

	// Progress is drawn only for an interactive terminal; verbose logs would
	// tear the display.
	interactive := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	if interactive && !cfg.Plain && !cfg.Verbose {
		runner.Progress = func(title string, count tui.CountFunc, op tui.Operation) (tui.Result, error) {
			return tui.Run(title, count, op, tea.WithOutput(os.Stderr))
		}
	} else {
		shared.SetPlain(cfg.Plain)
	}

	err = runner.Run(cfg)
	if err == nil {
		return
	}

	if !errors.Is(err, tui.ErrCancelled) {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
	}

	os.Exit(1)
}
