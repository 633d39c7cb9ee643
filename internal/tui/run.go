package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows progress for op until it finishes or the user presses ctrl+c.
// The returned error is op's error, ErrCancelled, or a display failure.
func Run(title string, count CountFunc, op Operation, opts ...tea.ProgramOption) (Result, error) {
	model := NewProgressModel(title, count, op)
	defer model.Close()

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("progress display failed: %w", err)
	}

	result := final.(ProgressModel).Result() //nolint:forcetypeassert // Update only returns ProgressModel

	return result, result.Err
}
