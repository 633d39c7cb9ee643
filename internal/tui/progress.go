// Package tui renders live progress for long-running pathkit operations.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/pathkit/internal/tui/shared"
	"github.com/joe/pathkit/pkg/fileops"
)

// Phase names shown in the timeline.
const (
	PhaseCount = "Count"
	PhaseRun   = "Run"
	PhaseDone  = "Done"
)

// Exported variables.
var (
	ErrCancelled = errors.New("cancelled")
)

// Operation performs the work, reporting progress to emitter.
type Operation func(emitter fileops.EventEmitter) error

// CountFunc counts the entries an Operation will visit, calling progress as
// it goes. It gives the progress bar a denominator.
type CountFunc func(progress fileops.CountProgressCallback) (int, error)

// Result is what a finished ProgressModel reports.
type Result struct {
	Stats     shared.Stats
	Elapsed   time.Duration
	Err       error
	Cancelled bool
}

type countDoneMsg struct {
	total int
	err   error
}

type operationDoneMsg struct {
	err error
}

// ProgressModel runs one Operation and shows its events as they arrive.
type ProgressModel struct {
	title   string
	op      Operation
	count   CountFunc
	bridge  *shared.EventBridge
	counted *atomic.Int64
	now     func() time.Time

	spinner spinner.Model
	bar     progress.Model

	phase     string
	stats     shared.Stats
	total     int
	start     time.Time
	elapsed   time.Duration
	opDone    bool
	closed    bool
	err       error
	cancelled bool
	width     int
}

// NewProgressModel creates a model for op. count may be nil, in which case
// the model shows a spinner without a progress bar.
func NewProgressModel(title string, count CountFunc, op Operation) ProgressModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = shared.LabelStyle()

	phase := PhaseRun
	if count != nil {
		phase = PhaseCount
	}

	model := ProgressModel{
		title:   title,
		op:      op,
		count:   count,
		bridge:  shared.NewEventBridge(),
		counted: &atomic.Int64{},
		now:     time.Now,
		spinner: spin,
		bar:     shared.NewProgressModel(shared.ProgressBarWidth),
		phase:   phase,
	}
	if phase == PhaseRun {
		model.start = model.now()
	}

	return model
}

// Init implements tea.Model
func (m ProgressModel) Init() tea.Cmd {
	first := m.startOperation()
	if m.phase == PhaseCount {
		first = m.countCmd()
	}

	return tea.Batch(m.spinner.Tick, shared.TickCmd(), first)
}

// Update implements tea.Model
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == shared.KeyCtrlC {
			m.cancelled = true
			m.bridge.Close()

			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(shared.ProgressBarWidth, max(10, msg.Width-shared.ProgressBarWidth)) //nolint:mnd
	case countDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = PhaseCount + "_error"
			m.bridge.Close()

			return m, tea.Quit
		}

		m.total = msg.total
		m.phase = PhaseRun
		m.start = m.now()

		return m, m.startOperation()
	case operationDoneMsg:
		m.opDone = true
		m.err = msg.err

		return m.maybeFinish()
	case shared.EventMsg:
		m.stats.Apply(msg.Event)

		return m, m.bridge.ListenCmd()
	case shared.BridgeClosedMsg:
		m.closed = true

		return m.maybeFinish()
	case shared.TickMsg:
		m.elapsed = time.Time(msg).Sub(m.startTime())

		return m, shared.TickCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(shared.RenderTitle(m.title))
	b.WriteString("\n")
	b.WriteString(shared.RenderTimeline(m.phases(), m.timelinePhase()))
	b.WriteString("\n\n")

	switch {
	case m.Finished():
		b.WriteString(RenderSummary(m.Result(), m.width))
	case m.phase == PhaseCount:
		fmt.Fprintf(&b, "%s Counting entries... %d\n", m.spinner.View(), m.counted.Load())
	default:
		b.WriteString(m.renderRunning())
	}

	return b.String()
}

// Finished reports whether the operation ended, failed to start or was cancelled.
func (m ProgressModel) Finished() bool {
	return m.cancelled || (m.opDone && m.closed) || strings.HasSuffix(m.phase, "_error")
}

// Result returns the totals gathered so far.
func (m ProgressModel) Result() Result {
	err := m.err
	if m.cancelled && err == nil {
		err = ErrCancelled
	}

	return Result{Stats: m.stats, Elapsed: m.elapsed, Err: err, Cancelled: m.cancelled}
}

// Close releases a still-running Operation blocked on reporting progress.
func (m ProgressModel) Close() {
	m.bridge.Close()
}

func (m ProgressModel) countCmd() tea.Cmd {
	count, counted := m.count, m.counted

	return func() tea.Msg {
		total, err := count(func(_ string, n int) { counted.Store(int64(n)) })

		return countDoneMsg{total: total, err: err}
	}
}

func (m ProgressModel) startOperation() tea.Cmd {
	op, bridge := m.op, m.bridge

	run := func() tea.Msg {
		err := op(bridge)
		bridge.Close()

		return operationDoneMsg{err: err}
	}

	return tea.Batch(run, bridge.ListenCmd())
}

func (m ProgressModel) maybeFinish() (tea.Model, tea.Cmd) {
	if !m.opDone || !m.closed {
		return m, nil
	}

	m.elapsed = m.now().Sub(m.startTime())
	m.phase = PhaseDone

	if m.err != nil {
		m.phase = PhaseRun + "_error"
	}

	return m, tea.Quit
}

func (m ProgressModel) startTime() time.Time {
	if m.start.IsZero() {
		return m.now()
	}

	return m.start
}

func (m ProgressModel) phases() []string {
	if m.count == nil {
		return []string{PhaseRun, PhaseDone}
	}

	return []string{PhaseCount, PhaseRun, PhaseDone}
}

func (m ProgressModel) timelinePhase() string {
	if m.cancelled {
		return m.phase + "_error"
	}

	return m.phase
}

func (m ProgressModel) renderRunning() string {
	var b strings.Builder

	processed := entriesProcessed(m.stats)

	if m.total > 0 {
		fraction := min(1, float64(processed)/float64(m.total))
		fmt.Fprintf(&b, "%s %s  %d/%d entries\n",
			m.spinner.View(), shared.RenderProgress(m.bar, fraction), processed, m.total)
	} else {
		fmt.Fprintf(&b, "%s %d entries\n", m.spinner.View(), processed)
	}

	if m.stats.Bytes > 0 {
		rate := 0.0
		if secs := m.elapsed.Seconds(); secs > 0 {
			rate = float64(m.stats.Bytes) / secs
		}

		fmt.Fprintf(&b, "%s copied at %s, %s elapsed\n",
			shared.FormatBytes(m.stats.Bytes), shared.FormatRate(rate), shared.FormatDuration(m.elapsed))
	}

	if m.stats.Current != "" && m.stats.CurrentFraction() < 1 {
		fmt.Fprintf(&b, "%s %s\n",
			shared.TruncatePath(m.stats.Current, max(0, m.width-shared.ProgressBarWidth)),
			shared.RenderASCIIProgress(m.stats.CurrentFraction(), shared.ProgressBarWidth/2)) //nolint:mnd
	}

	if len(m.stats.Recent) > 0 {
		b.WriteString("\n")
		b.WriteString(shared.RenderActivityLog("Recent", m.stats.Recent, shared.RecentActivityLimit))
		b.WriteString("\n")
	}

	if len(m.stats.Failed) > 0 {
		b.WriteString("\n")
		b.WriteString(shared.RenderErrorList(shared.ErrorListConfig{
			Errors:   m.stats.Failed,
			Context:  shared.ContextInProgress,
			MaxWidth: m.width,
		}))
	}

	return b.String()
}

func entriesProcessed(stats shared.Stats) int {
	return stats.Files + stats.Symlinks + stats.Directories + stats.Removed + stats.Skipped + len(stats.Failed)
}
