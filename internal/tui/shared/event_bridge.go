package shared

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/pathkit/pkg/fileops"
)

// EventMsg wraps a fileops.Event for use as a tea.Msg.
type EventMsg struct {
	Event fileops.Event
}

// BridgeClosedMsg is delivered once every buffered event has been received
// and the bridge is closed.
type BridgeClosedMsg struct{}

// EventBridge adapts fileops events to bubble tea messages.
// It implements fileops.EventEmitter and provides a channel for TUI consumption.
type EventBridge struct {
	mu        sync.RWMutex
	eventChan chan tea.Msg
	done      chan struct{}
	closeOnce sync.Once
	closed    bool
}

// NewEventBridge creates a new event bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{
		eventChan: make(chan tea.Msg, eventBufferSize),
		done:      make(chan struct{}),
	}
}

// Emit implements fileops.EventEmitter. It blocks while the buffer is full
// so counts stay exact, and returns immediately once the bridge is closed.
func (b *EventBridge) Emit(event fileops.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	select {
	case b.eventChan <- EventMsg{Event: event}:
	case <-b.done:
	}
}

// Subscribe returns the event channel for receiving events.
func (b *EventBridge) Subscribe() <-chan tea.Msg {
	return b.eventChan
}

// ListenCmd returns a tea.Cmd that blocks until an event is received.
// Use this in Init() or after processing an event to continue listening.
func (b *EventBridge) ListenCmd() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.eventChan
		if !ok {
			return BridgeClosedMsg{}
		}

		return msg
	}
}

// Close closes the event channel. Events already buffered are still
// delivered. Safe to call more than once.
func (b *EventBridge) Close() {
	b.closeOnce.Do(func() {
		close(b.done)

		b.mu.Lock()
		b.closed = true
		close(b.eventChan)
		b.mu.Unlock()
	})
}

const eventBufferSize = 100
