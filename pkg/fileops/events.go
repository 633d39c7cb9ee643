package fileops

// Event is the interface implemented by all fileops progress events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// EventEmitterFunc adapts a function to EventEmitter.
type EventEmitterFunc func(event Event)

// Emit calls f(event).
func (f EventEmitterFunc) Emit(event Event) {
	f(event)
}

// BytesCopied is emitted after each chunk of a file copy.
type BytesCopied struct {
	Path    string
	Written int64
	Total   int64
}

func (BytesCopied) isEvent() {}

// DirectoryCreated is emitted when a copy creates a destination directory.
type DirectoryCreated struct {
	Path string
}

func (DirectoryCreated) isEvent() {}

// EntryCopied is emitted when a file or symlink has been copied.
type EntryCopied struct {
	From  string
	To    string
	Type  FileType
	Bytes int64
}

func (EntryCopied) isEvent() {}

// EntryRemoved is emitted for every entry RemoveAll deletes.
type EntryRemoved struct {
	Path string
}

func (EntryRemoved) isEvent() {}

// EntrySkipped is emitted when an option or policy leaves an entry alone.
type EntrySkipped struct {
	Path   string
	Reason string
}

func (EntrySkipped) isEvent() {}

// EntryFailed is emitted when a best-effort removal could not delete an entry.
type EntryFailed struct {
	Path string
	Err  error
}

func (EntryFailed) isEvent() {}
