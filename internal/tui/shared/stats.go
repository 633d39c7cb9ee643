package shared

import (
	"fmt"

	"github.com/joe/pathkit/pkg/fileops"
)

// Stats folds fileops events into running totals for display.
// The zero value is ready to use.
type Stats struct {
	Files       int
	Symlinks    int
	Directories int
	Removed     int
	Skipped     int
	Bytes       int64
	Failed      []FailedEntry

	// Current is the file whose contents are being copied.
	Current        string
	CurrentWritten int64
	CurrentTotal   int64

	// Recent holds the last few activity lines, oldest first.
	Recent []string

	written map[string]int64
}

// Apply updates the totals for one event.
func (s *Stats) Apply(event fileops.Event) {
	switch e := event.(type) {
	case fileops.BytesCopied:
		if s.written == nil {
			s.written = make(map[string]int64)
		}

		s.Bytes += e.Written - s.written[e.Path]
		s.written[e.Path] = e.Written
		s.Current, s.CurrentWritten, s.CurrentTotal = e.Path, e.Written, e.Total
	case fileops.EntryCopied:
		delete(s.written, e.From)

		if e.Type == fileops.TypeSymlink {
			s.Symlinks++
		} else {
			s.Files++
		}

		s.record(fmt.Sprintf("%s %s", SuccessSymbol(), e.To))
	case fileops.DirectoryCreated:
		s.Directories++
	case fileops.EntryRemoved:
		s.Removed++
		s.record(fmt.Sprintf("%s %s", SuccessSymbol(), e.Path))
	case fileops.EntrySkipped:
		s.Skipped++
		s.record(fmt.Sprintf("%s %s (%s)", CancelledSymbol(), e.Path, e.Reason))
	case fileops.EntryFailed:
		s.Failed = append(s.Failed, FailedEntry{Path: e.Path, Err: e.Err})
		s.record(fmt.Sprintf("%s %s", ErrorSymbol(), e.Path))
	}
}

// CurrentFraction is the copied fraction of Current, in [0, 1].
func (s *Stats) CurrentFraction() float64 {
	if s.CurrentTotal <= 0 {
		return 0
	}

	return min(1, float64(s.CurrentWritten)/float64(s.CurrentTotal))
}

func (s *Stats) record(line string) {
	s.Recent = append(s.Recent, line)
	if len(s.Recent) > RecentActivityLimit {
		s.Recent = s.Recent[len(s.Recent)-RecentActivityLimit:]
	}
}

// RecentActivityLimit bounds Stats.Recent.
const RecentActivityLimit = 5
