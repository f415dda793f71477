package history

import (
	"log/slog"
	"slices"
	"sync"
)

// Recorder keeps the ordered, append-only log of a session's operations and
// mirrors each entry to an Appender. The in-memory log is authoritative: a
// failed append is logged and otherwise ignored.
type Recorder struct {
	log      *slog.Logger
	appender Appender

	mu      sync.RWMutex
	entries []Entry
	last    *Entry
}

// NewRecorder returns an empty Recorder. A nil appender keeps history in memory only.
func NewRecorder(log *slog.Logger, appender Appender) *Recorder {
	return &Recorder{log: log, appender: appender}
}

// Record appends e to the log. A nil entry is ignored.
func (r *Recorder) Record(e *Entry) {
	if e == nil {
		return
	}
	entry := *e

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.last = &entry
	r.mu.Unlock()

	if r.appender == nil {
		return
	}
	if err := r.appender.Append(entry.String()); err != nil {
		r.log.Warn("failed to write history line", "err", err)
	}
}

// Snapshot returns a copy of all entries in insertion order.
func (r *Recorder) Snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// Last returns the most recently recorded entry.
func (r *Recorder) Last() (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.last == nil {
		return Entry{}, false
	}
	return *r.last, true
}

// Len returns the number of recorded entries.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
