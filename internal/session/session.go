package session

import (
	"time"

	"github.com/google/uuid"

	"badcalc/internal/history"
)

// Session is the state of one interactive run: its identity, the number of
// completed operations, and the operation history.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	counter  int
	recorder *history.Recorder
}

// New starts a session around recorder.
func New(recorder *history.Recorder) *Session {
	return &Session{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		recorder:  recorder,
	}
}

// Complete records e and counts it as a finished operation.
func (s *Session) Complete(e history.Entry) {
	s.recorder.Record(&e)
	s.counter++
}

// Counter returns the number of completed operations.
func (s *Session) Counter() int {
	return s.counter
}

// LastEntry returns the most recently recorded entry.
func (s *Session) LastEntry() (history.Entry, bool) {
	return s.recorder.Last()
}

// History returns a copy of the session's entries in insertion order.
func (s *Session) History() []history.Entry {
	return s.recorder.Snapshot()
}
