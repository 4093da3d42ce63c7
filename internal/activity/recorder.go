// Package activity keeps a short in-memory trail of operator actions taken
// through the console.
package activity

import (
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxDetailLen = 500

// Recorder writes entries to a Log asynchronously via a buffered channel.
// All methods are nil-safe (no-op on nil receiver).
type Recorder struct {
	log  *Log
	now  func() time.Time
	ch   chan Entry
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewRecorder starts a recorder feeding log. Must call Close when done.
func NewRecorder(log *Log) *Recorder {
	r := &Recorder{
		log:  log,
		now:  time.Now,
		ch:   make(chan Entry, 64),
		done: make(chan struct{}),
	}
	go r.drain()
	return r
}

func (r *Recorder) drain() {
	defer close(r.done)
	for e := range r.ch {
		r.log.add(e)
		slog.Debug("activity recorded", "kind", e.Kind, "subject", e.Subject)
	}
}

// Record queues an entry and returns its ID. Entries recorded after Close
// are dropped.
func (r *Recorder) Record(kind Kind, subject, detail string) string {
	if r == nil {
		return ""
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ""
	}
	e := Entry{
		ID:      uuid.NewString(),
		Kind:    kind,
		Subject: subject,
		Detail:  truncate(detail, maxDetailLen),
		At:      r.now(),
	}
	r.ch <- e
	return e.ID
}

// Close drains pending writes and shuts down the background goroutine.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.ch)
	r.mu.Unlock()
	<-r.done
}

// truncate cuts s to at most max bytes without splitting a character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
