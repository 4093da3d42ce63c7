package activity

import "sync"

// DefaultCapacity is how many entries a Log keeps before dropping the oldest.
const DefaultCapacity = 200

// Log is a bounded in-memory list of entries, newest first.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{max: capacity}
}

func (l *Log) add(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}
}

// List returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (l *Log) List(limit int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := len(l.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]Entry{}, l.entries[:n]...)
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
