package agentcfg

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/hubenschmidt/hotel-voice-console/internal/metrics"
)

var (
	ErrSaveInProgress = errors.New("save already in progress")
	ErrSaverClosed    = errors.New("saver closed")
)

const (
	DefaultSaveDelay = 1500 * time.Millisecond
	DefaultNoticeFor = 3 * time.Second
)

// SaveState is the phase of the save cycle: idle → saving → saved → idle.
type SaveState string

const (
	SaveIdle   SaveState = "idle"
	SaveSaving SaveState = "saving"
	SaveSaved  SaveState = "saved"
)

// SaveStatus is what the configuration view shows next to the save button.
type SaveStatus struct {
	State   SaveState  `json:"state"`
	Saving  bool       `json:"saving"`
	Saved   bool       `json:"saved"`
	SavedAt *time.Time `json:"saved_at,omitempty"`
}

// Saver simulates committing the configuration: it reports "saving" for
// the save delay, then "saved" for the notice period, then goes idle.
// Nothing is written anywhere.
type Saver struct {
	mu      sync.Mutex
	delay   time.Duration
	notice  time.Duration
	onSaved func(time.Time)

	state   SaveState
	savedAt time.Time
	timer   *time.Timer
	gen     uint64
	closed  bool
}

// NewSaver creates a saver. Non-positive durations fall back to the
// defaults. onSaved, if set, runs after each completed save.
func NewSaver(delay, notice time.Duration, onSaved func(time.Time)) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	if notice <= 0 {
		notice = DefaultNoticeFor
	}
	return &Saver{delay: delay, notice: notice, onSaved: onSaved, state: SaveIdle}
}

// Save starts a save cycle. A save requested while one is running is refused.
func (s *Saver) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSaverClosed
	}
	if s.state == SaveSaving {
		return ErrSaveInProgress
	}
	s.stopTimer()
	s.gen++
	gen := s.gen
	s.state = SaveSaving
	s.timer = time.AfterFunc(s.delay, func() { s.finish(gen) })
	slog.Info("config save started", "delay", s.delay)
	return nil
}

func (s *Saver) finish(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.closed {
		s.mu.Unlock()
		return
	}
	s.state = SaveSaved
	s.savedAt = time.Now()
	savedAt := s.savedAt
	s.timer = time.AfterFunc(s.notice, func() { s.clear(gen) })
	cb := s.onSaved
	s.mu.Unlock()

	metrics.ConfigSaves.Inc()
	slog.Info("config saved", "saved_at", savedAt)
	if cb != nil {
		cb(savedAt)
	}
}

func (s *Saver) clear(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.closed {
		return
	}
	s.state = SaveIdle
}

func (s *Saver) Status() SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := SaveStatus{
		State:  s.state,
		Saving: s.state == SaveSaving,
		Saved:  s.state == SaveSaved,
	}
	if !s.savedAt.IsZero() {
		t := s.savedAt
		st.SavedAt = &t
	}
	return st
}

// Close cancels any pending transition.
func (s *Saver) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.gen++
	s.stopTimer()
}

func (s *Saver) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
