// Package console holds the dashboard's state: live calls and their clock,
// the call log, the reservation book and the agent settings.
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hubenschmidt/hotel-voice-console/internal/agentcfg"
	"github.com/hubenschmidt/hotel-voice-console/internal/hotel"
	"github.com/hubenschmidt/hotel-voice-console/internal/metrics"
	"github.com/hubenschmidt/hotel-voice-console/internal/sample"
)

var (
	ErrCallNotFound        = errors.New("call not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCancelled    = errors.New("reservation already cancelled")
	ErrNotCancellable      = errors.New("reservation can no longer be cancelled")
)

// DefaultRecent is how many completed calls the dashboard lists.
const DefaultRecent = 10

// Config seeds a Console.
type Config struct {
	Settings   agentcfg.Settings
	Rand       *rand.Rand
	Now        time.Time
	Listening  bool
	SampleData bool
	SaveDelay  time.Duration
	NoticeFor  time.Duration
	OnSaved    func(time.Time)
}

// Console is the shared state behind every page and API call. It is safe
// for concurrent use by HTTP handlers and the clock goroutine.
type Console struct {
	mu           sync.RWMutex
	now          time.Time
	listening    bool
	sampleData   bool
	active       []hotel.ActiveCall
	completed    []hotel.CompletedCall
	reservations []hotel.Reservation

	settings *agentcfg.Store
	saver    *agentcfg.Saver
}

// Snapshot is what the live feed pushes on each tick.
type Snapshot struct {
	Time        time.Time          `json:"time"`
	Listening   bool               `json:"listening"`
	Status      string             `json:"status"`
	SampleData  bool               `json:"sample_data"`
	ActiveCalls []hotel.ActiveCall `json:"active_calls"`
}

// New builds a console populated with sample data.
func New(cfg Config) *Console {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = sample.NewRand(uint64(now.UnixNano()))
	}
	if cfg.Settings.Greeting == "" && len(cfg.Settings.Intents) == 0 {
		cfg.Settings = agentcfg.Defaults()
	}

	c := &Console{
		now:          now,
		listening:    cfg.Listening,
		sampleData:   cfg.SampleData,
		active:       sample.ActiveCalls(now),
		completed:    sample.CompletedCalls(now, rng),
		reservations: sample.Reservations(),
		settings:     agentcfg.NewStore(cfg.Settings),
		saver:        agentcfg.NewSaver(cfg.SaveDelay, cfg.NoticeFor, cfg.OnSaved),
	}
	metrics.Listening.Set(boolGauge(c.listening))
	metrics.ActiveCalls.Set(float64(len(c.visibleActive())))
	return c
}

// Settings returns the editable agent configuration.
func (c *Console) Settings() *agentcfg.Store { return c.settings }

// Saver returns the configuration save simulator.
func (c *Console) Saver() *agentcfg.Saver { return c.saver }

// Close stops background timers owned by the console.
func (c *Console) Close() {
	c.saver.Close()
}

// Tick advances the clock to now. While listening, every active call gains
// exactly one second; otherwise durations stay frozen.
func (c *Console) Tick(now time.Time) Snapshot {
	c.mu.Lock()
	c.now = now
	if c.listening {
		for i := range c.active {
			c.active[i].Duration++
		}
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	metrics.ClockTicks.Inc()
	metrics.ActiveCalls.Set(float64(len(snap.ActiveCalls)))
	return snap
}

// Run ticks every interval until ctx is done, handing each snapshot to
// onTick.
func (c *Console) Run(ctx context.Context, interval time.Duration, onTick func(Snapshot)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	slog.Info("clock started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("clock stopped")
			return
		case t := <-ticker.C:
			snap := c.Tick(t)
			if onTick != nil {
				onTick(snap)
			}
		}
	}
}

func (c *Console) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Console) snapshotLocked() Snapshot {
	return Snapshot{
		Time:        c.now,
		Listening:   c.listening,
		Status:      statusText(c.listening),
		SampleData:  c.sampleData,
		ActiveCalls: c.visibleActive(),
	}
}

func (c *Console) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *Console) SetListening(on bool) {
	c.mu.Lock()
	changed := c.listening != on
	c.listening = on
	c.mu.Unlock()

	metrics.Listening.Set(boolGauge(on))
	if changed {
		slog.Info("listening changed", "listening", on)
	}
}

func (c *Console) Listening() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listening
}

// StatusText is the agent status line shown in the header and sidebar.
func (c *Console) StatusText() string {
	return statusText(c.Listening())
}

func statusText(listening bool) string {
	if listening {
		return "System Online"
	}
	return "System Offline"
}

// SetSampleData switches between the sample records and empty placeholders.
func (c *Console) SetSampleData(on bool) {
	c.mu.Lock()
	changed := c.sampleData != on
	c.sampleData = on
	n := len(c.visibleActive())
	c.mu.Unlock()

	metrics.ActiveCalls.Set(float64(n))
	if changed {
		slog.Info("sample data changed", "sample_data", on)
	}
}

func (c *Console) SampleData() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sampleData
}

// ActiveCalls returns the calls in progress, or none with sample data off.
func (c *Console) ActiveCalls() []hotel.ActiveCall {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visibleActive()
}

func (c *Console) visibleActive() []hotel.ActiveCall {
	if !c.sampleData {
		return []hotel.ActiveCall{}
	}
	return append([]hotel.ActiveCall{}, c.active...)
}

// RecentCompletions returns the n most recent completed calls.
func (c *Console) RecentCompletions(n int) []hotel.CompletedCall {
	if n <= 0 {
		n = DefaultRecent
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.sampleData {
		return []hotel.CompletedCall{}
	}
	n = min(n, len(c.completed))
	return append([]hotel.CompletedCall{}, c.completed[:n]...)
}

// History returns the completed calls that pass f.
func (c *Console) History(f HistoryFilter) []hotel.CompletedCall {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.sampleData {
		return []hotel.CompletedCall{}
	}
	return f.Apply(c.completed)
}

// HistoryDescription is the caption above the call log.
func (c *Console) HistoryDescription(count int) string {
	if !c.SampleData() {
		return "Enable sample data to view call history"
	}
	return fmt.Sprintf("%d calls found", count)
}

func (c *Console) Call(id string) (hotel.CompletedCall, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sampleData {
		for _, call := range c.completed {
			if call.ID == id {
				return call, nil
			}
		}
	}
	return hotel.CompletedCall{}, fmt.Errorf("%q: %w", id, ErrCallNotFound)
}

func (c *Console) Reservations() []hotel.Reservation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.sampleData {
		return []hotel.Reservation{}
	}
	return append([]hotel.Reservation{}, c.reservations...)
}

// ReservationsDescription is the caption above the reservation table.
func (c *Console) ReservationsDescription(count int) string {
	if !c.SampleData() {
		return "Enable sample data to view reservations"
	}
	return fmt.Sprintf("%d total reservations", count)
}

func (c *Console) Reservation(id string) (hotel.Reservation, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.reservationIndex(id)
	if i < 0 {
		return hotel.Reservation{}, fmt.Errorf("%q: %w", id, ErrReservationNotFound)
	}
	return c.reservations[i], nil
}

// CancelReservation marks a booking cancelled and zeroes its amount.
// Guests who have already checked out cannot be cancelled.
func (c *Console) CancelReservation(id string) (hotel.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.reservationIndex(id)
	if i < 0 {
		return hotel.Reservation{}, fmt.Errorf("%q: %w", id, ErrReservationNotFound)
	}
	r := &c.reservations[i]
	switch r.Status {
	case hotel.ReservationCancelled:
		return *r, fmt.Errorf("%s: %w", r.BookingRef, ErrAlreadyCancelled)
	case hotel.ReservationCheckedOut:
		return *r, fmt.Errorf("%s: %w", r.BookingRef, ErrNotCancellable)
	}
	r.Status = hotel.ReservationCancelled
	r.TotalAmount = 0
	slog.Info("reservation cancelled", "id", r.ID, "booking_ref", r.BookingRef)
	return *r, nil
}

func (c *Console) reservationIndex(id string) int {
	if !c.sampleData {
		return -1
	}
	for i, r := range c.reservations {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Stats returns the dashboard's headline cards.
func (c *Console) Stats() []sample.StatCard {
	if c.SampleData() {
		return sample.DashboardStats()
	}
	return sample.PlaceholderStats()
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
