// Package live fans console snapshots out to streaming clients.
package live

import (
	"sync"
)

// Hub holds the set of subscribers and the most recent frame.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan []byte]struct{}
	latest []byte
}

func NewHub() *Hub {
	return &Hub{subs: map[chan []byte]struct{}{}}
}

// Subscribe returns a channel that receives every broadcast frame. The
// channel has capacity 1.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

// Broadcast sends data to every subscriber without blocking. A subscriber
// whose buffer is still full has its pending frame replaced by data.
func (h *Hub) Broadcast(data []byte) {
	if data == nil {
		return
	}
	h.mu.Lock()
	h.latest = data
	for ch := range h.subs {
		select {
		case ch <- data:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- data:
		default:
		}
	}
	h.mu.Unlock()
}

// Latest returns the last broadcast frame, or nil before the first one.
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
