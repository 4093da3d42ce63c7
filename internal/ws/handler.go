package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hubenschmidt/hotel-voice-console/internal/live"
	"github.com/hubenschmidt/hotel-voice-console/internal/metrics"
)

// writeWait bounds a single frame write to a slow client.
const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 16384,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandlerConfig holds the feed source and the connection limit.
type HandlerConfig struct {
	Hub        *live.Hub
	MaxClients int
}

// Handler streams console snapshots to websocket clients with admission control.
type Handler struct {
	cfg HandlerConfig
	sem chan struct{}
}

// NewHandler creates a live feed handler. MaxClients defaults to 100.
func NewHandler(cfg HandlerConfig) *Handler {
	maxClients := cfg.MaxClients
	if maxClients <= 0 {
		maxClients = 100
	}
	return &Handler{
		cfg: cfg,
		sem: make(chan struct{}, maxClients),
	}
}

// ServeHTTP upgrades the connection and forwards snapshots until the client
// goes away. Returns 503 if at max client capacity.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	select {
	case h.sem <- struct{}{}:
		defer func() { <-h.sem }()
	default:
		http.Error(w, "at capacity", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	metrics.LiveClients.Inc()
	defer metrics.LiveClients.Dec()

	slog.Info("live client connected", "remote", r.RemoteAddr, "transport", "websocket")
	h.stream(conn)
	slog.Info("live client disconnected", "remote", r.RemoteAddr, "transport", "websocket")
}

func (h *Handler) stream(conn *websocket.Conn) {
	ch := h.cfg.Hub.Subscribe()
	defer h.cfg.Hub.Unsubscribe(ch)

	if latest := h.cfg.Hub.Latest(); latest != nil {
		if err := writeFrame(conn, latest); err != nil {
			slog.Error("write snapshot", "error", err)
			return
		}
	}

	closed := make(chan struct{})
	go readPump(conn, closed)

	for {
		select {
		case <-closed:
			return
		case msg := <-ch:
			if err := writeFrame(conn, msg); err != nil {
				slog.Error("write snapshot", "error", err)
				return
			}
		}
	}
}

// readPump discards client frames and closes done when the connection
// fails or the client sends a close frame.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, data []byte) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}
