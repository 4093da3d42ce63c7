package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveCalls = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "console_active_calls",
		Help: "Calls currently shown as connected to the voice agent",
	})

	Listening = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "console_listening",
		Help: "1 while the agent is listening and call clocks advance",
	})

	ClockTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_clock_ticks_total",
		Help: "Clock ticks processed",
	})

	ConfigSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_config_saves_total",
		Help: "Completed configuration saves",
	})

	LiveClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "console_live_clients",
		Help: "Connected live feed clients (websocket and SSE)",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "console_http_requests_total",
		Help: "HTTP requests by route pattern and status code",
	}, []string{"pattern", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "console_http_request_duration_seconds",
		Help:    "HTTP handler latency by route pattern",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"pattern"})
)
