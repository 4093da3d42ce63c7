package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hubenschmidt/hotel-voice-console/internal/activity"
	"github.com/hubenschmidt/hotel-voice-console/internal/agentcfg"
	"github.com/hubenschmidt/hotel-voice-console/internal/console"
	"github.com/hubenschmidt/hotel-voice-console/internal/live"
	"github.com/hubenschmidt/hotel-voice-console/internal/sample"
	"github.com/hubenschmidt/hotel-voice-console/internal/ws"
)

func main() {
	envErr := godotenv.Load()
	cfg := loadConfig()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.logLevel})))
	if envErr != nil && !os.IsNotExist(envErr) {
		slog.Warn("load .env", "error", envErr)
	}

	settings := agentcfg.Defaults()
	if cfg.settingsFile != "" {
		loaded, err := agentcfg.LoadFile(cfg.settingsFile)
		if err != nil {
			slog.Error("load settings", "file", cfg.settingsFile, "error", err)
			os.Exit(1)
		}
		settings = loaded
		slog.Info("settings loaded", "file", cfg.settingsFile, "rules", len(settings.Escalation))
	}

	activityLog := activity.NewLog(activity.DefaultCapacity)
	recorder := activity.NewRecorder(activityLog)
	defer recorder.Close()

	now := time.Now()
	seed := cfg.sampleSeed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}

	con := console.New(console.Config{
		Settings:   settings,
		Rand:       sample.NewRand(seed),
		Now:        now,
		Listening:  cfg.listening,
		SampleData: cfg.sampleData,
		SaveDelay:  cfg.saveDelay,
		NoticeFor:  cfg.savedNotice,
		OnSaved: func(at time.Time) {
			recorder.Record(activity.KindConfigSaved, "", at.Format(time.RFC3339))
		},
	})
	defer con.Close()

	hub := live.NewHub()
	publish(hub, con.Snapshot())

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go con.Run(ctx, cfg.tickInterval, func(s console.Snapshot) { publish(hub, s) })

	handler := ws.NewHandler(ws.HandlerConfig{Hub: hub, MaxClients: cfg.maxLiveClients})

	views, err := newPages()
	if err != nil {
		slog.Error("parse templates", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, deps{
		agentID:     cfg.voiceAgentID,
		console:     con,
		hub:         hub,
		pages:       views,
		wsHandler:   handler,
		activity:    recorder,
		activityLog: activityLog,
	})

	addr := ":" + cfg.port
	srv := &http.Server{Addr: addr, Handler: withMiddleware(mux)}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("console starting",
		"addr", addr,
		"agent_id", cfg.voiceAgentID,
		"tick", cfg.tickInterval,
		"sample_data", cfg.sampleData,
		"listening", cfg.listening,
		"max_live_clients", cfg.maxLiveClients,
	)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("console stopped")
}

// publish encodes a snapshot and hands it to every live subscriber.
func publish(hub *live.Hub, s console.Snapshot) {
	data, err := json.Marshal(s)
	if err != nil {
		slog.Error("encode snapshot", "error", err)
		return
	}
	hub.Broadcast(data)
}
