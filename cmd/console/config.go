package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/hubenschmidt/hotel-voice-console/internal/agentcfg"
	"github.com/hubenschmidt/hotel-voice-console/internal/env"
	"github.com/hubenschmidt/hotel-voice-console/internal/sample"
)

type config struct {
	port           string
	voiceAgentID   string
	tickInterval   time.Duration
	saveDelay      time.Duration
	savedNotice    time.Duration
	sampleData     bool
	listening      bool
	sampleSeed     uint64
	settingsFile   string
	maxLiveClients int
	logLevel       slog.Level
}

func loadConfig() config {
	return config{
		port:           env.Str("CONSOLE_PORT", "8000"),
		voiceAgentID:   env.Str("VOICE_AGENT_ID", sample.VoiceAgentID),
		tickInterval:   env.Duration("TICK_INTERVAL", time.Second),
		saveDelay:      env.Duration("CONFIG_SAVE_DELAY", agentcfg.DefaultSaveDelay),
		savedNotice:    env.Duration("CONFIG_SAVED_NOTICE", agentcfg.DefaultNoticeFor),
		sampleData:     env.Bool("SAMPLE_DATA", true),
		listening:      env.Bool("LISTENING", true),
		sampleSeed:     env.Uint64("SAMPLE_SEED", 0),
		settingsFile:   env.Str("SETTINGS_FILE", ""),
		maxLiveClients: env.Int("MAX_LIVE_CLIENTS", 100),
		logLevel:       parseLevel(env.Str("LOG_LEVEL", "info")),
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
