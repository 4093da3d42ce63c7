package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/hubenschmidt/hotel-voice-console/internal/sample"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"CONSOLE_PORT", "VOICE_AGENT_ID", "TICK_INTERVAL", "CONFIG_SAVE_DELAY", "CONFIG_SAVED_NOTICE", "SAMPLE_DATA", "LISTENING", "SAMPLE_SEED", "SETTINGS_FILE", "MAX_LIVE_CLIENTS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := loadConfig()
	if cfg.port != "8000" || cfg.voiceAgentID != sample.VoiceAgentID {
		t.Errorf("port/agent = %q/%q", cfg.port, cfg.voiceAgentID)
	}
	if cfg.tickInterval != time.Second || cfg.saveDelay != 1500*time.Millisecond || cfg.savedNotice != 3*time.Second {
		t.Errorf("durations = %v/%v/%v", cfg.tickInterval, cfg.saveDelay, cfg.savedNotice)
	}
	if !cfg.sampleData || !cfg.listening || cfg.sampleSeed != 0 || cfg.maxLiveClients != 100 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.logLevel != slog.LevelInfo {
		t.Errorf("level = %v", cfg.logLevel)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CONSOLE_PORT", "9090")
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("SAMPLE_DATA", "off")
	t.Setenv("SAMPLE_SEED", "7")
	t.Setenv("LOG_LEVEL", "DEBUG")
	cfg := loadConfig()
	if cfg.port != "9090" || cfg.tickInterval != 250*time.Millisecond || cfg.sampleData || cfg.sampleSeed != 7 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.logLevel != slog.LevelDebug {
		t.Errorf("level = %v", cfg.logLevel)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"loud":    slog.LevelInfo,
	} {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
