package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubenschmidt/hotel-voice-console/internal/agentcfg"
	"github.com/hubenschmidt/hotel-voice-console/internal/env"
)

func main() {
	out := flag.String("out", env.Str("SETTINGS_FILE", "agent-settings.yaml"), "settings file to write")
	force := flag.Bool("force", false, "overwrite an existing file")
	check := flag.Bool("check", false, "validate an existing file instead of writing one")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if *check {
		s, err := agentcfg.LoadFile(*out)
		if err != nil {
			slog.Error("invalid settings", "file", *out, "error", err)
			os.Exit(1)
		}
		slog.Info("settings ok", "file", *out, "intents", len(s.Intents), "rules", len(s.Escalation), "days", len(s.Hours))
		return
	}

	if _, err := os.Stat(*out); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "%s exists, use -force to overwrite\n", *out)
		os.Exit(1)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("stat settings", "file", *out, "error", err)
		os.Exit(1)
	}

	s := agentcfg.Defaults()
	if err := agentcfg.WriteFile(*out, s); err != nil {
		slog.Error("write settings", "file", *out, "error", err)
		os.Exit(1)
	}
	slog.Info("settings written", "file", *out, "intents", len(s.Intents), "rules", len(s.Escalation))
}
