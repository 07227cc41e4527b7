// tilequest is a tile-grid exploration game for the terminal: a short
// onboarding sequence, then free walking between connected maps.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gopxl/beep/speaker"
	"github.com/joho/godotenv"

	"tilequest/assets"
	"tilequest/internal/audio"
	"tilequest/internal/engine"
	"tilequest/internal/game"
	"tilequest/internal/gamemap"
	"tilequest/internal/telemetry"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	logPath := flag.String("log", os.Getenv("TILEQUEST_LOG"), "Write structured logs to this file (discarded when empty)")
	sound := flag.Bool("sound", os.Getenv("TILEQUEST_SOUND") == "1", "Play movement sound cues")
	rival := flag.String("rival", envOr("TILEQUEST_RIVAL", assets.RivalName), "Name of the rival character")
	start := flag.String("start", envOr("TILEQUEST_START", assets.StartMap), "Map the player starts on")
	trace := flag.Bool("trace", os.Getenv("TILEQUEST_TRACE") == "1", "Export OpenTelemetry traces over OTLP/HTTP")
	flag.Parse()

	// The terminal belongs to the game; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *trace {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Fatalf("telemetry: %v", err)
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	reg, err := gamemap.NewRegistry(logger, assets.Maps()...)
	if err != nil {
		log.Fatalf("maps: %v", err)
	}

	cfg := engine.DefaultConfig()
	cfg.StartMap = *start
	cfg.RivalName = *rival
	cfg.Logger = logger
	if *sound {
		if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			cfg.Cues = audio.NewPlayer(audio.SampleRate, speaker.Play, logger)
		}
	}

	eng, err := engine.New(reg, cfg)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	g, err := game.New(eng, logger)
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := g.Run(ctx); err != nil {
		log.Fatalf("game: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
