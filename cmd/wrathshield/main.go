package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/CryptoJym/wrath-shield/internal/api"
	"github.com/CryptoJym/wrath-shield/internal/backfill"
	"github.com/CryptoJym/wrath-shield/internal/bus"
	"github.com/CryptoJym/wrath-shield/internal/confidence"
	"github.com/CryptoJym/wrath-shield/internal/config"
	"github.com/CryptoJym/wrath-shield/internal/manipulation"
	"github.com/CryptoJym/wrath-shield/internal/metrics"
	"github.com/CryptoJym/wrath-shield/internal/processor"
	"github.com/CryptoJym/wrath-shield/internal/store"
)

func main() {
	backfillMode := flag.Bool("backfill", false, "run directory backfill instead of the service")
	backfillDir := flag.String("dir", "", "lifelog directory for backfill (defaults to LIFELOG_DIR)")
	backfillOwner := flag.String("owner", "", "owner UUID for backfilled analyses")
	dryRun := flag.Bool("dry-run", false, "analyze without writing to the database")
	flag.Parse()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)
	metrics.Init()

	engine := manipulation.NewEngine(cfg.ResponseWindow)

	if *backfillMode {
		runBackfill(cfg, engine, *backfillDir, *backfillOwner, *dryRun)
		return
	}

	slog.Info("wrath-shield starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connected")

	// NATS
	busClient, err := bus.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer busClient.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	// Processor — the main pipeline
	proc := processor.New(db, engine, busClient, slog.Default())

	if err := busClient.Subscribe(bus.SubjectLifelogStored, proc.HandleLifelogStored); err != nil {
		slog.Error("failed to subscribe to lifelog events", "error", err)
		os.Exit(1)
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, db, confidence.NewMiner(), engine)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce registration
	if err := busClient.Publish(bus.SubjectServiceRegistered, map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "wrath-shield",
		"port":      cfg.Port,
	}); err != nil {
		slog.Warn("failed to publish registration", "error", err)
	}

	slog.Info("wrath-shield ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("wrath-shield stopped")
}

func runBackfill(cfg config.Config, engine *manipulation.Engine, dir, owner string, dryRun bool) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if dir == "" {
		dir = cfg.LifelogDir
	}
	if dir == "" {
		slog.Error("backfill requires -dir or LIFELOG_DIR")
		os.Exit(1)
	}

	bcfg := backfill.Config{
		Dir:    dir,
		DryRun: dryRun,
	}
	if owner != "" {
		ownerUUID, err := uuid.Parse(owner)
		if err != nil {
			slog.Error("invalid owner uuid", "owner", owner, "error", err)
			os.Exit(1)
		}
		bcfg.OwnerUUID = ownerUUID
	}

	var db *store.Store
	if !dryRun {
		if cfg.DatabaseURL == "" {
			slog.Error("DATABASE_URL is required unless -dry-run is set")
			os.Exit(1)
		}
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	runner := backfill.NewRunner(bcfg, db, engine, slog.Default())
	if err := runner.Run(ctx); err != nil {
		slog.Error("backfill failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
