package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Ko-stant/spider-field/internal/game"
	"github.com/Ko-stant/spider-field/internal/ws"
)

var printer = message.NewPrinter(language.English)

func main() {
	cfg, err := LoadConfig(os.Args, os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Getenv); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg ServerConfig, getenv func(string) string) error {
	logger := NewLogger()

	g, err := game.NewGame(cfg.Game, logger)
	if err != nil {
		return err
	}

	profiling := GetProfilingConfigFromEnv(getenv)
	StartProfiling(profiling)

	var engine GameEngine = g
	if profiling.Enabled {
		metrics := NewPerformanceMetrics()
		engine = NewInstrumentedGameEngine(g, metrics)
		StartMetricsReporting(metrics, logger, time.Minute)
	}

	hub := ws.NewHub()
	broadcaster := NewBroadcaster(hub, NewSequenceGenerator(), logger)
	handlers := NewHandlers(engine, broadcaster, hub, logger)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handlers.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Printf("Field %dx%d, target %s%%, tick %v",
		cfg.Game.Width, cfg.Game.Height, printer.Sprint(cfg.Game.ClaimTarget), cfg.Tick)
	if cfg.ArenaFile != "" {
		logger.Printf("Arena loaded from %s", cfg.ArenaFile)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Printf("Listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		return runTicker(ctx, engine, broadcaster, logger, cfg.Tick)
	})
	group.Go(func() error {
		<-ctx.Done()
		hub.CloseAll("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = group.Wait()
	snap := engine.Snapshot()
	logger.Printf("Stopped at tick %s with %s%% claimed",
		printer.Sprint(snap.Tick), printer.Sprintf("%.1f", snap.ClaimedPercent))
	return err
}
