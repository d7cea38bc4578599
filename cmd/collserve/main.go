// collserve runs the browser viewer server: it assembles classified level
// geometry from an sm64 decomp source tree and serves it as JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sm64-collision-inspector/internal/config"
	"sm64-collision-inspector/internal/level"
	"sm64-collision-inspector/internal/logger"
	"sm64-collision-inspector/internal/server"
	"sm64-collision-inspector/internal/source"
	"sm64-collision-inspector/pkg/formats"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	variant, err := formats.ParseVariant(cfg.Data.Variant)
	if err != nil {
		return err
	}

	src := source.NewSet(cfg.Data.DecompRoot)
	if _, err := src.Levels(); err != nil {
		return fmt.Errorf("decomp root %s: %w", cfg.Data.DecompRoot, err)
	}

	catalog := level.DefaultCatalog()
	if cfg.Data.CatalogPath != "" {
		catalog, err = level.LoadCatalog(cfg.Data.CatalogPath)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}

	logger.Info("starting collision viewer server",
		zap.String("root", cfg.Data.DecompRoot),
		zap.String("variant", variant.String()),
		zap.String("addr", cfg.Server.Addr))

	srv := server.New(src, catalog, server.Config{
		Addr:      cfg.Server.Addr,
		StaticDir: cfg.Server.StaticDir,
		Variant:   variant,
	}, logger.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, cfg.Server.ShutdownTimeout); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
