package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/minaorangina/klondike/internal/config"
	"github.com/minaorangina/klondike/server"
	"github.com/minaorangina/klondike/store"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := server.ServerOpts{
		Store:  store.NewInMemoryGameStore(logger.Named("store")),
		Logger: logger.Named("server"),
		Defaults: server.GameDefaults{
			Variant:  cfg.GameVariant(),
			Cascades: cfg.Cascades,
			Draw:     cfg.Draw,
			Shuffle:  cfg.Shuffle,
		},
		AllowedOrigins: cfg.AllowedOrigins,
	}
	if cfg.AccessLog {
		opts.AccessLog = os.Stdout
	}

	s := server.NewServerWithOpts(opts)
	s.Addr = cfg.Addr()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", s.Addr))
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}
