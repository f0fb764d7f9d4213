package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/adapter/api"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/adapter/renderer"
	memoservice "github.com/doucuty-cmd/ThaiGovDocs/internal/app/memo"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/app/messagebus"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/app/preview"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/config"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain"
	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain/memo"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	bus := messagebus.New(logger)
	service := memoservice.NewService(bus, logger)
	previews := preview.NewSynchronizer(logger)

	refresh := func(event domain.Event) error {
		me, ok := event.(memo.Event)
		if !ok {
			return nil
		}
		snap, err := service.Snapshot(me.Memo())
		if err != nil {
			return err
		}
		previews.Refresh(me.Memo(), snap)
		return nil
	}
	for _, eventType := range memo.ChangeEvents() {
		bus.Register(eventType, refresh)
	}
	bus.Register(memo.EventClosed, func(event domain.Event) error {
		if me, ok := event.(memo.Event); ok {
			previews.Drop(me.Memo())
		}
		return nil
	})

	renderClient := renderer.NewClient(cfg.Renderer.URL, cfg.Renderer.Timeout, logger)

	server := api.NewServer(
		api.Addr(cfg.Server.Host, cfg.Server.Port),
		api.Logger(logger),
		api.MemoService(service),
		api.Previews(previews),
		api.Renderer(renderClient),
	)

	ctx := context.Background()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error)

	go func() {
		defer close(errCh)
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server was not shutdown gracefully", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server closed with unexpected error", "error", err)
			}
		}
	}
	logger.Info("server shutdown")
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
