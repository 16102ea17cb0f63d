// Package server initializes and runs the CampusHub API server. It opens the
// database, runs migrations, wires services into the HTTP layer, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"campushub/internal/logging"
	"campushub/internal/server/config"
	"campushub/internal/server/repositories/repomanager"
	"campushub/internal/server/rest"
	"campushub/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *rest.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := repomanager.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	userService := services.NewUserService(db, rm, cfg)
	searchService := services.NewSearchService(db, rm)
	feedService := services.NewFeedService(db, rm, logger)
	clubService := services.NewClubService(db, rm)
	eventService := services.NewEventService(db, rm)
	announcementService := services.NewAnnouncementService(db, rm)
	mediaService := services.NewMediaService(cfg)

	srv := rest.NewServer(logger, []byte(cfg.SecretKey),
		userService, searchService, feedService,
		clubService, eventService, announcementService, mediaService)

	return &App{config: cfg, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Start(app.config.EndpointAddrHTTP); err != nil {
			app.logger.Error(ctx, "server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}

	wg.Wait()
	app.logger.Info(ctx, "server stopped")
}
