package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/srgjo27/seat_selection/internal/adapter/handler"
	"github.com/srgjo27/seat_selection/internal/adapter/repository/badgerstore"
	"github.com/srgjo27/seat_selection/internal/adapter/repository/filestore"
	"github.com/srgjo27/seat_selection/internal/adapter/repository/memory"
	"github.com/srgjo27/seat_selection/internal/adapter/repository/postgres"
	"github.com/srgjo27/seat_selection/internal/adapter/repository/redisstore"
	"github.com/srgjo27/seat_selection/internal/core/domain"
	"github.com/srgjo27/seat_selection/internal/core/ports"
	"github.com/srgjo27/seat_selection/internal/core/services"
	"github.com/srgjo27/seat_selection/internal/platform/config"
	"github.com/srgjo27/seat_selection/internal/platform/database"
	"github.com/srgjo27/seat_selection/internal/platform/logging"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file to load before reading the environment")
	pflag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	// closers run in reverse order on exit.
	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i].Close()
		}
	}()

	needsPostgres := cfg.SelectionBackend == config.BackendPostgres || cfg.VenueSource == "postgres"

	var venueRepo ports.VenueRepository = filestore.NewVenueRepository(cfg.VenueFile)

	if needsPostgres {
		db, err := database.NewPostgresDB(cfg.DB, logger)
		if err != nil {
			return err
		}
		closers = append(closers, db)

		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return err
		}

		if cfg.VenueSource == "postgres" {
			venueRepo = postgres.NewVenueRepository(db)
		}

		if cfg.SelectionBackend == config.BackendPostgres {
			storage := postgres.NewSelectionRepository(db, cfg.SelectionKey)
			return serve(ctx, cfg, logger, venueRepo, storage)
		}
	}

	var storage ports.SelectionStorage

	switch cfg.SelectionBackend {
	case config.BackendMemory:
		storage = memory.NewSelectionRepository()
	case config.BackendFile:
		storage = filestore.NewSelectionRepository(cfg.SelectionFile)
	case config.BackendRedis:
		client, err := database.NewRedisClient(cfg.Redis, logger)
		if err != nil {
			return err
		}
		closers = append(closers, client)
		storage = redisstore.NewSelectionRepository(client, cfg.SelectionKey, cfg.SelectionTTL)
	case config.BackendBadger:
		db, err := database.OpenBadger(cfg.BadgerPath, logger)
		if err != nil {
			return err
		}
		closers = append(closers, db)
		storage = badgerstore.NewSelectionRepository(db, "selection:"+cfg.SelectionKey, logger)
	default:
		return fmt.Errorf("unsupported selection backend %q", cfg.SelectionBackend)
	}

	return serve(ctx, cfg, logger, venueRepo, storage)
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger, venueRepo ports.VenueRepository, storage ports.SelectionStorage) error {
	policy, err := services.ParseFillPolicy(cfg.FillPolicy)
	if err != nil {
		return err
	}

	prices, err := domain.ParsePriceTable(cfg.PriceTiers)
	if err != nil {
		return err
	}

	store := services.NewSelectionStore(storage,
		services.WithCapacity(cfg.MaxSeats),
		services.WithFillPolicy(policy),
		services.WithLogger(logger),
	)
	store.Initialize(ctx)

	seatingService := services.NewSeatingService(venueRepo, store, prices, logger)
	if err := seatingService.LoadVenue(ctx, cfg.VenueID); err != nil {
		return err
	}

	seatingHandler := handler.NewSeatingHandler(seatingService, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      seatingHandler.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("server starting",
			"addr", server.Addr,
			"selection_backend", cfg.SelectionBackend,
			"fill_policy", policy.Name(),
			"max_seats", store.Capacity(),
			"restored_seats", store.Len(),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server startup failed: %w", err)
	case s := <-quit:
		logger.Info("shutting down server", "signal", s.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exiting")

	return nil
}
