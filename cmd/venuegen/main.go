package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/srgjo27/seat_selection/internal/adapter/repository/postgres"
	"github.com/srgjo27/seat_selection/internal/core/domain"
	"github.com/srgjo27/seat_selection/internal/platform/config"
	"github.com/srgjo27/seat_selection/internal/platform/database"
	"github.com/srgjo27/seat_selection/internal/platform/logging"
)

func main() {
	var (
		l            layout
		out          string
		seed         uint64
		randomID     bool
		seedPostgres bool
		envFile      string
	)

	pflag.StringVar(&l.VenueID, "venue-id", "large-arena-01", "venue id written to the output")
	pflag.StringVar(&l.Name, "name", "Large Test Arena", "venue display name")
	pflag.IntVar(&l.Sections, "sections", 10, "number of sections, lettered from A")
	pflag.IntVar(&l.Rows, "rows", 50, "rows per section")
	pflag.IntVar(&l.SeatsPerRow, "seats-per-row", 30, "seats per row")
	pflag.StringVarP(&out, "out", "o", "venue.json", "output file, - for stdout")
	pflag.Uint64Var(&seed, "seed", 0, "random seed for statuses and tiers, 0 picks one")
	pflag.BoolVar(&randomID, "random-id", false, "replace the venue id with a random uuid")
	pflag.BoolVar(&seedPostgres, "seed-postgres", false, "also store the venue in postgres")
	pflag.StringVar(&envFile, "env-file", ".env", "dotenv file holding the postgres settings")
	pflag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	if randomID {
		l.VenueID = uuid.NewString()
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	venue, err := generateVenue(l, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		logger.Error("failed to generate venue", "error", err)
		os.Exit(1)
	}

	logger.Info("venue generated", "venue_id", venue.ID, "sections", len(venue.Sections), "seats", venue.SeatCount(), "seed", seed)

	if err := writeVenue(out, venue); err != nil {
		logger.Error("failed to write venue", "path", out, "error", err)
		os.Exit(1)
	}

	if seedPostgres {
		if err := storeVenue(cfg, logger, venue); err != nil {
			logger.Error("failed to seed postgres", "error", err)
			os.Exit(1)
		}
	}
}

func writeVenue(path string, venue *domain.Venue) error {
	data, err := json.MarshalIndent(venue, "", "  ")
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func storeVenue(cfg config.Config, logger *slog.Logger, venue *domain.Venue) error {
	db, err := database.NewPostgresDB(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	if err := postgres.NewVenueRepository(db).SaveVenue(ctx, venue); err != nil {
		return err
	}

	logger.Info("venue stored in postgres", "venue_id", venue.ID)

	return nil
}
