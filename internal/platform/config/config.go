package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendRedis    Backend = "redis"
	BackendBadger   Backend = "badger"
	BackendPostgres Backend = "postgres"
)

type Config struct {
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	MaxSeats   int    `envconfig:"MAX_SEATS" default:"8"`
	FillPolicy string `envconfig:"FILL_POLICY" default:"prefix-fill"`
	PriceTiers string `envconfig:"PRICE_TIERS" default:"1:150,2:100,3:75"`

	SelectionBackend Backend       `envconfig:"SELECTION_BACKEND" default:"file"`
	SelectionKey     string        `envconfig:"SELECTION_KEY" default:"seating-map-selection"`
	SelectionFile    string        `envconfig:"SELECTION_FILE" default:"selection.json"`
	BadgerPath       string        `envconfig:"BADGER_PATH" default:"data/badger"`
	// SelectionTTL expires the redis slot after the last change; zero keeps it forever.
	SelectionTTL     time.Duration `envconfig:"SELECTION_TTL" default:"0s"`

	VenueSource string `envconfig:"VENUE_SOURCE" default:"file"`
	VenueFile   string `envconfig:"VENUE_FILE" default:"venue.json"`
	VenueID     string `envconfig:"VENUE_ID"`

	Redis Redis
	DB    Database
}

type Redis struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type Database struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME" default:"seat_selection"`
}

// Load reads envFile into the environment when it exists and then parses the
// environment. Variables already set take precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.SelectionBackend {
	case BackendMemory, BackendFile, BackendRedis, BackendBadger, BackendPostgres:
	default:
		return fmt.Errorf("unknown SELECTION_BACKEND %q", c.SelectionBackend)
	}

	switch c.VenueSource {
	case "file", "postgres":
	default:
		return fmt.Errorf("unknown VENUE_SOURCE %q", c.VenueSource)
	}

	if c.SelectionTTL < 0 {
		return fmt.Errorf("SELECTION_TTL must not be negative, got %s", c.SelectionTTL)
	}

	if c.MaxSeats < 1 {
		return fmt.Errorf("MAX_SEATS must be positive, got %d", c.MaxSeats)
	}

	return nil
}
