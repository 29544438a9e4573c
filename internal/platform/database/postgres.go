package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"github.com/srgjo27/seat_selection/internal/platform/config"
)

const (
	maxRetries    = 10
	retryInterval = 2 * time.Second
)

func NewPostgresDB(cfg config.Database, logger *slog.Logger) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	var db *sql.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		logger.Info("connecting to database", "attempt", i, "max_attempts", maxRetries)
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			logger.Info("database connected", "host", cfg.Host, "db", cfg.Name)
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(5 * time.Minute)
			return db, nil
		}

		if db != nil {
			db.Close()
		}

		logger.Warn("database not ready yet", "retry_in", retryInterval, "error", err)
		time.Sleep(retryInterval)
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}
