package database

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

func OpenBadger(path string, logger *slog.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %s: %w", path, err)
	}

	logger.Info("badger opened", "path", path)

	return db, nil
}
