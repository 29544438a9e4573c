package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/srgjo27/seat_selection/internal/core/domain"
)

const DefaultKey = "selection:seating-map-selection"

// SelectionRepository keeps the selection slot in an embedded Badger database.
type SelectionRepository struct {
	db  *badger.DB
	key []byte
	log *slog.Logger
}

func NewSelectionRepository(db *badger.DB, key string, log *slog.Logger) *SelectionRepository {
	if key == "" {
		key = DefaultKey
	}

	return &SelectionRepository{
		db:  db,
		key: []byte(key),
		log: log,
	}
}

func (r *SelectionRepository) Load(_ context.Context) ([]domain.SelectedSeatInfo, error) {
	var data []byte

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(r.key)
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return []domain.SelectedSeatInfo{}, nil
		}

		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	var seats []domain.SelectedSeatInfo
	if err := json.Unmarshal(data, &seats); err != nil {
		return nil, fmt.Errorf("failed to decode selection: %w", err)
	}

	return seats, nil
}

func (r *SelectionRepository) Save(_ context.Context, seats []domain.SelectedSeatInfo) error {
	data, err := json.Marshal(seats)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(r.key, data)
	})
	if err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}

	r.log.Debug("selection written", "key", string(r.key), "seats", len(seats))

	return nil
}
