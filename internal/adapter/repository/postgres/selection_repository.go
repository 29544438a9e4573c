package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

// SelectionRepository keeps the selection slot as a JSONB row keyed by slot name.
type SelectionRepository struct {
	db  *sql.DB
	key string
}

func NewSelectionRepository(db *sql.DB, key string) *SelectionRepository {
	return &SelectionRepository{db: db, key: key}
}

func (r *SelectionRepository) Load(ctx context.Context) ([]domain.SelectedSeatInfo, error) {
	var payload []byte

	err := r.db.QueryRowContext(ctx, `SELECT payload FROM selection_slots WHERE key = $1`, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.SelectedSeatInfo{}, nil
		}

		return nil, fmt.Errorf("failed to read selection %s: %w", r.key, err)
	}

	var seats []domain.SelectedSeatInfo
	if err := json.Unmarshal(payload, &seats); err != nil {
		return nil, fmt.Errorf("failed to decode selection %s: %w", r.key, err)
	}

	return seats, nil
}

func (r *SelectionRepository) Save(ctx context.Context, seats []domain.SelectedSeatInfo) error {
	payload, err := json.Marshal(seats)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}

	query := `
	INSERT INTO selection_slots (key, payload, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE
	SET payload = EXCLUDED.payload,
		updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, r.key, string(payload)); err != nil {
		return fmt.Errorf("failed to write selection %s: %w", r.key, err)
	}

	return nil
}
