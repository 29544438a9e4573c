package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/seat_selection/internal/core/domain"
)

const DefaultKey = "seating-map-selection"

// SelectionRepository keeps the selection slot as a JSON blob under one Redis key.
type SelectionRepository struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewSelectionRepository stores under key with the given ttl; a zero ttl never expires.
func NewSelectionRepository(client redis.UniversalClient, key string, ttl time.Duration) *SelectionRepository {
	if key == "" {
		key = DefaultKey
	}

	return &SelectionRepository{client: client, key: key, ttl: ttl}
}

func (r *SelectionRepository) Load(ctx context.Context) ([]domain.SelectedSeatInfo, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.SelectedSeatInfo{}, nil
		}

		return nil, fmt.Errorf("failed to get selection %s: %w", r.key, err)
	}

	var seats []domain.SelectedSeatInfo
	if err := json.Unmarshal(data, &seats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal selection %s: %w", r.key, err)
	}

	return seats, nil
}

func (r *SelectionRepository) Save(ctx context.Context, seats []domain.SelectedSeatInfo) error {
	data, err := json.Marshal(seats)
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set selection %s: %w", r.key, err)
	}

	return nil
}
