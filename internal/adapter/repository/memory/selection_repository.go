package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

// SelectionRepository keeps the selection slot in process memory.
type SelectionRepository struct {
	mu    sync.Mutex
	seats []domain.SelectedSeatInfo
	saves int
}

func NewSelectionRepository(seats ...domain.SelectedSeatInfo) *SelectionRepository {
	return &SelectionRepository{seats: slices.Clone(seats)}
}

func (r *SelectionRepository) Load(_ context.Context) ([]domain.SelectedSeatInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.seats), nil
}

func (r *SelectionRepository) Save(_ context.Context, seats []domain.SelectedSeatInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seats = slices.Clone(seats)
	r.saves++

	return nil
}

// Saves reports how many times Save has been called.
func (r *SelectionRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saves
}
