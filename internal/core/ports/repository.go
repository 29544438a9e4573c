package ports

import (
	"context"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

// SelectionStorage is the durable slot behind a selection. Load returns an empty
// slice when nothing has been saved yet.
type SelectionStorage interface {
	Load(ctx context.Context) ([]domain.SelectedSeatInfo, error)
	Save(ctx context.Context, seats []domain.SelectedSeatInfo) error
}

type VenueRepository interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
}
