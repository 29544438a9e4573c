package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

// VenueRepository reads a venue document from a JSON file. When venueID is not empty it
// must match the document's venueId.
type VenueRepository struct {
	path string
}

func NewVenueRepository(path string) *VenueRepository {
	return &VenueRepository{path: path}
}

func (r *VenueRepository) GetVenue(_ context.Context, venueID string) (*domain.Venue, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrVenueNotFound, r.path)
		}

		return nil, err
	}

	defer f.Close()

	var venue domain.Venue
	if err := json.NewDecoder(f).Decode(&venue); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidVenue, r.path, err)
	}

	if venueID != "" && venue.ID != venueID {
		return nil, fmt.Errorf("%w: %s holds venue %s", domain.ErrVenueNotFound, r.path, venue.ID)
	}

	return &venue, nil
}
