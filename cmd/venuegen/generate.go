package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

const maxSections = 26

// statusWeights is sampled uniformly, so available seats come up four times
// as often as each of the other statuses.
var statusWeights = []domain.SeatStatus{
	domain.SeatAvailable,
	domain.SeatAvailable,
	domain.SeatAvailable,
	domain.SeatAvailable,
	domain.SeatReserved,
	domain.SeatSold,
	domain.SeatHeld,
}

var tierWeights = []int{1, 1, 1, 2, 2, 3}

type layout struct {
	VenueID     string
	Name        string
	Sections    int
	Rows        int
	SeatsPerRow int
}

func (l layout) validate() error {
	if l.Sections < 1 || l.Sections > maxSections {
		return fmt.Errorf("sections must be between 1 and %d, got %d", maxSections, l.Sections)
	}

	if l.Rows < 1 {
		return fmt.Errorf("rows must be positive, got %d", l.Rows)
	}

	if l.SeatsPerRow < 1 {
		return fmt.Errorf("seats per row must be positive, got %d", l.SeatsPerRow)
	}

	if l.VenueID == "" {
		return fmt.Errorf("venue id is required")
	}

	return nil
}

// generateVenue lays sections out five to a band. Seat ids follow
// <section>-<row>-<col>, col zero padded to two digits.
func generateVenue(l layout, rng *rand.Rand) (*domain.Venue, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	sections := make([]domain.Section, 0, l.Sections)

	for s := 0; s < l.Sections; s++ {
		sectionID := string(rune('A' + s))
		sectionX := float64((s % 5) * 200)
		sectionY := float64((s / 5) * 400)

		rows := make([]domain.Row, 0, l.Rows)
		for r := 0; r < l.Rows; r++ {
			seats := make([]domain.Seat, 0, l.SeatsPerRow)
			for c := 0; c < l.SeatsPerRow; c++ {
				seats = append(seats, domain.Seat{
					ID:        fmt.Sprintf("%s-%d-%02d", sectionID, r+1, c+1),
					Col:       c + 1,
					X:         sectionX + 20 + float64(c*25),
					Y:         sectionY + 20 + float64(r*25),
					PriceTier: tierWeights[rng.IntN(len(tierWeights))],
					Status:    statusWeights[rng.IntN(len(statusWeights))],
				})
			}

			rows = append(rows, domain.Row{Index: r + 1, Seats: seats})
		}

		sections = append(sections, domain.Section{
			ID:        sectionID,
			Label:     "Section " + sectionID,
			Transform: domain.Transform{Scale: 1},
			Rows:      rows,
		})
	}

	venue := &domain.Venue{
		ID:       l.VenueID,
		Name:     l.Name,
		Map:      domain.MapSize{Width: 2048, Height: 2048},
		Sections: sections,
	}

	if err := venue.Validate(); err != nil {
		return nil, err
	}

	return venue, nil
}
