package domain

import (
	"fmt"

	"github.com/samber/lo"
)

type MapSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Venue is read-only once loaded. Nothing in core mutates it.
type Venue struct {
	ID       string    `json:"venueId"`
	Name     string    `json:"name"`
	Map      MapSize   `json:"map"`
	Sections []Section `json:"sections"`
}

// LocateSeat finds a seat by id and returns it enriched with its section and row.
func (v *Venue) LocateSeat(seatID string) (SelectedSeatInfo, error) {
	for _, section := range v.Sections {
		for _, row := range section.Rows {
			for _, seat := range row.Seats {
				if seat.ID == seatID {
					return NewSelectedSeatInfo(section, row, seat), nil
				}
			}
		}
	}

	return SelectedSeatInfo{}, fmt.Errorf("%w: %s", ErrSeatNotFound, seatID)
}

// SeatCount returns the total number of seats across all sections.
func (v *Venue) SeatCount() int {
	return lo.SumBy(v.Sections, func(s Section) int {
		return lo.SumBy(s.Rows, func(r Row) int { return len(r.Seats) })
	})
}

// Validate checks the structural invariants the rest of the system relies on:
// seat ids unique venue-wide, row indexes unique per section, columns unique per row
// and a known status on every seat.
func (v *Venue) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("%w: missing venue id", ErrInvalidVenue)
	}

	seatIDs := make(map[string]struct{}, v.SeatCount())

	for _, section := range v.Sections {
		if section.ID == "" {
			return fmt.Errorf("%w: section without id", ErrInvalidVenue)
		}

		rowIndexes := make(map[int]struct{}, len(section.Rows))

		for _, row := range section.Rows {
			if row.Index < 1 {
				return fmt.Errorf("%w: section %s has row index %d", ErrInvalidVenue, section.ID, row.Index)
			}

			if _, dup := rowIndexes[row.Index]; dup {
				return fmt.Errorf("%w: section %s repeats row %d", ErrInvalidVenue, section.ID, row.Index)
			}
			rowIndexes[row.Index] = struct{}{}

			cols := make(map[int]struct{}, len(row.Seats))

			for _, seat := range row.Seats {
				if seat.ID == "" {
					return fmt.Errorf("%w: seat without id in section %s row %d", ErrInvalidVenue, section.ID, row.Index)
				}

				if _, dup := seatIDs[seat.ID]; dup {
					return fmt.Errorf("%w: duplicate seat id %s", ErrInvalidVenue, seat.ID)
				}
				seatIDs[seat.ID] = struct{}{}

				if _, dup := cols[seat.Col]; dup {
					return fmt.Errorf("%w: section %s row %d repeats column %d", ErrInvalidVenue, section.ID, row.Index, seat.Col)
				}
				cols[seat.Col] = struct{}{}

				if !seat.Status.Valid() {
					return fmt.Errorf("%w: seat %s has status %q", ErrInvalidVenue, seat.ID, seat.Status)
				}
			}
		}
	}

	return nil
}
