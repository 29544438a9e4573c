package services_test

import (
	"fmt"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

const (
	A = domain.SeatAvailable
	R = domain.SeatReserved
	S = domain.SeatSold
	H = domain.SeatHeld
)

// newRow builds a row whose seats are named <section>-<row>-<col>, cols starting at 1.
func newRow(sectionID string, index int, statuses ...domain.SeatStatus) domain.Row {
	row := domain.Row{Index: index}
	for i, status := range statuses {
		row.Seats = append(row.Seats, domain.Seat{
			ID:        fmt.Sprintf("%s-%d-%02d", sectionID, index, i+1),
			Col:       i + 1,
			X:         float64(100 + 25*i),
			Y:         float64(100 + 25*index),
			PriceTier: i%3 + 1,
			Status:    status,
		})
	}

	return row
}

func newSection(id string, rows ...domain.Row) domain.Section {
	return domain.Section{
		ID:        id,
		Label:     "Section " + id,
		Transform: domain.Transform{Scale: 1},
		Rows:      rows,
	}
}

func newVenue(sections ...domain.Section) *domain.Venue {
	return &domain.Venue{
		ID:       "test-venue",
		Name:     "Test Arena",
		Map:      domain.MapSize{Width: 1024, Height: 768},
		Sections: sections,
	}
}

func selected(id string, tier int) domain.SelectedSeatInfo {
	return domain.SelectedSeatInfo{
		Seat: domain.Seat{
			ID:        id,
			Col:       1,
			X:         100,
			Y:         100,
			PriceTier: tier,
			Status:    domain.SeatAvailable,
		},
		SectionID:    "A",
		SectionLabel: "Lower Bowl A",
		RowIndex:     1,
	}
}

func selectedN(n int) []domain.SelectedSeatInfo {
	seats := make([]domain.SelectedSeatInfo, n)
	for i := range seats {
		seats[i] = selected(fmt.Sprintf("A-1-%02d", i+1), 1)
	}

	return seats
}

func ids(seats []domain.SelectedSeatInfo) []string {
	out := make([]string, len(seats))
	for i, s := range seats {
		out[i] = s.ID
	}

	return out
}
