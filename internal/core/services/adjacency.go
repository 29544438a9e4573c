package services

import "github.com/srgjo27/seat_selection/internal/core/domain"

// FindAdjacent returns every run of count consecutive seats, in row sequence order, that
// are available and not in excluded. Overlapping runs are all reported: a row of five free
// seats yields three runs of three. Results are ordered by section, row and start offset.
// A count that no row can satisfy, including count <= 0, yields an empty result.
func FindAdjacent(venue *domain.Venue, count int, excluded map[string]struct{}) []domain.AdjacentSeatsResult {
	results := []domain.AdjacentSeatsResult{}
	if venue == nil || count <= 0 {
		return results
	}

	for _, section := range venue.Sections {
		for _, row := range section.Rows {
			results = appendRowRuns(results, section, row, count, excluded)
		}
	}

	return results
}

func appendRowRuns(results []domain.AdjacentSeatsResult, section domain.Section, row domain.Row, count int, excluded map[string]struct{}) []domain.AdjacentSeatsResult {
	if len(row.Seats) < count {
		return results
	}

	// streak is the number of eligible seats ending at position i.
	streak := 0
	for i := range row.Seats {
		if !eligible(&row.Seats[i], excluded) {
			streak = 0
			continue
		}

		streak++
		if streak < count {
			continue
		}

		start := i - count + 1
		seats := make([]domain.SelectedSeatInfo, count)
		for j := range count {
			seats[j] = domain.NewSelectedSeatInfo(section, row, row.Seats[start+j])
		}

		results = append(results, domain.AdjacentSeatsResult{
			Seats:        seats,
			SectionID:    section.ID,
			SectionLabel: section.Label,
			RowIndex:     row.Index,
		})
	}

	return results
}

func eligible(seat *domain.Seat, excluded map[string]struct{}) bool {
	if !seat.IsAvailable() {
		return false
	}

	_, skip := excluded[seat.ID]

	return !skip
}
