package domain

// SelectedSeatInfo is a seat snapshot carrying its section and row at the time it was
// created. It does not reference the venue, so it outlives venue reloads unchanged.
type SelectedSeatInfo struct {
	Seat
	SectionID    string `json:"sectionId"`
	SectionLabel string `json:"sectionLabel"`
	RowIndex     int    `json:"rowIndex"`
}

func NewSelectedSeatInfo(section Section, row Row, seat Seat) SelectedSeatInfo {
	return SelectedSeatInfo{
		Seat:         seat,
		SectionID:    section.ID,
		SectionLabel: section.Label,
		RowIndex:     row.Index,
	}
}

// AdjacentSeatsResult is one run of adjacent seats from a single row.
type AdjacentSeatsResult struct {
	Seats        []SelectedSeatInfo `json:"seats"`
	SectionID    string             `json:"sectionId"`
	SectionLabel string             `json:"sectionLabel"`
	RowIndex     int                `json:"rowIndex"`
}

// SeatIDs returns the ids of the run in row order.
func (r AdjacentSeatsResult) SeatIDs() []string {
	ids := make([]string, len(r.Seats))
	for i, s := range r.Seats {
		ids[i] = s.ID
	}

	return ids
}
