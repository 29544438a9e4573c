package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/srgjo27/seat_selection/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const venueJSON = `{
  "venueId": "arena-01",
  "name": "Metropolis Arena",
  "map": { "width": 1024, "height": 768 },
  "sections": [
    {
      "id": "A",
      "label": "Lower Bowl A",
      "transform": { "x": 0, "y": 0, "scale": 1 },
      "rows": [
        {
          "index": 1,
          "seats": [
            { "id": "A-1-01", "col": 1, "x": 50, "y": 40, "priceTier": 1, "status": "available" },
            { "id": "A-1-02", "col": 2, "x": 80, "y": 40, "priceTier": 1, "status": "sold" }
          ]
        }
      ]
    }
  ]
}`

func parseVenue(t *testing.T) *domain.Venue {
	t.Helper()

	var v domain.Venue
	require.NoError(t, json.Unmarshal([]byte(venueJSON), &v))

	return &v
}

func TestVenue_Decode(t *testing.T) {
	v := parseVenue(t)

	assert.Equal(t, "arena-01", v.ID)
	assert.Equal(t, 1024.0, v.Map.Width)
	require.Len(t, v.Sections, 1)
	assert.Equal(t, 1.0, v.Sections[0].Transform.Scale)
	assert.Equal(t, domain.SeatSold, v.Sections[0].Rows[0].Seats[1].Status)
	assert.Equal(t, 2, v.SeatCount())
	assert.NoError(t, v.Validate())
}

func TestVenue_LocateSeat(t *testing.T) {
	v := parseVenue(t)

	info, err := v.LocateSeat("A-1-02")
	require.NoError(t, err)
	assert.Equal(t, "A", info.SectionID)
	assert.Equal(t, "Lower Bowl A", info.SectionLabel)
	assert.Equal(t, 1, info.RowIndex)
	assert.Equal(t, 2, info.Col)

	_, err = v.LocateSeat("B-1-01")
	assert.True(t, errors.Is(err, domain.ErrSeatNotFound))
}

func TestSelectedSeatInfo_IsSnapshot(t *testing.T) {
	v := parseVenue(t)

	info, err := v.LocateSeat("A-1-01")
	require.NoError(t, err)

	v.Sections[0].Label = "Renamed"
	v.Sections[0].Rows[0].Seats[0].Status = domain.SeatHeld

	assert.Equal(t, "Lower Bowl A", info.SectionLabel)
	assert.Equal(t, domain.SeatAvailable, info.Status)
}

func TestSelectedSeatInfo_FlatJSON(t *testing.T) {
	v := parseVenue(t)
	info, err := v.LocateSeat("A-1-01")
	require.NoError(t, err)

	data, err := json.Marshal(info)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"id", "col", "x", "y", "priceTier", "status", "sectionId", "sectionLabel", "rowIndex"} {
		assert.Contains(t, fields, key)
	}
	assert.Len(t, fields, 9)

	var back domain.SelectedSeatInfo
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, info, back)
}

func TestVenue_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *domain.Venue)
	}{
		{"missing venue id", func(v *domain.Venue) { v.ID = "" }},
		{"duplicate seat id", func(v *domain.Venue) {
			v.Sections[0].Rows[0].Seats[1].ID = "A-1-01"
		}},
		{"duplicate column", func(v *domain.Venue) {
			v.Sections[0].Rows[0].Seats[1].Col = 1
		}},
		{"duplicate row index", func(v *domain.Venue) {
			v.Sections[0].Rows = append(v.Sections[0].Rows, domain.Row{Index: 1})
		}},
		{"zero row index", func(v *domain.Venue) { v.Sections[0].Rows[0].Index = 0 }},
		{"unknown status", func(v *domain.Venue) {
			v.Sections[0].Rows[0].Seats[0].Status = "broken"
		}},
		{"duplicate seat id across sections", func(v *domain.Venue) {
			v.Sections = append(v.Sections, domain.Section{
				ID: "B",
				Rows: []domain.Row{{Index: 1, Seats: []domain.Seat{
					{ID: "A-1-01", Col: 1, Status: domain.SeatAvailable},
				}}},
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := parseVenue(t)
			tt.mutate(v)

			err := v.Validate()
			assert.True(t, errors.Is(err, domain.ErrInvalidVenue), "got %v", err)
		})
	}
}
