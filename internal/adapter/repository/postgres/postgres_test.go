package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/lib/pq"
	"github.com/srgjo27/seat_selection/internal/adapter/repository/postgres"
	"github.com/srgjo27/seat_selection/internal/core/domain"
	"github.com/srgjo27/seat_selection/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("seat_selection"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.EnsureSchema(ctx, db))

	return db
}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:   "arena-01",
		Name: "Metropolis Arena",
		Map:  domain.MapSize{Width: 1024, Height: 768},
		Sections: []domain.Section{
			{
				ID:        "B",
				Label:     "Section B",
				Transform: domain.Transform{X: 200, Y: 0, Scale: 1},
				Rows: []domain.Row{
					{Index: 1, Seats: []domain.Seat{
						{ID: "B-1-03", Col: 3, X: 10, Y: 10, PriceTier: 2, Status: domain.SeatAvailable},
						{ID: "B-1-01", Col: 1, X: 35, Y: 10, PriceTier: 2, Status: domain.SeatSold},
					}},
				},
			},
			{
				ID:        "A",
				Label:     "Section A",
				Transform: domain.Transform{Scale: 0.5},
				Rows: []domain.Row{
					{Index: 1, Seats: []domain.Seat{
						{ID: "A-1-01", Col: 1, X: 10, Y: 10, PriceTier: 1, Status: domain.SeatAvailable},
					}},
					{Index: 2, Seats: []domain.Seat{
						{ID: "A-2-01", Col: 1, X: 10, Y: 35, PriceTier: 1, Status: domain.SeatHeld},
					}},
				},
			},
		},
	}
}

func TestVenueRepository_SaveAndGet(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewVenueRepository(db)

	require.NoError(t, repo.SaveVenue(ctx, testVenue()))
	// Saving again replaces the venue.
	require.NoError(t, repo.SaveVenue(ctx, testVenue()))

	got, err := repo.GetVenue(ctx, "arena-01")
	require.NoError(t, err)
	assert.Equal(t, testVenue(), got)

	_, err = repo.GetVenue(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrVenueNotFound))
}

func TestVenueRepository_KeepsRowOrderAndEmptyRows(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewVenueRepository(db)

	venue := &domain.Venue{
		ID:   "balcony-01",
		Name: "Balcony",
		Map:  domain.MapSize{Width: 512, Height: 512},
		Sections: []domain.Section{{
			ID:        "C",
			Label:     "Balcony C",
			Transform: domain.Transform{Scale: 1},
			Rows: []domain.Row{
				{Index: 3, Seats: []domain.Seat{
					{ID: "C-3-01", Col: 1, PriceTier: 3, Status: domain.SeatAvailable},
					{ID: "C-3-02", Col: 2, PriceTier: 3, Status: domain.SeatAvailable},
				}},
				{Index: 2},
				{Index: 1, Seats: []domain.Seat{
					{ID: "C-1-01", Col: 1, PriceTier: 2, Status: domain.SeatAvailable},
					{ID: "C-1-02", Col: 2, PriceTier: 2, Status: domain.SeatAvailable},
				}},
			},
		}},
	}
	require.NoError(t, repo.SaveVenue(ctx, venue))

	got, err := repo.GetVenue(ctx, "balcony-01")
	require.NoError(t, err)
	assert.Equal(t, venue, got)

	results := services.FindAdjacent(got, 2, nil)
	require.Len(t, results, 2)
	assert.Equal(t, 3, results[0].RowIndex)
	assert.Equal(t, 1, results[1].RowIndex)
}

func TestSelectionRepository_SaveAndLoad(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewSelectionRepository(db, "seating-map-selection")

	seats, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, seats)

	stored := []domain.SelectedSeatInfo{
		{Seat: domain.Seat{ID: "A-1-01", Col: 1, X: 10, Y: 10, PriceTier: 1, Status: domain.SeatAvailable}, SectionID: "A", SectionLabel: "Section A", RowIndex: 1},
	}
	require.NoError(t, repo.Save(ctx, stored))
	require.NoError(t, repo.Save(ctx, stored))

	seats, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, seats)

	_, err = db.ExecContext(ctx, `UPDATE selection_slots SET payload = '{"id": 1}' WHERE key = $1`, "seating-map-selection")
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	assert.Error(t, err)
}
