package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

type VenueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) GetVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	query := `
	SELECT id, name, map_width, map_height
	FROM venues
	WHERE id = $1
	`

	var venue domain.Venue

	err := r.db.QueryRowContext(ctx, query, venueID).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Map.Width,
		&venue.Map.Height,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrVenueNotFound, venueID)
		}

		return nil, err
	}

	sections, err := r.getSections(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if err := r.fillRows(ctx, venueID, sections); err != nil {
		return nil, err
	}

	if err := r.fillSeats(ctx, venueID, sections); err != nil {
		return nil, err
	}

	venue.Sections = sections

	return &venue, nil
}

func (r *VenueRepository) getSections(ctx context.Context, venueID string) ([]domain.Section, error) {
	query := `
	SELECT id, label, offset_x, offset_y, scale
	FROM venue_sections
	WHERE venue_id = $1
	ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var s domain.Section
		if err := rows.Scan(&s.ID, &s.Label, &s.Transform.X, &s.Transform.Y, &s.Transform.Scale); err != nil {
			return nil, err
		}

		sections = append(sections, s)
	}

	return sections, rows.Err()
}

// fillRows rebuilds each section's rows in stored order, including rows without seats.
func (r *VenueRepository) fillRows(ctx context.Context, venueID string, sections []domain.Section) error {
	query := `
	SELECT section_id, row_index
	FROM venue_rows
	WHERE venue_id = $1
	ORDER BY section_id, position
	`

	rows, err := r.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return err
	}

	defer rows.Close()

	bySection := make(map[string]int, len(sections))
	for i := range sections {
		bySection[sections[i].ID] = i
	}

	for rows.Next() {
		var sectionID string
		var rowIndex int

		if err := rows.Scan(&sectionID, &rowIndex); err != nil {
			return err
		}

		i, ok := bySection[sectionID]
		if !ok {
			return fmt.Errorf("%w: row %d references unknown section %s", domain.ErrInvalidVenue, rowIndex, sectionID)
		}

		sections[i].Rows = append(sections[i].Rows, domain.Row{Index: rowIndex})
	}

	return rows.Err()
}

type rowKey struct {
	sectionID string
	rowIndex  int
}

// fillSeats attaches seats to the rows built by fillRows, in stored seat order.
func (r *VenueRepository) fillSeats(ctx context.Context, venueID string, sections []domain.Section) error {
	query := `
	SELECT section_id, row_index, id, col, x, y, price_tier, status
	FROM venue_seats
	WHERE venue_id = $1
	ORDER BY section_id, row_index, position
	`

	rows, err := r.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return err
	}

	defer rows.Close()

	byRow := make(map[rowKey]*domain.Row)
	for i := range sections {
		for j := range sections[i].Rows {
			byRow[rowKey{sections[i].ID, sections[i].Rows[j].Index}] = &sections[i].Rows[j]
		}
	}

	for rows.Next() {
		var key rowKey
		var seat domain.Seat

		if err := rows.Scan(&key.sectionID, &key.rowIndex, &seat.ID, &seat.Col, &seat.X, &seat.Y, &seat.PriceTier, &seat.Status); err != nil {
			return err
		}

		row, ok := byRow[key]
		if !ok {
			return fmt.Errorf("%w: seat %s references unknown row %d in section %s", domain.ErrInvalidVenue, seat.ID, key.rowIndex, key.sectionID)
		}

		row.Seats = append(row.Seats, seat)
	}

	return rows.Err()
}

// SaveVenue replaces a venue and all of its sections and seats.
func (r *VenueRepository) SaveVenue(ctx context.Context, venue *domain.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, venue.ID); err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venue.ID, err)
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO venues (id, name, map_width, map_height)
	VALUES ($1, $2, $3, $4)
	`, venue.ID, venue.Name, venue.Map.Width, venue.Map.Height)
	if err != nil {
		return fmt.Errorf("failed to insert venue header: %w", err)
	}

	sectionStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO venue_sections (venue_id, id, label, position, offset_x, offset_y, scale)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare section statement: %w", err)
	}

	defer sectionStmt.Close()

	rowStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO venue_rows (venue_id, section_id, row_index, position)
	VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare row statement: %w", err)
	}

	defer rowStmt.Close()

	seatStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO venue_seats (venue_id, id, section_id, row_index, position, col, x, y, price_tier, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare seat statement: %w", err)
	}

	defer seatStmt.Close()

	for i, section := range venue.Sections {
		_, err := sectionStmt.ExecContext(ctx, venue.ID, section.ID, section.Label, i, section.Transform.X, section.Transform.Y, section.Transform.Scale)
		if err != nil {
			return fmt.Errorf("failed to insert section %s: %w", section.ID, err)
		}

		for rowPos, row := range section.Rows {
			if _, err := rowStmt.ExecContext(ctx, venue.ID, section.ID, row.Index, rowPos); err != nil {
				return fmt.Errorf("failed to insert row %d of section %s: %w", row.Index, section.ID, err)
			}

			for pos, seat := range row.Seats {
				_, err := seatStmt.ExecContext(ctx, venue.ID, seat.ID, section.ID, row.Index, pos, seat.Col, seat.X, seat.Y, seat.PriceTier, seat.Status)
				if err != nil {
					return fmt.Errorf("failed to insert seat %s: %w", seat.ID, err)
				}
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
