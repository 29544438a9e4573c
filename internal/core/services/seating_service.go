package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_selection/internal/core/domain"
	"github.com/srgjo27/seat_selection/internal/core/ports"
)

const MinAdjacentSeats = 2

type SelectionSummary struct {
	Seats             []domain.SelectedSeatInfo `json:"seats"`
	Count             int                       `json:"count"`
	MaxSeats          int                       `json:"max_seats"`
	RemainingCapacity int                       `json:"remaining_capacity"`
	CanSelectMore     bool                      `json:"can_select_more"`
	Subtotal          decimal.Decimal           `json:"subtotal"`
}

type SeatDetails struct {
	domain.SelectedSeatInfo
	Price    decimal.Decimal `json:"price"`
	Selected bool            `json:"selected"`
}

// SeatingService ties a loaded venue to a selection store and the adjacency search.
type SeatingService struct {
	venueRepo ports.VenueRepository
	store     *SelectionStore
	prices    domain.PriceTable
	logger    *slog.Logger

	mu    sync.RWMutex
	venue *domain.Venue
}

func NewSeatingService(venueRepo ports.VenueRepository, store *SelectionStore, prices domain.PriceTable, logger *slog.Logger) *SeatingService {
	if prices == nil {
		prices = domain.DefaultPriceTable()
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &SeatingService{
		venueRepo: venueRepo,
		store:     store,
		prices:    prices,
		logger:    logger,
	}
}

// LoadVenue fetches and validates a venue and makes it the current one.
// The selection is left untouched.
func (s *SeatingService) LoadVenue(ctx context.Context, venueID string) error {
	venue, err := s.venueRepo.GetVenue(ctx, venueID)
	if err != nil {
		return fmt.Errorf("load venue %s: %w", venueID, err)
	}

	if err := venue.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.venue = venue
	s.mu.Unlock()

	s.logger.Info("venue loaded", "venue_id", venue.ID, "sections", len(venue.Sections), "seats", venue.SeatCount())

	return nil
}

func (s *SeatingService) Venue() (*domain.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.venue == nil {
		return nil, domain.ErrVenueNotFound
	}

	return s.venue, nil
}

func (s *SeatingService) Summary() SelectionSummary {
	seats := s.store.Seats()
	capacity := s.store.Capacity()

	return SelectionSummary{
		Seats:             seats,
		Count:             len(seats),
		MaxSeats:          capacity,
		RemainingCapacity: capacity - len(seats),
		CanSelectMore:     len(seats) < capacity,
		Subtotal:          s.prices.Subtotal(seats),
	}
}

func (s *SeatingService) SeatDetails(seatID string) (*SeatDetails, error) {
	venue, err := s.Venue()
	if err != nil {
		return nil, err
	}

	info, err := venue.LocateSeat(seatID)
	if err != nil {
		return nil, err
	}

	return &SeatDetails{
		SelectedSeatInfo: info,
		Price:            s.prices.Price(info.PriceTier),
		Selected:         s.store.IsSelected(seatID),
	}, nil
}

// ToggleSeat flips a seat in or out of the selection. Deselecting is always allowed;
// selecting requires the seat to be available in the current venue.
func (s *SeatingService) ToggleSeat(ctx context.Context, seatID string) (SelectionSummary, error) {
	if s.store.Remove(ctx, seatID) {
		return s.Summary(), nil
	}

	venue, err := s.Venue()
	if err != nil {
		return SelectionSummary{}, err
	}

	info, err := venue.LocateSeat(seatID)
	if err != nil {
		return SelectionSummary{}, err
	}

	if !info.IsAvailable() {
		return SelectionSummary{}, fmt.Errorf("%w: %s is %s", domain.ErrSeatUnavailable, seatID, info.Status)
	}

	if !s.store.Add(ctx, info) {
		s.logger.Debug("toggle ignored", "seat_id", seatID, "selected", s.store.Len(), "capacity", s.store.Capacity())
	}

	return s.Summary(), nil
}

// CommitRun selects a group of seats, typically a search result. The group is refused
// as a whole when it does not fit in the remaining capacity. Seats already selected
// are kept even if their venue status has since changed.
func (s *SeatingService) CommitRun(ctx context.Context, seatIDs []string) (SelectionSummary, error) {
	venue, err := s.Venue()
	if err != nil {
		return SelectionSummary{}, err
	}

	seats := make([]domain.SelectedSeatInfo, 0, len(seatIDs))

	for _, id := range seatIDs {
		info, err := venue.LocateSeat(id)
		if err != nil {
			return SelectionSummary{}, err
		}

		if !info.IsAvailable() {
			if s.store.IsSelected(id) {
				continue
			}

			return SelectionSummary{}, fmt.Errorf("%w: %s is %s", domain.ErrSeatUnavailable, id, info.Status)
		}

		seats = append(seats, info)
	}

	if _, err := s.store.SelectAll(ctx, seats); err != nil {
		return SelectionSummary{}, err
	}

	return s.Summary(), nil
}

func (s *SeatingService) Clear(ctx context.Context) SelectionSummary {
	s.store.Clear(ctx)

	return s.Summary()
}

// FindAdjacent searches the current venue for runs of count seats that are not
// already selected. count must be at least two and fit in the remaining capacity.
func (s *SeatingService) FindAdjacent(count int) ([]domain.AdjacentSeatsResult, error) {
	venue, err := s.Venue()
	if err != nil {
		return nil, err
	}

	remaining := s.store.RemainingCapacity()
	if count < MinAdjacentSeats || count > remaining {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", domain.ErrInvalidSeatCount, count, MinAdjacentSeats, remaining)
	}

	results := FindAdjacent(venue, count, s.store.SelectedIDs())
	s.logger.Debug("adjacent search", "count", count, "results", len(results))

	return results, nil
}
