package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"
	"github.com/srgjo27/seat_selection/internal/core/domain"
	"github.com/srgjo27/seat_selection/internal/core/ports"
)

const DefaultMaxSeats = 8

// SelectionStore holds the seats a user has picked, bounded by a fixed capacity.
// The in-memory selection is authoritative; it is written to the storage slot after
// every change and storage failures are only logged.
type SelectionStore struct {
	mu       sync.RWMutex
	storage  ports.SelectionStorage
	policy   FillPolicy
	capacity int
	logger   *slog.Logger
	seats    []domain.SelectedSeatInfo
}

type Option func(*SelectionStore)

func WithCapacity(n int) Option {
	return func(s *SelectionStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}

func WithFillPolicy(p FillPolicy) Option {
	return func(s *SelectionStore) {
		if p != nil {
			s.policy = p
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *SelectionStore) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewSelectionStore(storage ports.SelectionStorage, opts ...Option) *SelectionStore {
	s := &SelectionStore{
		storage:  storage,
		policy:   PrefixFill{},
		capacity: DefaultMaxSeats,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Initialize restores the last saved selection. Any load failure leaves the
// selection empty.
func (s *SelectionStore) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seats = nil

	seats, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Warn("discarding stored selection", "error", err)
		return
	}

	// Stored data may come from an older capacity or a hand-edited slot.
	seats = lo.Filter(seats, func(seat domain.SelectedSeatInfo, _ int) bool { return seat.ID != "" })
	seats = lo.UniqBy(seats, func(seat domain.SelectedSeatInfo) string { return seat.ID })
	if len(seats) > s.capacity {
		s.logger.Warn("stored selection exceeds capacity, truncating", "stored", len(seats), "capacity", s.capacity)
		seats = seats[:s.capacity]
	}

	s.seats = seats
	s.logger.Debug("selection restored", "seats", len(seats))
}

// Toggle removes the seat if it is selected, otherwise appends it when there is room.
// A toggle on a full selection is a no-op.
func (s *SelectionStore) Toggle(ctx context.Context, seat domain.SelectedSeatInfo) []domain.SelectedSeatInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(seat.ID); i >= 0 {
		s.seats = slices.Delete(s.seats, i, i+1)
		s.persist(ctx)
		return s.snapshot()
	}

	if len(s.seats) >= s.capacity {
		s.logger.Debug("toggle ignored, selection full", "seat_id", seat.ID, "capacity", s.capacity)
		return s.snapshot()
	}

	s.seats = append(s.seats, seat)
	s.persist(ctx)

	return s.snapshot()
}

// SelectMultiple adds seats through the store's fill policy.
func (s *SelectionStore) SelectMultiple(ctx context.Context, seats []domain.SelectedSeatInfo) []domain.SelectedSeatInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.policy.Fill(s.seats, seats, s.capacity)
	if len(next) > s.capacity {
		next = next[:s.capacity]
	}

	if len(next) == len(s.seats) {
		return s.snapshot()
	}

	s.seats = next
	s.persist(ctx)

	return s.snapshot()
}

// Add appends the seat when it is not selected and there is room. It reports
// whether the selection changed.
func (s *SelectionStore) Add(ctx context.Context, seat domain.SelectedSeatInfo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(seat.ID) >= 0 || len(s.seats) >= s.capacity {
		return false
	}

	s.seats = append(s.seats, seat)
	s.persist(ctx)

	return true
}

// Remove drops the seat if it is selected and reports whether it was.
func (s *SelectionStore) Remove(ctx context.Context, seatID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(seatID)
	if i < 0 {
		return false
	}

	s.seats = slices.Delete(s.seats, i, i+1)
	s.persist(ctx)

	return true
}

// SelectAll adds every seat not yet selected, or none of them when they do not
// all fit. The capacity check and the change happen under one lock.
func (s *SelectionStore) SelectAll(ctx context.Context, seats []domain.SelectedSeatInfo) ([]domain.SelectedSeatInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := idSet(s.seats)
	fresh := lo.UniqBy(lo.Filter(seats, func(seat domain.SelectedSeatInfo, _ int) bool {
		_, ok := selected[seat.ID]
		return !ok
	}), func(seat domain.SelectedSeatInfo) string { return seat.ID })

	if remaining := s.capacity - len(s.seats); len(fresh) > remaining {
		return s.snapshot(), fmt.Errorf("%w: %d seats requested, %d remaining", domain.ErrCapacityExceeded, len(fresh), remaining)
	}

	if len(fresh) == 0 {
		return s.snapshot(), nil
	}

	s.seats = append(s.seats, fresh...)
	s.persist(ctx)

	return s.snapshot(), nil
}

func (s *SelectionStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seats = nil
	s.persist(ctx)
}

func (s *SelectionStore) IsSelected(seatID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.indexOf(seatID) >= 0
}

// Seats returns a copy of the selection in insertion order.
func (s *SelectionStore) Seats() []domain.SelectedSeatInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

// SelectedIDs returns the selected seat ids as a set, suitable as a search exclusion list.
func (s *SelectionStore) SelectedIDs() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return idSet(s.seats)
}

func (s *SelectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.seats)
}

func (s *SelectionStore) Capacity() int {
	return s.capacity
}

func (s *SelectionStore) CanSelectMore() bool {
	return s.Len() < s.capacity
}

func (s *SelectionStore) RemainingCapacity() int {
	return s.capacity - s.Len()
}

func (s *SelectionStore) Policy() FillPolicy {
	return s.policy
}

func (s *SelectionStore) indexOf(seatID string) int {
	return slices.IndexFunc(s.seats, func(seat domain.SelectedSeatInfo) bool {
		return seat.ID == seatID
	})
}

// snapshot never returns nil so an empty selection serializes as [].
func (s *SelectionStore) snapshot() []domain.SelectedSeatInfo {
	out := make([]domain.SelectedSeatInfo, len(s.seats))
	copy(out, s.seats)

	return out
}

func (s *SelectionStore) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.snapshot()); err != nil {
		s.logger.Error("failed to save selection", "seats", len(s.seats), "error", err)
	}
}
