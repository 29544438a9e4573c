package services

import (
	"fmt"
	"slices"

	"github.com/srgjo27/seat_selection/internal/core/domain"
)

const (
	PrefixFillName   = "prefix-fill"
	AllOrNothingName = "all-or-nothing"
)

// FillPolicy decides which candidates join a selection when several seats are offered
// at once. Fill must not modify current and must never return more than capacity seats.
type FillPolicy interface {
	Name() string
	Fill(current, candidates []domain.SelectedSeatInfo, capacity int) []domain.SelectedSeatInfo
}

// PrefixFill accepts candidates in order until the selection is full and drops the rest.
// Candidates already selected are skipped.
type PrefixFill struct{}

func (PrefixFill) Name() string { return PrefixFillName }

func (PrefixFill) Fill(current, candidates []domain.SelectedSeatInfo, capacity int) []domain.SelectedSeatInfo {
	next := slices.Clone(current)
	selected := idSet(current)

	for _, seat := range candidates {
		if _, ok := selected[seat.ID]; ok {
			continue
		}

		if len(next) >= capacity {
			continue
		}

		next = append(next, seat)
		selected[seat.ID] = struct{}{}
	}

	return next
}

// AllOrNothing accepts every new candidate or none of them.
type AllOrNothing struct{}

func (AllOrNothing) Name() string { return AllOrNothingName }

func (AllOrNothing) Fill(current, candidates []domain.SelectedSeatInfo, capacity int) []domain.SelectedSeatInfo {
	selected := idSet(current)
	var fresh []domain.SelectedSeatInfo

	for _, seat := range candidates {
		if _, ok := selected[seat.ID]; ok {
			continue
		}

		fresh = append(fresh, seat)
		selected[seat.ID] = struct{}{}
	}

	if len(current)+len(fresh) > capacity {
		return slices.Clone(current)
	}

	return append(slices.Clone(current), fresh...)
}

func ParseFillPolicy(name string) (FillPolicy, error) {
	switch name {
	case "", PrefixFillName:
		return PrefixFill{}, nil
	case AllOrNothingName:
		return AllOrNothing{}, nil
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFillPolicy, name)
}

func idSet(seats []domain.SelectedSeatInfo) map[string]struct{} {
	set := make(map[string]struct{}, len(seats))
	for _, s := range seats {
		set[s.ID] = struct{}{}
	}

	return set
}
