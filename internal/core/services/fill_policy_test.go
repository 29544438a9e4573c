package services_test

import (
	"errors"
	"testing"

	"github.com/srgjo27/seat_selection/internal/core/domain"
	"github.com/srgjo27/seat_selection/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixFill_StopsAtCapacity(t *testing.T) {
	current := selectedN(6)
	candidates := []domain.SelectedSeatInfo{selected("B-1-01", 1), selected("B-1-02", 1), selected("B-1-03", 1)}

	next := services.PrefixFill{}.Fill(current, candidates, 8)

	require.Len(t, next, 8)
	assert.Equal(t, []string{"B-1-01", "B-1-02"}, ids(next[6:]))
	assert.Len(t, current, 6, "current must not be modified")
}

func TestPrefixFill_SkipsAlreadySelectedAndDuplicates(t *testing.T) {
	current := selectedN(2)
	candidates := []domain.SelectedSeatInfo{current[0], selected("B-1-01", 1), selected("B-1-01", 1)}

	next := services.PrefixFill{}.Fill(current, candidates, 8)

	assert.Equal(t, []string{"A-1-01", "A-1-02", "B-1-01"}, ids(next))
}

func TestAllOrNothing_RejectsOverflow(t *testing.T) {
	current := selectedN(6)
	candidates := []domain.SelectedSeatInfo{selected("B-1-01", 1), selected("B-1-02", 1), selected("B-1-03", 1)}

	next := services.AllOrNothing{}.Fill(current, candidates, 8)

	assert.Equal(t, ids(current), ids(next))
}

func TestAllOrNothing_AcceptsWhenFits(t *testing.T) {
	current := selectedN(6)
	candidates := []domain.SelectedSeatInfo{current[5], selected("B-1-01", 1), selected("B-1-02", 1)}

	next := services.AllOrNothing{}.Fill(current, candidates, 8)

	require.Len(t, next, 8)
	assert.Equal(t, []string{"B-1-01", "B-1-02"}, ids(next[6:]))
}

func TestParseFillPolicy(t *testing.T) {
	p, err := services.ParseFillPolicy("")
	require.NoError(t, err)
	assert.Equal(t, services.PrefixFillName, p.Name())

	p, err = services.ParseFillPolicy("all-or-nothing")
	require.NoError(t, err)
	assert.Equal(t, services.AllOrNothingName, p.Name())

	_, err = services.ParseFillPolicy("best-fit")
	assert.True(t, errors.Is(err, domain.ErrUnknownFillPolicy))
}
