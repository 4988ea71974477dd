package sport

import (
	"testing"

	"github.com/AdamBeresnev/class-match/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSportAttributes(t *testing.T) {
	testCases := []struct {
		sport       Sport
		bracketSize int
		scoring     ScoringMode
		competitive bool
	}{
		{Volleyball, 4, ScoringPoints, true},
		{MenBasketball, 4, ScoringPoints, true},
		{WomenBasketball, 4, ScoringPoints, true},
		{Softball, 4, ScoringPoints, true},
		{Soccer, 4, ScoringPoints, true},
		{TableTennis, 8, ScoringSets, true},
		{Badminton, 8, ScoringSets, true},
		{Extra, 0, ScoringPoints, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.sport), func(t *testing.T) {
			assert.True(t, tc.sport.Valid())
			assert.Equal(t, tc.bracketSize, tc.sport.BracketSize())
			assert.Equal(t, tc.scoring, tc.sport.ScoringMode())
			assert.Equal(t, tc.competitive, tc.sport.Competitive())
		})
	}
}

func TestAllSportsAreDistinct(t *testing.T) {
	seen := make(map[Sport]bool)
	for _, s := range All {
		assert.False(t, seen[s], "duplicate sport %q", s)
		seen[s] = true
	}
	assert.Len(t, seen, 8)
	assert.Len(t, Competitive(), 7)
	assert.NotContains(t, Competitive(), Extra)
}

func TestParse(t *testing.T) {
	s, err := Parse("サッカー")
	require.NoError(t, err)
	assert.Equal(t, Soccer, s)

	_, err = Parse("curling")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	l, err := ParseLeague("C")
	require.NoError(t, err)
	assert.Equal(t, LeagueC, l)

	_, err = ParseLeague("E")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
