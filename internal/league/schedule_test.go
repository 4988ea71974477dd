package league

import (
	"fmt"
	"testing"

	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoundRobinOrder(t *testing.T) {
	pairs := GenerateRoundRobin([]int64{1, 2, 3, 4})

	expected := []Pair{
		{1, 4}, {1, 3}, {1, 2},
		{2, 3}, {2, 4}, {3, 4},
	}
	assert.Equal(t, expected, pairs)
}

func TestGenerateRoundRobinCoverage(t *testing.T) {
	for n := 0; n <= 9; n++ {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			ids := make([]int64, 0, n)
			for i := 0; i < n; i++ {
				// Deliberately unsorted ids.
				ids = append(ids, int64(100-i*7))
			}

			pairs := GenerateRoundRobin(ids)

			expected := n * (n - 1) / 2
			require.Len(t, pairs, expected)

			seen := make(map[Pair]bool)
			appearances := make(map[int64]int)
			for _, p := range pairs {
				assert.Less(t, p.Team1ID, p.Team2ID, "pair must be canonical")
				assert.False(t, seen[p], "pair %v generated twice", p)
				seen[p] = true
				appearances[p.Team1ID]++
				appearances[p.Team2ID]++
			}

			for _, id := range ids {
				assert.Equal(t, n-1, appearances[id], "team %d", id)
			}
		})
	}
}

func TestGenerateRoundRobinCollapsesDuplicates(t *testing.T) {
	pairs := GenerateRoundRobin([]int64{5, 5, 6})
	assert.Equal(t, []Pair{{5, 6}}, pairs)
}

func TestGenerateRoundRobinDoesNotMutateInput(t *testing.T) {
	ids := []int64{3, 1, 2}
	GenerateRoundRobin(ids)
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestMissingPairs(t *testing.T) {
	generated := GenerateRoundRobin([]int64{1, 2, 3, 4})

	existing := []Match{
		{Sport: sport.Soccer, League: sport.LeagueA, Team1ID: 4, Team2ID: 1},
		{Sport: sport.Soccer, League: sport.LeagueA, Team1ID: 2, Team2ID: 3},
	}

	missing := MissingPairs(generated, existing)
	assert.Equal(t, []Pair{{1, 3}, {1, 2}, {2, 4}, {3, 4}}, missing)

	// Once everything exists, nothing is left to create.
	for _, p := range missing {
		existing = append(existing, Match{Team1ID: p.Team1ID, Team2ID: p.Team2ID})
	}
	assert.Empty(t, MissingPairs(generated, existing))
}
