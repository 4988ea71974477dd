package bracket

import (
	"fmt"

	"github.com/AdamBeresnev/class-match/internal/apperr"
	"github.com/AdamBeresnev/class-match/internal/league"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/utils"
	"github.com/google/uuid"
)

// seed picks a team by league and league rank.
type seed struct {
	league sport.League
	rank   int
}

type pairing struct {
	slot   Slot
	first  seed
	second seed
}

var fourTeamPairings = []pairing{
	{FourSemifinal1, seed{sport.LeagueA, 1}, seed{sport.LeagueB, 1}},
	{FourSemifinal2, seed{sport.LeagueC, 1}, seed{sport.LeagueD, 1}},
}

// Rank-1 teams meet a rank-2 team from another league in round one.
var eightTeamPairings = []pairing{
	{EightFirstRound1, seed{sport.LeagueA, 1}, seed{sport.LeagueB, 2}},
	{EightFirstRound2, seed{sport.LeagueC, 1}, seed{sport.LeagueD, 2}},
	{EightFirstRound3, seed{sport.LeagueB, 1}, seed{sport.LeagueC, 2}},
	{EightFirstRound4, seed{sport.LeagueD, 1}, seed{sport.LeagueA, 2}},
}

// Build seeds a full bracket for s from league standings. existing holds any bracket
// matches already stored for s; a non-empty slice means the bracket was built before.
func Build(s sport.Sport, existing []Match, standings map[sport.League][]league.Standing) ([]Match, error) {
	if !s.Competitive() {
		return nil, fmt.Errorf("%w: %s has no bracket", apperr.ErrInvalidArgument, s)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: bracket for %s", apperr.ErrAlreadyExists, s)
	}

	size := s.BracketSize()
	pairings := fourTeamPairings
	if size == 8 {
		pairings = eightTeamPairings
	}

	for _, l := range sport.Leagues {
		if len(standings[l]) == 0 {
			return nil, fmt.Errorf("%w: league %s of %s has no standings", apperr.ErrUnresolved, l, s)
		}
	}

	seeded := make(map[Slot]pairing, len(pairings))
	for _, p := range pairings {
		seeded[p.slot] = p
	}

	matches := make([]Match, 0, len(Topology(size)))
	for _, slot := range Topology(size) {
		m := Match{ID: uuid.New(), Sport: s, Slot: slot}
		if p, ok := seeded[slot]; ok {
			t1, err := pick(standings, p.first)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", s, slot, err)
			}
			t2, err := pick(standings, p.second)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", s, slot, err)
			}
			m.Team1ID, m.Team2ID = utils.Ptr(t1), utils.Ptr(t2)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func pick(standings map[sport.League][]league.Standing, sd seed) (int64, error) {
	table := standings[sd.league]
	if sd.rank > len(table) {
		return 0, fmt.Errorf("%w: league %s has no rank %d team", apperr.ErrUnresolved, sd.league, sd.rank)
	}
	return table[sd.rank-1].TeamID, nil
}
