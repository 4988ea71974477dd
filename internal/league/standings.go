package league

import (
	"sort"

	"github.com/AdamBeresnev/class-match/internal/sport"
)

const (
	winPoints = 2
	tiePoints = 1
)

// Points awarded by final league rank. Ranks without an entry earn nothing.
var rankPoints = map[int]int{1: 12, 2: 10, 3: 8, 4: 6, 5: 4}

func PointsForRank(rank int) int {
	return rankPoints[rank]
}

// Standing is one team's computed row in a league table.
type Standing struct {
	Rank         int    `json:"rank"`
	TeamID       int64  `json:"class_id"`
	Name         string `json:"class_name"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Ties         int    `json:"ties"`
	SetsWon      int    `json:"sets_won_points"`
	Points       int    `json:"points"`
	LeaguePoints int    `json:"league_points"`
}

// Standings ranks the teams of one league. Only finished matches score; unfinished ones just
// make their participants show up. An empty slice means the league has no matches yet.
func Standings(s sport.Sport, matches []Match, names map[int64]string) []Standing {
	if len(matches) == 0 {
		return []Standing{}
	}

	rows := make(map[int64]*Standing)
	row := func(id int64) *Standing {
		st, ok := rows[id]
		if !ok {
			st = &Standing{TeamID: id, Name: names[id]}
			rows[id] = st
		}
		return st
	}

	for _, m := range matches {
		t1, t2 := row(m.Team1ID), row(m.Team2ID)
		if !m.Finished {
			continue
		}

		t1.SetsWon += m.Sets1
		t2.SetsWon += m.Sets2

		a, b := m.deciding(s)
		switch {
		case a > b:
			t1.Wins++
			t1.Points += winPoints
			t2.Losses++
		case b > a:
			t2.Wins++
			t2.Points += winPoints
			t1.Losses++
		default:
			t1.Ties++
			t2.Ties++
			t1.Points += tiePoints
			t2.Points += tiePoints
		}
	}

	table := make([]Standing, 0, len(rows))
	for _, st := range rows {
		table = append(table, *st)
	}
	sort.Slice(table, func(i, j int) bool { return table[i].TeamID < table[j].TeamID })
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		return table[i].SetsWon > table[j].SetsWon
	})

	// Single pass over adjacent ties. Cyclic head-to-head results among three or more teams
	// are left as they fall.
	for i := 0; i+1 < len(table); i++ {
		upper, lower := table[i], table[i+1]
		if upper.Points != lower.Points || upper.SetsWon != lower.SetsWon {
			continue
		}
		if w := headToHeadWinner(s, matches, upper.TeamID, lower.TeamID); w != nil && *w == lower.TeamID {
			table[i], table[i+1] = lower, upper
		}
	}

	for i := range table {
		table[i].Rank = i + 1
		table[i].LeaguePoints = PointsForRank(i + 1)
	}
	return table
}

func headToHeadWinner(s sport.Sport, matches []Match, a, b int64) *int64 {
	want := NewPair(a, b)
	for _, m := range matches {
		if m.Finished && m.Pair() == want {
			return m.decidedWinner(s)
		}
	}
	return nil
}
