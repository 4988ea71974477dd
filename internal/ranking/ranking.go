// Package ranking rolls league and bracket results of every sport up into one leaderboard.
package ranking

import (
	"sort"

	"github.com/AdamBeresnev/class-match/internal/bracket"
	"github.com/AdamBeresnev/class-match/internal/league"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/team"
)

// Bracket placement points.
const (
	ChampionPoints   = 10
	RunnerUpPoints   = 8
	ThirdPlacePoints = 6
	FourthPoints     = 4
)

// LeagueData is every match of one league.
type LeagueData struct {
	Sport   sport.Sport
	League  sport.League
	Matches []league.Match
}

// BracketData is every match of one sport's bracket.
type BracketData struct {
	Sport   sport.Sport
	Matches []bracket.Match
}

type TotalRanking struct {
	Rank          int                 `json:"rank"`
	TeamID        int64               `json:"class_id"`
	Name          string              `json:"class_name"`
	TotalPoints   int                 `json:"total_points"`
	LeaguePoints  map[sport.Sport]int `json:"league_points_details"`
	BracketPoints map[sport.Sport]int `json:"tournament_points_details"`
}

// TotalRankings scores every team in teams. A league only counts once all of its matches are
// finished. Teams with equal totals keep the order they have in teams.
func TotalRankings(teams []team.Team, leagues []LeagueData, brackets []BracketData) []TotalRanking {
	rows := make([]TotalRanking, len(teams))
	byID := make(map[int64]*TotalRanking, len(teams))
	for i, t := range teams {
		rows[i] = TotalRanking{
			TeamID:        t.ID,
			Name:          t.Name,
			LeaguePoints:  map[sport.Sport]int{},
			BracketPoints: map[sport.Sport]int{},
		}
		byID[t.ID] = &rows[i]
	}

	for _, ld := range leagues {
		if !ld.Sport.Competitive() || !league.AllFinished(ld.Matches) {
			continue
		}
		for _, st := range league.Standings(ld.Sport, ld.Matches, nil) {
			if row, ok := byID[st.TeamID]; ok {
				row.LeaguePoints[ld.Sport] += st.LeaguePoints
				row.TotalPoints += st.LeaguePoints
			}
		}
	}

	for _, bd := range brackets {
		if !bd.Sport.Competitive() {
			continue
		}
		for _, m := range bd.Matches {
			switch {
			case m.Slot.IsFinal():
				award(byID, bd.Sport, m, ChampionPoints, RunnerUpPoints)
			case m.Slot.IsThirdPlace():
				award(byID, bd.Sport, m, ThirdPlacePoints, FourthPoints)
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPoints > rows[j].TotalPoints
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func award(byID map[int64]*TotalRanking, s sport.Sport, m bracket.Match, winnerPoints, loserPoints int) {
	if !m.Finished || m.WinnerID == nil {
		return
	}
	if row, ok := byID[*m.WinnerID]; ok {
		row.BracketPoints[s] += winnerPoints
		row.TotalPoints += winnerPoints
	}
	if loser := m.Loser(); loser != nil {
		if row, ok := byID[*loser]; ok {
			row.BracketPoints[s] += loserPoints
			row.TotalPoints += loserPoints
		}
	}
}

// Paginate returns at most limit rows starting at offset. A non-positive limit means no limit.
func Paginate[T any](rows []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}
	end := len(rows)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return rows[offset:end]
}
