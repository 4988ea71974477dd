package service

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/class-match/internal/bracket"
	"github.com/AdamBeresnev/class-match/internal/ranking"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalRankingsService(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	idle, err := s.teams.CreateTeam(ctx, "idle")
	require.NoError(t, err)

	teams := s.populate(t, sport.Volleyball, 2)

	rows, err := s.rankings.TotalRankings(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 9)
	for _, r := range rows {
		assert.Zero(t, r.TotalPoints, "unfinished leagues give no points")
	}
	assert.Equal(t, idle.ID, rows[0].TeamID)

	s.finishLeagues(t, sport.Volleyball)

	matches, err := s.tournaments.Generate(ctx, sport.Volleyball)
	require.NoError(t, err)
	bySlot := bracket.BySlot(matches)

	a1 := teams[sport.LeagueA][0].ID
	b1 := teams[sport.LeagueB][0].ID
	c1 := teams[sport.LeagueC][0].ID
	d1 := teams[sport.LeagueD][0].ID

	_, err = s.tournaments.RecordResult(ctx, sport.Volleyball, bySlot[bracket.FourSemifinal1].ID, bracket.Result{WinnerID: a1})
	require.NoError(t, err)
	_, err = s.tournaments.RecordResult(ctx, sport.Volleyball, bySlot[bracket.FourSemifinal2].ID, bracket.Result{WinnerID: d1})
	require.NoError(t, err)
	_, err = s.tournaments.RecordResult(ctx, sport.Volleyball, bySlot[bracket.FourFinal].ID, bracket.Result{WinnerID: d1})
	require.NoError(t, err)
	_, err = s.tournaments.RecordResult(ctx, sport.Volleyball, bySlot[bracket.FourThirdPlace].ID, bracket.Result{WinnerID: b1})
	require.NoError(t, err)

	rows, err = s.rankings.TotalRankings(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 9)

	got := make(map[int64]ranking.TotalRanking)
	for _, r := range rows {
		got[r.TeamID] = r
	}

	// League winners take 12 and runners-up 10, then bracket placement on top.
	assert.Equal(t, 12+ranking.ChampionPoints, got[d1].TotalPoints)
	assert.Equal(t, 12+ranking.RunnerUpPoints, got[a1].TotalPoints)
	assert.Equal(t, 12+ranking.ThirdPlacePoints, got[b1].TotalPoints)
	assert.Equal(t, 12+ranking.FourthPoints, got[c1].TotalPoints)
	assert.Equal(t, 10, got[teams[sport.LeagueA][1].ID].TotalPoints)
	assert.Zero(t, got[idle.ID].TotalPoints)

	assert.Equal(t, map[sport.Sport]int{sport.Volleyball: 12}, got[d1].LeaguePoints)
	assert.Equal(t, map[sport.Sport]int{sport.Volleyball: ranking.ChampionPoints}, got[d1].BracketPoints)

	assert.Equal(t, d1, rows[0].TeamID)
	assert.Equal(t, a1, rows[1].TeamID)
	assert.Equal(t, idle.ID, rows[8].TeamID)

	page, err := s.rankings.TotalRankings(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, a1, page[0].TeamID)
	assert.Equal(t, 2, page[0].Rank)
}
