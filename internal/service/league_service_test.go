package service

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/class-match/internal/apperr"
	"github.com/AdamBeresnev/class-match/internal/league"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	created, err := s.teams.CreateTeam(ctx, "  2-3 ")
	require.NoError(t, err)
	assert.Equal(t, "2-3", created.Name)

	_, err = s.teams.CreateTeam(ctx, "   ")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	renamed, err := s.teams.RenameTeam(ctx, created.ID, "2-3組")
	require.NoError(t, err)
	assert.Equal(t, "2-3組", renamed.Name)

	_, err = s.teams.RenameTeam(ctx, 404, "x")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.teams.AddMember(ctx, sport.Extra, sport.LeagueA, created.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = s.teams.AddMember(ctx, sport.Soccer, sport.LeagueA, created.ID)
	require.NoError(t, err)
	members, err := s.teams.ListMembers(ctx, sport.Soccer, sport.LeagueA)
	require.NoError(t, err)
	require.Len(t, members, 1)

	require.NoError(t, s.teams.RemoveMember(ctx, sport.Soccer, sport.LeagueA, created.ID))
	assert.ErrorIs(t, s.teams.RemoveMember(ctx, sport.Soccer, sport.LeagueA, created.ID), apperr.ErrNotFound)

	listed, err := s.teams.ListTeams(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	fetched, err := s.teams.GetTeam(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2-3組", fetched.Name)

	_, err = s.teams.GetTeam(ctx, 404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGrowScheduleIsIdempotent(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	teams := s.populate(t, sport.Soccer, 4)

	matches, err := s.leagues.ListMatches(ctx, sport.Soccer, sport.LeagueA)
	require.NoError(t, err)
	assert.Len(t, matches, 6)

	again, err := s.leagues.GrowSchedule(ctx, sport.Soccer, sport.LeagueA)
	require.NoError(t, err)
	assert.Empty(t, again)

	// A late joiner only gets the matches they are missing.
	late, err := s.teams.CreateTeam(ctx, "late")
	require.NoError(t, err)
	_, err = s.teams.AddMember(ctx, sport.Soccer, sport.LeagueA, late.ID)
	require.NoError(t, err)

	grown, err := s.leagues.GrowSchedule(ctx, sport.Soccer, sport.LeagueA)
	require.NoError(t, err)
	require.Len(t, grown, 4)
	for _, m := range grown {
		assert.True(t, m.Involves(late.ID))
	}

	matches, err = s.leagues.ListMatches(ctx, sport.Soccer, sport.LeagueA)
	require.NoError(t, err)
	assert.Len(t, matches, 10)

	seen := make(map[league.Pair]bool)
	for _, m := range matches {
		assert.False(t, seen[m.Pair()], "duplicate pair %v", m.Pair())
		seen[m.Pair()] = true
	}

	// Other leagues are untouched.
	other, err := s.leagues.ListMatches(ctx, sport.Soccer, sport.LeagueB)
	require.NoError(t, err)
	assert.Len(t, other, 6)
	assert.Len(t, teams[sport.LeagueB], 4)
}

func TestGrowScheduleRejectsExtraPoints(t *testing.T) {
	s := newServices(t)
	_, err := s.leagues.GrowSchedule(context.Background(), sport.Extra, sport.LeagueA)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestLeagueRecordResultAndStandings(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.leagues.Standings(ctx, sport.Volleyball, sport.LeagueA)
	assert.ErrorIs(t, err, apperr.ErrUnresolved)

	teams := s.populate(t, sport.Volleyball, 3)
	a := teams[sport.LeagueA]

	table, err := s.leagues.Standings(ctx, sport.Volleyball, sport.LeagueA)
	require.NoError(t, err)
	require.Len(t, table, 3)
	for _, st := range table {
		assert.Zero(t, st.Points)
	}

	matches, err := s.leagues.ListMatches(ctx, sport.Volleyball, sport.LeagueA)
	require.NoError(t, err)
	for _, m := range matches {
		// The highest id wins everything.
		res := league.Result{Score1: 10, Score2: 25}
		updated, err := s.leagues.RecordResult(ctx, m.ID, res)
		require.NoError(t, err)
		assert.True(t, updated.Finished)
		assert.Equal(t, m.Team2ID, *updated.WinnerID)
	}

	table, err = s.leagues.Standings(ctx, sport.Volleyball, sport.LeagueA)
	require.NoError(t, err)
	assert.Equal(t, a[2].ID, table[0].TeamID)
	assert.Equal(t, a[2].Name, table[0].Name)
	assert.Equal(t, 4, table[0].Points)
	assert.Equal(t, 12, table[0].LeaguePoints)
	assert.Equal(t, a[0].ID, table[2].TeamID)

	_, err = s.leagues.RecordResult(ctx, matches[0].ID, league.Result{Score1: 1, Score2: 0, WinnerID: utils.Ptr(int64(999))})
	assert.ErrorIs(t, err, apperr.ErrInvalidParticipant)

	_, err = s.leagues.RecordResult(ctx, uuid.New(), league.Result{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// The rejected submission left the stored result alone.
	stored, err := s.leagues.ListMatches(ctx, sport.Volleyball, sport.LeagueA)
	require.NoError(t, err)
	assert.Equal(t, 25, stored[0].Score2)
}

func TestCreateMatchAndClearLeague(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	t1, err := s.teams.CreateTeam(ctx, "3-1")
	require.NoError(t, err)
	t2, err := s.teams.CreateTeam(ctx, "3-2")
	require.NoError(t, err)

	in := MatchInput{Sport: sport.TableTennis, League: sport.LeagueD, Team1ID: t2.ID, Team2ID: t1.ID}
	created, err := s.leagues.CreateMatch(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, t2.ID, created.Team1ID)

	fetched, err := s.leagues.GetMatch(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *fetched)

	_, err = s.leagues.GetMatch(ctx, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.leagues.CreateMatch(ctx, MatchInput{Sport: sport.TableTennis, League: sport.LeagueD, Team1ID: t1.ID, Team2ID: t2.ID})
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)

	_, err = s.leagues.CreateMatch(ctx, MatchInput{Sport: sport.TableTennis, League: sport.LeagueD, Team1ID: t1.ID, Team2ID: t1.ID})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = s.leagues.CreateMatch(ctx, MatchInput{Sport: sport.TableTennis, League: sport.LeagueD, Team1ID: t1.ID, Team2ID: 999})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	page, err := s.leagues.PageMatches(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	deleted, err := s.leagues.ClearLeague(ctx, sport.TableTennis, sport.LeagueD)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = s.leagues.Standings(ctx, sport.TableTennis, sport.LeagueD)
	assert.ErrorIs(t, err, apperr.ErrUnresolved)
}
