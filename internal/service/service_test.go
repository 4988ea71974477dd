package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/AdamBeresnev/class-match/internal/db"
	"github.com/AdamBeresnev/class-match/internal/league"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/store"
	"github.com/AdamBeresnev/class-match/internal/team"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Connect("file::memory:?_foreign_keys=on")
	require.NoError(t, err, "Failed to connect to in-memory DB")
	database.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(database.DB), "Failed to apply migrations")

	t.Cleanup(func() { database.Close() })
	return database
}

type services struct {
	db          *sqlx.DB
	teams       *TeamService
	leagues     *LeagueService
	tournaments *TournamentService
	rankings    *RankingService
}

func newServices(t *testing.T) *services {
	t.Helper()

	database := setupTestDB(t)
	teamStore := store.NewTeamStore(database)
	leagueStore := store.NewLeagueStore(database)
	tournamentStore := store.NewTournamentStore(database)

	return &services{
		db:          database,
		teams:       NewTeamService(teamStore),
		leagues:     NewLeagueService(database, leagueStore, teamStore),
		tournaments: NewTournamentService(database, tournamentStore, leagueStore),
		rankings:    NewRankingService(teamStore, leagueStore, tournamentStore),
	}
}

// populate fills every league of sp with perLeague new classes and schedules them.
// Classes are returned per league in id order.
func (s *services) populate(t *testing.T, sp sport.Sport, perLeague int) map[sport.League][]team.Team {
	t.Helper()
	ctx := context.Background()

	out := make(map[sport.League][]team.Team)
	for _, l := range sport.Leagues {
		for i := 1; i <= perLeague; i++ {
			created, err := s.teams.CreateTeam(ctx, fmt.Sprintf("%s-%s-%d", sp, l, i))
			require.NoError(t, err)
			_, err = s.teams.AddMember(ctx, sp, l, created.ID)
			require.NoError(t, err)
			out[l] = append(out[l], *created)
		}
		_, err := s.leagues.GrowSchedule(ctx, sp, l)
		require.NoError(t, err)
	}
	return out
}

// finishLeagues records every league match of sp as a win for the lower class id, so each
// league ranks its classes in id order.
func (s *services) finishLeagues(t *testing.T, sp sport.Sport) {
	t.Helper()
	ctx := context.Background()

	res := league.Result{Score1: 1}
	if sp.ScoringMode() == sport.ScoringSets {
		res = league.Result{Sets1: 2, Sets2: 1}
	}

	for _, l := range sport.Leagues {
		matches, err := s.leagues.ListMatches(ctx, sp, l)
		require.NoError(t, err)
		for _, m := range matches {
			_, err := s.leagues.RecordResult(ctx, m.ID, res)
			require.NoError(t, err)
		}
	}
}
