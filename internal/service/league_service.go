package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AdamBeresnev/class-match/internal/apperr"
	"github.com/AdamBeresnev/class-match/internal/league"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/store"
	"github.com/AdamBeresnev/class-match/internal/team"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LeagueService struct {
	db      *sqlx.DB
	leagues *store.LeagueStore
	teams   *store.TeamStore
}

func NewLeagueService(db *sqlx.DB, leagues *store.LeagueStore, teams *store.TeamStore) *LeagueService {
	return &LeagueService{db: db, leagues: leagues, teams: teams}
}

type MatchInput struct {
	Sport   sport.Sport  `json:"sport"`
	League  sport.League `json:"league"`
	Team1ID int64        `json:"class1_id"`
	Team2ID int64        `json:"class2_id"`
}

func competitive(sp sport.Sport) error {
	if !sp.Competitive() {
		return fmt.Errorf("%w: %s has no leagues", apperr.ErrInvalidArgument, sp)
	}
	return nil
}

func (s *LeagueService) ListMatches(ctx context.Context, sp sport.Sport, l sport.League) ([]league.Match, error) {
	return s.leagues.ListMatches(ctx, sp, l)
}

func (s *LeagueService) GetMatch(ctx context.Context, id uuid.UUID) (*league.Match, error) {
	m, err := s.leagues.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("league match %s: %w", id, err)
	}
	return m, nil
}

func (s *LeagueService) PageMatches(ctx context.Context, offset, limit int) ([]league.Match, error) {
	return s.leagues.PageMatches(ctx, offset, limit)
}

// GrowSchedule creates the round-robin matches the league is still missing and returns them.
// Existing matches, finished or not, are kept.
func (s *LeagueService) GrowSchedule(ctx context.Context, sp sport.Sport, l sport.League) ([]league.Match, error) {
	if err := competitive(sp); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	members, err := s.teams.ListMembersTx(ctx, tx, sp, l)
	if err != nil {
		return nil, fmt.Errorf("failed to get league members: %w", err)
	}

	existing, err := s.leagues.ListMatchesTx(ctx, tx, sp, l)
	if err != nil {
		return nil, fmt.Errorf("failed to get league matches: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.TeamID)
	}

	missing := league.MissingPairs(league.GenerateRoundRobin(ids), existing)
	created := make([]league.Match, 0, len(missing))
	for _, p := range missing {
		created = append(created, league.Match{
			ID:      uuid.New(),
			Sport:   sp,
			League:  l,
			Team1ID: p.Team1ID,
			Team2ID: p.Team2ID,
		})
	}

	if err := s.leagues.CreateMatches(ctx, tx, created); err != nil {
		return nil, fmt.Errorf("failed to create league matches: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	slog.Info("League schedule grown", "sport", sp, "league", l, "created", len(created), "existing", len(existing))
	return created, nil
}

// CreateMatch adds a single league match outside the generated schedule.
func (s *LeagueService) CreateMatch(ctx context.Context, in MatchInput) (*league.Match, error) {
	if err := competitive(in.Sport); err != nil {
		return nil, err
	}
	if !in.League.Valid() {
		return nil, fmt.Errorf("%w: unknown league %q", apperr.ErrInvalidArgument, in.League)
	}
	if in.Team1ID == in.Team2ID {
		return nil, fmt.Errorf("%w: a class cannot play itself", apperr.ErrInvalidArgument)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	existing, err := s.leagues.ListMatchesTx(ctx, tx, in.Sport, in.League)
	if err != nil {
		return nil, fmt.Errorf("failed to get league matches: %w", err)
	}

	pair := league.NewPair(in.Team1ID, in.Team2ID)
	for _, m := range existing {
		if m.Pair() == pair {
			return nil, fmt.Errorf("%w: match between %d and %d", apperr.ErrAlreadyExists, in.Team1ID, in.Team2ID)
		}
	}

	m := league.Match{
		ID:      uuid.New(),
		Sport:   in.Sport,
		League:  in.League,
		Team1ID: in.Team1ID,
		Team2ID: in.Team2ID,
	}
	if err := s.leagues.CreateMatches(ctx, tx, []league.Match{m}); err != nil {
		return nil, fmt.Errorf("failed to create league match: %w", err)
	}

	return &m, tx.Commit()
}

// RecordResult stores the result of a league match and marks it finished.
// Re-submitting overwrites the earlier result.
func (s *LeagueService) RecordResult(ctx context.Context, matchID uuid.UUID, res league.Result) (*league.Match, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	m, err := s.leagues.GetMatchTx(ctx, tx, matchID)
	if err != nil {
		return nil, fmt.Errorf("league match %s: %w", matchID, err)
	}

	updated, err := league.ApplyResult(*m, res)
	if err != nil {
		return nil, err
	}

	if err := s.leagues.UpdateResult(ctx, tx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update league match: %w", err)
	}

	return &updated, tx.Commit()
}

// Standings returns the current table of one league. A league without matches is not ready yet.
func (s *LeagueService) Standings(ctx context.Context, sp sport.Sport, l sport.League) ([]league.Standing, error) {
	if err := competitive(sp); err != nil {
		return nil, err
	}

	matches, err := s.leagues.ListMatches(ctx, sp, l)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s league %s has no matches", apperr.ErrUnresolved, sp, l)
	}

	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	return league.Standings(sp, matches, team.Names(teams)), nil
}

// ClearLeague deletes every match of one league, results included.
func (s *LeagueService) ClearLeague(ctx context.Context, sp sport.Sport, l sport.League) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	deleted, err := s.leagues.DeleteMatches(ctx, tx, sp, l)
	if err != nil {
		return 0, fmt.Errorf("failed to clear league: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	slog.Info("League cleared", "sport", sp, "league", l, "deleted", deleted)
	return deleted, nil
}
