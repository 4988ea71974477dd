package store

import (
	"context"

	"github.com/AdamBeresnev/class-match/internal/league"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LeagueStore struct {
	db *sqlx.DB
}

const (
	leagueMatchColumns = `id, sport, league, class1_id, class2_id, class1_score, class2_score,
		class1_sets_won, class2_sets_won, winner_id, is_finished`

	getLeagueMatchQuery           = "SELECT " + leagueMatchColumns + " FROM league_matches WHERE id = ?"
	listLeagueMatchesQuery        = "SELECT " + leagueMatchColumns + " FROM league_matches WHERE sport = ? AND league = ? ORDER BY rowid ASC"
	listLeagueMatchesBySportQuery = "SELECT " + leagueMatchColumns + " FROM league_matches WHERE sport = ? ORDER BY league ASC, rowid ASC"
	pageLeagueMatchesQuery        = "SELECT " + leagueMatchColumns + " FROM league_matches ORDER BY rowid ASC LIMIT ? OFFSET ?"

	createLeagueMatchQuery = `
		INSERT INTO league_matches (id, sport, league, class1_id, class2_id, class1_score, class2_score,
			class1_sets_won, class2_sets_won, winner_id, is_finished)
		VALUES (:id, :sport, :league, :class1_id, :class2_id, :class1_score, :class2_score,
			:class1_sets_won, :class2_sets_won, :winner_id, :is_finished)
	`
	updateLeagueResultQuery = `
		UPDATE league_matches SET
		class1_score = :class1_score,
		class2_score = :class2_score,
		class1_sets_won = :class1_sets_won,
		class2_sets_won = :class2_sets_won,
		winner_id = :winner_id,
		is_finished = :is_finished
		WHERE id = :id
	`
	deleteLeagueMatchesQuery = "DELETE FROM league_matches WHERE sport = ? AND league = ?"
)

func NewLeagueStore(db *sqlx.DB) *LeagueStore {
	return &LeagueStore{db: db}
}

func (s *LeagueStore) GetMatch(ctx context.Context, id uuid.UUID) (*league.Match, error) {
	return getLeagueMatch(ctx, s.db, id)
}

func (s *LeagueStore) GetMatchTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*league.Match, error) {
	return getLeagueMatch(ctx, tx, id)
}

func getLeagueMatch(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (*league.Match, error) {
	var m league.Match
	if err := sqlx.GetContext(ctx, q, &m, getLeagueMatchQuery, id); err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

// ListMatches returns the matches of one league in creation order.
func (s *LeagueStore) ListMatches(ctx context.Context, sp sport.Sport, l sport.League) ([]league.Match, error) {
	return listLeagueMatches(ctx, s.db, sp, l)
}

func (s *LeagueStore) ListMatchesTx(ctx context.Context, tx *sqlx.Tx, sp sport.Sport, l sport.League) ([]league.Match, error) {
	return listLeagueMatches(ctx, tx, sp, l)
}

func listLeagueMatches(ctx context.Context, q sqlx.QueryerContext, sp sport.Sport, l sport.League) ([]league.Match, error) {
	matches := []league.Match{}
	err := sqlx.SelectContext(ctx, q, &matches, listLeagueMatchesQuery, sp, l)
	return matches, mapError(err)
}

// ListMatchesBySport returns every league match of a sport grouped by league.
func (s *LeagueStore) ListMatchesBySport(ctx context.Context, sp sport.Sport) (map[sport.League][]league.Match, error) {
	var matches []league.Match
	if err := s.db.SelectContext(ctx, &matches, listLeagueMatchesBySportQuery, sp); err != nil {
		return nil, mapError(err)
	}

	byLeague := make(map[sport.League][]league.Match)
	for _, m := range matches {
		byLeague[m.League] = append(byLeague[m.League], m)
	}
	return byLeague, nil
}

func (s *LeagueStore) PageMatches(ctx context.Context, offset, limit int) ([]league.Match, error) {
	if limit <= 0 {
		limit = -1
	}
	matches := []league.Match{}
	err := s.db.SelectContext(ctx, &matches, pageLeagueMatchesQuery, limit, offset)
	return matches, mapError(err)
}

func (s *LeagueStore) CreateMatches(ctx context.Context, tx *sqlx.Tx, matches []league.Match) error {
	if len(matches) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, createLeagueMatchQuery, matches)
	return mapError(err)
}

func (s *LeagueStore) UpdateResult(ctx context.Context, tx *sqlx.Tx, m *league.Match) error {
	return requireAffected(tx.NamedExecContext(ctx, updateLeagueResultQuery, m))
}

// DeleteMatches removes every match of one league and reports how many were removed.
func (s *LeagueStore) DeleteMatches(ctx context.Context, tx *sqlx.Tx, sp sport.Sport, l sport.League) (int64, error) {
	res, err := tx.ExecContext(ctx, deleteLeagueMatchesQuery, sp, l)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}
