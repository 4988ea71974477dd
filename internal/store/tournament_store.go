package store

import (
	"context"

	"github.com/AdamBeresnev/class-match/internal/bracket"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TournamentStore persists bracket matches.
type TournamentStore struct {
	db *sqlx.DB
}

const (
	tournamentMatchColumns = `id, sport, match_name, class1_id, class2_id, class1_score, class2_score,
		class1_sets_won, class2_sets_won, winner_id, is_finished`

	getTournamentMatchQuery       = "SELECT " + tournamentMatchColumns + " FROM tournament_matches WHERE sport = ? AND id = ?"
	getTournamentMatchBySlotQuery = "SELECT " + tournamentMatchColumns + " FROM tournament_matches WHERE sport = ? AND match_name = ?"
	listTournamentMatchesQuery    = "SELECT " + tournamentMatchColumns + " FROM tournament_matches WHERE sport = ? ORDER BY rowid ASC"

	createTournamentMatchQuery = `
		INSERT INTO tournament_matches (id, sport, match_name, class1_id, class2_id, class1_score, class2_score,
			class1_sets_won, class2_sets_won, winner_id, is_finished)
		VALUES (:id, :sport, :match_name, :class1_id, :class2_id, :class1_score, :class2_score,
			:class1_sets_won, :class2_sets_won, :winner_id, :is_finished)
	`
	updateTournamentMatchQuery = `
		UPDATE tournament_matches SET
		class1_id = :class1_id,
		class2_id = :class2_id,
		class1_score = :class1_score,
		class2_score = :class2_score,
		class1_sets_won = :class1_sets_won,
		class2_sets_won = :class2_sets_won,
		winner_id = :winner_id,
		is_finished = :is_finished
		WHERE id = :id
	`
)

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

// CreateMatches inserts a whole bracket. A second bracket for the same sport fails with
// apperr.ErrAlreadyExists on the (sport, match_name) constraint.
func (s *TournamentStore) CreateMatches(ctx context.Context, tx *sqlx.Tx, matches []bracket.Match) error {
	if len(matches) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, createTournamentMatchQuery, matches)
	return mapError(err)
}

func (s *TournamentStore) GetMatchTx(ctx context.Context, tx *sqlx.Tx, sp sport.Sport, id uuid.UUID) (*bracket.Match, error) {
	var m bracket.Match
	if err := tx.GetContext(ctx, &m, getTournamentMatchQuery, sp, id); err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

func (s *TournamentStore) GetMatchBySlot(ctx context.Context, sp sport.Sport, slot bracket.Slot) (*bracket.Match, error) {
	var m bracket.Match
	if err := s.db.GetContext(ctx, &m, getTournamentMatchBySlotQuery, sp, slot); err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

// GetMatches returns a sport's bracket in slot order.
func (s *TournamentStore) GetMatches(ctx context.Context, sp sport.Sport) ([]bracket.Match, error) {
	return listTournamentMatches(ctx, s.db, sp)
}

func (s *TournamentStore) GetMatchesTx(ctx context.Context, tx *sqlx.Tx, sp sport.Sport) ([]bracket.Match, error) {
	return listTournamentMatches(ctx, tx, sp)
}

func listTournamentMatches(ctx context.Context, q sqlx.QueryerContext, sp sport.Sport) ([]bracket.Match, error) {
	matches := []bracket.Match{}
	if err := sqlx.SelectContext(ctx, q, &matches, listTournamentMatchesQuery, sp); err != nil {
		return nil, mapError(err)
	}
	return matches, nil
}

func (s *TournamentStore) UpdateMatch(ctx context.Context, tx *sqlx.Tx, m *bracket.Match) error {
	return requireAffected(tx.NamedExecContext(ctx, updateTournamentMatchQuery, m))
}
