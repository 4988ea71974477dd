package service

import (
	"context"
	"fmt"

	"github.com/AdamBeresnev/class-match/internal/apperr"
	"github.com/AdamBeresnev/class-match/internal/bracket"
	"github.com/AdamBeresnev/class-match/internal/league"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/AdamBeresnev/class-match/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TournamentService builds and advances the per-sport elimination brackets.
type TournamentService struct {
	db          *sqlx.DB
	tournaments *store.TournamentStore
	leagues     *store.LeagueStore
}

func NewTournamentService(db *sqlx.DB, tournaments *store.TournamentStore, leagues *store.LeagueStore) *TournamentService {
	return &TournamentService{db: db, tournaments: tournaments, leagues: leagues}
}

// Advancement is the outcome of recording a bracket result.
type Advancement struct {
	Match      bracket.Match   `json:"match"`
	Downstream []bracket.Match `json:"updated_matches"`
}

func (s *TournamentService) GetBracket(ctx context.Context, sp sport.Sport) ([]bracket.Match, error) {
	if err := competitive(sp); err != nil {
		return nil, err
	}
	matches, err := s.tournaments.GetMatches(ctx, sp)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no bracket for %s yet", apperr.ErrUnresolved, sp)
	}
	return matches, nil
}

// GetMatch looks up one bracket match by its slot. The slot must belong to the sport's bracket.
func (s *TournamentService) GetMatch(ctx context.Context, sp sport.Sport, slot bracket.Slot) (*bracket.Match, error) {
	if err := competitive(sp); err != nil {
		return nil, err
	}
	if slot.BracketSize() != sp.BracketSize() {
		return nil, fmt.Errorf("%w: %s is not part of a %d-team bracket", apperr.ErrInvalidArgument, slot, sp.BracketSize())
	}
	m, err := s.tournaments.GetMatchBySlot(ctx, sp, slot)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", sp, slot, err)
	}
	return m, nil
}

// Generate seeds the bracket of sp from the current league standings. It runs at most once
// per sport.
func (s *TournamentService) Generate(ctx context.Context, sp sport.Sport) ([]bracket.Match, error) {
	if err := competitive(sp); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	existing, err := s.tournaments.GetMatchesTx(ctx, tx, sp)
	if err != nil {
		return nil, fmt.Errorf("failed to get bracket: %w", err)
	}

	standings := make(map[sport.League][]league.Standing, len(sport.Leagues))
	for _, l := range sport.Leagues {
		matches, err := s.leagues.ListMatchesTx(ctx, tx, sp, l)
		if err != nil {
			return nil, fmt.Errorf("failed to get league %s matches: %w", l, err)
		}
		standings[l] = league.Standings(sp, matches, nil)
	}

	matches, err := bracket.Build(sp, existing, standings)
	if err != nil {
		return nil, err
	}

	if err := s.tournaments.CreateMatches(ctx, tx, matches); err != nil {
		return nil, fmt.Errorf("failed to create bracket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return matches, nil
}

// RecordResult finishes a bracket match and moves its winner and loser on. The match and
// every downstream match are written in one transaction.
func (s *TournamentService) RecordResult(ctx context.Context, sp sport.Sport, matchID uuid.UUID, res bracket.Result) (*Advancement, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	match, err := s.tournaments.GetMatchTx(ctx, tx, sp, matchID)
	if err != nil {
		return nil, fmt.Errorf("bracket match %s: %w", matchID, err)
	}

	all, err := s.tournaments.GetMatchesTx(ctx, tx, sp)
	if err != nil {
		return nil, fmt.Errorf("failed to get bracket: %w", err)
	}

	updated, downstream, err := bracket.Advance(*match, res, bracket.BySlot(all))
	if err != nil {
		return nil, err
	}

	if err := s.tournaments.UpdateMatch(ctx, tx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	for i := range downstream {
		if err := s.tournaments.UpdateMatch(ctx, tx, &downstream[i]); err != nil {
			return nil, fmt.Errorf("failed to update %s: %w", downstream[i].Slot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if downstream == nil {
		downstream = []bracket.Match{}
	}
	return &Advancement{Match: updated, Downstream: downstream}, nil
}
