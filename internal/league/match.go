package league

import (
	"fmt"

	"github.com/AdamBeresnev/class-match/internal/apperr"
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/google/uuid"
)

// Match is a round-robin qualifying match. Result fields are meaningless until Finished is set.
type Match struct {
	ID      uuid.UUID    `db:"id" json:"id"`
	Sport   sport.Sport  `db:"sport" json:"sport"`
	League  sport.League `db:"league" json:"league"`
	Team1ID int64        `db:"class1_id" json:"class1_id"`
	Team2ID int64        `db:"class2_id" json:"class2_id"`

	Score1 int `db:"class1_score" json:"class1_score"`
	Score2 int `db:"class2_score" json:"class2_score"`
	Sets1  int `db:"class1_sets_won" json:"class1_sets_won"`
	Sets2  int `db:"class2_sets_won" json:"class2_sets_won"`

	WinnerID *int64 `db:"winner_id" json:"winner_id"`
	Finished bool   `db:"is_finished" json:"is_finished"`
}

// Result is what an operator submits for a finished league match.
// A nil WinnerID lets the winner be derived from the score.
type Result struct {
	Score1   int    `json:"class1_score"`
	Score2   int    `json:"class2_score"`
	Sets1    int    `json:"class1_sets_won"`
	Sets2    int    `json:"class2_sets_won"`
	WinnerID *int64 `json:"winner_id"`
}

func (m Match) Pair() Pair {
	return NewPair(m.Team1ID, m.Team2ID)
}

func (m Match) Involves(teamID int64) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}

// deciding returns the pair of numbers that decides the match for the given sport.
func (m Match) deciding(s sport.Sport) (int, int) {
	if s.ScoringMode() == sport.ScoringSets {
		return m.Sets1, m.Sets2
	}
	return m.Score1, m.Score2
}

// decidedWinner returns the team ahead on the deciding pair, or nil on a tie.
func (m Match) decidedWinner(s sport.Sport) *int64 {
	a, b := m.deciding(s)
	switch {
	case a > b:
		id := m.Team1ID
		return &id
	case b > a:
		id := m.Team2ID
		return &id
	}
	return nil
}

// ApplyResult returns a finished copy of m carrying the result.
func ApplyResult(m Match, r Result) (Match, error) {
	if r.Score1 < 0 || r.Score2 < 0 || r.Sets1 < 0 || r.Sets2 < 0 {
		return m, fmt.Errorf("%w: scores must not be negative", apperr.ErrInvalidArgument)
	}

	updated := m
	updated.Score1, updated.Score2 = r.Score1, r.Score2
	updated.Sets1, updated.Sets2 = r.Sets1, r.Sets2

	decided := updated.decidedWinner(m.Sport)

	if r.WinnerID != nil {
		if !m.Involves(*r.WinnerID) {
			return m, fmt.Errorf("%w: class %d", apperr.ErrInvalidParticipant, *r.WinnerID)
		}
		if decided == nil || *decided != *r.WinnerID {
			return m, fmt.Errorf("%w: winner %d disagrees with the recorded score", apperr.ErrInvalidArgument, *r.WinnerID)
		}
	}

	if decided == nil && !m.Sport.AllowsTies() {
		return m, fmt.Errorf("%w: %s matches cannot end in a tie", apperr.ErrInvalidArgument, m.Sport)
	}

	updated.WinnerID = decided
	updated.Finished = true
	return updated, nil
}

// AllFinished reports whether matches is non-empty and every match in it is finished.
func AllFinished(matches []Match) bool {
	if len(matches) == 0 {
		return false
	}
	for _, m := range matches {
		if !m.Finished {
			return false
		}
	}
	return true
}
