package bracket

import (
	"github.com/AdamBeresnev/class-match/internal/sport"
	"github.com/google/uuid"
)

// Match is one elimination match. A nil participant is still waiting on an upstream result.
type Match struct {
	ID      uuid.UUID   `db:"id" json:"id"`
	Sport   sport.Sport `db:"sport" json:"sport"`
	Slot    Slot        `db:"match_name" json:"match_name"`
	Team1ID *int64      `db:"class1_id" json:"class1_id"`
	Team2ID *int64      `db:"class2_id" json:"class2_id"`

	Score1 int `db:"class1_score" json:"class1_score"`
	Score2 int `db:"class2_score" json:"class2_score"`
	Sets1  int `db:"class1_sets_won" json:"class1_sets_won"`
	Sets2  int `db:"class2_sets_won" json:"class2_sets_won"`

	WinnerID *int64 `db:"winner_id" json:"winner_id"`
	Finished bool   `db:"is_finished" json:"is_finished"`
}

// Result records a bracket match. Brackets cannot tie, so the winner is always explicit.
type Result struct {
	WinnerID int64 `json:"winner_id"`
	Score1   int   `json:"class1_score"`
	Score2   int   `json:"class2_score"`
	Sets1    int   `json:"class1_sets_won"`
	Sets2    int   `json:"class2_sets_won"`
}

func (m Match) Resolved() bool {
	return m.Team1ID != nil && m.Team2ID != nil
}

func (m Match) Involves(teamID int64) bool {
	return (m.Team1ID != nil && *m.Team1ID == teamID) || (m.Team2ID != nil && *m.Team2ID == teamID)
}

// Loser is the participant that is not the winner, or nil while the match is undecided.
func (m Match) Loser() *int64 {
	if !m.Finished || m.WinnerID == nil || !m.Resolved() {
		return nil
	}
	if *m.Team1ID == *m.WinnerID {
		return m.Team2ID
	}
	return m.Team1ID
}

func (m *Match) place(p Position, teamID *int64) {
	switch p {
	case Position1:
		m.Team1ID = teamID
	case Position2:
		m.Team2ID = teamID
	}
}

// BySlot indexes a single bracket's matches by slot.
func BySlot(matches []Match) map[Slot]Match {
	out := make(map[Slot]Match, len(matches))
	for _, m := range matches {
		out[m.Slot] = m
	}
	return out
}
