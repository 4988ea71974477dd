package team

import "github.com/AdamBeresnev/class-match/internal/sport"

// Team is a school class. Only the name may change after creation.
type Team struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Membership places a team in one league of one sport.
type Membership struct {
	ID     int64        `db:"id" json:"id"`
	Sport  sport.Sport  `db:"sport" json:"sport"`
	League sport.League `db:"league" json:"league"`
	TeamID int64        `db:"class_id" json:"class_id"`
}

// Names indexes team names by id.
func Names(teams []Team) map[int64]string {
	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}
