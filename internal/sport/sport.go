package sport

import (
	"fmt"

	"github.com/AdamBeresnev/class-match/internal/apperr"
)

// Sport values are stored as-is in the database and must not change.
type Sport string

const (
	Volleyball      Sport = "バレー"
	MenBasketball   Sport = "男バス"
	WomenBasketball Sport = "女バス"
	Softball        Sport = "ソフトボール"
	Soccer          Sport = "サッカー"
	TableTennis     Sport = "卓球"
	Badminton       Sport = "バドミントン"
	Extra           Sport = "臨時得点"
)

type ScoringMode string

const (
	ScoringPoints ScoringMode = "points"
	ScoringSets   ScoringMode = "sets"
)

type attributes struct {
	bracketSize int
	scoring     ScoringMode
}

var sportAttributes = map[Sport]attributes{
	Volleyball:      {bracketSize: 4, scoring: ScoringPoints},
	MenBasketball:   {bracketSize: 4, scoring: ScoringPoints},
	WomenBasketball: {bracketSize: 4, scoring: ScoringPoints},
	Softball:        {bracketSize: 4, scoring: ScoringPoints},
	Soccer:          {bracketSize: 4, scoring: ScoringPoints},
	TableTennis:     {bracketSize: 8, scoring: ScoringSets},
	Badminton:       {bracketSize: 8, scoring: ScoringSets},
	Extra:           {bracketSize: 0, scoring: ScoringPoints},
}

// All lists every sport in declaration order.
var All = []Sport{
	Volleyball,
	MenBasketball,
	WomenBasketball,
	Softball,
	Soccer,
	TableTennis,
	Badminton,
	Extra,
}

// Competitive lists the sports that have leagues and a bracket.
func Competitive() []Sport {
	out := make([]Sport, 0, len(All))
	for _, s := range All {
		if s.Competitive() {
			out = append(out, s)
		}
	}
	return out
}

func Parse(v string) (Sport, error) {
	s := Sport(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown sport %q", apperr.ErrInvalidArgument, v)
	}
	return s, nil
}

func (s Sport) Valid() bool {
	_, ok := sportAttributes[s]
	return ok
}

// BracketSize is 4 or 8 for competitive sports and 0 otherwise.
func (s Sport) BracketSize() int {
	return sportAttributes[s].bracketSize
}

func (s Sport) ScoringMode() ScoringMode {
	return sportAttributes[s].scoring
}

// Competitive reports whether the sport takes part in standings, brackets and rankings.
func (s Sport) Competitive() bool {
	return s.BracketSize() > 0
}

// AllowsTies reports whether a finished league match may end without a winner.
func (s Sport) AllowsTies() bool {
	return s.ScoringMode() == ScoringPoints
}
