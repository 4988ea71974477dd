package sport

import (
	"fmt"

	"github.com/AdamBeresnev/class-match/internal/apperr"
)

type League string

const (
	LeagueA League = "A"
	LeagueB League = "B"
	LeagueC League = "C"
	LeagueD League = "D"
)

var Leagues = []League{LeagueA, LeagueB, LeagueC, LeagueD}

func ParseLeague(v string) (League, error) {
	l := League(v)
	if !l.Valid() {
		return "", fmt.Errorf("%w: unknown league %q", apperr.ErrInvalidArgument, v)
	}
	return l, nil
}

func (l League) Valid() bool {
	switch l {
	case LeagueA, LeagueB, LeagueC, LeagueD:
		return true
	}
	return false
}
