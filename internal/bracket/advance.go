package bracket

import (
	"fmt"

	"github.com/AdamBeresnev/class-match/internal/apperr"
)

// Advance records res on m and returns the finished match together with the downstream
// matches that receive its winner and loser. bySlot must hold every match of m's bracket.
// Downstream participants are overwritten, so re-submitting a result corrects it.
func Advance(m Match, res Result, bySlot map[Slot]Match) (Match, []Match, error) {
	if m.Slot.BracketSize() != m.Sport.BracketSize() {
		return m, nil, fmt.Errorf("%w: slot %s does not belong to a %s bracket", apperr.ErrInvalidArgument, m.Slot, m.Sport)
	}
	if !m.Resolved() {
		return m, nil, fmt.Errorf("%w: %s is still waiting on its participants", apperr.ErrUnresolved, m.Slot)
	}
	if !m.Involves(res.WinnerID) {
		return m, nil, fmt.Errorf("%w: class %d in %s", apperr.ErrInvalidParticipant, res.WinnerID, m.Slot)
	}
	if res.Score1 < 0 || res.Score2 < 0 || res.Sets1 < 0 || res.Sets2 < 0 {
		return m, nil, fmt.Errorf("%w: scores must not be negative", apperr.ErrInvalidArgument)
	}

	updated := m
	updated.Score1, updated.Score2 = res.Score1, res.Score2
	updated.Sets1, updated.Sets2 = res.Sets1, res.Sets2
	winner := res.WinnerID
	updated.WinnerID = &winner
	updated.Finished = true

	adv := m.Slot.Advancement()
	var downstream []Match

	if adv.Winner != nil {
		next, err := patch(bySlot, *adv.Winner, updated.WinnerID)
		if err != nil {
			return m, nil, err
		}
		downstream = append(downstream, next)
	}
	if adv.Loser != nil {
		next, err := patch(bySlot, *adv.Loser, updated.Loser())
		if err != nil {
			return m, nil, err
		}
		downstream = append(downstream, next)
	}

	return updated, downstream, nil
}

func patch(bySlot map[Slot]Match, t Target, teamID *int64) (Match, error) {
	next, ok := bySlot[t.Slot]
	if !ok {
		return Match{}, fmt.Errorf("%w: bracket slot %s", apperr.ErrNotFound, t.Slot)
	}
	if teamID != nil {
		id := *teamID
		teamID = &id
	}
	next.place(t.Position, teamID)
	return next, nil
}
