package bracket

type Position int

const (
	Position1 Position = 1
	Position2 Position = 2
)

// Target is a participant position in a downstream slot.
type Target struct {
	Slot     Slot
	Position Position
}

// Advancement says where a completed slot sends its winner and, for semifinals, its loser.
type Advancement struct {
	Winner *Target
	Loser  *Target
}

func to(s Slot, p Position) *Target {
	return &Target{Slot: s, Position: p}
}

// Advancement is defined for every slot. Finals and third-place matches go nowhere.
func (s Slot) Advancement() Advancement {
	switch s {
	case FourSemifinal1:
		return Advancement{Winner: to(FourFinal, Position1), Loser: to(FourThirdPlace, Position1)}
	case FourSemifinal2:
		return Advancement{Winner: to(FourFinal, Position2), Loser: to(FourThirdPlace, Position2)}

	case EightFirstRound1:
		return Advancement{Winner: to(EightSemifinal2, Position1)}
	case EightFirstRound2:
		return Advancement{Winner: to(EightSemifinal2, Position2)}
	case EightFirstRound3:
		return Advancement{Winner: to(EightSemifinal1, Position1)}
	case EightFirstRound4:
		return Advancement{Winner: to(EightSemifinal1, Position2)}
	case EightSemifinal1:
		return Advancement{Winner: to(EightFinal, Position1), Loser: to(EightThirdPlace, Position1)}
	case EightSemifinal2:
		return Advancement{Winner: to(EightFinal, Position2), Loser: to(EightThirdPlace, Position2)}
	}
	return Advancement{}
}
