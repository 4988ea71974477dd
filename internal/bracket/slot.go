package bracket

import (
	"database/sql/driver"
	"fmt"

	"github.com/AdamBeresnev/class-match/internal/apperr"
)

// Slot is one named match position in a fixed bracket topology.
// Slot names are persisted and used as lookup keys, so they must not change.
type Slot int

const (
	SlotUnknown Slot = iota

	// 4-team topology
	FourSemifinal1
	FourSemifinal2
	FourFinal
	FourThirdPlace

	// 8-team topology
	EightFirstRound1
	EightFirstRound2
	EightFirstRound3
	EightFirstRound4
	EightSemifinal1
	EightSemifinal2
	EightFinal
	EightThirdPlace
)

var slotNames = map[Slot]string{
	FourSemifinal1: "E1 (準決勝)",
	FourSemifinal2: "E2 (準決勝)",
	FourFinal:      "E3 (決勝)",
	FourThirdPlace: "E4 (3位決定戦)",

	EightFirstRound1: "E1 (1回戦)",
	EightFirstRound2: "E2 (1回戦)",
	EightFirstRound3: "E3 (1回戦)",
	EightFirstRound4: "E4 (1回戦)",
	EightSemifinal1:  "E5 (準決勝)",
	EightSemifinal2:  "E6 (準決勝)",
	EightFinal:       "E7 (決勝)",
	EightThirdPlace:  "E8 (3位決定戦)",
}

var slotsByName = func() map[string]Slot {
	m := make(map[string]Slot, len(slotNames))
	for s, name := range slotNames {
		m[name] = s
	}
	return m
}()

var topologies = map[int][]Slot{
	4: {FourSemifinal1, FourSemifinal2, FourFinal, FourThirdPlace},
	8: {
		EightFirstRound1, EightFirstRound2, EightFirstRound3, EightFirstRound4,
		EightSemifinal1, EightSemifinal2, EightFinal, EightThirdPlace,
	},
}

// Topology lists the slots of a bracket of the given size in play order.
func Topology(size int) []Slot {
	return topologies[size]
}

func ParseSlot(name string) (Slot, error) {
	s, ok := slotsByName[name]
	if !ok {
		return SlotUnknown, fmt.Errorf("%w: unknown bracket slot %q", apperr.ErrInvalidArgument, name)
	}
	return s, nil
}

func (s Slot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

func (s Slot) Valid() bool {
	_, ok := slotNames[s]
	return ok
}

// BracketSize is the size of the topology the slot belongs to.
func (s Slot) BracketSize() int {
	switch {
	case s >= FourSemifinal1 && s <= FourThirdPlace:
		return 4
	case s >= EightFirstRound1 && s <= EightThirdPlace:
		return 8
	}
	return 0
}

func (s Slot) IsFinal() bool {
	return s == FourFinal || s == EightFinal
}

func (s Slot) IsThirdPlace() bool {
	return s == FourThirdPlace || s == EightThirdPlace
}

func (s Slot) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal %v", s)
	}
	return []byte(s.String()), nil
}

func (s *Slot) UnmarshalText(text []byte) error {
	parsed, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Slot) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot store %v", s)
	}
	return s.String(), nil
}

func (s *Slot) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into bracket slot", src)
	}
}
