package league

// Pair is an unordered pairing stored as (lower id, higher id).
type Pair struct {
	Team1ID int64 `json:"class1_id"`
	Team2ID int64 `json:"class2_id"`
}

func NewPair(a, b int64) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{Team1ID: a, Team2ID: b}
}

const bye = -1

// GenerateRoundRobin pairs every team with every other team exactly once using the circle method.
// Rounds are interleaved column-wise so a team's matches are spread across the output.
func GenerateRoundRobin(teamIDs []int64) []Pair {
	ids := uniqueIDs(teamIDs)
	if len(ids) < 2 {
		return []Pair{}
	}

	positions := make([]int, 0, len(ids)+1)
	for i := range ids {
		positions = append(positions, i)
	}
	if len(positions)%2 != 0 {
		positions = append(positions, bye)
	}

	n := len(positions)
	rounds := make([][]Pair, 0, n-1)
	for r := 0; r < n-1; r++ {
		round := make([]Pair, 0, n/2)
		for i := 0; i < n/2; i++ {
			a, b := positions[i], positions[n-1-i]
			if a == bye || b == bye {
				continue
			}
			round = append(round, NewPair(ids[a], ids[b]))
		}
		rounds = append(rounds, round)

		// Position 0 stays put, the last team moves to position 1.
		last := positions[n-1]
		copy(positions[2:], positions[1:n-1])
		positions[1] = last
	}

	return interleave(rounds)
}

func interleave(rounds [][]Pair) []Pair {
	width := 0
	total := 0
	for _, r := range rounds {
		width = max(width, len(r))
		total += len(r)
	}

	out := make([]Pair, 0, total)
	for i := 0; i < width; i++ {
		for _, r := range rounds {
			if i < len(r) {
				out = append(out, r[i])
			}
		}
	}
	return out
}

// MissingPairs keeps the generated pairs that no existing match already covers, in order.
func MissingPairs(generated []Pair, existing []Match) []Pair {
	have := make(map[Pair]bool, len(existing))
	for _, m := range existing {
		have[m.Pair()] = true
	}

	missing := make([]Pair, 0, len(generated))
	for _, p := range generated {
		if !have[p] {
			missing = append(missing, p)
			have[p] = true
		}
	}
	return missing
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
