package matches

import (
	"sort"
	"strconv"
)

// UnknownRound labels matches the API returned without a round.
const UnknownRound = "Unknown Round"

// RoundGroup is one round label and its matches in display order.
type RoundGroup struct {
	Round   string  `json:"round"`
	Number  int     `json:"number"`
	Matches []Match `json:"matches"`
}

// ExtractRoundNumber returns the first run of decimal digits in label, or 0 when there is none.
func ExtractRoundNumber(label string) int {
	start := -1
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return atoiSaturating(label[start:i])
		}
	}
	if start >= 0 {
		return atoiSaturating(label[start:])
	}
	return 0
}

func atoiSaturating(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Only overflow can fail here.
		return int(^uint(0) >> 1)
	}
	return n
}

// GroupByRound sorts matches by round number and groups them by their literal label, in
// first-appearance order. Labels sharing a number ("Round 1", "R1") stay separate groups.
func GroupByRound(ms []Match) []RoundGroup {
	sorted := make([]Match, len(ms))
	copy(sorted, ms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ExtractRoundNumber(sorted[i].Round) < ExtractRoundNumber(sorted[j].Round)
	})

	groups := []RoundGroup{}
	index := map[string]int{}
	for _, m := range sorted {
		i, ok := index[m.Round]
		if !ok {
			i = len(groups)
			index[m.Round] = i
			label := m.Round
			if label == "" {
				label = UnknownRound
			}
			groups = append(groups, RoundGroup{Round: label, Number: ExtractRoundNumber(m.Round)})
		}
		groups[i].Matches = append(groups[i].Matches, m)
	}
	return groups
}
