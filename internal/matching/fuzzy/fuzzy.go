// Package fuzzy provides edit-distance comparison of short strings.
package fuzzy

// DefaultMaxDistance is the largest edit distance still treated as a match.
const DefaultMaxDistance = 2

// Distance returns the Levenshtein distance between a and b, counting runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cur := row[j]
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			row[j] = min(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}
	return row[len(rb)]
}

// Matcher accepts pairs of strings within MaxDistance edits of each other.
type Matcher struct {
	MaxDistance int
}

// NewMatcher returns a Matcher using DefaultMaxDistance.
func NewMatcher() Matcher {
	return Matcher{MaxDistance: DefaultMaxDistance}
}

// Match reports whether a and b are within the configured distance.
func (m Matcher) Match(a, b string) bool {
	ra, rb := len([]rune(a)), len([]rune(b))
	if diff := ra - rb; diff > m.MaxDistance || -diff > m.MaxDistance {
		return false
	}
	return Distance(a, b) <= m.MaxDistance
}

// Any reports whether target matches any of candidates.
func (m Matcher) Any(target string, candidates []string) bool {
	for _, c := range candidates {
		if m.Match(target, c) {
			return true
		}
	}
	return false
}
