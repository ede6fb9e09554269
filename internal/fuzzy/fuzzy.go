// Package fuzzy provides fuzzy matching of flag strings
// Used by minparse to attach "did you mean" suggestions to unknown-flag errors
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidate flags by edit distance to a mistyped flag
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for "-x" style inputs
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// body strips the leading dashes so "-help" and "--help" compare as equal words
func body(flag string) string {
	return strings.ToLower(strings.TrimLeft(flag, "-"))
}

// FindBest returns the closest candidate, or "" if none is within range
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches finds all candidates within maxDistance, best first
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	in := body(input)
	if len(in) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		// The input itself is never a suggestion
		if candidate == input {
			continue
		}
		cand := body(candidate)
		distance := m.levenshteinDistance(in, cand)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.calculateScore(in, cand, distance),
		})
	}

	// Score descending, then distance, then lexical for stable output
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Value < matches[j].Value
	})
	return matches
}

// calculateScore computes a match quality score (0.0 to 1.0)
// Factors: edit distance, prefix match, length similarity
func (m *Matcher) calculateScore(input, candidate string, distance int) float64 {
	if distance > m.maxDistance {
		return 0.0
	}
	maxLen := max(len(input), len(candidate))
	if maxLen == 0 {
		return 1.0
	}

	editScore := 1.0 - float64(distance)/float64(maxLen)

	prefixBonus := 0.0
	if p := commonPrefixLength(input, candidate); p > 0 {
		prefixBonus = float64(p) / float64(min(len(input), len(candidate))) * 0.3
	}

	lengthDiff := len(input) - len(candidate)
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}
	lengthBonus := (1.0 - float64(lengthDiff)/float64(maxLen)) * 0.2

	return min(editScore+prefixBonus+lengthBonus, 1.0)
}

// levenshteinDistance calculates edit distance between two strings.
// Returns maxDistance+1 as soon as the result is known to exceed maxDistance.
func (m *Matcher) levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if d := len(a) - len(b); d > m.maxDistance || -d > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// FindBestFlag finds the registered flag closest to a mistyped one
func FindBestFlag(input string, flags []string, maxDistance int) string {
	if maxDistance <= 0 {
		return ""
	}
	return NewMatcher(maxDistance).FindBest(input, flags)
}
