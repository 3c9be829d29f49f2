// Package match finds field keys that are close to a misspelled one.
//
// Keys are compared after normalization, so "env_vars", "envVars" and
// "env-vars" are the same key. Similarity is the normalized Levenshtein
// distance between the two normalized forms.
package match

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// DefaultThreshold is the minimum similarity Suggest reports.
const DefaultThreshold = 0.6

// Normalize lowercases s and drops separators, so "hostPort" and
// "host_port" agree.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// Distance is the Levenshtein edit distance between a and b, in runes.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity scores a and b between 0 and 1 after normalizing both.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)

	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(na, nb))/float64(longest)
}

type scored struct {
	name  string
	score float64
}

// Suggest returns the candidates at least threshold similar to name, best
// first. Ties keep alphabetical order. An exact match is not a suggestion.
func Suggest(name string, candidates []string, threshold float64) []string {
	var found []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= threshold {
			found = append(found, scored{name: c, score: s})
		}
	}

	slices.SortFunc(found, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return strings.Compare(a.name, b.name)
	})

	out := make([]string, 0, len(found))
	for _, f := range found {
		if !slices.Contains(out, f.name) {
			out = append(out, f.name)
		}
	}

	return out
}
