package dispatchers

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const maxSuggestionDistance = 3

// levenshtein is the case-insensitive edit distance between a and b, counted
// in runes.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// FindSimilarNames ranks names by edit distance to input, closest first and
// then alphabetically. Exact matches and names more than three edits away
// are left out; at most maxResults names are returned.
func FindSimilarNames(input string, names []string, maxResults int) []string {
	type candidate struct {
		name     string
		distance int
	}

	// Short inputs get a tighter bound so "a" doesn't suggest every
	// three-letter alias.
	limit := min(maxSuggestionDistance, max(1, utf8.RuneCountInString(input)-1))

	var found []candidate
	for _, name := range names {
		if d := levenshtein(input, name); d > 0 && d <= limit {
			found = append(found, candidate{name, d})
		}
	}

	slices.SortFunc(found, func(x, y candidate) int {
		if x.distance != y.distance {
			return x.distance - y.distance
		}
		return strings.Compare(x.name, y.name)
	})

	out := make([]string, 0, min(len(found), maxResults))
	for _, c := range found[:min(len(found), maxResults)] {
		out = append(out, c.name)
	}
	return out
}
