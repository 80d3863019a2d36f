// Package correct offers a "did you mean" suggestion for a start word that
// FindLongest could not resolve. It never changes find_longest's own
// contract — a miss is still a miss — it only gives an interactive caller
// something to try next.
package correct

import "sort"

// Matcher suggests the dictionary word closest to an unresolved input, by
// Levenshtein edit distance. A whole-word distance metric fits a typo in a
// start word better than a subsequence scorer: the caller mistyped one
// word, not a prefix of many.
type Matcher struct {
	words []string
}

// NewMatcher builds a Matcher over words. words is copied; later mutation
// by the caller has no effect on the Matcher.
func NewMatcher(words []string) *Matcher {
	m := &Matcher{words: make([]string, len(words))}
	copy(m.words, words)
	return m
}

// candidate pairs a dictionary word with its distance to the query, for
// ranking.
type candidate struct {
	word string
	dist int
}

// Suggest returns up to limit dictionary words ordered by ascending edit
// distance to input, nearest first. Ties break by shorter word, then
// lexical order, so results are deterministic. An empty Matcher or a
// non-positive limit returns nil.
func (m *Matcher) Suggest(input string, limit int) []string {
	if len(m.words) == 0 || limit <= 0 {
		return nil
	}

	candidates := make([]candidate, len(m.words))
	for i, w := range m.words {
		candidates[i] = candidate{word: w, dist: levenshtein(input, w)}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		if len(candidates[i].word) != len(candidates[j].word) {
			return len(candidates[i].word) < len(candidates[j].word)
		}
		return candidates[i].word < candidates[j].word
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = candidates[i].word
	}
	return out
}

// levenshtein returns the classic single-character insert/delete/substitute
// edit distance between a and b, computed with a two-row dynamic-programming
// sweep (O(len(a)*len(b)) time, O(len(b)) space).
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
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
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
