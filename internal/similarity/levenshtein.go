// Package similarity provides the normalized string-similarity primitive the
// fuzzy metrics are built on.
package similarity

import "strings"

// Distance computes the Levenshtein edit distance between two strings,
// case-insensitively, using a single-row DP over runes.
func Distance(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, lb+1)
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// Normalized returns an edit-distance based similarity in [0,1]:
// 1 - distance/maxLen. It is symmetric, 1.0 for identical strings (after
// case folding and trimming) and 0.0 when either string is empty.
func Normalized(a, b string) float64 {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return 0
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	d := Distance(a, b)
	sim := 1 - float64(d)/float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
