package quiz

import (
	"strings"
	"unicode/utf8"
)

// A guess is accepted when its edit distance to the normalized answer is at
// most a third of the answer's length. Short answers therefore demand an
// exact or near-exact reply while longer ones absorb a typo or two.
const toleranceDivisor = 3

// NormalizeAnswer cuts the canonical answer before the explanatory suffix:
// at the first '(' when present, otherwise at the first '.', otherwise the
// text is returned unchanged. The space separating the answer from a
// parenthetical is not part of the expected reply and is dropped too.
func NormalizeAnswer(answer string) string {
	if i := strings.IndexByte(answer, '('); i >= 0 {
		return strings.TrimRight(answer[:i], " ")
	}
	if i := strings.IndexByte(answer, '.'); i >= 0 {
		return answer[:i]
	}
	return answer
}

// Matches reports whether userText is close enough to the canonical answer.
// Case and surrounding whitespace are compared as-is.
func Matches(userText, canonicalAnswer string) bool {
	expected := NormalizeAnswer(canonicalAnswer)
	return Distance(userText, expected) <= utf8.RuneCountInString(expected)/toleranceDivisor
}

// Distance computes the Damerau-Levenshtein edit distance between two
// strings over code points: insertions, deletions, substitutions and
// adjacent transpositions all cost 1. O(n*m) time and space.
func Distance(a, b string) int {
	s := []rune(a)
	t := []rune(b)

	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(t); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(s); i++ {
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			d[i][j] = min(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
			if i > 1 && j > 1 && s[i-1] == t[j-2] && s[i-2] == t[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+1) // transposition
			}
		}
	}

	return d[len(s)][len(t)]
}
