package quiz

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSimilarityThreshold allows roughly one edit per four characters.
const DefaultSimilarityThreshold = 0.25

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips punctuation and diacritical marks, and
// trims the string. Used only by the fuzzy comparator; exact grading
// paths never normalize beyond what their question type specifies.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	stripped, _, err := transform.String(stripMarks, b.String())
	if err != nil {
		stripped = b.String()
	}
	return strings.TrimSpace(stripped)
}

// Levenshtein computes the edit distance between a and b using the
// standard two-row dynamic-programming algorithm. Insert, delete, and
// substitute all cost 1.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	n := len(ra)
	m := len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			insertCost := prev[j] + 1
			deleteCost := curr[j-1] + 1
			replaceCost := prev[j-1]
			if ra[i-1] != rb[j-1] {
				replaceCost++
			}
			curr[j] = min(insertCost, deleteCost, replaceCost)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// IsSimilar reports whether two strings match after normalization,
// tolerating a relative edit distance up to threshold. This is the only
// approximate comparison in the grading path; everything else is exact.
func IsSimilar(a, b string, threshold float64) bool {
	na := Normalize(a)
	nb := Normalize(b)
	if na == nb {
		return true
	}
	dist := Levenshtein(na, nb)
	maxLen := max(len([]rune(na)), len([]rune(nb)))
	if maxLen == 0 {
		return true
	}
	ratio := float64(dist) / float64(maxLen)
	return ratio <= threshold
}
