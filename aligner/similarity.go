package aligner

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Ratio returns edit-distance similarity in [0,1]; two empty strings are not similar
func Ratio(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
