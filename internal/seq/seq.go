// Package seq has primitives for working with nucleotide sequences:
// reverse complements, circular range extraction, and translation to
// protein under the standard genetic code
package seq

import (
	"fmt"
	"strings"
)

// complements between nucleotide base pairs
var complements = map[rune]rune{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
}

// ReverseComplement returns the reverse complement of a sequence.
// The sequence should be uppercase ACGT, the way records store it
func ReverseComplement(s string) string {
	var revComp strings.Builder
	revComp.Grow(len(s))

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if comp, ok := complements[runes[i]]; ok {
			revComp.WriteRune(comp)
		} else {
			revComp.WriteRune('N')
		}
	}

	return revComp.String()
}

// Range extracts the subsequence between start and end, 1-based and
// inclusive on both ends. If start > end and the molecule is circular,
// the range wraps through the origin back to position 1
func Range(s string, start, end int, circular bool) (string, error) {
	if start < 1 || start > len(s) {
		return "", fmt.Errorf("start index %d is outside of [1, %d]", start, len(s))
	}
	if end < 1 || end > len(s) {
		return "", fmt.Errorf("end index %d is outside of [1, %d]", end, len(s))
	}

	if start <= end {
		return s[start-1 : end], nil
	}

	if !circular {
		return "", fmt.Errorf("range %d..%d wraps through the origin of a linear sequence", start, end)
	}

	return s[start-1:] + s[:end], nil
}

// GC returns the fraction of the sequence's bases that are G or C
func GC(s string) float64 {
	if len(s) == 0 {
		return 0
	}

	gc := 0
	for _, b := range s {
		if b == 'G' || b == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(s))
}
