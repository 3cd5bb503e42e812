package seq

import (
	"fmt"
	"strings"
)

// standardBases is codon base order for the table below
const standardBases = "TCAG"

// standardAminoAcids is the standard genetic code (NCBI translation table 1),
// one amino acid per codon with codons ordered TTT, TTC, TTA ... GGG
const standardAminoAcids = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

// codonTable maps each codon to its single-letter amino acid, '*' for stop
var codonTable = makeCodonTable()

func makeCodonTable() map[string]byte {
	table := make(map[string]byte, 64)

	i := 0
	for _, b1 := range standardBases {
		for _, b2 := range standardBases {
			for _, b3 := range standardBases {
				table[string([]rune{b1, b2, b3})] = standardAminoAcids[i]
				i++
			}
		}
	}

	return table
}

// Translate decodes a nucleotide sequence to protein under the standard
// genetic code, reading in-frame from the first base. Stop codons are
// written as '*'. Errors if the sequence length isn't a multiple of three
// or a codon has a base outside ACGT
func Translate(s string) (string, error) {
	if len(s)%3 != 0 {
		return "", fmt.Errorf("sequence length %d is not a multiple of 3", len(s))
	}

	var protein strings.Builder
	protein.Grow(len(s) / 3)

	for i := 0; i < len(s); i += 3 {
		codon := s[i : i+3]
		aa, ok := codonTable[codon]
		if !ok {
			return "", fmt.Errorf("unrecognized codon %q at base %d", codon, i+1)
		}
		protein.WriteByte(aa)
	}

	return protein.String(), nil
}

// TranslateCDS translates a coding sequence and trims the trailing stop,
// mirroring the convention of /translation qualifiers in feature tables.
// Errors if an internal stop codon is found
func TranslateCDS(s string) (string, error) {
	protein, err := Translate(s)
	if err != nil {
		return "", err
	}

	protein = strings.TrimSuffix(protein, "*")
	if i := strings.IndexByte(protein, '*'); i >= 0 {
		return "", fmt.Errorf("internal stop codon at residue %d", i+1)
	}

	return protein, nil
}
