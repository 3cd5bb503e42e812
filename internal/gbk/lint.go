package gbk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plasmap/plasmap/internal/seq"
)

// Issue is a single problem found while checking a record against the
// format's invariants
type Issue struct {
	// Code groups issues by the invariant violated: "length", "alphabet",
	// "bounds", "wrap", "cds"
	Code string `json:"code"`

	// Feature names the offending feature, empty for record-level issues
	Feature string `json:"feature,omitempty"`

	Msg string `json:"msg"`
}

func (i Issue) String() string {
	if i.Feature == "" {
		return fmt.Sprintf("%s: %s", i.Code, i.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", i.Code, i.Feature, i.Msg)
}

// Lint checks every invariant the format promises its consumers: the
// declared length matches the sequence, the alphabet is ACGT, every
// feature interval falls within [1, length] (wrapping only on circular
// molecules), and each CDS /translation agrees with the translated bases
func Lint(rec *Record) (issues []Issue) {
	if rec.Length != len(rec.Seq) {
		issues = append(issues, Issue{
			Code: "length",
			Msg:  fmt.Sprintf("LOCUS declares %d bp but the sequence has %d bases", rec.Length, len(rec.Seq)),
		})
	}

	for i, b := range rec.Seq {
		if !strings.ContainsRune("ACGT", b) {
			issues = append(issues, Issue{
				Code: "alphabet",
				Msg:  fmt.Sprintf("base %q at position %d is outside of ACGT", b, i+1),
			})
			break
		}
	}

	for i := range rec.Features {
		issues = append(issues, lintFeature(rec, &rec.Features[i])...)
	}

	return
}

// lintFeature checks a single feature's bounds and, for a CDS, its
// coding-sequence invariants
func lintFeature(rec *Record, f *Feature) (issues []Issue) {
	name := fmt.Sprintf("%s %s", f.Kind, f.Location)
	loc := f.Location

	if loc.Start < 1 || loc.Start > rec.Length || loc.End < 1 || loc.End > rec.Length {
		issues = append(issues, Issue{
			Code:    "bounds",
			Feature: name,
			Msg:     fmt.Sprintf("interval is outside of [1, %d]", rec.Length),
		})
		return
	}

	if loc.Start > loc.End && rec.Topology != Circular {
		issues = append(issues, Issue{
			Code:    "wrap",
			Feature: name,
			Msg:     "interval wraps through the origin of a linear molecule",
		})
		return
	}

	if f.Kind == "CDS" {
		issues = append(issues, lintCDS(rec, f, name)...)
	}

	return
}

// lintCDS translates the coding sequence (honoring /codon_start) and
// compares it against the /translation qualifier when one is present
func lintCDS(rec *Record, f *Feature, name string) (issues []Issue) {
	cds, err := rec.LocationSeq(f.Location)
	if err != nil {
		issues = append(issues, Issue{Code: "cds", Feature: name, Msg: err.Error()})
		return
	}

	if start, ok := f.Qualifiers.Get("codon_start"); ok {
		if offset, err := strconv.Atoi(start); err == nil && offset > 1 {
			if offset-1 > len(cds) {
				issues = append(issues, Issue{
					Code:    "cds",
					Feature: name,
					Msg:     fmt.Sprintf("/codon_start=%d is past the end of the %d bp coding sequence", offset, len(cds)),
				})
				return
			}
			cds = cds[offset-1:]
		}
	}

	if len(cds)%3 != 0 {
		issues = append(issues, Issue{
			Code:    "cds",
			Feature: name,
			Msg:     fmt.Sprintf("coding sequence length %d is not a multiple of 3", len(cds)),
		})
		return
	}

	protein, err := seq.TranslateCDS(cds)
	if err != nil {
		issues = append(issues, Issue{Code: "cds", Feature: name, Msg: err.Error()})
		return
	}

	if declared, ok := f.Qualifiers.Get("translation"); ok && declared != protein {
		issues = append(issues, Issue{
			Code:    "cds",
			Feature: name,
			Msg:     "/translation does not match the translated coding sequence",
		})
	}

	return
}
