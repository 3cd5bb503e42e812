package plasmap

import (
	"fmt"
	"os"
	"strconv"

	"github.com/plasmap/plasmap/config"
	"github.com/plasmap/plasmap/internal/gbk"
	"github.com/plasmap/plasmap/internal/seq"
	"github.com/spf13/cobra"
)

// TranslateCmd decodes a coding region to protein under the standard
// genetic code. The region is a named CDS feature or an explicit
// interval; --check compares the result against the feature's
// /translation qualifier
func TranslateCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	if c.Translate.Table != 1 {
		stderr.Fatalf("genetic code table %d is not supported, only the standard table (1)", c.Translate.Table)
	}
	rec, _ := input(cmd, args, c)

	label, _ := cmd.Flags().GetString("feature")
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")
	complement, _ := cmd.Flags().GetBool("complement")
	check, _ := cmd.Flags().GetBool("check")

	name, protein, declared, err := translateRegion(rec, label, start, end, complement)
	if err != nil {
		stderr.Fatal(err)
	}

	out := output(cmd)
	defer out.Close()
	writeFasta(out, name, protein, c.Format.FastaWidth)

	if check {
		if declared == "" {
			stderr.Fatalf("no /translation qualifier to check against")
		}
		if declared != protein {
			stderr.Printf("mismatch: translated protein differs from the /translation qualifier")
			os.Exit(1)
		}
		stderr.Println("ok: translation matches the /translation qualifier")
	}
}

// translateRegion resolves the coding bases (reverse-complementing
// complemented locations), honors /codon_start, and translates them with
// the trailing stop trimmed. declared is the feature's /translation
// qualifier when the region was picked by label
func translateRegion(rec *gbk.Record, label string, start, end int, complement bool) (name, protein, declared string, err error) {
	var f *gbk.Feature
	loc := gbk.Location{Start: start, End: end, Complement: complement}

	if label != "" {
		found, ok := cdsByLabel(rec, label)
		if !ok {
			return "", "", "", fmt.Errorf("no feature labeled %q in %s", label, rec.Name)
		}
		f = found
		loc = f.Location
	} else if start == 0 || end == 0 {
		return "", "", "", fmt.Errorf("pass a --feature label or both --start and --end")
	}

	bases, err := rec.LocationSeq(loc)
	if err != nil {
		return "", "", "", err
	}

	if f != nil {
		declared, _ = f.Qualifiers.Get("translation")
		if v, ok := f.Qualifiers.Get("codon_start"); ok {
			if offset, atoiErr := strconv.Atoi(v); atoiErr == nil && offset > 1 {
				if offset-1 > len(bases) {
					return "", "", "", fmt.Errorf(
						"/codon_start=%d on %s is past the end of the %d bp coding sequence",
						offset, loc, len(bases),
					)
				}
				bases = bases[offset-1:]
			}
		}
	}

	protein, err = seq.TranslateCDS(bases)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to translate %s: %v", loc, err)
	}

	return fmt.Sprintf("%s %s translation", rec.Name, loc), protein, declared, nil
}

// cdsByLabel prefers the CDS when several features share a label (a
// gene and its CDS usually do), falling back to any labeled feature
func cdsByLabel(rec *gbk.Record, label string) (*gbk.Feature, bool) {
	for i := range rec.Features {
		f := &rec.Features[i]
		if f.Kind != "CDS" {
			continue
		}
		for _, key := range []string{"label", "gene", "product"} {
			if v, ok := f.Qualifiers.Get(key); ok && v == label {
				return f, true
			}
		}
	}
	return rec.FeatureByLabel(label)
}
