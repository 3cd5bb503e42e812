package plasmap

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/plasmap/plasmap/config"
	"github.com/plasmap/plasmap/internal/gbk"
	"github.com/plasmap/plasmap/internal/seq"
	"github.com/spf13/cobra"
)

// annotation is one feature-library hit against a record's sequence
type annotation struct {
	name string
	loc  gbk.Location
}

// AnnotateCmd matches the feature library against the record's sequence,
// on both strands and across the origin of circular molecules. Matches
// are printed, or written into a copy of the record with --out
func AnnotateCmd(cmd *cobra.Command, args []string) {
	rec, _ := input(cmd, args, config.New())
	db := NewFeatureDB()

	annotations := annotate(rec, db.features)
	if len(annotations) == 0 {
		stderr.Fatalf("no feature library matches in %s", rec.Name)
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
		fmt.Fprintf(w, "feature\tlocation\tstrand\n")
		for _, a := range annotations {
			strand := "+"
			if a.loc.Complement {
				strand = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.name, a.loc, strand)
		}
		w.Flush()
		return
	}

	// write an annotated copy, the source record stays untouched
	annotated := *rec
	annotated.Features = append([]gbk.Feature{}, rec.Features...)
	for _, a := range annotations {
		annotated.Features = append(annotated.Features, gbk.Feature{
			Kind:     "misc_feature",
			Location: a.loc,
			Qualifiers: gbk.Qualifiers{
				{Key: "label", Value: a.name, Quoted: true},
				{Key: "note", Value: "matched from the plasmap feature library", Quoted: true},
			},
		})
	}

	if err := gbk.WriteFile(&annotated, outPath); err != nil {
		stderr.Fatal(err)
	}
}

// annotate finds every exact occurrence of each library feature in the
// record, forward and reverse strand. Circular molecules are searched
// across the origin by doubling the sequence
func annotate(rec *gbk.Record, features map[string]string) []annotation {
	target := rec.Seq
	if rec.Topology == gbk.Circular && len(rec.Seq) > 1 {
		target = rec.Seq + rec.Seq[:len(rec.Seq)-1]
	}

	annotations := []annotation{}
	for name, bases := range features {
		if len(bases) == 0 || len(bases) > len(rec.Seq) {
			continue
		}

		for _, start := range occurrences(target, bases, len(rec.Seq)) {
			annotations = append(annotations, annotation{
				name: name,
				loc:  wrapLocation(start, len(bases), len(rec.Seq), false),
			})
		}

		revComp := seq.ReverseComplement(bases)
		if revComp == bases {
			continue // palindromes already matched forward
		}
		for _, start := range occurrences(target, revComp, len(rec.Seq)) {
			annotations = append(annotations, annotation{
				name: name,
				loc:  wrapLocation(start, len(bases), len(rec.Seq), true),
			})
		}
	}

	sort.Slice(annotations, func(i, j int) bool {
		if annotations[i].loc.Start != annotations[j].loc.Start {
			return annotations[i].loc.Start < annotations[j].loc.Start
		}
		return annotations[i].name < annotations[j].name
	})

	return annotations
}

// occurrences returns the 0-based indexes where query occurs in target,
// keeping only starts within the first seqLength bases so a doubled
// circular sequence doesn't report each hit twice
func occurrences(target, query string, seqLength int) (starts []int) {
	for from := 0; ; {
		i := strings.Index(target[from:], query)
		if i < 0 {
			break
		}
		start := from + i
		if start >= seqLength {
			break
		}
		starts = append(starts, start)
		from = start + 1
	}
	return
}

// wrapLocation converts a 0-based match index and length to a 1-based
// location, wrapping the end around the origin when the match crosses it
func wrapLocation(start, length, seqLength int, complement bool) gbk.Location {
	end := start + length // exclusive, may pass seqLength
	if end > seqLength {
		end -= seqLength
	}
	return gbk.Location{Start: start + 1, End: end, Complement: complement}
}
