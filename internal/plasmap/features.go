package plasmap

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"github.com/plasmap/plasmap/config"
	"github.com/plasmap/plasmap/internal/gbk"
	"github.com/spf13/cobra"
)

// FeaturesCmd lists the record's annotated features, optionally filtered
// by kind, with a feature-length stats footer behind --stats
func FeaturesCmd(cmd *cobra.Command, args []string) {
	rec, _ := input(cmd, args, config.New())

	kind, _ := cmd.Flags().GetString("kind")
	withStats, _ := cmd.Flags().GetBool("stats")

	featureTable(os.Stdout, rec, kind)

	if withStats {
		if err := featureStats(os.Stdout, rec, kind); err != nil {
			stderr.Fatal(err)
		}
	}
}

// featureTable writes one row per feature: kind, location, strand,
// length, label, and product
func featureTable(w io.Writer, rec *gbk.Record, kind string) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(tw, "kind\tlocation\tstrand\tlength\tlabel\tproduct\n")

	for i := range rec.Features {
		f := &rec.Features[i]
		if kind != "" && f.Kind != kind {
			continue
		}

		strand := "+"
		if f.Location.Complement {
			strand = "-"
		}
		product, _ := f.Qualifiers.Get("product")

		fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%d\t%s\t%s\n",
			f.Kind,
			f.Location,
			strand,
			f.Location.Len(rec.Length),
			f.Label(),
			product,
		)
	}

	tw.Flush()
}

// featureStats writes min/mean/median/max of the (filtered) feature
// lengths in bp
func featureStats(w io.Writer, rec *gbk.Record, kind string) error {
	lengths := []float64{}
	for _, f := range rec.Features {
		if kind != "" && f.Kind != kind {
			continue
		}
		lengths = append(lengths, float64(f.Location.Len(rec.Length)))
	}

	if len(lengths) == 0 {
		return fmt.Errorf("no features to summarize")
	}

	min, err := stats.Min(lengths)
	if err != nil {
		return err
	}
	max, err := stats.Max(lengths)
	if err != nil {
		return err
	}
	mean, err := stats.Mean(lengths)
	if err != nil {
		return err
	}
	median, err := stats.Median(lengths)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(tw, "\ncount\t%d\n", len(lengths))
	fmt.Fprintf(tw, "min\t%.0f bp\n", min)
	fmt.Fprintf(tw, "mean\t%.1f bp\n", mean)
	fmt.Fprintf(tw, "median\t%.1f bp\n", median)
	fmt.Fprintf(tw, "max\t%.0f bp\n", max)
	tw.Flush()

	return nil
}
