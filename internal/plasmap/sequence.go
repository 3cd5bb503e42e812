package plasmap

import (
	"fmt"
	"io"

	"github.com/plasmap/plasmap/config"
	"github.com/plasmap/plasmap/internal/gbk"
	"github.com/spf13/cobra"
)

// SeqCmd extracts a subsequence from the record, either a named
// feature's bases or an explicit --start/--end interval, and writes it
// as FASTA
func SeqCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	rec, _ := input(cmd, args, c)

	label, _ := cmd.Flags().GetString("feature")
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")
	complement, _ := cmd.Flags().GetBool("complement")

	name, bases, err := extract(rec, label, start, end, complement)
	if err != nil {
		stderr.Fatal(err)
	}

	out := output(cmd)
	defer out.Close()
	writeFasta(out, name, bases, c.Format.FastaWidth)
}

// extract resolves either a named feature or a 1-based inclusive
// interval against the record. Intervals with start > end wrap through
// the origin on circular molecules, and --complement resolves the
// reverse strand
func extract(rec *gbk.Record, label string, start, end int, complement bool) (string, string, error) {
	if label != "" {
		f, ok := rec.FeatureByLabel(label)
		if !ok {
			return "", "", fmt.Errorf("no feature labeled %q in %s", label, rec.Name)
		}

		bases, err := rec.LocationSeq(f.Location)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf("%s %s %s", rec.Name, label, f.Location), bases, nil
	}

	if start == 0 || end == 0 {
		return "", "", fmt.Errorf("pass a --feature label or both --start and --end")
	}

	loc := gbk.Location{Start: start, End: end, Complement: complement}
	bases, err := rec.LocationSeq(loc)
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("%s %s", rec.Name, loc), bases, nil
}

// writeFasta writes a single FASTA record with the sequence wrapped at
// width bases per line
func writeFasta(w io.Writer, name, bases string, width int) {
	if width < 1 {
		width = 60
	}

	fmt.Fprintf(w, ">%s\n", name)
	for i := 0; i < len(bases); i += width {
		end := i + width
		if end > len(bases) {
			end = len(bases)
		}
		fmt.Fprintln(w, bases[i:end])
	}
}
