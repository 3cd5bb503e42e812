package plasmap

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/plasmap/plasmap/config"
	"github.com/plasmap/plasmap/internal/gbk"
	"github.com/plasmap/plasmap/internal/seq"
	"github.com/spf13/cobra"
)

// InfoCmd prints a summary of a record's LOCUS metadata, feature count,
// and GC content
func InfoCmd(cmd *cobra.Command, args []string) {
	rec, path := input(cmd, args, config.New())
	info(os.Stdout, rec, path)
}

// info writes the record summary as an aligned two column table
func info(w io.Writer, rec *gbk.Record, path string) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)

	fmt.Fprintf(tw, "name\t%s\n", rec.Name)
	fmt.Fprintf(tw, "file\t%s\n", path)
	fmt.Fprintf(tw, "length\t%d bp\n", rec.Length)
	fmt.Fprintf(tw, "topology\t%s\n", rec.Topology)
	fmt.Fprintf(tw, "molecule\t%s\n", rec.MoleculeType)
	fmt.Fprintf(tw, "division\t%s\n", rec.Division)
	fmt.Fprintf(tw, "date\t%s\n", rec.Date)
	fmt.Fprintf(tw, "definition\t%s\n", rec.Definition)
	fmt.Fprintf(tw, "features\t%d\n", len(rec.Features))
	fmt.Fprintf(tw, "gc\t%.1f%%\n", seq.GC(rec.Seq)*100)

	tw.Flush()
}
