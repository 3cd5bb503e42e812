package cmd

import (
	"github.com/plasmap/plasmap/internal/plasmap"
	"github.com/spf13/cobra"
)

// annotateCmd matches the feature library against a record
var annotateCmd = &cobra.Command{
	Use:   "annotate [record.gb]",
	Short: "Find feature library sequences in a record",
	Long: `Search the record's sequence for every feature in the local library,
on both strands and across the origin of a circular molecule. Matches
are printed, or written into an annotated copy of the record with --out.
The input record is never modified`,
	Run: plasmap.AnnotateCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().StringP("in", "i", "", "Input file name of a GenBank record")
	annotateCmd.Flags().StringP("out", "o", "", "Output file name for the annotated copy")
}
