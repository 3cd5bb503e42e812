package cmd

import (
	"github.com/plasmap/plasmap/internal/plasmap"
	"github.com/spf13/cobra"
)

// seqCmd extracts a subsequence from a record
var seqCmd = &cobra.Command{
	Use:   "seq [record.gb]",
	Short: "Extract a subsequence from a record as FASTA",
	Long: `Resolve a named feature or a 1-based inclusive interval against the
record's sequence. On a circular molecule an interval with start > end
wraps through the origin. --complement returns the reverse complement,
the bases as read on the reverse strand`,
	Run: plasmap.SeqCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(seqCmd)

	seqCmd.Flags().StringP("in", "i", "", "Input file name of a GenBank record")
	seqCmd.Flags().StringP("out", "o", "", "Output file name for the FASTA record")
	seqCmd.Flags().StringP("feature", "f", "", "Label of the feature to extract")
	seqCmd.Flags().Int("start", 0, "Interval start, 1-based inclusive")
	seqCmd.Flags().Int("end", 0, "Interval end, 1-based inclusive")
	seqCmd.Flags().BoolP("complement", "c", false, "Resolve the reverse strand")
}
