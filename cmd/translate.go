package cmd

import (
	"github.com/plasmap/plasmap/internal/plasmap"
	"github.com/spf13/cobra"
)

// translateCmd decodes a coding region to protein
var translateCmd = &cobra.Command{
	Use:   "translate [record.gb]",
	Short: "Translate a coding region to protein",
	Long: `Decode a CDS feature (or an explicit interval) under the standard
genetic code, reading in-frame from the first base and trimming the
trailing stop. Complemented locations are reverse-complemented first.
--check compares the result against the feature's /translation qualifier
and exits non-zero on a mismatch`,
	Run: plasmap.TranslateCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringP("in", "i", "", "Input file name of a GenBank record")
	translateCmd.Flags().StringP("out", "o", "", "Output file name for the protein FASTA")
	translateCmd.Flags().StringP("feature", "f", "", "Label of the CDS feature to translate")
	translateCmd.Flags().Int("start", 0, "Interval start, 1-based inclusive")
	translateCmd.Flags().Int("end", 0, "Interval end, 1-based inclusive")
	translateCmd.Flags().BoolP("complement", "c", false, "Read the interval on the reverse strand")
	translateCmd.Flags().Bool("check", false, "Compare against the /translation qualifier")
}
