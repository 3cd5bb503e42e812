package cmd

import (
	"github.com/plasmap/plasmap/internal/plasmap"
	"github.com/spf13/cobra"
)

// lintCmd validates a record against the format's invariants
var lintCmd = &cobra.Command{
	Use:   "lint [record.gb]",
	Short: "Check a record against the GenBank format invariants",
	Long: `Verify that every feature interval falls within [1, length], that the
declared LOCUS length matches the ORIGIN base count, that the sequence
alphabet is ACGT, and that each CDS /translation matches its translated
coding sequence. Exits non-zero when any check fails`,
	Run: plasmap.LintCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringP("in", "i", "", "Input file name of a GenBank record")
}
