package cmd

import (
	"github.com/plasmap/plasmap/internal/plasmap"
	"github.com/spf13/cobra"
)

// fmtCmd re-serializes a record in the canonical layout
var fmtCmd = &cobra.Command{
	Use:   "fmt [record.gb]",
	Short: "Re-serialize a record in the canonical GenBank layout",
	Long: `Parse a record and print it back with the canonical column layout:
the feature table at its fixed columns and the ORIGIN block in ten-base
groups, six per line. A conformant input reproduces itself byte for byte`,
	Run: plasmap.FmtCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().StringP("in", "i", "", "Input file name of a GenBank record")
	fmtCmd.Flags().StringP("out", "o", "", "Output file name for the formatted record")
}
