package cmd

import (
	"github.com/plasmap/plasmap/internal/plasmap"
	"github.com/spf13/cobra"
)

// infoCmd summarizes a record's metadata
var infoCmd = &cobra.Command{
	Use:   "info [record.gb]",
	Short: "Summarize a GenBank record",
	Long: `Parse a GenBank record and print its LOCUS metadata: name, length,
topology, molecule type, plus the feature count and GC content.
Without a file, the packaged pBR322 record is summarized`,
	Run: plasmap.InfoCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringP("in", "i", "", "Input file name of a GenBank record")
}
