package cmd

import (
	"github.com/plasmap/plasmap/internal/plasmap"
	"github.com/spf13/cobra"
)

// convertCmd renders a record in another format
var convertCmd = &cobra.Command{
	Use:   "convert [record.gb]",
	Short: "Convert a record to FASTA or JSON",
	Run:   plasmap.ConvertCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("in", "i", "", "Input file name of a GenBank record")
	convertCmd.Flags().StringP("out", "o", "", "Output file name")
	convertCmd.Flags().StringP("format", "f", "fasta", "Output format: fasta or json")
}
