package cmd

import (
	"github.com/plasmap/plasmap/internal/plasmap"
	"github.com/spf13/cobra"
)

var featureDB = plasmap.NewFeatureDB()

// featuresCmd lists a record's annotated features. Also includes
// sub-commands for managing the local feature library
var featuresCmd = &cobra.Command{
	Use:                        "features [record.gb]",
	Short:                      "List the features annotated on a record",
	Run:                        plasmap.FeaturesCmd,
	SuggestionsMinimumDistance: 4,
	Long: `Print each feature in the record's feature table: kind, location,
strand, length, label, and product. --kind filters to one feature kind
and --stats appends a feature-length summary`,
}

// featuresCreateCmd is for adding a new feature to the feature library
var featuresCreateCmd = &cobra.Command{
	Use:                        "create [feature name] [feature sequence]",
	Short:                      "add a feature to the feature library",
	Run:                        featureDB.CreateCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"add", "new"},
	Example:                    "  plasmap features create \"custom terminator\" CTAGCATAACAAGCTTGGGCACCTGTAAACGGGTCTTGAGGGGTTCCATTTTG",
}

// featuresReadCmd is for reading features (close to the one requested) from the library
var featuresReadCmd = &cobra.Command{
	Use:                        "read [feature name]",
	Short:                      "find a feature in the library by its name",
	Run:                        featureDB.ReadCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"find"},
	Example:                    "  plasmap features read promoter",
}

// featuresUpdateCmd is for updating a feature's sequence in the library
var featuresUpdateCmd = &cobra.Command{
	Use:                        "update [feature name] [feature sequence]",
	Short:                      "update a feature's sequence in the feature library",
	Run:                        featureDB.UpdateCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"change"},
	Example:                    "  plasmap features update \"T7 terminator\" CTAGCATAACCCCTTGGGGCCTGTAAACGGGTCTTGAGGGGTTTTTTG",
}

// featuresDeleteCmd is for deleting features from the library
var featuresDeleteCmd = &cobra.Command{
	Use:                        "delete [feature name]",
	Short:                      "delete a feature from the feature library",
	Run:                        featureDB.DeleteCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"remove"},
	Example:                    "  plasmap features delete \"T7 terminator\"",
}

// set flags
func init() {
	featuresCmd.AddCommand(featuresCreateCmd)
	featuresCmd.AddCommand(featuresReadCmd)
	featuresCmd.AddCommand(featuresUpdateCmd)
	featuresCmd.AddCommand(featuresDeleteCmd)

	RootCmd.AddCommand(featuresCmd)

	featuresCmd.Flags().StringP("in", "i", "", "Input file name of a GenBank record")
	featuresCmd.Flags().StringP("kind", "k", "", "Only list features of this kind (CDS, promoter, ...)")
	featuresCmd.Flags().Bool("stats", false, "Append min/mean/median/max of the feature lengths")
}
