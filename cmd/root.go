// Package cmd is for command line interactions with the plasmap application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "plasmap",
	Short: `Read, check, and transform GenBank plasmid records.
Summarize a record, list its features, extract and translate sequences,
and re-serialize it in the canonical flat-file layout`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	RootCmd.PersistentFlags().StringP("settings", "s", "", "Path to a settings file (YAML)")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
}
