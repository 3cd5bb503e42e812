// Package plasmap implements the plasmap commands on top of the gbk
// parser and the seq primitives
package plasmap

import (
	"log"
	"os"

	"github.com/plasmap/plasmap/config"
	"github.com/plasmap/plasmap/internal/gbk"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// input parses the record a command was pointed at: the --in flag, the
// first positional argument, or the packaged pBR322 record. Exits the
// app on a parse error
func input(cmd *cobra.Command, args []string, c *config.Config) (*gbk.Record, string) {
	path := ""
	if cmd != nil {
		path, _ = cmd.Flags().GetString("in")
	}
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = config.RecordFile
	}

	parser := &gbk.Parser{AllowAmbiguity: c.Parse.AllowAmbiguity}
	rec, err := parser.ParseFile(path)
	if err != nil {
		stderr.Fatal(err)
	}

	return rec, path
}

// output is the file behind the --out flag, or Stdout without one
func output(cmd *cobra.Command) *os.File {
	path := ""
	if cmd != nil {
		path, _ = cmd.Flags().GetString("out")
	}
	if path == "" {
		return os.Stdout
	}

	f, err := os.Create(path)
	if err != nil {
		stderr.Fatal(err)
	}
	return f
}
