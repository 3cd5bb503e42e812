package plasmap

import (
	"encoding/json"
	"fmt"

	"github.com/plasmap/plasmap/config"
	"github.com/plasmap/plasmap/internal/gbk"
	"github.com/spf13/cobra"
)

// FmtCmd re-serializes the record with the canonical GenBank column
// layout, to stdout or --out. A conformant input round-trips byte for
// byte
func FmtCmd(cmd *cobra.Command, args []string) {
	rec, _ := input(cmd, args, config.New())

	out := output(cmd)
	defer out.Close()

	if err := gbk.Write(rec, out); err != nil {
		stderr.Fatal(err)
	}
}

// ConvertCmd renders the record as FASTA or JSON
func ConvertCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	rec, _ := input(cmd, args, c)

	format, _ := cmd.Flags().GetString("format")

	out := output(cmd)
	defer out.Close()

	switch format {
	case "fasta":
		name := rec.Name
		if rec.Definition != "" {
			name = fmt.Sprintf("%s %s", rec.Name, rec.Definition)
		}
		writeFasta(out, name, rec.Seq, c.Format.FastaWidth)
	case "json":
		encoded, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			stderr.Fatalf("failed to serialize %s: %v", rec.Name, err)
		}
		fmt.Fprintf(out, "%s\n", encoded)
	default:
		stderr.Fatalf("unrecognized format %q, expected fasta or json", format)
	}
}
