package plasmap

import (
	"fmt"
	"os"

	"github.com/plasmap/plasmap/config"
	"github.com/plasmap/plasmap/internal/gbk"
	"github.com/spf13/cobra"
)

// LintCmd checks the record against the format's invariants and exits
// non-zero if any are violated
func LintCmd(cmd *cobra.Command, args []string) {
	rec, path := input(cmd, args, config.New())

	issues := gbk.Lint(rec)
	if len(issues) == 0 {
		fmt.Printf("%s: ok, %d features checked\n", path, len(rec.Features))
		return
	}

	for _, issue := range issues {
		stderr.Printf("%s: %s", path, issue)
	}
	os.Exit(1)
}
