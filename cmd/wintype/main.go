// Command wintype computes canonical type signatures and interface
// identifiers from declarative type tables.
package main

import (
	"fmt"
	"os"

	"github.com/avirell/wintype/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !cli.IsExitError(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
