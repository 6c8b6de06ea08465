// Command kirklocate builds a Kirkpatrick point-location structure over
// a polygon read from a viewer point-file and answers point-in-polygon
// queries against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kirklocate",
	Short: "Hierarchical point-in-polygon preprocessing and query CLI",
}

func main() {
	rootCmd.AddCommand(buildCmd, queryCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
