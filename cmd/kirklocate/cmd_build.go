package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/kirklocate/kirkpatrick"
	"github.com/spf13/cobra"
)

var (
	buildPointsFile string
	buildOutFile    string
	buildVerbose    bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a Locator from a point file and report its statistics",
	RunE:  runBuild,
}

func init() {
	addPointsFlag(buildCmd.Flags(), &buildPointsFile)
	buildCmd.Flags().StringVar(&buildOutFile, "out", "", "write the statistics report here instead of stdout")
	buildCmd.Flags().BoolVar(&buildVerbose, "verbose", false, "enable build-time trace logging")
	_ = buildCmd.MarkFlagRequired("points")
}

func runBuild(cmd *cobra.Command, args []string) error {
	points, err := readPointFile(buildPointsFile)
	if err != nil {
		return err
	}

	loc, err := kirkpatrick.BuildWithOptions(points, kirkpatrick.Options{Verbose: buildVerbose})
	if err != nil {
		return fmt.Errorf("kirklocate: build failed: %w", err)
	}

	stats := loc.Stats()
	report := fmt.Sprintf(
		"vertices:          %d\nroot child count:  %d\nrefinement rounds: %d\n",
		stats.VertexCount, stats.RootChildCount, stats.RefinementRounds,
	)

	if buildOutFile == "" {
		fmt.Print(report)
		return nil
	}
	if err := os.WriteFile(buildOutFile, []byte(report), 0o644); err != nil {
		return fmt.Errorf("kirklocate: writing %q: %w", buildOutFile, err)
	}
	return nil
}
