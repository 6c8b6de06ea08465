package main

import (
	"fmt"

	"github.com/katalvlaran/kirklocate/geom"
	"github.com/katalvlaran/kirklocate/kirkpatrick"
	"github.com/katalvlaran/kirklocate/planargraph"
	"github.com/spf13/cobra"
)

var (
	queryPointsFile string
	queryX          int32
	queryY          int32
	queryDumpGraph  bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Build a Locator from a point file and answer one point-in-polygon query",
	RunE:  runQuery,
}

func init() {
	addPointsFlag(queryCmd.Flags(), &queryPointsFile)
	queryCmd.Flags().Int32Var(&queryX, "x", 0, "query point x coordinate")
	queryCmd.Flags().Int32Var(&queryY, "y", 0, "query point y coordinate")
	queryCmd.Flags().BoolVar(&queryDumpGraph, "dump-graph", false, "print the pre-refinement adjacency matrix")
	_ = queryCmd.MarkFlagRequired("points")
}

func runQuery(cmd *cobra.Command, args []string) error {
	points, err := readPointFile(queryPointsFile)
	if err != nil {
		return err
	}

	var snapshot *planargraph.Matrix
	opts := kirkpatrick.Options{}
	if queryDumpGraph {
		opts.OnPreRefineGraph = func(g *planargraph.Graph) {
			snapshot = g.Dump()
		}
	}

	loc, err := kirkpatrick.BuildWithOptions(points, opts)
	if err != nil {
		return fmt.Errorf("kirklocate: build failed: %w", err)
	}

	if snapshot != nil {
		printMatrix(snapshot)
	}

	q := geom.Point{X: queryX, Y: queryY}
	if loc.Locate(q) {
		fmt.Println("inside")
	} else {
		fmt.Println("outside")
	}
	return nil
}

func printMatrix(m *planargraph.Matrix) {
	fmt.Printf("adjacency matrix (%d vertices, pre-refinement):\n", m.VertexCount())
	for _, p := range m.Points {
		fmt.Printf("%s:", p)
		for _, q := range m.Points {
			if p == q {
				continue
			}
			if m.At(p, q) {
				fmt.Printf(" %s", q)
			}
		}
		fmt.Println()
	}
}
