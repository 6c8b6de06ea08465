package main

import "github.com/spf13/pflag"

// addPointsFlag registers the --points flag shared by build and query,
// factoring repeated flag registration into small addXFlags helpers over
// a *pflag.FlagSet rather than cobra.Command directly.
func addPointsFlag(f *pflag.FlagSet, dest *string) {
	f.StringVar(dest, "points", "", "path to a viewer point file (required)")
}
