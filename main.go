/*
Package main implements the aoc-go CLI.

aoc-go manages a Go workspace of Advent of Code solutions: one
buildable unit per day under cmd/, puzzle inputs under inputs/, and
workflow commands that take a day from scaffold to answer.
*/
package main

import (
	"fmt"
	"os"

	"github.com/ldamasio/aoc-go/cmd"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	// Set version info for commands
	cmd.SetVersionInfo(Version, BuildTime)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
