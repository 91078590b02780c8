/*
Package cmd implements all CLI subcommands for aoc-go.

The root command carries the global flags (year, day, session) shared by
every workflow command; each subcommand is one terminal action against
the workspace in the current directory.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags
	flagYear    int
	flagDay     int
	flagSession string

	// Version information (set by main)
	version   string
	buildTime string

	rootCmd = &cobra.Command{
		Use:   "aoc-go",
		Short: "Advent of Code workspace helper",
		Long: `aoc-go manages a Go workspace of Advent of Code solutions.

Each day lives in its own unit, cmd/day<N>/main.go, built and run with
the standard go tool. Puzzle inputs live under inputs/day<N>.

A typical December morning:
  aoc-go new    scaffold today's solution from the workspace template,
                fetch its puzzle input and open the puzzle page
  aoc-go run    build and run the latest day against its input

Year and session token come from flags, AOC_* environment variables or
an .aoc-go.yaml config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information for the CLI
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags available to all subcommands
	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", 0, "Puzzle year (e.g. 2023)")
	rootCmd.PersistentFlags().IntVarP(&flagDay, "day", "d", 0, "Day to act on (default: highest day in the workspace)")
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "", "Advent of Code session token")

	// Bind flags to viper so env vars and the config file can fill them in.
	viper.BindPFlag("year", rootCmd.PersistentFlags().Lookup("year"))
	viper.BindPFlag("session", rootCmd.PersistentFlags().Lookup("session"))

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("aoc-go version %s (built %s)\n", version, buildTime)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}
