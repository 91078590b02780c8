package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ldamasio/aoc-go/internal/days"
	"github.com/ldamasio/aoc-go/internal/inputs"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a day's puzzle input",
	Long: `Download the puzzle input for a day to inputs/day<N>.

Fetching needs a session token: copy the value of the "session" cookie
from a logged-in adventofcode.com browser session and pass it with
--session, AOC_SESSION or the config file.

Examples:
  aoc-go fetch --year 2023
  aoc-go fetch --year 2023 --day 5 --session 53616c...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := workspaceRoot()
		if err != nil {
			return err
		}
		year, err := resolveYear()
		if err != nil {
			return err
		}
		explicit, err := explicitDay()
		if err != nil {
			return err
		}
		reg, err := buildRegistry(root)
		if err != nil {
			return err
		}
		day, err := days.Resolve(explicit, reg, days.CmdFetch)
		if err != nil {
			return err
		}

		if err := inputs.Fetch(year, day, root, resolveSession()); err != nil {
			return err
		}
		fmt.Printf("Fetched input for day %d to %s\n", day, filepath.Join("inputs", days.UnitName(day)))
		return nil
	},
}
