package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldamasio/aoc-go/internal/days"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a day's puzzle page in the browser",
	Long: `Open the puzzle page for a day in the browser and wait for the
opener to exit. The browser comes from the "browser" config key or
$BROWSER, falling back to the platform's default opener.`,
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
		day, err := days.Resolve(explicit, reg, days.CmdOpen)
		if err != nil {
			return err
		}

		status, err := browse(puzzleURL(year, day), resolveBrowser())
		if err != nil {
			return err
		}
		if status != 0 {
			// The opener's status is the command's outcome, not an error.
			fmt.Fprintf(os.Stderr, "browser exited with status %d\n", status)
			exit(status)
		}
		return nil
	},
}
