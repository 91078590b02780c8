/*
Package cmd - New-day workflow

new is the composite command: it scaffolds a day's unit from the
workspace template, then walks the follow-up steps (fetch the input,
open the puzzle, hand the terminal to the editor), each skippable by
flag. A fetch or browser start failure stops the walk; an editor
hand-off ends the process.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ldamasio/aoc-go/internal/days"
	"github.com/ldamasio/aoc-go/internal/inputs"
)

// templateFile is the scaffold copied for each new day, looked up at
// the workspace root.
const templateFile = "main.go.tmpl"

var (
	newForce     bool
	newSkipFetch bool
	newSkipOpen  bool
	newSkipEdit  bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a day's solution from the workspace template",
	Long: `Scaffold a solution unit for a day.

Copies the workspace template to cmd/day<N>/main.go, fetches the
puzzle input, opens the puzzle page in the browser and finally hands
the terminal to the editor with the fresh file. Each follow-up step
can be skipped with a flag.

Without --day, the newest day already in the workspace is targeted
(day 1 in an empty workspace); pass --day to scaffold ahead.

Examples:
  aoc-go new --year 2023
  aoc-go new --year 2023 --day 5 --skip-open
  aoc-go new --year 2023 --day 5 --force --skip-fetch --skip-edit`,
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
		day, err := days.Resolve(explicit, reg, days.CmdNew)
		if err != nil {
			return err
		}

		scaffold, err := os.ReadFile(filepath.Join(root, templateFile))
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}

		unit := days.UnitName(day)
		target := filepath.Join(root, "cmd", unit, "main.go")
		if _, err := os.Stat(target); err == nil && !newForce {
			return fmt.Errorf("%s already exists (rerun with --force to overwrite)",
				filepath.Join("cmd", unit, "main.go"))
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, scaffold, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		fmt.Printf("Created %s\n", filepath.Join("cmd", unit, "main.go"))

		if !newSkipFetch {
			if err := inputs.Fetch(year, day, root, resolveSession()); err != nil {
				return err
			}
			fmt.Printf("Fetched input to %s\n", filepath.Join("inputs", unit))
		}

		if !newSkipOpen {
			status, err := browse(puzzleURL(year, day), resolveBrowser())
			if err != nil {
				return err
			}
			if status != 0 {
				fmt.Fprintf(os.Stderr, "browser exited with status %d\n", status)
			}
		}

		if !newSkipEdit {
			// Hands the terminal over; does not return on success.
			return replaceWith(resolveEditor(), target)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing solution file")
	newCmd.Flags().BoolVar(&newSkipFetch, "skip-fetch", false, "Do not fetch the puzzle input")
	newCmd.Flags().BoolVar(&newSkipOpen, "skip-open", false, "Do not open the puzzle page in the browser")
	newCmd.Flags().BoolVar(&newSkipEdit, "skip-edit", false, "Do not open the new file in the editor")
}
