package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ldamasio/aoc-go/internal/days"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open a day's solution in the editor",
	Long: `Open a day's solution file in the editor, handing the terminal
over. The editor comes from the "editor" config key, $VISUAL or
$EDITOR, falling back to vi.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := workspaceRoot()
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
		day, err := days.Resolve(explicit, reg, days.CmdEdit)
		if err != nil {
			return err
		}

		src, ok := reg.Source(day)
		if !ok {
			return fmt.Errorf("day %d: %w", day, days.ErrNoSource)
		}
		// Hands the terminal over; does not return on success.
		return replaceWith(resolveEditor(), src)
	},
}
