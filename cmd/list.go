package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ldamasio/aoc-go/internal/inputs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the days in the workspace",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := workspaceRoot()
		if err != nil {
			return err
		}
		reg, err := buildRegistry(root)
		if err != nil {
			return err
		}
		if reg.Len() == 0 {
			fmt.Println("No days yet. Start with: aoc-go new --year <year>")
			return nil
		}

		for _, day := range reg.Days() {
			src, _ := reg.Source(day)
			if rel, err := filepath.Rel(root, src); err == nil {
				src = rel
			}
			if _, err := os.Stat(inputs.Path(root, day)); err != nil {
				fmt.Printf("day %2d  %s  (no input)\n", day, src)
			} else {
				fmt.Printf("day %2d  %s\n", day, src)
			}
		}
		return nil
	},
}
