/*
Package cmd - Run command

Builds and runs a day through the go toolchain and mirrors the child's
exit status as aoc-go's own, so scripts observe the solution's outcome
rather than the wrapper's.
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ldamasio/aoc-go/internal/days"
	"github.com/ldamasio/aoc-go/internal/inputs"
)

// part2Marker is the line the template ships in the part-2 body; its
// presence in a solution means part 2 has not been started yet.
const part2Marker = `panic("unimplemented")`

var (
	runRelease bool
	runPart    int
	runInput   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build and run a day's solution",
	Long: `Build and run a day's solution via go run, passing it the part to
solve and the path to its input file.

Without --part, the solution source is inspected: while the part-2
body still carries the template's panic("unimplemented"), part 1 is
run, otherwise part 2. The solution's exit status becomes aoc-go's
own exit status.

Examples:
  aoc-go run
  aoc-go run --day 5 --part 2
  aoc-go run --release --input inputs/day5-example`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runPart != 0 && runPart != 1 && runPart != 2 {
			return fmt.Errorf("invalid part %d (must be 1 or 2)", runPart)
		}
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
		day, err := days.Resolve(explicit, reg, days.CmdRun)
		if err != nil {
			return err
		}

		src, ok := reg.Source(day)
		if !ok {
			return fmt.Errorf("day %d: %w", day, days.ErrNoSource)
		}

		part := runPart
		if part == 0 {
			text, err := os.ReadFile(src)
			if err != nil {
				return fmt.Errorf("read %s: %w", src, err)
			}
			if strings.Contains(string(text), part2Marker) {
				part = 1
			} else {
				part = 2
			}
		}

		input := runInput
		if input == "" {
			input = inputs.Path(root, day)
		}

		status, err := runUnit(root, days.UnitName(day), runRelease, []string{strconv.Itoa(part), input})
		if err != nil {
			return err
		}
		if status != 0 {
			// The solution owns its output; only the status is mirrored.
			exit(status)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runRelease, "release", false, "Build with release flags (-ldflags=-s -w)")
	runCmd.Flags().IntVar(&runPart, "part", 0, "Part to run, 1 or 2 (default: inferred from the source)")
	runCmd.Flags().StringVar(&runInput, "input", "", "Input file path (default: inputs/day<N>)")
}
