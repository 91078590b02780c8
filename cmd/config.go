/*
Package cmd - Configuration resolution

Settings resolve flag first, then AOC_* env var, then the optional
.aoc-go.yaml config file. The helpers here are shared by every
subcommand.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ldamasio/aoc-go/internal/days"
	"github.com/ldamasio/aoc-go/internal/inputs"
	"github.com/ldamasio/aoc-go/internal/launch"
	"github.com/ldamasio/aoc-go/internal/toolchain"
)

// initConfig wires env vars and the optional config file into viper.
// Precedence: flag > AOC_* env var > config file.
func initConfig() {
	viper.SetEnvPrefix("AOC")
	viper.AutomaticEnv()

	viper.SetConfigName(".aoc-go")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
	viper.ReadInConfig() // Ignore error; config file is optional.
}

// Subprocess and filesystem touchpoints, swappable in tests.
var (
	workspaceRoot = os.Getwd
	listTargets   = func(root string) ([]toolchain.Target, error) {
		return toolchain.New(root).ListTargets()
	}
	runUnit = func(root, name string, release bool, args []string) (int, error) {
		return toolchain.New(root).RunTarget(name, release, args)
	}
	browse      = launch.Browse
	replaceWith = launch.Replace
	exit        = os.Exit
)

// resolveYear returns the puzzle year. There is no sensible default; a
// missing year is a configuration error.
func resolveYear() (int, error) {
	if year := viper.GetInt("year"); year > 0 {
		return year, nil
	}
	return 0, errors.New("year is required (set --year, AOC_YEAR or the config file)")
}

// resolveSession returns the session token, empty if unset.
func resolveSession() string {
	return viper.GetString("session")
}

// resolveEditor returns the editor program for edit-style actions.
func resolveEditor() string {
	if editor := viper.GetString("editor"); editor != "" {
		return editor
	}
	if env := os.Getenv("VISUAL"); env != "" {
		return env
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "vi"
}

// resolveBrowser returns the browser program, empty for the platform
// default opener.
func resolveBrowser() string {
	if browser := viper.GetString("browser"); browser != "" {
		return browser
	}
	return os.Getenv("BROWSER")
}

// explicitDay returns the --day flag, 0 when absent.
func explicitDay() (int, error) {
	if flagDay < 0 {
		return 0, fmt.Errorf("invalid day %d", flagDay)
	}
	return flagDay, nil
}

// buildRegistry scans the workspace's buildable units into a Registry.
func buildRegistry(root string) (*days.Registry, error) {
	targets, err := listTargets(root)
	if err != nil {
		return nil, err
	}
	return days.NewRegistry(targets)
}

// puzzleURL returns the browser URL of a day's puzzle page.
func puzzleURL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d", inputs.BaseURL, year, day)
}
