package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/ldamasio/aoc-go/internal/days"
	"github.com/ldamasio/aoc-go/internal/inputs"
	"github.com/ldamasio/aoc-go/internal/toolchain"
)

const testTemplate = `package main

func main() {
	// part 1 here
	panic("unimplemented")
}
`

// testWorkspace creates a workspace root and points the command layer
// at it. Day units are discovered by scanning cmd/ directly so tests
// do not need the go tool on PATH.
func testWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	origRoot := workspaceRoot
	workspaceRoot = func() (string, error) { return root, nil }

	origList := listTargets
	listTargets = func(r string) ([]toolchain.Target, error) {
		entries, err := os.ReadDir(filepath.Join(r, "cmd"))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}
		var targets []toolchain.Target
		for _, entry := range entries {
			if entry.IsDir() {
				targets = append(targets, toolchain.Target{
					Name: entry.Name(),
					Dir:  filepath.Join(r, "cmd", entry.Name()),
				})
			}
		}
		return targets, nil
	}

	t.Cleanup(func() {
		workspaceRoot = origRoot
		listTargets = origList
	})

	// Keep the resolvers away from the developer's real environment
	// and config file.
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"AOC_YEAR", "AOC_SESSION", "AOC_EDITOR", "AOC_BROWSER", "VISUAL", "EDITOR", "BROWSER"} {
		t.Setenv(key, "")
	}
	return root
}

type browseCall struct {
	url     string
	browser string
}

type runCall struct {
	root    string
	name    string
	release bool
	args    []string
}

// launchRecorder stands in for the subprocess touchpoints and records
// what the commands asked for.
type launchRecorder struct {
	browseCalls  []browseCall
	browseStatus int
	browseErr    error

	replaceCalls [][]string
	replaceErr   error

	runCalls  []runCall
	runStatus int
	runErr    error

	exitCodes []int
}

func stubLaunchers(t *testing.T) *launchRecorder {
	t.Helper()
	rec := &launchRecorder{}

	origBrowse := browse
	origReplace := replaceWith
	origRun := runUnit
	origExit := exit

	browse = func(url, browser string) (int, error) {
		rec.browseCalls = append(rec.browseCalls, browseCall{url: url, browser: browser})
		return rec.browseStatus, rec.browseErr
	}
	replaceWith = func(program string, args ...string) error {
		if rec.replaceErr != nil {
			return rec.replaceErr
		}
		rec.replaceCalls = append(rec.replaceCalls, append([]string{program}, args...))
		return nil
	}
	runUnit = func(root, name string, release bool, args []string) (int, error) {
		rec.runCalls = append(rec.runCalls, runCall{root: root, name: name, release: release, args: args})
		return rec.runStatus, rec.runErr
	}
	exit = func(code int) {
		rec.exitCodes = append(rec.exitCodes, code)
	}

	t.Cleanup(func() {
		browse = origBrowse
		replaceWith = origReplace
		runUnit = origRun
		exit = origExit
	})
	return rec
}

// stubInputServer serves puzzle inputs from a local server for the
// duration of a test.
func stubInputServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	old := inputs.BaseURL
	inputs.BaseURL = srv.URL
	t.Cleanup(func() {
		inputs.BaseURL = old
		srv.Close()
	})
	return srv
}

func writeTemplate(t *testing.T, root string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, templateFile), []byte(testTemplate), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeDay(t *testing.T, root string, day int, contents string) string {
	t.Helper()
	dir := filepath.Join(root, "cmd", days.UnitName(day))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(args ...string) (string, error) {
	resetFlags()
	return captureStdout(func() error {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	})
}

// resetFlags clears flag state left behind by a previous Execute in
// the same process.
func resetFlags() {
	flagYear, flagDay, flagSession = 0, 0, ""
	newForce, newSkipFetch, newSkipOpen, newSkipEdit = false, false, false, false
	runRelease, runPart, runInput = false, 0, ""

	rootCmd.PersistentFlags().Visit(func(f *pflag.Flag) { f.Changed = false })
	for _, c := range rootCmd.Commands() {
		c.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })
	}
}

func captureStdout(fn func() error) (string, error) {
	originalStdout := os.Stdout
	reader, writer, _ := os.Pipe()
	os.Stdout = writer

	err := fn()

	writer.Close()
	os.Stdout = originalStdout

	output, _ := io.ReadAll(reader)
	return string(output), err
}

func captureStderr(fn func() error) (string, error) {
	originalStderr := os.Stderr
	reader, writer, _ := os.Pipe()
	os.Stderr = writer

	err := fn()

	writer.Close()
	os.Stderr = originalStderr

	output, _ := io.ReadAll(reader)
	return string(output), err
}
