// Package toolchain wraps the go tool for the workspace being managed:
// listing the buildable day units under ./cmd and running one of them.
package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Target is one buildable unit of the workspace, as reported by go list.
type Target struct {
	// Name is the unit name, the final element of the import path
	// (e.g. "day7" for ./cmd/day7).
	Name string
	// Dir is the absolute directory containing the unit's source.
	Dir string
}

// GoTool runs the go tool against a workspace root.
type GoTool struct {
	// Dir is the workspace root; all go invocations run from here.
	Dir string
}

// New returns a GoTool for the workspace rooted at dir.
func New(dir string) *GoTool {
	return &GoTool{Dir: dir}
}

// ListTargets enumerates the buildable units under ./cmd/... .
// A workspace without a cmd tree yields no targets rather than an error.
func (g *GoTool) ListTargets() ([]Target, error) {
	cmd := exec.Command("go", "list", "-f", "{{.ImportPath}}\t{{.Dir}}", "./cmd/...")
	cmd.Dir = g.Dir

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			// An unmatched ./cmd/... pattern is an empty workspace, not a
			// failure. Anything else (a broken go.mod, a bad package
			// clause) must surface instead of emptying the registry.
			if strings.Contains(stderr, "matched no packages") {
				return nil, nil
			}
			if stderr != "" {
				return nil, fmt.Errorf("go list: %s", stderr)
			}
		}
		return nil, fmt.Errorf("go list: %w", err)
	}

	return parseTargets(output)
}

// parseTargets decodes the tab-separated import-path/dir lines of ListTargets.
func parseTargets(output []byte) ([]Target, error) {
	var targets []Target
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		importPath, dir, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("go list: unexpected output line %q", line)
		}
		name := importPath
		if i := strings.LastIndex(importPath, "/"); i >= 0 {
			name = importPath[i+1:]
		}
		targets = append(targets, Target{Name: name, Dir: dir})
	}
	return targets, nil
}

// RunTarget builds and runs the named unit with the given arguments,
// inheriting this process's standard streams. The returned int is the
// child's exit status; the error is non-nil only when the child could
// not be started at all.
func (g *GoTool) RunTarget(name string, release bool, args []string) (int, error) {
	cmd := exec.Command("go", runArgs(name, release, args)...)
	cmd.Dir = g.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("go run ./cmd/%s: %w", name, err)
	}
	return 0, nil
}

// runArgs builds the go run argument list for a unit.
func runArgs(name string, release bool, args []string) []string {
	out := []string{"run"}
	if release {
		// Conventional release build: strip symbol table and DWARF.
		out = append(out, "-ldflags=-s -w")
	}
	out = append(out, "./cmd/"+name)
	return append(out, args...)
}
