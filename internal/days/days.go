// Package days maps the day-numbered units of a workspace to their
// sources and resolves which day a command should act on.
package days

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ldamasio/aoc-go/internal/toolchain"
)

// unitPrefix is the naming convention for day units: day1, day2, ...
const unitPrefix = "day"

// ErrBadUnitName reports a unit that claims the day naming convention
// but does not follow it (e.g. "dayX").
var ErrBadUnitName = errors.New("malformed day unit name")

// UnitName returns the unit name for a day number, e.g. 7 -> "day7".
func UnitName(day int) string {
	return unitPrefix + strconv.Itoa(day)
}

type entry struct {
	day    int
	source string
}

// Registry is the set of day units present in a workspace, ordered by
// ascending day number.
type Registry struct {
	entries []entry
}

// NewRegistry builds a Registry from the workspace's buildable units.
// Units whose name does not start with "day" are ignored. A unit that
// starts with "day" but whose suffix is not a number is an error.
func NewRegistry(targets []toolchain.Target) (*Registry, error) {
	reg := &Registry{}
	for _, t := range targets {
		suffix, ok := strings.CutPrefix(t.Name, unitPrefix)
		if !ok {
			continue
		}
		day, err := strconv.ParseUint(suffix, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", t.Name, ErrBadUnitName)
		}
		reg.entries = append(reg.entries, entry{
			day:    int(day),
			source: filepath.Join(t.Dir, "main.go"),
		})
	}
	sort.Slice(reg.entries, func(i, j int) bool {
		return reg.entries[i].day < reg.entries[j].day
	})
	return reg, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	out := make([]int, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.day
	}
	return out
}

// Source returns the source file of a registered day.
func (r *Registry) Source(day int) (string, bool) {
	for _, e := range r.entries {
		if e.day == day {
			return e.source, true
		}
	}
	return "", false
}

// Max returns the highest registered day, or false for an empty workspace.
func (r *Registry) Max() (int, bool) {
	if len(r.entries) == 0 {
		return 0, false
	}
	return r.entries[len(r.entries)-1].day, true
}

// Len returns the number of registered days.
func (r *Registry) Len() int {
	return len(r.entries)
}
