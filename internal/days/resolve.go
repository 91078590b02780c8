package days

import "errors"

// ErrNoDay reports that no day could be resolved: none was given and
// the workspace has no day units yet.
var ErrNoDay = errors.New("no day units in workspace and no day given")

// ErrNoSource reports a resolved day with no unit in the workspace.
var ErrNoSource = errors.New("no solution for day")

// Command names the operation a day is being resolved for. Commands
// that create state may fall back to day 1 in an empty workspace;
// commands that only consume state may not.
type Command int

const (
	CmdNew Command = iota
	CmdFetch
	CmdRun
	CmdOpen
	CmdEdit
)

// bootstraps reports whether cmd is allowed to default to day 1 when
// the workspace is empty and no explicit day was given.
func (c Command) bootstraps() bool {
	return c == CmdNew || c == CmdFetch
}

// Resolve picks the day a command acts on. An explicit day (> 0) always
// wins, with no existence check. Otherwise the highest registered day
// is used; in an empty workspace, bootstrap commands get day 1 and the
// rest fail with ErrNoDay.
func Resolve(explicit int, reg *Registry, cmd Command) (int, error) {
	if explicit > 0 {
		return explicit, nil
	}
	if max, ok := reg.Max(); ok {
		return max, nil
	}
	if cmd.bootstraps() {
		return 1, nil
	}
	return 0, ErrNoDay
}
