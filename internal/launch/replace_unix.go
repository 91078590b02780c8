//go:build !windows

package launch

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Replace hands the process over to program, which takes ownership of
// the terminal as if the user had started it directly. On success it
// never returns.
func Replace(program string, args ...string) error {
	path, err := exec.LookPath(program)
	if err != nil {
		return fmt.Errorf("find %s: %w", program, err)
	}
	argv := append([]string{path}, args...)
	err = syscall.Exec(path, argv, os.Environ())
	// Exec only returns on failure.
	return fmt.Errorf("exec %s: %w", program, err)
}
