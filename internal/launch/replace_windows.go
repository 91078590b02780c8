//go:build windows

package launch

import "os"

// Replace approximates process replacement on Windows, which has no
// exec: the program runs as a child and this process exits with the
// child's status.
func Replace(program string, args ...string) error {
	status, err := Wait(program, args...)
	if err != nil {
		return err
	}
	os.Exit(status)
	return nil
}
