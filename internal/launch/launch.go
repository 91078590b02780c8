// Package launch starts the external programs the workflow hands off
// to: the browser in wait mode and the editor in replace mode.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Wait runs program as a child with inherited standard streams and
// blocks until it exits. The returned int is the child's exit status;
// the error is non-nil only when the program could not be started.
func Wait(program string, args ...string) (int, error) {
	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("start %s: %w", program, err)
	}
	return 0, nil
}

// Browse opens url in a browser and waits for the opener to exit.
// An explicit browser program takes precedence over the platform
// default opener.
func Browse(url, browser string) (int, error) {
	program, args := openCommand(url, browser)
	return Wait(program, args...)
}

func openCommand(url, browser string) (string, []string) {
	if browser != "" {
		return browser, []string{url}
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
