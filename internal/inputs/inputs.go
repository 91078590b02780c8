// Package inputs downloads puzzle inputs and maps days to their
// on-disk input files.
package inputs

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ldamasio/aoc-go/internal/days"
)

// BaseURL is the site the puzzle inputs are fetched from. Tests point
// it at a local server.
var BaseURL = "https://adventofcode.com"

// ErrNoSession reports a fetch attempted without a session token.
var ErrNoSession = errors.New("no session token (set --session, AOC_SESSION or the config file)")

// Dir returns the inputs directory of a workspace.
func Dir(root string) string {
	return filepath.Join(root, "inputs")
}

// Path returns the input file for a day, e.g. <root>/inputs/day7.
func Path(root string, day int) string {
	return filepath.Join(Dir(root), days.UnitName(day))
}

// Fetch downloads the puzzle input for (year, day) and writes it to
// Path(root, day), replacing any previous contents. The session token
// is checked before any network activity. The file is written with a
// rename so a failed download never leaves a truncated input behind.
func Fetch(year, day int, root, session string) error {
	if session == "" {
		return ErrNoSession
	}
	if err := os.Mkdir(Dir(root), 0o755); err != nil && !os.IsExist(err) {
		return fmt.Errorf("create inputs directory: %w", err)
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", BaseURL, year, day)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("fetch input for day %d: %w", day, err)
	}
	req.Header.Set("Cookie", "session="+session)

	// No timeout: the request blocks until the server answers or the
	// connection drops.
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch input for day %d: %w", day, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("fetch input for day %d: %w", day, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("fetch input for day %d: HTTP %d: %s",
			day, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return writeFileAtomic(Path(root, day), body)
}

// writeFileAtomic writes data to path via a temp file and rename, so
// readers never observe a partially written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpName)
		if werr != nil {
			return fmt.Errorf("write %s: %w", path, werr)
		}
		return fmt.Errorf("write %s: %w", path, cerr)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
