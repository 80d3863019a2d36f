// Package dictionary loads a plain-text word list into a chainfind-ready
// store, one word per line, skipping blank lines and invalid words without
// aborting the whole load.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"anagramd/pkg/store"
)

// LoadStats summarizes one Load call: how many lines were read, how many
// became words in the store, and how many were skipped as malformed.
type LoadStats struct {
	LinesRead int
	Loaded    int
	Skipped   int
}

// LoadFile opens path and loads it into s via Load.
func LoadFile(path string, s store.Store) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, s)
}

// Load reads r line by line, trims trailing "\r\n" and trailing
// whitespace, and adds each non-blank line to s as a word. A line that
// fails signature.Validate or is rejected by s.Add (capacity exceeded, on
// the static regime) is logged and skipped rather than treated as fatal;
// Load only returns an error for an I/O failure on r itself.
func Load(r io.Reader, s store.Store) (LoadStats, error) {
	var stats LoadStats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	for scanner.Scan() {
		stats.LinesRead++
		line := trimLine(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if _, err := s.Add(line); err != nil {
			log.Debugf("dictionary: skipping line %d (%q): %v", stats.LinesRead, line, err)
			stats.Skipped++
			continue
		}
		stats.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("dictionary: scan: %w", err)
	}
	return stats, nil
}

// trimLine strips a trailing '\r' (for CRLF files) and any trailing ASCII
// space/tab, returning a fresh slice owned by the caller. Leading
// whitespace is left alone, matching load_dictionary's fgets-then-trim
// behavior in the original implementation: a line with a leading space is
// an invalid word and is rejected by signature.Validate, not repaired.
func trimLine(b []byte) []byte {
	end := len(b)
	for end > 0 && (b[end-1] == '\r' || b[end-1] == ' ' || b[end-1] == '\t' || b[end-1] == '\n') {
		end--
	}
	out := make([]byte, end)
	copy(out, b[:end])
	return out
}
