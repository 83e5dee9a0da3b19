// Package ingest delivers raw log lines to a consumer, one at a time, in
// arrival order.
//
// The miner itself does no I/O and is not safe for concurrent use; this
// package is the serializing boundary in front of it. Every source calls
// the line callback from a single goroutine, so a callback that feeds a
// mine.Miner needs no locking.
package ingest

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single scanned line (generous for JSON logs).
const maxLineSize = 1024 * 1024

// LineFunc receives one raw line. Returning an error stops the source.
type LineFunc func(line string) error

// Lines feeds every non-blank line from the reader to fn, in order.
func Lines(r io.Reader, fn LineFunc) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, maxLineSize)
	scanner.Buffer(buf, maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// File feeds every non-blank line of a file to fn.
func File(path string, fn LineFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Lines(f, fn)
}
