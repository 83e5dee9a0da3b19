package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mlindgren/logsift/internal/mine"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // Auto-detect based on TTY
	ColorAlways                  // Always use colors
	ColorNever                   // Never use colors
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// shouldColorize determines if output should be colorized based on mode and TTY detection.
func shouldColorize(mode ColorMode, w interface{}) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		if f, ok := w.(*os.File); ok {
			return isTerminal(f)
		}
		return false
	}
	return false
}

// highlightTemplate renders template tokens with wildcards emphasized so
// the variable slots stand out when watching a live stream.
func highlightTemplate(tokens []string, colorize bool) string {
	if !colorize {
		return strings.Join(tokens, " ")
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok == mine.Wildcard {
			parts[i] = colorYellow + tok + colorReset
		} else {
			parts[i] = tok
		}
	}
	return strings.Join(parts, " ")
}

// WriteColoredRecord writes a per-line record, marking records that created
// a brand new cluster and highlighting wildcard slots. Only meaningful for
// text output; other formats fall back to WriteRecord.
func (wr *Writer) WriteColoredRecord(rec mine.Record, isNew bool, mode ColorMode) error {
	if wr.format != FormatText {
		return wr.WriteRecord(rec)
	}

	colorize := shouldColorize(mode, wr.w)
	id := fmt.Sprintf("[%d]", rec.ClusterID)
	if isNew && colorize {
		id = colorGreen + id + colorReset
	}
	_, err := fmt.Fprintf(wr.w, "%s %s\n", id, highlightTemplate(rec.Template, colorize))
	return err
}
