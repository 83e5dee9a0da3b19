// Package output renders per-line mining records and cluster dumps.
// It supports text, JSON, and table formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mlindgren/logsift/internal/mine"
)

// Format represents an output format type.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Writer handles writing formatted output.
type Writer struct {
	w      io.Writer
	format Format
}

// New creates a new output Writer.
func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// WriteRecord outputs one per-line mining record. JSON records are
// newline-delimited so downstream consumers can stream them.
func (wr *Writer) WriteRecord(rec mine.Record) error {
	if wr.format == FormatJSON {
		return json.NewEncoder(wr.w).Encode(rec)
	}
	_, err := fmt.Fprintf(wr.w, "[%d] %s\n", rec.ClusterID, rec.TemplateString())
	return err
}

// WriteClusters outputs a cluster dump in the configured format.
func (wr *Writer) WriteClusters(clusters []mine.ClusterInfo) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(clusters)
	case FormatTable:
		return wr.writeClustersTable(clusters)
	default:
		return wr.writeClustersText(clusters)
	}
}

// WriteJSON outputs any value as indented JSON.
func (wr *Writer) WriteJSON(v interface{}) error {
	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (wr *Writer) writeClustersText(clusters []mine.ClusterInfo) error {
	for _, c := range clusters {
		if _, err := fmt.Fprintf(wr.w, "[%d] %s  (%d lines)\n", c.ID, c.TemplateString(), c.Count); err != nil {
			return err
		}
	}
	return nil
}

func (wr *Writer) writeClustersTable(clusters []mine.ClusterInfo) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOUNT\tTEMPLATE")
	fmt.Fprintln(tw, "--\t-----\t--------")

	for _, c := range clusters {
		template := c.TemplateString()
		if len(template) > 100 {
			template = template[:97] + "..."
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\n", c.ID, c.Count, template)
	}

	return tw.Flush()
}
