package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func newWatchTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "watch"}
	cmd.SetOut(out)
	cmd.Flags().Bool("from-start", false, "")
	cmd.Flags().Bool("follow-rotate", false, "")
	cmd.Flags().Bool("no-color", false, "")
	return cmd
}

func TestWatchMissingFile(t *testing.T) {
	setTestViper(t, "text")

	var out bytes.Buffer
	cmd := newWatchTestCmd(&out)

	if err := runWatch(cmd, []string{"/no/such/file.log"}); err == nil {
		t.Fatal("expected error for missing file")
	}
}
