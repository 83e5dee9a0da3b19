package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mlindgren/logsift/internal/ingest"
	"github.com/mlindgren/logsift/internal/output"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <file>",
	Short: "Mine templates from a log file as it grows",
	Long: `Follow a log file in real-time, printing a template record for each
new line. Newly discovered templates are highlighted, so a quiet stream
means the file is only repeating known message shapes.

On shutdown (Ctrl-C) the accumulated template summary is printed.

Examples:
  logsift watch /var/log/app.log
  logsift watch --from-start /var/log/app.log
  logsift watch --follow-rotate /var/log/app.log`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("from-start", false, "mine existing content before following")
	watchCmd.Flags().Bool("follow-rotate", false, "follow through log rotations")
	watchCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	fromStart, _ := cmd.Flags().GetBool("from-start")
	followRotate, _ := cmd.Flags().GetBool("follow-rotate")
	noColor, _ := cmd.Flags().GetBool("no-color")

	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %s", filePath)
	}

	colorMode := output.ColorAuto
	if noColor {
		colorMode = output.ColorNever
	}

	miner, err := newMiner()
	if err != nil {
		return err
	}

	format := output.ParseFormat(viper.GetString("format"))
	writer := output.New(os.Stdout, format)

	// The follower delivers lines from one goroutine, which is the
	// serialization the miner requires.
	follower := ingest.NewFollower(ingest.FollowOptions{
		Path:         filePath,
		FromStart:    fromStart,
		FollowRotate: followRotate,
		LineFunc: func(line string) error {
			known := miner.ClusterCount()
			rec := miner.ProcessLine(line)
			return writer.WriteColoredRecord(rec, miner.ClusterCount() > known, colorMode)
		},
	})

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- follower.Run(ctx)
	}()

	select {
	case <-sigChan:
		cancel()
		<-errChan
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	if miner.LineCount() > 0 {
		fmt.Fprintln(os.Stderr)
		return writer.WriteClusters(miner.Clusters())
	}
	return nil
}
