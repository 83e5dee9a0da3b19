package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mlindgren/logsift/internal/config"
	"github.com/mlindgren/logsift/internal/ingest"
	"github.com/mlindgren/logsift/internal/mine"
	"github.com/mlindgren/logsift/internal/output"
)

var mineCmd = &cobra.Command{
	Use:   "mine [flags] <file>...",
	Short: "Extract message templates from log files",
	Long: `Process log files in a single streaming pass and print the discovered
message templates with their match counts.

Each file is mined independently by default; use --shared to accumulate
one template set across all inputs. Pass "-" to read from stdin.

Examples:
  logsift mine /var/log/app.log
  logsift mine --format json app.log > templates.json
  logsift mine --shared '/var/log/app-*.log'
  logsift mine --lines app.log
  cat app.log | logsift mine -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMine,
}

func init() {
	mineCmd.Flags().Bool("lines", false, "emit a per-line record for every input line")
	mineCmd.Flags().Bool("shared", false, "mine all files into one shared template set")
	mineCmd.Flags().Int("depth", 4, "parse tree token levels")
	mineCmd.Flags().Float64("threshold", 0.5, "similarity threshold for joining a template")
	mineCmd.Flags().Int("max-children", 100, "max branches per tree node")

	_ = viper.BindPFlag("miner.depth", mineCmd.Flags().Lookup("depth"))
	_ = viper.BindPFlag("miner.similarity_threshold", mineCmd.Flags().Lookup("threshold"))
	_ = viper.BindPFlag("miner.max_children", mineCmd.Flags().Lookup("max-children"))

	rootCmd.AddCommand(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	showLines, _ := cmd.Flags().GetBool("lines")
	shared, _ := cmd.Flags().GetBool("shared")

	format := output.ParseFormat(viper.GetString("format"))
	writer := output.New(cmd.OutOrStdout(), format)

	feed := func(m *mine.Miner) ingest.LineFunc {
		return func(line string) error {
			rec := m.ProcessLine(line)
			if showLines {
				return writer.WriteRecord(rec)
			}
			return nil
		}
	}

	if len(args) == 1 && args[0] == "-" {
		miner, err := newMiner()
		if err != nil {
			return err
		}
		if err := ingest.Lines(cmd.InOrStdin(), feed(miner)); err != nil {
			return err
		}
		return summarize(writer, miner, "stdin")
	}

	files, err := config.ExpandGlobs(args)
	if err != nil {
		return err
	}

	miner, err := newMiner()
	if err != nil {
		return err
	}

	for _, file := range files {
		if !shared && miner.LineCount() > 0 {
			// Fresh template set per file: independent streams must not
			// share tree or cluster state.
			if miner, err = newMiner(); err != nil {
				return err
			}
		}

		if err := ingest.File(file, feed(miner)); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		if !shared {
			if err := summarize(writer, miner, file); err != nil {
				return err
			}
		}
	}

	if shared {
		return summarize(writer, miner, "all inputs")
	}
	return nil
}

// summarize prints the cluster dump for one mined stream.
func summarize(writer *output.Writer, miner *mine.Miner, source string) error {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "%s: %d lines, %d templates\n",
			source, miner.LineCount(), miner.ClusterCount())
	}
	return writer.WriteClusters(miner.Clusters())
}
