package cmd

import (
	"io"

	"tictactoe/experiments"

	"github.com/spf13/cobra"
)

func TrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train both agents by self-play and store their value tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := experiments.Train(config, record, progressOutput(cmd))
			return err
		},
	}
	cmd.Flags().BoolVar(&record, "record", false, "Write game records, summaries and a learning curve")
	return cmd
}

// progressOutput is the command's output when it is a terminal, nil otherwise.
func progressOutput(cmd *cobra.Command) io.Writer {
	out := cmd.OutOrStdout()
	if writesToTerminal(out) {
		return out
	}
	return nil
}
