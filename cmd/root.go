package cmd

import (
	"os"

	"tictactoe/experiments"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RootCommand trains both agents when a snapshot is missing and then starts a
// game against the human.
func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Tic-tac-toe agents trained by self-play TD(0) learning",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return UpdateConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !snapshotsExist() {
				log.Info().Msg("no stored values found, training...")
				if _, err := experiments.Train(config, false, progressOutput(cmd)); err != nil {
					return err
				}
				log.Info().Msg("training complete!")
			}
			return play(cmd)
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		TrainCommand(),
		PlayCommand(),
		EvaluateCommand(),
	)

	return cmd
}

func snapshotsExist() bool {
	for _, player := range []int{1, 2} {
		if _, err := os.Stat(config.SnapshotPath(player)); err != nil {
			return false
		}
	}
	return true
}
