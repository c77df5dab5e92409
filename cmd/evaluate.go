package cmd

import (
	"fmt"

	"tictactoe/experiments"
	"tictactoe/game"

	"github.com/spf13/cobra"
)

func EvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Measure a trained agent against a random opponent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if evalPlayer != 1 && evalPlayer != 2 {
				return fmt.Errorf("player must be 1 or 2, got %d", evalPlayer)
			}
			agent, err := experiments.LoadAgent(config, game.Cell(evalPlayer))
			if err != nil {
				return err
			}
			result := experiments.Evaluate(config, agent)
			fmt.Fprintf(cmd.OutOrStdout(), "player %d: %s\n", evalPlayer, result)
			return nil
		},
	}
	cmd.Flags().IntVar(&evalGames, "games", config.EvalGames, "Number of evaluation games")
	cmd.Flags().IntVar(&evalPlayer, "player", 1, "Which stored agent to evaluate (1 or 2)")
	return cmd
}
