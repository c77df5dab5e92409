package cmd

import (
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/learner"
	"tictactoe/player"

	"github.com/spf13/cobra"
)

func PlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game against the trained agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd)
		},
	}
}

func play(cmd *cobra.Command) error {
	loader := func(symbol game.Cell) (*learner.Agent, error) {
		return experiments.LoadAgent(config, symbol)
	}
	out := cmd.OutOrStdout()
	console := player.NewConsole(cmd.InOrStdin(), out, writesToTerminal(out), loader)
	_, err := console.Run()
	return err
}
