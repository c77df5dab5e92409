package main

import (
	"os"

	"tictactoe/cmd"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("tictactoe failed")
		os.Exit(1)
	}
}
