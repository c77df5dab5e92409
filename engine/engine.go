package engine

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

// MaxMoves bounds a game; every move fills one of the nine cells.
const MaxMoves = game.NumCells

type Engine interface {
	// Run plays one game to the end and returns the winner (game.Empty for a draw)
	Run() (winner game.Cell, gameMetric metrics.GameMetric)
}
