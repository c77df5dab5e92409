package player

import (
	"tictactoe/game"
)

// Human represents a person playing one symbol at the console.
type Human struct {
	Symbol game.Cell
}

func NewHuman(symbol game.Cell) *Human {
	return &Human{Symbol: symbol}
}

// TakeAction plays (row, col) and reports whether the move was legal.
func (h *Human) TakeAction(row, col int, env *game.Environment) bool {
	return env.MakeMove(row, col, h.Symbol)
}
