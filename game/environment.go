package game

import "github.com/rs/zerolog/log"

const (
	WinReward  = 1.0
	DrawReward = 0.25
	LossReward = 0.0
)

// Environment owns the live board of one game. The terminal result is cached
// the first time GameEnded detects it and is never recomputed afterwards.
type Environment struct {
	board  Board
	ended  bool
	winner Cell // Empty means draw, only meaningful once ended
}

// NewEnvironment returns an environment with an empty board.
func NewEnvironment() *Environment {
	return &Environment{}
}

// NewEnvironmentFrom starts an environment from an arbitrary position.
func NewEnvironmentFrom(b Board) *Environment {
	return &Environment{board: b}
}

// MakeMove puts symbol at (row, col). It reports false and leaves the board
// untouched when the square is occupied or off the board.
func (e *Environment) MakeMove(row, col int, symbol Cell) bool {
	if !inBounds(row, col) {
		log.Debug().Msgf("invalid move: (%d, %d) is off the board", row, col)
		return false
	}
	if e.board[row][col] != Empty {
		log.Debug().Msgf("invalid move: (%d, %d) is occupied by %s", row, col, e.board[row][col])
		return false
	}
	e.board[row][col] = symbol
	return true
}

// State returns a copy of the current board.
func (e *Environment) State() Board {
	return e.board
}

// PossibleMoves lists the empty squares of the live board.
func (e *Environment) PossibleMoves() []Move {
	return e.board.EmptyCells()
}

// GameEnded checks if the game is over and, the first time it is, records the winner.
func (e *Environment) GameEnded() bool {
	if e.ended {
		return true
	}
	outcome := Evaluate(e.board)
	if outcome != Ongoing {
		e.ended = true
		e.winner = outcome.Winner()
	}
	return e.ended
}

// Winner returns the winning symbol (Empty for a draw) and whether the game has ended.
func (e *Environment) Winner() (Cell, bool) {
	return e.winner, e.ended
}

// Reward is the terminal signal for symbol: 1 for a win, 0.25 for a draw and
// 0 for a loss. Before the game ends there is no signal yet, so it is 0.
func (e *Environment) Reward(symbol Cell) float64 {
	if !e.GameEnded() {
		return 0
	}
	switch e.winner {
	case symbol:
		return WinReward
	case Empty:
		return DrawReward
	}
	return LossReward
}
