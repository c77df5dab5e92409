package game

// Cell is the content of a single board square.
type Cell int

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

const (
	Size      = 3
	NumCells  = Size * Size
	NumStates = 19683 // 3^NumCells
)

// Board is a 3x3 grid indexed [row][col]. Being an array, it is copied on assignment.
type Board [Size][Size]Cell

// Move is a (row, col) coordinate on the board.
type Move struct {
	Row int
	Col int
}

// StateIndex is the base-3 identity of a board, used as the key into value tables.
type StateIndex int

// Opponent returns the other player's symbol.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "x"
	case PlayerTwo:
		return "o"
	}
	return " "
}

// EmptyCells lists the unoccupied squares in row-major order.
func (b Board) EmptyCells() []Move {
	moves := []Move{}
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] == Empty {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}
	return moves
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
