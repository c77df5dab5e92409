package game

// Outcome classifies a board.
type Outcome int

const (
	Ongoing Outcome = iota
	WinPlayerOne
	WinPlayerTwo
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WinPlayerOne:
		return "win_player_one"
	case WinPlayerTwo:
		return "win_player_two"
	case Draw:
		return "draw"
	}
	return "ongoing"
}

// Winner returns the winning symbol, or Empty for Ongoing and Draw.
func (o Outcome) Winner() Cell {
	switch o {
	case WinPlayerOne:
		return PlayerOne
	case WinPlayerTwo:
		return PlayerTwo
	}
	return Empty
}

// Evaluate checks rows, then columns, then both diagonals. The first complete
// line decides the winner; otherwise the board is a draw once full.
func Evaluate(b Board) Outcome {
	for i := 0; i < Size; i++ {
		if o := line(b[i][0], b[i][1], b[i][2]); o != Ongoing {
			return o
		}
	}
	for j := 0; j < Size; j++ {
		if o := line(b[0][j], b[1][j], b[2][j]); o != Ongoing {
			return o
		}
	}
	if o := line(b[0][0], b[1][1], b[2][2]); o != Ongoing {
		return o
	}
	if o := line(b[0][2], b[1][1], b[2][0]); o != Ongoing {
		return o
	}

	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] == Empty {
				return Ongoing
			}
		}
	}
	return Draw
}

func line(a, b, c Cell) Outcome {
	if a != b || b != c {
		return Ongoing
	}
	switch a {
	case PlayerOne:
		return WinPlayerOne
	case PlayerTwo:
		return WinPlayerTwo
	}
	return Ongoing
}
