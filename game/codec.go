package game

import "fmt"

// Encode maps a board to its index: cell (i,j) contributes board[i][j]*3^(3i+j).
func Encode(b Board) StateIndex {
	idx := 0
	weight := 1
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			idx += int(b[i][j]) * weight
			weight *= 3
		}
	}
	return StateIndex(idx)
}

// Decode is the inverse of Encode. The lowest base-3 digit fills (0,0).
func Decode(idx StateIndex) Board {
	if !idx.Valid() {
		panic(fmt.Sprintf("state index %d out of range [0, %d)", idx, NumStates))
	}
	var b Board
	rest := int(idx)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			b[i][j] = Cell(rest % 3)
			rest /= 3
		}
	}
	return b
}

func (s StateIndex) Valid() bool {
	return s >= 0 && s < NumStates
}
