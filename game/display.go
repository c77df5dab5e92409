package game

import (
	"strings"

	"github.com/logrusorgru/aurora"
)

const hline = "------------------"

// Render draws the board the way the console game shows it. Player one is red
// and player two is blue when colored is set.
func Render(b Board, colored bool) string {
	au := aurora.NewAurora(colored)
	var sb strings.Builder
	sb.WriteString(hline + "\n")
	for i := 0; i < Size; i++ {
		sb.WriteString("| ")
		for j := 0; j < Size; j++ {
			var symbol string
			switch b[i][j] {
			case PlayerOne:
				symbol = au.Red(PlayerOne.String()).String()
			case PlayerTwo:
				symbol = au.Blue(PlayerTwo.String()).String()
			default:
				symbol = Empty.String()
			}
			sb.WriteString(symbol + "  |  ")
		}
		sb.WriteString("\n" + hline + "\n")
	}
	return sb.String()
}

func (b Board) String() string {
	return Render(b, false)
}
