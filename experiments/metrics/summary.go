package metrics

import (
	"tictactoe/game"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a window of consecutive episodes.
type Summary struct {
	FirstEpisode int
	LastEpisode  int
	WinRateOne   float64 // Share of games won by player one
	WinRateTwo   float64
	DrawRate     float64
	MeanMoves    float64
	StdDevMoves  float64
}

// Summarize splits records into consecutive windows of the given size. The
// last window may be shorter.
func Summarize(records []GameRecord, window int) []Summary {
	if window <= 0 {
		panic("summary window must be positive")
	}
	summaries := []Summary{}
	for start := 0; start < len(records); start += window {
		end := min(start+window, len(records))
		chunk := records[start:end]

		ones := make([]float64, len(chunk))
		twos := make([]float64, len(chunk))
		draws := make([]float64, len(chunk))
		moves := make([]float64, len(chunk))
		for i, r := range chunk {
			switch r.Winner {
			case game.PlayerOne:
				ones[i] = 1
			case game.PlayerTwo:
				twos[i] = 1
			default:
				draws[i] = 1
			}
			moves[i] = float64(r.TotalMoves)
		}

		mean, std := stat.MeanStdDev(moves, nil)
		if len(chunk) < 2 {
			std = 0
		}
		summaries = append(summaries, Summary{
			FirstEpisode: chunk[0].Episode,
			LastEpisode:  chunk[len(chunk)-1].Episode,
			WinRateOne:   stat.Mean(ones, nil),
			WinRateTwo:   stat.Mean(twos, nil),
			DrawRate:     stat.Mean(draws, nil),
			MeanMoves:    mean,
			StdDevMoves:  std,
		})
	}
	return summaries
}
