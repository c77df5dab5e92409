package metrics

import (
	"time"

	"tictactoe/game"
)

type GameMetric struct {
	StartingPlayer game.Cell
	Winner         game.Cell // game.Empty for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(startingPlayer game.Cell)
	AddMove()
	Complete(winner game.Cell) GameMetric
}

type collector struct {
	startingPlayer game.Cell
	startTime      time.Time
	moves          int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer game.Cell) {
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.moves = 0
}

func (m *collector) AddMove() {
	m.moves++
}

func (m *collector) Complete(winner game.Cell) GameMetric {
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     m.moves,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer game.Cell)       {}
func (m *dummyCollector) AddMove()                             {}
func (m *dummyCollector) Complete(winner game.Cell) GameMetric { return GameMetric{Winner: winner} }
