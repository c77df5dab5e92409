package learner

import (
	"fmt"

	"tictactoe/game"
)

const (
	WinValue     = 1.0
	OngoingValue = 0.5
	OtherValue   = 0.0
)

// ValueTable holds the estimated value of every board for one player.
type ValueTable struct {
	values []float64
}

// NewValueTable seeds a table for symbol: 1 for boards it has won, 0.5 for
// ongoing boards, and 0 for everything else. Draws start at 0 even though the
// draw reward is 0.25.
func NewValueTable(symbol game.Cell) *ValueTable {
	values := make([]float64, game.NumStates)
	for i := range values {
		outcome := game.Evaluate(game.Decode(game.StateIndex(i)))
		switch {
		case outcome == game.Ongoing:
			values[i] = OngoingValue
		case outcome.Winner() == symbol:
			values[i] = WinValue
		default:
			values[i] = OtherValue
		}
	}
	return &ValueTable{values: values}
}

// NewValueTableFrom wraps an index-ordered sequence of values.
func NewValueTableFrom(values []float64) (*ValueTable, error) {
	if len(values) != game.NumStates {
		return nil, fmt.Errorf("value table needs %d values, got %d", game.NumStates, len(values))
	}
	owned := make([]float64, len(values))
	copy(owned, values)
	return &ValueTable{values: owned}, nil
}

func (v *ValueTable) Get(idx game.StateIndex) float64 {
	checkIndex(idx)
	return v.values[idx]
}

func (v *ValueTable) Set(idx game.StateIndex, value float64) {
	checkIndex(idx)
	v.values[idx] = value
}

// Values returns a copy of the table in index order.
func (v *ValueTable) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

func (v *ValueTable) Len() int {
	return len(v.values)
}

func checkIndex(idx game.StateIndex) {
	if !idx.Valid() {
		panic(fmt.Sprintf("state index %d out of range [0, %d)", idx, game.NumStates))
	}
}
