package learner

import (
	"testing"

	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

func TestNewValueTable(t *testing.T) {
	v := NewValueTable(game.PlayerOne)

	t.Run("covers the whole state space", func(t *testing.T) {
		require.Equal(t, game.NumStates, v.Len())
	})

	t.Run("empty board is ongoing", func(t *testing.T) {
		require.Equal(t, 0.5, v.Get(game.Encode(game.Board{})))
	})

	t.Run("own win is worth 1", func(t *testing.T) {
		rowOne := game.Board{{}, {1, 1, 1}, {}}
		require.Equal(t, 1.0, v.Get(game.Encode(rowOne)))
		diagonal := game.Board{{1, 2, 0}, {2, 1, 0}, {0, 0, 1}}
		require.Equal(t, 1.0, v.Get(game.Encode(diagonal)))
	})

	t.Run("opponent win is worth 0", func(t *testing.T) {
		column := game.Board{{2, 1, 0}, {2, 1, 0}, {2, 0, 1}}
		require.Equal(t, 0.0, v.Get(game.Encode(column)))
	})

	t.Run("draw starts at 0 despite the 0.25 draw reward", func(t *testing.T) {
		draw := game.Board{{1, 2, 1}, {1, 2, 2}, {2, 1, 1}}
		require.Equal(t, 0.0, v.Get(game.Encode(draw)))
		require.Equal(t, 0.25, game.NewEnvironmentFrom(draw).Reward(game.PlayerOne),
			"Initial value and terminal reward of a draw intentionally differ")
	})

	t.Run("seeding is relative to the symbol", func(t *testing.T) {
		other := NewValueTable(game.PlayerTwo)
		rowOne := game.Board{{}, {1, 1, 1}, {}}
		require.Equal(t, 0.0, other.Get(game.Encode(rowOne)))
		require.Equal(t, 0.5, other.Get(game.Encode(game.Board{})))
	})

	t.Run("every value is 0, 0.5 or 1", func(t *testing.T) {
		for _, value := range v.Values() {
			require.Contains(t, []float64{0, 0.5, 1}, value)
		}
	})
}

func TestValueTableAccess(t *testing.T) {
	t.Run("set then get", func(t *testing.T) {
		v := NewValueTable(game.PlayerOne)
		v.Set(42, 0.75)
		require.Equal(t, 0.75, v.Get(42))
	})

	t.Run("values returns a copy", func(t *testing.T) {
		v := NewValueTable(game.PlayerOne)
		values := v.Values()
		values[0] = 0.9
		require.Equal(t, 0.5, v.Get(0))
	})

	t.Run("panics out of range", func(t *testing.T) {
		v := NewValueTable(game.PlayerOne)
		require.Panics(t, func() { v.Get(game.NumStates) })
		require.Panics(t, func() { v.Set(-1, 0) })
	})

	t.Run("wraps exactly 3^9 values", func(t *testing.T) {
		_, err := NewValueTableFrom(make([]float64, 10))
		require.Error(t, err)

		values := make([]float64, game.NumStates)
		values[7] = 0.3
		v, err := NewValueTableFrom(values)
		require.NoError(t, err)
		require.Equal(t, 0.3, v.Get(7))
	})
}
