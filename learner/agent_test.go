package learner

import (
	"bytes"
	"testing"

	"tictactoe/game"
	"tictactoe/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		a := NewAgent(game.PlayerOne, WithSeed(1))
		require.Equal(t, meta.EPSILON, a.Epsilon())
		require.Equal(t, meta.ALPHA, a.Alpha())
		require.Equal(t, game.PlayerOne, a.Symbol())
		require.Empty(t, a.History())
	})

	t.Run("out-of-range options are ignored", func(t *testing.T) {
		a := NewAgent(game.PlayerTwo, WithEpsilon(1.5), WithAlpha(0), WithSeed(1))
		require.Equal(t, meta.EPSILON, a.Epsilon())
		require.Equal(t, meta.ALPHA, a.Alpha())
	})

	t.Run("out-of-range options are logged", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.Logger
		log.Logger = zerolog.New(&buf)
		defer func() { log.Logger = logger }()

		NewAgent(game.PlayerOne, WithEpsilon(-0.1), WithAlpha(2), WithSeed(1))

		require.Contains(t, buf.String(), "ignoring epsilon -0.1")
		require.Contains(t, buf.String(), "ignoring alpha 2")
	})

	t.Run("injected table is used as is", func(t *testing.T) {
		v := NewValueTable(game.PlayerOne)
		a := NewAgent(game.PlayerOne, WithValues(v), WithSeed(1))
		require.Same(t, v, a.Values())
	})

	t.Run("panics for the empty symbol", func(t *testing.T) {
		require.Panics(t, func() { NewAgent(game.Empty) })
	})
}

func TestSelectAction(t *testing.T) {
	t.Run("greedy completes the winning row", func(t *testing.T) {
		env := game.NewEnvironmentFrom(game.Board{{1, 1, 0}, {2, 2, 0}, {0, 0, 0}})
		a := NewAgent(game.PlayerOne, WithSeed(1))

		move := a.SelectAction(env, false)

		require.Equal(t, game.Move{Row: 0, Col: 2}, move)
	})

	t.Run("greedy prefers the win when it is not the first candidate", func(t *testing.T) {
		env := game.NewEnvironmentFrom(game.Board{{0, 2, 2}, {1, 1, 0}, {0, 0, 0}})
		a := NewAgent(game.PlayerOne, WithSeed(1))

		move := a.SelectAction(env, false)

		require.Equal(t, game.Move{Row: 1, Col: 2}, move)
	})

	t.Run("ties go to the first move in row-major order", func(t *testing.T) {
		env := game.NewEnvironment()
		a := NewAgent(game.PlayerOne, WithSeed(1))

		require.Equal(t, game.Move{Row: 0, Col: 0}, a.SelectAction(env, false),
			"All openings are valued 0.5 so the first one wins")
	})

	t.Run("strictly greater value wins", func(t *testing.T) {
		env := game.NewEnvironment()
		a := NewAgent(game.PlayerOne, WithSeed(1))
		center := game.Board{}
		center[1][1] = game.PlayerOne
		a.Values().Set(game.Encode(center), 0.9)

		require.Equal(t, game.Move{Row: 1, Col: 1}, a.SelectAction(env, false))
	})

	t.Run("search does not touch the live board", func(t *testing.T) {
		start := game.Board{{1, 1, 0}, {2, 2, 0}, {0, 0, 0}}
		env := game.NewEnvironmentFrom(start)
		a := NewAgent(game.PlayerOne, WithSeed(1))

		a.SelectAction(env, false)

		require.Equal(t, start, env.State())
		require.False(t, env.GameEnded())
	})

	t.Run("full exploration picks legal moves", func(t *testing.T) {
		env := game.NewEnvironmentFrom(game.Board{{1, 1, 0}, {2, 2, 0}, {0, 0, 0}})
		a := NewAgent(game.PlayerOne, WithEpsilon(1), WithSeed(7))
		legal := env.PossibleMoves()

		seen := map[game.Move]bool{}
		for i := 0; i < 200; i++ {
			move := a.SelectAction(env, true)
			require.Contains(t, legal, move)
			seen[move] = true
		}
		require.Greater(t, len(seen), 1, "Random moves should not always be the greedy one")
	})

	t.Run("exploration is disabled when explore is false", func(t *testing.T) {
		env := game.NewEnvironmentFrom(game.Board{{0, 2, 2}, {1, 1, 0}, {0, 0, 0}})
		a := NewAgent(game.PlayerOne, WithEpsilon(1), WithSeed(7))

		for i := 0; i < 20; i++ {
			require.Equal(t, game.Move{Row: 1, Col: 2}, a.SelectAction(env, false))
		}
	})

	t.Run("panics without legal moves", func(t *testing.T) {
		env := game.NewEnvironmentFrom(game.Board{{1, 2, 1}, {1, 2, 2}, {2, 1, 1}})
		a := NewAgent(game.PlayerOne, WithSeed(1))
		require.Panics(t, func() { a.SelectAction(env, false) })
	})
}

func TestTakeAction(t *testing.T) {
	env := game.NewEnvironmentFrom(game.Board{{1, 1, 0}, {2, 2, 0}, {0, 0, 0}})
	a := NewAgent(game.PlayerOne, WithSeed(1))

	move := a.TakeAction(env, false)

	require.Equal(t, game.Move{Row: 0, Col: 2}, move)
	require.Equal(t, game.PlayerOne, env.State()[0][2])
	require.True(t, env.GameEnded())
}

func TestUpdateValues(t *testing.T) {
	t.Run("empty history leaves the table unchanged", func(t *testing.T) {
		env := game.NewEnvironmentFrom(game.Board{{1, 1, 1}, {2, 2, 0}, {0, 0, 0}})
		a := NewAgent(game.PlayerOne, WithSeed(1))
		before := a.Values().Values()

		a.UpdateValues(env)

		require.Equal(t, before, a.Values().Values())
		require.Empty(t, a.History())
	})

	t.Run("reward propagates backwards", func(t *testing.T) {
		env := game.NewEnvironment()
		a := NewAgent(game.PlayerOne, WithAlpha(0.5), WithSeed(1))

		require.True(t, env.MakeMove(0, 0, game.PlayerOne))
		a.RecordVisitedState(env)
		first := game.Encode(env.State())
		require.True(t, env.MakeMove(1, 0, game.PlayerTwo))
		require.True(t, env.MakeMove(0, 1, game.PlayerOne))
		a.RecordVisitedState(env)
		second := game.Encode(env.State())
		require.True(t, env.MakeMove(1, 1, game.PlayerTwo))
		require.True(t, env.MakeMove(0, 2, game.PlayerOne))
		a.RecordVisitedState(env)
		last := game.Encode(env.State())
		require.True(t, env.GameEnded())
		require.Equal(t, []game.StateIndex{first, second, last}, a.History())

		a.UpdateValues(env)

		require.InDelta(t, 1.0, a.Values().Get(last), 1e-12, "Winning state stays at the reward")
		require.InDelta(t, 0.75, a.Values().Get(second), 1e-12, "0.5 + 0.5*(1 - 0.5)")
		require.InDelta(t, 0.625, a.Values().Get(first), 1e-12, "0.5 + 0.5*(0.75 - 0.5)")
		require.Empty(t, a.History(), "History should be cleared after the update")
	})

	t.Run("loser moves towards zero", func(t *testing.T) {
		env := game.NewEnvironmentFrom(game.Board{{1, 1, 0}, {2, 2, 0}, {0, 0, 0}})
		loser := NewAgent(game.PlayerTwo, WithAlpha(0.5), WithSeed(1))
		loser.RecordVisitedState(env)
		s := game.Encode(env.State())
		require.True(t, env.MakeMove(0, 2, game.PlayerOne))
		require.True(t, env.GameEnded())

		loser.UpdateValues(env)

		require.InDelta(t, 0.25, loser.Values().Get(s), 1e-12, "0.5 + 0.5*(0 - 0.5)")
	})

	t.Run("before the end the target is zero", func(t *testing.T) {
		env := game.NewEnvironment()
		a := NewAgent(game.PlayerOne, WithAlpha(0.5), WithSeed(1))
		require.True(t, env.MakeMove(1, 1, game.PlayerOne))
		a.RecordVisitedState(env)
		s := game.Encode(env.State())
		require.False(t, env.GameEnded())

		a.UpdateValues(env)

		require.InDelta(t, 0.25, a.Values().Get(s), 1e-12, "0.5 + 0.5*(0 - 0.5)")
		require.Empty(t, a.History(), "History should be cleared even when the game is not over")
		require.False(t, env.GameEnded(), "Updating must not end the game")
	})

	t.Run("draw pulls values towards 0.25", func(t *testing.T) {
		draw := game.Board{{1, 2, 1}, {1, 2, 2}, {2, 1, 1}}
		env := game.NewEnvironmentFrom(draw)
		a := NewAgent(game.PlayerTwo, WithAlpha(0.5), WithSeed(1))
		a.RecordVisitedState(env)

		a.UpdateValues(env)

		require.InDelta(t, 0.125, a.Values().Get(game.Encode(draw)), 1e-12, "0 + 0.5*(0.25 - 0)")
	})
}
