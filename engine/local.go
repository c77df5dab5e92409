package engine

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/learner"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine plays games between two agents on a fresh environment each
// run. Agents[0] always moves first.
type LocalEngine struct {
	Env     *game.Environment
	Agents  [2]*learner.Agent
	explore [2]bool
	learn   bool
	metrics metrics.Collector
}

func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.metrics = metrics.NewCollector()
	}
}

// WithExploration sets per agent whether epsilon-greedy exploration is on.
func WithExploration(first, second bool) Option {
	return func(e *LocalEngine) {
		e.explore = [2]bool{first, second}
	}
}

// WithoutLearning plays without recording histories or updating values.
func WithoutLearning() Option {
	return func(e *LocalEngine) {
		e.learn = false
	}
}

func NewLocalEngine(agents []*learner.Agent, options ...Option) *LocalEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if agents[0].Symbol() == agents[1].Symbol() {
		panic("agents must play different symbols")
	}

	e := &LocalEngine{ // Default values: self-play training
		Agents:  [2]*learner.Agent{agents[0], agents[1]},
		explore: [2]bool{true, true},
		learn:   true,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays one episode. Both agents observe the board after every move, and
// once the game is over each runs its end-of-episode update.
func (e *LocalEngine) Run() (game.Cell, metrics.GameMetric) {
	e.Env = game.NewEnvironment()
	e.metrics.Start(e.Agents[0].Symbol())

	turn := 0
	moves := 0
	for !e.Env.GameEnded() {
		if moves == MaxMoves {
			panic("game did not end after the board filled up")
		}
		e.Agents[turn].TakeAction(e.Env, e.explore[turn])
		moves++
		e.metrics.AddMove()

		if e.learn {
			for _, agent := range e.Agents {
				agent.RecordVisitedState(e.Env)
			}
		}
		turn = 1 - turn
	}

	if e.learn {
		for _, agent := range e.Agents {
			agent.UpdateValues(e.Env)
		}
	}

	winner, _ := e.Env.Winner()
	log.Debug().Msgf("game over after %d moves, winner: %q", moves, winner)
	return winner, e.metrics.Complete(winner)
}
