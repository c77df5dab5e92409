package experiments

import (
	"fmt"

	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/learner"
	"tictactoe/meta"

	"github.com/rs/zerolog/log"
)

type EvaluationResult struct {
	Games  int
	Wins   int
	Draws  int
	Losses int
}

func (r EvaluationResult) String() string {
	return fmt.Sprintf("%d games: %d wins, %d draws, %d losses", r.Games, r.Wins, r.Draws, r.Losses)
}

// Evaluate pits a greedy, non-learning agent against an opponent that moves
// uniformly at random, for cfg.EvalGames games.
func Evaluate(cfg meta.Config, agent *learner.Agent) EvaluationResult {
	options := []learner.Option{learner.WithEpsilon(1)}
	if cfg.Seed != 0 {
		options = append(options, learner.WithSeed(cfg.Seed^0x9e3779b97f4a7c15))
	}
	random := learner.NewAgent(agent.Symbol().Opponent(), options...)

	var e *engine.LocalEngine
	if agent.Symbol() == game.PlayerOne {
		e = engine.NewLocalEngine([]*learner.Agent{agent, random}, engine.WithExploration(false, true), engine.WithoutLearning())
	} else {
		e = engine.NewLocalEngine([]*learner.Agent{random, agent}, engine.WithExploration(true, false), engine.WithoutLearning())
	}

	log.Info().Msgf("evaluating player %d against a random opponent over %d games...", agent.Symbol(), cfg.EvalGames)

	result := EvaluationResult{Games: cfg.EvalGames}
	for i := 0; i < cfg.EvalGames; i++ {
		winner, _ := e.Run()
		switch winner {
		case agent.Symbol():
			result.Wins++
		case game.Empty:
			result.Draws++
		default:
			result.Losses++
		}
	}

	log.Info().Msgf("completed evaluation: %s", result)
	return result
}
