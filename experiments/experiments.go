package experiments

import (
	"fmt"
	"io"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/learner"
	"tictactoe/meta"

	"github.com/rs/zerolog/log"
)

// progressEvery is how many episodes pass between progress updates.
const progressEvery = 500

type TrainingResult struct {
	Agents  [2]*learner.Agent
	Records []metrics.GameRecord
	Dir     string // Where records were written, empty when not recorded
}

// NewAgents returns a fresh learner for each symbol configured from cfg.
func NewAgents(cfg meta.Config) []*learner.Agent {
	return []*learner.Agent{
		newAgent(cfg, game.PlayerOne, nil),
		newAgent(cfg, game.PlayerTwo, nil),
	}
}

func newAgent(cfg meta.Config, symbol game.Cell, values *learner.ValueTable) *learner.Agent {
	options := []learner.Option{
		learner.WithEpsilon(cfg.Epsilon),
		learner.WithAlpha(cfg.Alpha),
		learner.WithValues(values),
	}
	if cfg.Seed != 0 {
		options = append(options, learner.WithSeed(cfg.Seed+uint64(symbol)))
	}
	return learner.NewAgent(symbol, options...)
}

// Train runs cfg.Episodes self-play games between two fresh agents and then
// saves both value tables. When record is set, per-game records, windowed
// summaries and a learning curve are written under cfg.ResultsDir.
// progress may be nil.
func Train(cfg meta.Config, record bool, progress io.Writer) (*TrainingResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	agents := NewAgents(cfg)
	e := engine.NewLocalEngine(agents, engine.WithMetrics())

	var bar *Progress
	if progress != nil {
		bar = NewProgress(progress, cfg.Episodes)
		bar.Start()
	}

	log.Info().Msgf("starting training for %d episodes (epsilon=%v, alpha=%v)...", cfg.Episodes, cfg.Epsilon, cfg.Alpha)

	wins := [3]int{}
	records := make([]metrics.GameRecord, 0, cfg.Episodes)
	for episode := 1; episode <= cfg.Episodes; episode++ {
		winner, gameMetric := e.Run()
		wins[winner]++
		records = append(records, metrics.GameRecord{Episode: episode, GameMetric: gameMetric})

		if episode%progressEvery == 0 || episode == cfg.Episodes {
			if bar != nil {
				bar.Update(episode, wins)
			} else {
				log.Debug().Msgf("completed episode %d of %d", episode, cfg.Episodes)
			}
		}
	}
	if bar != nil {
		bar.Stop()
	}

	log.Info().Msgf("completed training: player one won %d, player two won %d, %d draws", wins[1], wins[2], wins[0])

	result := &TrainingResult{
		Agents:  [2]*learner.Agent{agents[0], agents[1]},
		Records: records,
	}

	for i, agent := range agents {
		path := cfg.SnapshotPath(i + 1)
		if err := learner.SaveValues(path, agent.Values()); err != nil {
			return nil, fmt.Errorf("failed to store values of player %d: %w", i+1, err)
		}
		log.Info().Msgf("stored values of player %d in %s", i+1, path)
	}

	if record {
		dir, err := writeRecords(cfg, records)
		if err != nil {
			return nil, err
		}
		result.Dir = dir
	}
	return result, nil
}

func writeRecords(cfg meta.Config, records []metrics.GameRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.ResultsDir, "training")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteGameRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	summaries := metrics.Summarize(records, cfg.SummaryWindow)
	err = writer.WriteSummaries(summaries)
	if err != nil {
		return "", fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Msg("stored summaries")

	err = writer.WriteLearningCurve(summaries)
	if err != nil {
		return "", fmt.Errorf("failed to write learning curve: %w", err)
	}
	log.Info().Msgf("stored learning curve in %s", writer.Dir())

	return writer.Dir(), nil
}

// LoadAgent builds a learner for symbol from the snapshot saved by Train.
func LoadAgent(cfg meta.Config, symbol game.Cell) (*learner.Agent, error) {
	values, err := learner.LoadValues(cfg.SnapshotPath(int(symbol)))
	if err != nil {
		return nil, err
	}
	return newAgent(cfg, symbol, values), nil
}
