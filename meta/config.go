package meta

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a training or play session.
type Config struct {
	Episodes      int     `yaml:"episodes"`
	Epsilon       float64 `yaml:"epsilon"`
	Alpha         float64 `yaml:"alpha"`
	Seed          uint64  `yaml:"seed"` // 0 seeds from the clock
	SnapshotDir   string  `yaml:"snapshot_dir"`
	ResultsDir    string  `yaml:"results_dir"`
	SummaryWindow int     `yaml:"summary_window"`
	EvalGames     int     `yaml:"eval_games"`
	LogLevel      string  `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Episodes:      EPISODES,
		Epsilon:       EPSILON,
		Alpha:         ALPHA,
		SnapshotDir:   ".",
		ResultsDir:    "results",
		SummaryWindow: SUMMARY_WINDOW,
		EvalGames:     EVAL_GAMES,
		LogLevel:      "info",
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Episodes <= 0 {
		errs = append(errs, fmt.Errorf("episodes must be positive, got %d", c.Episodes))
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		errs = append(errs, fmt.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon))
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		errs = append(errs, fmt.Errorf("alpha must be in (0, 1], got %v", c.Alpha))
	}
	if c.SummaryWindow <= 0 {
		errs = append(errs, fmt.Errorf("summary window must be positive, got %d", c.SummaryWindow))
	}
	if c.EvalGames <= 0 {
		errs = append(errs, fmt.Errorf("eval games must be positive, got %d", c.EvalGames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SnapshotPath returns where the value table of player 1 or 2 is stored.
func (c Config) SnapshotPath(player int) string {
	name := PLAYER_ONE_SNAPSHOT
	if player == 2 {
		name = PLAYER_TWO_SNAPSHOT
	}
	return filepath.Join(c.SnapshotDir, name)
}
