package cmd

import (
	"fmt"
	"io"
	"os"

	"tictactoe/meta"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	config      = meta.DefaultConfig()
	configPath  string
	logLevel    string
	snapshotDir string
	resultsDir  string
	seed        uint64

	episodes   int
	epsilon    float64
	alpha      float64
	record     bool
	evalGames  int
	evalPlayer int
)

func AddFlags(cmd *cobra.Command) {
	defaults := meta.DefaultConfig()
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&snapshotDir, "snapshot-dir", defaults.SnapshotDir, "Directory holding player1.csv and player2.csv")
	cmd.PersistentFlags().StringVar(&resultsDir, "results-dir", defaults.ResultsDir, "Directory for training records")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", defaults.Seed, "Random seed, 0 seeds from the clock")
	cmd.PersistentFlags().IntVar(&episodes, "episodes", defaults.Episodes, "Number of self-play episodes")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", defaults.Epsilon, "Exploration rate")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", defaults.Alpha, "Learning rate")
}

// UpdateConfig loads the config file, if any, then applies the flags that
// were set explicitly on the command line.
func UpdateConfig(cmd *cobra.Command) error {
	cfg := meta.DefaultConfig()
	if configPath != "" {
		loaded, err := meta.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("snapshot-dir") {
		cfg.SnapshotDir = snapshotDir
	}
	if flags.Changed("results-dir") {
		cfg.ResultsDir = resultsDir
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("episodes") {
		cfg.Episodes = episodes
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if flags.Changed("alpha") {
		cfg.Alpha = alpha
	}
	if flags.Lookup("games") != nil && flags.Changed("games") {
		cfg.EvalGames = evalGames
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	config = cfg
	return setupLogging(cfg.LogLevel)
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isTerminal(os.Stderr),
	})
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writesToTerminal reports whether w is a file attached to a terminal.
func writesToTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
