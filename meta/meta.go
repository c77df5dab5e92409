// meta/meta.go
package meta

// EPISODES defines the number of self-play episodes per training run.
const EPISODES = 20000

// EPSILON defines the exploration rate of the epsilon-greedy policy.
const EPSILON = 0.1

// ALPHA defines the TD(0) learning rate.
const ALPHA = 0.5

// SUMMARY_WINDOW defines how many episodes are aggregated per summary row.
const SUMMARY_WINDOW = 500

// EVAL_GAMES defines the number of games played by the evaluate command.
const EVAL_GAMES = 1000

const (
	PLAYER_ONE_SNAPSHOT = "player1.csv"
	PLAYER_TWO_SNAPSHOT = "player2.csv"
)
