package learner

import (
	"time"

	"tictactoe/game"
	"tictactoe/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(a *Agent)

// Agent plays one symbol with an epsilon-greedy policy over its own value
// table and learns from complete episodes with a TD(0) backward pass.
type Agent struct {
	symbol  game.Cell
	epsilon float64
	alpha   float64
	values  *ValueTable
	history []game.StateIndex
	rand    *rand.Rand
}

// WithEpsilon sets the exploration rate. Values outside [0, 1] are logged
// and the agent keeps its current rate, meta.EPSILON unless set before.
func WithEpsilon(epsilon float64) Option {
	return func(a *Agent) {
		if epsilon < 0 || epsilon > 1 {
			log.Warn().Msgf("ignoring epsilon %v outside [0, 1], keeping %v", epsilon, a.epsilon)
			return
		}
		a.epsilon = epsilon
	}
}

// WithAlpha sets the learning rate. Values outside (0, 1] are logged and the
// agent keeps its current rate, meta.ALPHA unless set before.
func WithAlpha(alpha float64) Option {
	return func(a *Agent) {
		if alpha <= 0 || alpha > 1 {
			log.Warn().Msgf("ignoring alpha %v outside (0, 1], keeping %v", alpha, a.alpha)
			return
		}
		a.alpha = alpha
	}
}

// WithValues injects a previously learned table instead of the heuristic seeding.
func WithValues(values *ValueTable) Option {
	return func(a *Agent) {
		if values != nil {
			a.values = values
		}
	}
}

func WithSeed(seed uint64) Option {
	return WithSource(rand.NewSource(seed))
}

func WithSource(src rand.Source) Option {
	return func(a *Agent) {
		if src != nil {
			a.rand = rand.New(src)
		}
	}
}

func NewAgent(symbol game.Cell, options ...Option) *Agent {
	if symbol != game.PlayerOne && symbol != game.PlayerTwo {
		panic("agent symbol must be PlayerOne or PlayerTwo")
	}
	a := &Agent{ // Default values
		symbol:  symbol,
		epsilon: meta.EPSILON,
		alpha:   meta.ALPHA,
	}
	for _, option := range options {
		option(a)
	}
	if a.values == nil {
		a.values = NewValueTable(symbol)
	}
	if a.rand == nil {
		a.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return a
}

func (a *Agent) Symbol() game.Cell {
	return a.symbol
}

func (a *Agent) Epsilon() float64 {
	return a.epsilon
}

func (a *Agent) Alpha() float64 {
	return a.alpha
}

func (a *Agent) Values() *ValueTable {
	return a.values
}

// History returns a copy of the states recorded so far in this episode.
func (a *Agent) History() []game.StateIndex {
	out := make([]game.StateIndex, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Agent) PossibleMoves(env *game.Environment) []game.Move {
	return env.PossibleMoves()
}

// SelectAction picks a random legal move with probability epsilon when explore
// is set, and otherwise the move leading to the highest valued board. Ties go
// to the first such move in row-major order.
func (a *Agent) SelectAction(env *game.Environment, explore bool) game.Move {
	r := a.rand.Float64()
	moves := a.PossibleMoves(env)
	if len(moves) == 0 {
		panic("no legal moves available")
	}

	if explore && r < a.epsilon {
		return moves[a.rand.Intn(len(moves))]
	}

	board := env.State()
	best := moves[0]
	bestValue := -1.0
	for _, move := range moves {
		board[move.Row][move.Col] = a.symbol
		value := a.values.Get(game.Encode(board))
		if value > bestValue {
			bestValue = value
			best = move
		}
		board[move.Row][move.Col] = game.Empty
	}
	return best
}

// TakeAction selects a move and plays it on env.
func (a *Agent) TakeAction(env *game.Environment, explore bool) game.Move {
	move := a.SelectAction(env, explore)
	if !env.MakeMove(move.Row, move.Col, a.symbol) {
		panic("selected move was rejected by the environment")
	}
	return move
}

// RecordVisitedState appends the current board. Only call it after a move has
// been committed to env.
func (a *Agent) RecordVisitedState(env *game.Environment) {
	a.history = append(a.history, game.Encode(env.State()))
}

// UpdateValues propagates the terminal reward backwards through the episode,
// each state moving alpha of the way towards the updated value of its
// successor, then starts a fresh history.
func (a *Agent) UpdateValues(env *game.Environment) {
	if !env.GameEnded() {
		log.Warn().Msgf("updating values for %s before the episode ended", a.symbol)
	}
	target := env.Reward(a.symbol)
	for i := len(a.history) - 1; i >= 0; i-- {
		s := a.history[i]
		value := a.values.Get(s) + a.alpha*(target-a.values.Get(s))
		a.values.Set(s, value)
		target = value
	}
	a.history = []game.StateIndex{}
}
