package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"tictactoe/game"
	"tictactoe/learner"
	"tictactoe/utils"

	"github.com/rs/zerolog/log"
)

var (
	answers = []string{"yes", "no"}

	errBadCoordinates = errors.New("expected two coordinates between 0 and 2")
)

type Controller interface {
	Run() (Result, error)
}

// AgentLoader returns the trained opponent playing symbol.
type AgentLoader func(symbol game.Cell) (*learner.Agent, error)

type Result struct {
	Human  game.Cell
	Winner game.Cell // game.Empty for a draw
}

type console struct {
	in        *bufio.Scanner
	out       io.Writer
	colored   bool
	loadAgent AgentLoader
}

// NewConsole returns a controller for one game between a person, reading
// from in and writing to out, and a greedy trained agent.
func NewConsole(in io.Reader, out io.Writer, colored bool, loadAgent AgentLoader) Controller {
	return &console{
		in:        bufio.NewScanner(in),
		out:       out,
		colored:   colored,
		loadAgent: loadAgent,
	}
}

func (c *console) Run() (Result, error) {
	first, err := c.askFirstMove()
	if err != nil {
		return Result{}, err
	}

	humanSymbol := game.PlayerTwo
	if first {
		humanSymbol = game.PlayerOne
	}
	human := NewHuman(humanSymbol)
	agent, err := c.loadAgent(humanSymbol.Opponent())
	if err != nil {
		return Result{}, fmt.Errorf("failed to load opponent: %w", err)
	}

	env := game.NewEnvironment()
	turn := game.PlayerOne
	for !env.GameEnded() {
		if turn == human.Symbol {
			if err := c.humanMove(human, env); err != nil {
				return Result{}, err
			}
		} else {
			fmt.Fprintln(c.out, "Computer's move:")
			move := agent.TakeAction(env, false)
			log.Debug().Msgf("agent played (%d, %d)", move.Row, move.Col)
		}
		fmt.Fprint(c.out, game.Render(env.State(), c.colored))
		turn = turn.Opponent()
	}

	winner, _ := env.Winner()
	switch winner {
	case game.Empty:
		fmt.Fprintln(c.out, "Draw!")
	case human.Symbol:
		fmt.Fprintln(c.out, "Victory!")
	default:
		fmt.Fprintln(c.out, "You have been DEFEATED!")
	}
	return Result{Human: human.Symbol, Winner: winner}, nil
}

// askFirstMove repeats the question until the answer is yes or no.
func (c *console) askFirstMove() (bool, error) {
	for {
		fmt.Fprint(c.out, "Do you want to make the first move? [yes/no] ")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch utils.FindFold(answers, line) {
		case 0:
			return true, nil
		case 1:
			return false, nil
		}
		fmt.Fprintln(c.out, "Invalid input!")
	}
}

// humanMove keeps prompting until a legal move has been played.
func (c *console) humanMove(human *Human, env *game.Environment) error {
	for {
		fmt.Fprint(c.out, "Enter coordinates i, j: ")
		line, err := c.readLine()
		if err != nil {
			return err
		}
		row, col, err := parseCoordinates(line)
		if err != nil {
			fmt.Fprintf(c.out, "Invalid input: %v\n", err)
			continue
		}
		if human.TakeAction(row, col, env) {
			return nil
		}
		fmt.Fprintln(c.out, "Invalid move!")
	}
}

func (c *console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// parseCoordinates accepts "i, j", "i,j" or "i j".
func parseCoordinates(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return 0, 0, errBadCoordinates
	}
	coords := [2]int{}
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil || v < 0 || v >= game.Size {
			return 0, 0, errBadCoordinates
		}
		coords[i] = v
	}
	return coords[0], coords[1], nil
}
