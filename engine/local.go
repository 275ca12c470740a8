package engine

import (
	"fmt"
	"io"
	"time"

	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/meta"
	"kalah/player"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine runs a game between two players on a local board. South moves
// first.
type Engine struct {
	Board    *game.Board
	players  [2]player.Player
	out      io.Writer
	maxTurns int
	step     int
	moves    []metrics.MoveMetric
	over     bool
}

func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func LocalEngine(board *game.Board, south, north player.Player, options ...Option) *Engine {
	if board == nil {
		panic("engine needs a board")
	}
	if south == nil || north == nil {
		panic("engine needs two players")
	}

	e := &Engine{ // Default values
		Board:    board,
		out:      io.Discard,
		maxTurns: meta.MAX_TURNS,
	}
	e.players[game.South] = south
	e.players[game.North] = north
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Player(s game.Side) player.Player {
	return e.players[s]
}

func (e *Engine) Over() bool {
	return e.over
}

// MakeMove plays a complete turn for side s, including any extra turns
// earned by ending in s's own pot. It returns false once s has no beans to
// sow; the opponent's remaining beans are then swept into the opponent's pot
// and the game is over.
func (e *Engine) MakeMove(s game.Side) (bool, error) {
	if e.over {
		return false, fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	p := e.players[s]

	for {
		hole := p.ChooseMove(e.Board, s)

		if hole == player.NoMove {
			if e.Board.BeansInPlay(s) > 0 {
				return false, fmt.Errorf("%w: %s passed with beans in play", ErrIllegalMove, p.Name())
			}
			e.sweep(s)
			return false, nil
		}

		if hole <= 0 || e.Board.Beans(s, hole) <= 0 {
			return false, fmt.Errorf("%w: %s chose hole %d on %s", ErrIllegalMove, p.Name(), hole, e.Board)
		}

		turn, _ := game.Play(e.Board, s, hole)
		e.record(s, p)
		log.Debug().Msgf("%s sows hole %d, ending at %s hole %d", p.Name(), hole, turn.End.Side, turn.End.Hole)

		if turn.Captured > 0 {
			log.Debug().Msgf("%s captures %d beans", p.Name(), turn.Captured)
			fmt.Fprintf(e.out, "%s captures %d beans.\n", p.Name(), turn.Captured)
		}
		if !turn.ExtraTurn {
			return true, nil
		}

		log.Debug().Msgf("%s ends in their pot and moves again", p.Name())
		fmt.Fprintf(e.out, "%s gets another turn.\n", p.Name())
		e.display()
	}
}

func (e *Engine) sweep(s game.Side) {
	opponent := e.players[s.Opponent()]
	fmt.Fprintf(e.out, "%s has no beans left to sow.\n", e.players[s].Name())
	fmt.Fprintf(e.out, "Sweeping remaining beans into %s's pot.\n", opponent.Name())

	swept := game.Sweep(e.Board, s.Opponent())
	log.Debug().Msgf("swept %d beans into %s's pot", swept, opponent.Name())
	e.over = true
}

func (e *Engine) record(s game.Side, p player.Player) {
	e.step++
	if r, ok := p.(player.Reporter); ok {
		e.moves = append(e.moves, metrics.MoveMetric{
			Step:         e.step,
			Player:       s.String(),
			SearchMetric: r.LastMetric(),
		})
	}
}

func (e *Engine) display() {
	Render(e.out, e.Board, e.players[game.North].Name(), e.players[game.South].Name())
}

// Run executes the entire game loop until a side runs out of moves.
func (e *Engine) Run() (Result, error) {
	start := time.Now()
	log.Info().Msgf("%s (South) plays %s (North) on %s", e.players[game.South].Name(), e.players[game.North].Name(), e.Board)

	side := game.South
	for turn := 0; ; turn++ {
		if turn >= e.maxTurns {
			return e.result(start), fmt.Errorf("%w: stopped after %d turns", ErrTurnLimit, e.maxTurns)
		}

		e.display()
		more, err := e.MakeMove(side)
		if err != nil {
			return e.result(start), err
		}
		if !more {
			break
		}
		side = side.Opponent()
	}

	e.display()
	res := e.result(start)
	if res.HasWinner {
		fmt.Fprintf(e.out, "The winner is %s.\n", e.players[res.Winner].Name())
		log.Info().Msgf("%s wins %d to %d", e.players[res.Winner].Name(), e.Board.Beans(res.Winner, 0), e.Board.Beans(res.Winner.Opponent(), 0))
	} else {
		fmt.Fprintln(e.out, "The game is a tie.")
		log.Info().Msg("game ended in a tie")
	}
	return res, nil
}

func (e *Engine) result(start time.Time) Result {
	end := time.Now()
	res := Result{
		Board: e.Board,
		Moves: e.moves,
		Game: metrics.GameMetric{
			StartingPlayer: game.South.String(),
			NorthPot:       e.Board.Beans(game.North, 0),
			SouthPot:       e.Board.Beans(game.South, 0),
			StartTime:      start,
			EndTime:        end,
			Duration:       end.Sub(start),
			TotalMoves:     e.step,
		},
	}
	if e.over {
		res.Winner, res.HasWinner = game.Winner(e.Board)
		if res.HasWinner {
			res.Game.Winner = res.Winner.String()
		}
	}
	return res
}
