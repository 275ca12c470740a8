package engine

import (
	"errors"

	"kalah/experiments/metrics"
	"kalah/game"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrTurnLimit   = errors.New("turn limit reached")
)

// Result summarizes a finished (or aborted) game.
type Result struct {
	Winner    game.Side
	HasWinner bool // false on a tie or an aborted game
	Board     *game.Board
	Game      metrics.GameMetric
	Moves     []metrics.MoveMetric
}

type Runner interface {
	// Run plays a game till one side has no legal move or the turn limit is reached
	Run() (Result, error)
}
