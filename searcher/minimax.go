package searcher

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax searches the game tree to a fixed number of plies. South
// maximizes and North minimizes. A lap ending in the mover's own pot is
// expanded again for the same side without spending a ply.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.LOOKAHEAD_DEPTH,
		evaluate: game.EvaluatePotDifference,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// ChooseMove returns the hole side s should sow, or NoMove if s has no beans
// in play.
func (m *Minimax) ChooseMove(b *game.Board, s game.Side) int {
	if b.BeansInPlay(s) == 0 {
		return NoMove
	}
	eval, _ := m.Search(b, s)
	return eval.Hole
}

// Search evaluates b for side s at the configured depth and reports the
// collected metrics alongside the result.
func (m *Minimax) Search(b *game.Board, s game.Side) (BoardEval, metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	eval := m.Evaluate(b, m.depth, s)
	metric := m.metrics.Complete(eval.Score, eval.Hole)

	log.Debug().Msgf("%s evaluates %s at depth %d: score %d, hole %d", s, b, m.depth, eval.Score, eval.Hole)
	return eval, metric
}

// Evaluate scores b with s to move, searching depth plies ahead. The board
// is never modified; every branch works on its own clone.
func (m *Minimax) Evaluate(b *game.Board, depth int, s game.Side) BoardEval {
	m.metrics.AddNode()

	if b.BeansInPlay(s) == 0 {
		m.metrics.AddTerminal()
		return BoardEval{Score: game.EvaluateTerminal(b, s), Hole: NoMove}
	}

	if depth <= 0 {
		m.metrics.AddLeaf()
		return BoardEval{Score: m.evaluate(b), Hole: 1}
	}

	maximizing := s == game.South
	best := BoardEval{Hole: NoMove}
	for hole := 1; hole <= b.Holes(); hole++ {
		if b.Beans(s, hole) <= 0 {
			continue
		}

		child := b.Clone()
		turn, _ := game.Play(child, s, hole)

		var eval BoardEval
		if turn.ExtraTurn {
			m.metrics.AddExtraTurn()
			eval = m.Evaluate(child, depth, s)
		} else {
			eval = m.Evaluate(child, depth-1, s.Opponent())
		}

		if best.Hole == NoMove || improves(eval.Score, best.Score, maximizing) {
			best = BoardEval{Score: eval.Score, Hole: hole}
		}
	}
	return best
}

// Evaluate runs a default minimax search on b.
func Evaluate(b *game.Board, depth int, s game.Side) BoardEval {
	return NewMinimax().Evaluate(b, depth, s)
}
