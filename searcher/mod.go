package searcher

import (
	"kalah/game"
)

// NoMove is returned as a hole when the side to move has no legal move.
const NoMove = -1

// BoardEval pairs a minimax score with the hole that achieves it.
type BoardEval struct {
	Score int
	Hole  int
}

type Searcher interface {
	ChooseMove(b *game.Board, s game.Side) int
}

// improves reports whether score should replace best. Equal scores replace
// best so that the last hole scanned wins ties.
func improves(score, best int, maximizing bool) bool {
	if maximizing {
		return score >= best
	}
	return score <= best
}
