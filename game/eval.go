package game

import "math"

const (
	ScoreMax = math.MaxInt // South has secured the game
	ScoreMin = math.MinInt // North has secured the game
)

// EvaluatePotDifference scores a board as South's pot minus North's pot,
// saturating once either pot holds a majority of the beans.
func EvaluatePotDifference(b *Board) int {
	if HasMajority(b, South) {
		return ScoreMax
	}
	if HasMajority(b, North) {
		return ScoreMin
	}
	return b.Beans(South, 0) - b.Beans(North, 0)
}

// EvaluateMaterial extends the pot difference with the beans each side still
// controls in its pits, weighted at half a pot bean.
func EvaluateMaterial(b *Board) int {
	score := EvaluatePotDifference(b)
	if score == ScoreMax || score == ScoreMin {
		return score
	}
	return 2*score + b.BeansInPlay(South) - b.BeansInPlay(North)
}

// EvaluateTerminal scores a finished game from the point of view of mover,
// the side left without beans in play. Only the mover's pot is final at this
// point; the opponent keeps everything else.
func EvaluateTerminal(b *Board, mover Side) int {
	doubled := 2 * b.Beans(mover, 0)
	total := b.TotalBeans()
	if doubled == total {
		return 0
	}
	if (doubled > total) == (mover == South) {
		return ScoreMax
	}
	return ScoreMin
}
