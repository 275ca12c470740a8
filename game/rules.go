package game

// Turn describes the outcome of a single lap.
type Turn struct {
	End       Location // Where the last bean landed
	Captured  int      // Beans moved to the mover's pot by a capture
	ExtraTurn bool     // Lap ended in the mover's own pot
}

// Play sows pit hole of side s and applies the capture rule to the result.
// It fails only for an out of range hole.
func Play(b *Board, s Side, hole int) (Turn, bool) {
	end, ok := b.Sow(s, hole)
	if !ok {
		return Turn{}, false
	}
	return Turn{
		End:       end,
		Captured:  Capture(b, s, end),
		ExtraTurn: end.Hole == 0,
	}, true
}

// Capture moves the last bean of a lap and the opposite pit's beans into the
// sower's pot when the lap ended in a previously empty pit on the sower's
// side and the opposite pit is not empty. It returns the beans captured.
func Capture(b *Board, sower Side, end Location) int {
	if end.Side != sower || end.Hole == 0 {
		return 0
	}
	if b.Beans(sower, end.Hole) != 1 {
		return 0
	}
	opposite := b.Beans(sower.Opponent(), end.Hole)
	if opposite <= 0 {
		return 0
	}

	b.MoveToPot(sower, end.Hole, sower)
	b.MoveToPot(sower.Opponent(), end.Hole, sower)
	return opposite + 1
}

// Sweep moves every bean left in owner's pits into owner's pot and returns
// how many were moved.
func Sweep(b *Board, owner Side) int {
	swept := b.BeansInPlay(owner)
	for hole := 1; hole <= b.Holes(); hole++ {
		b.MoveToPot(owner, hole, owner)
	}
	return swept
}

// Winner compares the pots. The second result is false on a tie.
func Winner(b *Board) (Side, bool) {
	north, south := b.Beans(North, 0), b.Beans(South, 0)
	switch {
	case north > south:
		return North, true
	case south > north:
		return South, true
	default:
		return North, false
	}
}

// HasMajority reports whether the pot of side s holds more than half of all
// beans on the board.
func HasMajority(b *Board, s Side) bool {
	return 2*b.Beans(s, 0) > b.TotalBeans()
}
