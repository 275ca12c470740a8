package game

import "kalah/utils"

// Board holds the bean counts of both sides. Index 0 of each row is the
// side's pot, indices 1..holes are its pits.
type Board struct {
	rows  [2][]int
	holes int
}

// NewBoard returns a board with beansPerHole beans in every pit and empty
// pots. A non-positive hole count is raised to 1.
func NewBoard(holes, beansPerHole int) *Board {
	if holes <= 0 {
		holes = 1
	}
	if beansPerHole < 0 {
		beansPerHole = 0
	}

	b := &Board{holes: holes}
	for s := range b.rows {
		b.rows[s] = make([]int, holes+1)
		for hole := 1; hole <= holes; hole++ {
			b.rows[s][hole] = beansPerHole
		}
	}
	return b
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{holes: b.holes}
	for s := range b.rows {
		c.rows[s] = make([]int, len(b.rows[s]))
		copy(c.rows[s], b.rows[s])
	}
	return c
}

func (b *Board) Holes() int {
	return b.holes
}

func (b *Board) inRange(s Side, hole int) bool {
	return s.valid() && hole >= 0 && hole <= b.holes
}

// Beans returns the count at hole on side s, where hole 0 is the pot. It
// returns -1 for an out of range hole.
func (b *Board) Beans(s Side, hole int) int {
	if !b.inRange(s, hole) {
		return -1
	}
	return b.rows[s][hole]
}

// SetBeans overwrites the count at hole on side s. Negative counts and out
// of range holes are rejected.
func (b *Board) SetBeans(s Side, hole, beans int) bool {
	if !b.inRange(s, hole) || beans < 0 {
		return false
	}
	b.rows[s][hole] = beans
	return true
}

// BeansInPlay sums the pits of side s, excluding its pot. A side has a legal
// move exactly when this is positive.
func (b *Board) BeansInPlay(s Side) int {
	if !s.valid() {
		return 0
	}
	return utils.Sum(b.rows[s][1:])
}

func (b *Board) TotalBeans() int {
	return utils.Sum(b.rows[North]) + utils.Sum(b.rows[South])
}

// LegalMoves lists the non-empty pits of side s in increasing order.
func (b *Board) LegalMoves(s Side) []int {
	if !s.valid() {
		return nil
	}
	moves := []int{}
	for hole := 1; hole <= b.holes; hole++ {
		if b.rows[s][hole] > 0 {
			moves = append(moves, hole)
		}
	}
	return moves
}

// MoveToPot empties pit hole of side s into the pot of owner.
func (b *Board) MoveToPot(s Side, hole int, owner Side) bool {
	if !b.inRange(s, hole) || hole == 0 || !owner.valid() {
		return false
	}
	b.rows[owner][0] += b.rows[s][hole]
	b.rows[s][hole] = 0
	return true
}

// Sow picks up every bean in pit hole of side s and drops them one at a
// time along the sowing order, skipping the opponent's pot. It reports where
// the last bean landed. Sowing an empty pit is legal and reports the pit
// itself.
func (b *Board) Sow(s Side, hole int) (Location, bool) {
	if !b.inRange(s, hole) || hole == 0 {
		return Location{}, false
	}

	inHand := b.rows[s][hole]
	b.rows[s][hole] = 0

	loc := Location{Side: s, Hole: hole}
	for ; inHand > 0; inHand-- {
		loc = NextLocation(loc, s, b.holes)
		b.rows[loc.Side][loc.Hole]++
	}
	return loc, true
}

// NextLocation returns the container after from when sower is sowing on a
// board with the given number of holes. North's pits run down towards its
// pot after pit 1, South's run up towards its pot after the last pit, and a
// pot is only entered by its own side.
func NextLocation(from Location, sower Side, holes int) Location {
	if from.Hole == 0 {
		if from.Side == North {
			return Location{Side: South, Hole: 1}
		}
		return Location{Side: North, Hole: holes}
	}

	if from.Side == North {
		if from.Hole > 1 {
			return Location{Side: North, Hole: from.Hole - 1}
		}
		if sower == North {
			return Location{Side: North, Hole: 0}
		}
		return Location{Side: South, Hole: 1}
	}

	if from.Hole < holes {
		return Location{Side: South, Hole: from.Hole + 1}
	}
	if sower == South {
		return Location{Side: South, Hole: 0}
	}
	return Location{Side: North, Hole: holes}
}
