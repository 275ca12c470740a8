package game

// Side identifies one half of the board. North moves second in a game and
// minimizes evaluations, South moves first and maximizes them.
type Side int

const (
	North Side = iota
	South
)

func (s Side) Opponent() Side {
	if s == North {
		return South
	}
	return North
}

func (s Side) String() string {
	switch s {
	case North:
		return "North"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

func (s Side) valid() bool {
	return s == North || s == South
}

// Location addresses a single container on the board. Hole 0 is the pot of
// Side, holes 1..Holes() are its pits.
type Location struct {
	Side Side
	Hole int
}

// Evaluates a non-terminal board to a score where positive values favour
// South and negative values favour North.
type Evaluate func(*Board) int
