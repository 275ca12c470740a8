package player

import (
	"kalah/experiments/metrics"
	"kalah/game"

	"github.com/rs/zerolog/log"
)

// NoMove is returned by ChooseMove when the side has no legal move.
const NoMove = -1

// Player chooses moves for one side of the board.
type Player interface {
	Name() string
	IsInteractive() bool
	// ChooseMove returns a hole in [1, b.Holes()] holding beans of side s,
	// or NoMove if there is none.
	ChooseMove(b *game.Board, s game.Side) int
}

// Reporter is implemented by players that search, so the engine can record
// what each move cost.
type Reporter interface {
	LastMetric() metrics.SearchMetric
}

// FirstLegalPlayer always sows the lowest numbered non-empty hole.
type FirstLegalPlayer struct {
	name string
}

func NewFirstLegalPlayer(name string) *FirstLegalPlayer {
	return &FirstLegalPlayer{name: name}
}

func (p *FirstLegalPlayer) Name() string {
	return p.name
}

func (p *FirstLegalPlayer) IsInteractive() bool {
	return false
}

func (p *FirstLegalPlayer) ChooseMove(b *game.Board, s game.Side) int {
	moves := b.LegalMoves(s)
	if len(moves) == 0 {
		return NoMove
	}
	log.Debug().Msgf("%s chooses hole %d", p.name, moves[0])
	return moves[0]
}
