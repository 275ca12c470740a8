package player

import (
	"kalah/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RandomPlayer sows a uniformly chosen non-empty hole. The same seed replays
// the same choices.
type RandomPlayer struct {
	name string
	rng  *rand.Rand
}

func NewRandomPlayer(name string, seed uint64) *RandomPlayer {
	return &RandomPlayer{name: name, rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Name() string {
	return p.name
}

func (p *RandomPlayer) IsInteractive() bool {
	return false
}

func (p *RandomPlayer) ChooseMove(b *game.Board, s game.Side) int {
	moves := b.LegalMoves(s)
	if len(moves) == 0 {
		return NoMove
	}
	hole := moves[p.rng.Intn(len(moves))]
	log.Debug().Msgf("%s chooses hole %d", p.name, hole)
	return hole
}
