package player

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/searcher"

	"github.com/rs/zerolog/log"
)

// MinimaxPlayer picks moves with a bounded minimax search.
type MinimaxPlayer struct {
	name   string
	search *searcher.Minimax
	last   metrics.SearchMetric
}

func NewMinimaxPlayer(name string, search *searcher.Minimax) *MinimaxPlayer {
	if search == nil {
		search = searcher.NewMinimax()
	}
	return &MinimaxPlayer{name: name, search: search}
}

func (p *MinimaxPlayer) Name() string {
	return p.name
}

func (p *MinimaxPlayer) IsInteractive() bool {
	return false
}

func (p *MinimaxPlayer) ChooseMove(b *game.Board, s game.Side) int {
	if b.BeansInPlay(s) == 0 {
		p.last = metrics.SearchMetric{Hole: NoMove}
		return NoMove
	}

	eval, metric := p.search.Search(b, s)
	p.last = metric

	log.Debug().Msgf("%s thinks the evaluation is currently %d", p.name, eval.Score)
	log.Debug().Msgf("%s chooses hole %d", p.name, eval.Hole)
	return eval.Hole
}

func (p *MinimaxPlayer) LastMetric() metrics.SearchMetric {
	return p.last
}
