package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"kalah/game"
	"kalah/utils"

	"github.com/rs/zerolog/log"
)

// HumanPlayer reads hole numbers line by line, prompting again until the
// input names a non-empty hole.
type HumanPlayer struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

func NewHumanPlayer(name string, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{name: name, in: bufio.NewScanner(in), out: out}
}

func (p *HumanPlayer) Name() string {
	return p.name
}

func (p *HumanPlayer) IsInteractive() bool {
	return true
}

// ChooseMove returns 0, which no board accepts, once the input is exhausted.
func (p *HumanPlayer) ChooseMove(b *game.Board, s game.Side) int {
	legal := b.LegalMoves(s)
	if len(legal) == 0 {
		return NoMove
	}

	for {
		fmt.Fprintf(p.out, "Select a hole, %s: ", p.name)
		if !p.in.Scan() {
			err := p.in.Err()
			if err == nil {
				err = io.EOF
			}
			log.Error().Err(err).Msgf("%s stopped providing moves", p.name)
			return 0
		}

		hole, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a hole number.")
			continue
		}
		if hole < 1 || hole > b.Holes() {
			fmt.Fprintf(p.out, "The hole number must be from 1 to %d.\n", b.Holes())
			continue
		}
		if utils.FindIndex(legal, hole) < 0 {
			fmt.Fprintln(p.out, "There are no beans in that hole.")
			continue
		}
		return hole
	}
}
