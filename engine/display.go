package engine

import (
	"fmt"
	"io"
	"strings"

	"kalah/game"
)

const cell = 3

// Render draws the board with North's pits on top, North's pot on the left
// and South's pot on the right, each pit numbered left to right from 1.
func Render(w io.Writer, b *game.Board, northName, southName string) {
	width := cell * (b.Holes() + 2)
	center := func(name string) string {
		pad := (width - len(name)) / 2
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", pad) + name
	}
	row := func(s game.Side) string {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", cell))
		for hole := 1; hole <= b.Holes(); hole++ {
			fmt.Fprintf(&sb, "%*d", cell, b.Beans(s, hole))
		}
		return sb.String()
	}

	fmt.Fprintln(w, center(northName))
	fmt.Fprintln(w, row(game.North))
	fmt.Fprintf(w, "%*d%s%*d\n", cell, b.Beans(game.North, 0), strings.Repeat(" ", cell*b.Holes()), cell, b.Beans(game.South, 0))
	fmt.Fprintln(w, row(game.South))
	fmt.Fprintln(w, center(southName))
}
