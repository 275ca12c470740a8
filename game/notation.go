package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotation = errors.New("malformed board notation")

// String renders the board as <holes,southPot,northPot,s1,...,sn,n1,...,nn>.
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<%d,%d,%d", b.holes, b.rows[South][0], b.rows[North][0])
	for _, s := range []Side{South, North} {
		for hole := 1; hole <= b.holes; hole++ {
			fmt.Fprintf(&sb, ",%d", b.rows[s][hole])
		}
	}
	sb.WriteString(">")
	return sb.String()
}

// ParseBoard reads a board written by Board.String. Whitespace around the
// fields is ignored.
func ParseBoard(str string) (*Board, error) {
	str = strings.TrimSpace(str)
	if !strings.HasPrefix(str, "<") || !strings.HasSuffix(str, ">") {
		return nil, fmt.Errorf("%w: missing angle brackets in %q", ErrNotation, str)
	}
	raw := strings.Split(str[1:len(str)-1], ",")
	if len(raw) < 5 {
		return nil, fmt.Errorf("%w: too few fields in %q", ErrNotation, str)
	}

	data := make([]int, len(raw))
	for i, r := range raw {
		v, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %w", ErrNotation, i, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: field %d is negative", ErrNotation, i)
		}
		data[i] = v
	}

	holes := data[0]
	if holes < 1 || 2*holes+3 != len(data) {
		return nil, fmt.Errorf("%w: %d holes do not match %d fields", ErrNotation, holes, len(data))
	}

	b := NewBoard(holes, 0)
	b.rows[South][0] = data[1]
	b.rows[North][0] = data[2]
	copy(b.rows[South][1:], data[3:3+holes])
	copy(b.rows[North][1:], data[3+holes:])
	return b, nil
}
