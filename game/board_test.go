package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("filling every pit and leaving pots empty", func(t *testing.T) {
		b := NewBoard(4, 3)

		require.Equal(t, 4, b.Holes())
		for _, s := range []Side{North, South} {
			require.Equal(t, 0, b.Beans(s, 0), "Pot should start empty")
			for hole := 1; hole <= 4; hole++ {
				require.Equal(t, 3, b.Beans(s, hole), "Pit should start with the initial count")
			}
		}
		require.Equal(t, 24, b.TotalBeans())
	})

	t.Run("clamping a non-positive hole count", func(t *testing.T) {
		for _, holes := range []int{0, -3} {
			b := NewBoard(holes, 2)

			require.Equal(t, 1, b.Holes(), "Hole count should be raised to 1")
			require.Equal(t, 2, b.Beans(South, 1))
			require.Equal(t, -1, b.Beans(South, 2))
		}
	})
}

func TestBeans(t *testing.T) {
	b := NewBoard(3, 2)

	t.Run("rejecting out of range holes", func(t *testing.T) {
		require.Equal(t, -1, b.Beans(North, -1))
		require.Equal(t, -1, b.Beans(South, 4))
		require.Equal(t, -1, b.Beans(Side(7), 1), "Unknown side should be rejected")
	})

	t.Run("setting pits and pots", func(t *testing.T) {
		c := b.Clone()

		require.True(t, c.SetBeans(North, 0, 9))
		require.True(t, c.SetBeans(South, 3, 0))
		require.Equal(t, 9, c.Beans(North, 0))
		require.Equal(t, 0, c.Beans(South, 3))
	})

	t.Run("rejecting invalid writes", func(t *testing.T) {
		c := b.Clone()

		require.False(t, c.SetBeans(North, 1, -1), "Negative counts should be rejected")
		require.False(t, c.SetBeans(North, 4, 1), "Out of range hole should be rejected")
		require.False(t, c.SetBeans(South, -1, 1), "Out of range hole should be rejected")
		require.Equal(t, b.String(), c.String(), "Rejected writes should not change the board")
	})
}

func TestBeansInPlay(t *testing.T) {
	b := NewBoard(3, 2)
	b.SetBeans(South, 0, 10)
	b.SetBeans(South, 2, 5)

	require.Equal(t, 9, b.BeansInPlay(South), "Pot should not count as in play")
	require.Equal(t, 6, b.BeansInPlay(North))
	require.Equal(t, 25, b.TotalBeans())
	require.Equal(t, []int{1, 2, 3}, b.LegalMoves(North))

	b.SetBeans(North, 2, 0)
	require.Equal(t, []int{1, 3}, b.LegalMoves(North))
}

func TestClone(t *testing.T) {
	b := NewBoard(2, 2)
	c := b.Clone()

	c.Sow(South, 1)

	require.Equal(t, 2, b.Beans(South, 1), "Original should not observe the clone's sowing")
	require.Equal(t, 0, c.Beans(South, 1))
}

func TestMoveToPot(t *testing.T) {
	t.Run("moving to own pot", func(t *testing.T) {
		b := NewBoard(3, 4)

		require.True(t, b.MoveToPot(North, 2, North))
		require.Equal(t, 0, b.Beans(North, 2))
		require.Equal(t, 4, b.Beans(North, 0))
		require.Equal(t, 24, b.TotalBeans())
	})

	t.Run("moving to opponent pot", func(t *testing.T) {
		b := NewBoard(3, 4)

		require.True(t, b.MoveToPot(North, 3, South))
		require.Equal(t, 0, b.Beans(North, 3))
		require.Equal(t, 4, b.Beans(South, 0))
		require.Equal(t, 0, b.Beans(North, 0))
	})

	t.Run("rejecting pots and out of range holes", func(t *testing.T) {
		b := NewBoard(3, 4)

		require.False(t, b.MoveToPot(North, 0, North), "A pot cannot be moved to a pot")
		require.False(t, b.MoveToPot(South, 4, South))
		require.Equal(t, 0, b.Beans(South, 0))
	})
}

func TestSow(t *testing.T) {
	t.Run("ending in own pot", func(t *testing.T) {
		b := NewBoard(4, 4)

		_, ok := b.Sow(South, 0)
		require.False(t, ok, "Sowing a pot should fail")

		end, ok := b.Sow(South, 1)

		require.True(t, ok)
		require.Equal(t, Location{Side: South, Hole: 0}, end)
		require.Equal(t, 1, b.Beans(South, 0))
		require.Equal(t, 0, b.Beans(South, 1))
		require.Equal(t, 5, b.Beans(South, 2))
		require.Equal(t, 5, b.Beans(South, 3))
		require.Equal(t, 5, b.Beans(South, 4))
		require.Equal(t, 16, b.BeansInPlay(North))
		require.Equal(t, 15, b.BeansInPlay(South))
		require.Equal(t, 32, b.TotalBeans())
	})

	t.Run("wrapping the board many times", func(t *testing.T) {
		b := NewBoard(2, 61)

		end, ok := b.Sow(South, 1)

		require.True(t, ok)
		require.Equal(t, Location{Side: South, Hole: 2}, end)
		require.Equal(t, 12, b.Beans(South, 0))
		require.Equal(t, 12, b.Beans(South, 1))
		require.Equal(t, 74, b.Beans(South, 2))
		require.Equal(t, 0, b.Beans(North, 0))
		require.Equal(t, 73, b.Beans(North, 1))
		require.Equal(t, 73, b.Beans(North, 2))
		require.Equal(t, 86, b.BeansInPlay(South))
		require.Equal(t, 146, b.BeansInPlay(North))
		require.Equal(t, 244, b.TotalBeans())
	})

	t.Run("sowing an empty pit", func(t *testing.T) {
		b := NewBoard(3, 0)

		end, ok := b.Sow(North, 2)

		require.True(t, ok, "Sowing an empty pit is legal")
		require.Equal(t, Location{Side: North, Hole: 2}, end)
		require.Equal(t, 0, b.TotalBeans())
	})

	t.Run("rejecting out of range holes", func(t *testing.T) {
		b := NewBoard(3, 3)

		_, ok := b.Sow(North, 4)
		require.False(t, ok)
		_, ok = b.Sow(North, -1)
		require.False(t, ok)
		require.Equal(t, 18, b.TotalBeans())
	})

	t.Run("north sowing into its pot then south pits", func(t *testing.T) {
		b := NewBoard(3, 0)
		b.SetBeans(North, 2, 4)

		end, _ := b.Sow(North, 2)

		require.Equal(t, Location{Side: South, Hole: 2}, end)
		require.Equal(t, 1, b.Beans(North, 1))
		require.Equal(t, 1, b.Beans(North, 0))
		require.Equal(t, 1, b.Beans(South, 1))
		require.Equal(t, 1, b.Beans(South, 2))
	})
}

func TestSowSkipsOpponentPot(t *testing.T) {
	for holes := 1; holes <= 6; holes++ {
		for _, s := range []Side{North, South} {
			// Each lap over the opponent's side passes its pot once
			ring := 2*holes + 1
			for beans := 1; beans <= 3*ring; beans++ {
				b := NewBoard(holes, 0)
				b.SetBeans(s, 1, beans)

				b.Sow(s, 1)

				require.Equal(t, 0, b.Beans(s.Opponent(), 0),
					"Sowing by %s must never feed the opponent's pot", s)
				require.Equal(t, beans, b.TotalBeans(), "Sowing should conserve beans")
				if beans < ring {
					require.Equal(t, 0, b.Beans(s, 1), "Source pit should end empty within one lap")
				}
			}
		}
	}
}

func TestSowVisitsRingInOrder(t *testing.T) {
	const holes = 3
	b := NewBoard(holes, 0)
	ring := 2*holes + 1
	b.SetBeans(South, 2, ring)

	end, _ := b.Sow(South, 2)

	// A full lap returns the last bean to the emptied source pit
	require.Equal(t, Location{Side: South, Hole: 2}, end)
	require.Equal(t, 1, b.Beans(South, 2))
	require.Equal(t, 1, b.Beans(South, 0))
	require.Equal(t, 0, b.Beans(North, 0))
	for hole := 1; hole <= holes; hole++ {
		require.Equal(t, 1, b.Beans(North, hole))
		require.Equal(t, 1, b.Beans(South, hole))
	}
}

func TestNextLocation(t *testing.T) {
	const holes = 4
	tests := []struct {
		name  string
		from  Location
		sower Side
		want  Location
	}{
		{"north pot to south first pit", Location{North, 0}, North, Location{South, 1}},
		{"south pot to north last pit", Location{South, 0}, South, Location{North, holes}},
		{"north pit 1 into north pot", Location{North, 1}, North, Location{North, 0}},
		{"north pit 1 past north pot", Location{North, 1}, South, Location{South, 1}},
		{"north pits count down", Location{North, 3}, South, Location{North, 2}},
		{"south last pit into south pot", Location{South, holes}, South, Location{South, 0}},
		{"south last pit past south pot", Location{South, holes}, North, Location{North, holes}},
		{"south pits count up", Location{South, 2}, North, Location{South, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextLocation(tt.from, tt.sower, holes))
		})
	}
}
