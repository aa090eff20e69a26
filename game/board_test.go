package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCard(t *testing.T) {
	t.Run("parsing board notation", func(t *testing.T) {
		card, err := ParseCard("10D")
		require.NoError(t, err)
		require.Equal(t, Card{Rank: Ten, Suit: Diamonds}, card, "Ten of diamonds should parse")
		require.Equal(t, "10D", card.String(), "String should round trip the notation")

		card, err = ParseCard(" qs ")
		require.NoError(t, err)
		require.Equal(t, Card{Rank: Queen, Suit: Spades}, card, "Parsing should ignore case and spaces")

		for _, bad := range []string{"", "X", "1X", "11H", "ZZ"} {
			_, err := ParseCard(bad)
			require.Error(t, err, "%q should not parse", bad)
		}
	})

	t.Run("classifying jacks", func(t *testing.T) {
		require.Equal(t, WildCard, MustParseCard("JH").Kind(), "Jack of hearts is wild")
		require.Equal(t, WildCard, MustParseCard("JD").Kind(), "Jack of diamonds is wild")
		require.Equal(t, RemovalCard, MustParseCard("JS").Kind(), "Jack of spades removes")
		require.Equal(t, RemovalCard, MustParseCard("JC").Kind(), "Jack of clubs removes")
		require.Equal(t, NormalCard, MustParseCard("QH").Kind(), "Queens are normal")
		require.True(t, Card{}.IsZero(), "Zero card should be recognisable")
	})
}

func TestLayout(t *testing.T) {
	b := NewBoard()
	counts := make(map[Card]int)
	corners := 0
	for row := range Size {
		for col := range Size {
			if b.IsCorner(row, col) {
				corners++
				_, ok := b.CardAt(row, col)
				require.False(t, ok, "Corner %d,%d should have no card", row, col)
				continue
			}
			card, ok := b.CardAt(row, col)
			require.True(t, ok, "Cell %d,%d should have a card", row, col)
			counts[card]++
		}
	}

	require.Equal(t, 4, corners, "Board should have four corners")
	require.Len(t, counts, 48, "Board should carry every non-jack identity")
	for card, n := range counts {
		require.Equal(t, 2, n, "%s should appear exactly twice", card)
		require.NotEqual(t, Jack, card.Rank, "Jacks should not be printed on the board")
		require.Len(t, b.Positions(card), 2, "%s should index two positions", card)
	}
}

func TestBoardAccessors(t *testing.T) {
	t.Run("out of bounds reads are empty", func(t *testing.T) {
		b := NewBoard()
		_, ok := b.CardAt(-1, 0)
		require.False(t, ok, "Out of bounds card should be absent")
		_, ok = b.CardAt(0, Size)
		require.False(t, ok, "Out of bounds card should be absent")
		require.False(t, b.ChipAt(Size, Size).IsOwned(), "Out of bounds chip should be unowned")
		require.False(t, b.IsCorner(-1, -1), "Out of bounds cell is not a corner")
		require.False(t, b.PlaceChip(Size, 0, 1), "Placing out of bounds should fail")
	})

	t.Run("placing chips", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceChip(3, 3, 1), "Placing on an empty cell should succeed")
		require.True(t, b.ChipAt(3, 3).Is(1), "Cell should be owned by the placing player")
		require.False(t, b.PlaceChip(3, 3, 2), "Placing on an owned cell should fail")
		require.True(t, b.ChipAt(3, 3).Is(1), "Failed placement should not change the owner")
		require.Equal(t, 1, b.Chips(1), "Player should hold one chip")
	})

	t.Run("corners accept placements without holding chips", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceChip(0, 0, 1), "Placing on a corner should succeed")
		require.False(t, b.ChipAt(0, 0).IsOwned(), "Corner should never hold a chip")
		require.True(t, b.PlaceChip(0, 0, 2), "Corner should stay eligible")
	})

	t.Run("corners satisfy every player", func(t *testing.T) {
		b := NewBoard()
		for _, corner := range []Point{{0, 0}, {0, 9}, {9, 0}, {9, 9}} {
			for _, player := range []PlayerID{1, 2, 42} {
				require.True(t, b.satisfies(corner, player), "Corner %s should satisfy player %d", corner, player)
			}
		}
	})

	t.Run("copies are independent", func(t *testing.T) {
		b := NewBoard()
		b.PlaceChip(2, 2, 1)
		snapshot := b.Copy()
		b.PlaceChip(2, 3, 2)

		require.True(t, snapshot.ChipAt(2, 2).Is(1), "Snapshot should keep earlier chips")
		require.False(t, snapshot.ChipAt(2, 3).IsOwned(), "Snapshot should not see later chips")
	})
}

func TestOwner(t *testing.T) {
	id, owned := Unowned().Player()
	require.False(t, owned, "Unowned should report no player")
	require.Zero(t, id)

	id, owned = OwnedBy(2).Player()
	require.True(t, owned, "OwnedBy should report a player")
	require.Equal(t, PlayerID(2), id)
	require.True(t, OwnedBy(0).IsOwned(), "Player 0 is a valid owner")
	require.False(t, OwnedBy(0).Is(1))
}
