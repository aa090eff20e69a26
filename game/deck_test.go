package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestDeck(t *testing.T) {
	t.Run("two full decks", func(t *testing.T) {
		d := NewDeck(rand.New(rand.NewSource(1)))
		require.Equal(t, 104, d.Len(), "Deck should hold two standard decks")

		counts := make(map[Card]int)
		for {
			card, ok := d.Draw()
			if !ok {
				break
			}
			counts[card]++
		}
		require.Len(t, counts, 52)
		for card, n := range counts {
			require.Equal(t, 2, n, "%s should appear twice", card)
		}
		require.Zero(t, d.Len())
	})

	t.Run("same seed same order", func(t *testing.T) {
		d1 := NewDeck(rand.New(rand.NewSource(99)))
		d2 := NewDeck(rand.New(rand.NewSource(99)))
		require.Equal(t, d1.cards, d2.cards, "Shuffle should be reproducible")
	})

	t.Run("empty deck", func(t *testing.T) {
		d := NewDeckFrom(nil)
		card, ok := d.Draw()
		require.False(t, ok, "Drawing from an empty deck should report no card")
		require.True(t, card.IsZero())
	})
}

func TestHand(t *testing.T) {
	sixD := MustParseCard("6D")
	jh := MustParseCard("JH")
	hand := Hand{sixD, jh, sixD}

	require.True(t, hand.Contains(jh))
	require.True(t, hand.Remove(sixD), "Held card should be removed")
	require.Equal(t, Hand{jh, sixD}, hand, "Only one copy should be removed")
	require.False(t, hand.Remove(MustParseCard("2C")), "Missing card should not be removed")

	hand.Add(sixD)
	require.Len(t, hand, 3)
}

func TestGenerateMoves(t *testing.T) {
	sixD := MustParseCard("6D")
	jh := MustParseCard("JH")
	js := MustParseCard("JS")

	t.Run("whole hand", func(t *testing.T) {
		b := NewBoard()
		b.PlaceChip(5, 5, 2)
		moves := GenerateMoves(b, Hand{sixD, sixD, jh, js}, 1)

		require.Len(t, moves, 2+99+1, "Duplicate cards should contribute once")
		require.Equal(t, Place(sixD, Point{0, 1}), moves[0], "Moves should follow hand order")
		require.Equal(t, Place(jh, Point{0, 0}), moves[2], "Wild targets should be row-major")
		require.Equal(t, Remove(js, Point{5, 5}), moves[len(moves)-1], "Removal should target the opponent chip")
	})

	t.Run("dead cards", func(t *testing.T) {
		b := NewBoard()
		b.PlaceChip(0, 1, 2)
		b.PlaceChip(7, 3, 2)

		require.Equal(t, []Card{sixD}, DeadCards(b, Hand{sixD, jh, js, sixD}, 1),
			"Cards without targets should be listed once")
		require.Equal(t, []Card{js}, DeadCards(NewBoard(), Hand{js, jh}, 1),
			"Removal card without opponent chips has no target")
		require.Empty(t, GenerateMoves(b, Hand{sixD}, 1))
	})
}
