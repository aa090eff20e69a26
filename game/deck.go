package game

import "golang.org/x/exp/rand"

// DeckCount standard 52-card decks are shuffled together into the draw pile.
const DeckCount = 2

type Deck struct {
	cards []Card
}

func standardCards() []Card {
	cards := make([]Card, 0, 52*DeckCount)
	for range DeckCount {
		for suit := Hearts; suit <= Spades; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				cards = append(cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	return cards
}

// NewDeck returns a shuffled draw pile of two standard decks.
func NewDeck(rng *rand.Rand) *Deck {
	cards := standardCards()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// NewDeckFrom returns a draw pile that deals cards in the given order.
func NewDeckFrom(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Draw takes the top card. It reports false when the pile is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

func (d *Deck) Len() int {
	return len(d.cards)
}
