package game

import (
	"fmt"
	"strings"
)

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitSymbols = [...]string{"H", "D", "C", "S"}

func (s Suit) String() string {
	if s < Hearts || s > Spades {
		return "?"
	}
	return suitSymbols[s]
}

// Rank starts at Two so that the zero Card is never a real card.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankSymbols = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (r Rank) String() string {
	if s, ok := rankSymbols[r]; ok {
		return s
	}
	return "?"
}

// CardKind classifies a card by how it may be played.
type CardKind int

const (
	NormalCard  CardKind = iota
	WildCard             // two-eyed jack, places anywhere
	RemovalCard          // one-eyed jack, removes an opponent chip
)

func (k CardKind) String() string {
	switch k {
	case WildCard:
		return "wild"
	case RemovalCard:
		return "removal"
	default:
		return "normal"
	}
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) IsZero() bool {
	return c.Rank == 0
}

func (c Card) IsWild() bool {
	return c.Rank == Jack && (c.Suit == Hearts || c.Suit == Diamonds)
}

func (c Card) IsRemoval() bool {
	return c.Rank == Jack && (c.Suit == Spades || c.Suit == Clubs)
}

func (c Card) Kind() CardKind {
	switch {
	case c.IsWild():
		return WildCard
	case c.IsRemoval():
		return RemovalCard
	default:
		return NormalCard
	}
}

// String renders the card in board notation, e.g. "10D" or "QS".
func (c Card) String() string {
	if c.IsZero() {
		return "--"
	}
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses board notation ("7S", "10h", "JD").
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	rankPart, suitPart := s[:len(s)-1], s[len(s)-1:]

	suit := Suit(-1)
	for i, sym := range suitSymbols {
		if sym == suitPart {
			suit = Suit(i)
		}
	}
	if suit < 0 {
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}
	for rank, sym := range rankSymbols {
		if sym == rankPart {
			return Card{Rank: rank, Suit: suit}, nil
		}
	}
	return Card{}, fmt.Errorf("invalid rank in card %q", s)
}

func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}
