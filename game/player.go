package game

import "sequence/utils"

// Hand is a multiset of cards in the order they were dealt.
type Hand []Card

func (h Hand) Contains(card Card) bool {
	return utils.FindIndex(h, card) >= 0
}

func (h *Hand) Add(card Card) {
	*h = append(*h, card)
}

// Remove drops one copy of the card and reports whether it was held.
func (h *Hand) Remove(card Card) bool {
	i := utils.FindIndex(*h, card)
	if i < 0 {
		return false
	}
	*h = utils.RemoveAt(*h, i)
	return true
}

type Player struct {
	ID   PlayerID
	Name string
	Hand Hand
}

func NewPlayer(id PlayerID, name string) *Player {
	return &Player{ID: id, Name: name}
}
