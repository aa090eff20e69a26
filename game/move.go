package game

import "fmt"

// Move is a card played by the current player. Target is ignored for discards.
type Move struct {
	Action ActionType
	Card   Card
	Target Point
}

func Place(card Card, target Point) Move {
	return Move{Action: PlaceAction, Card: card, Target: target}
}

func Remove(card Card, target Point) Move {
	return Move{Action: RemoveAction, Card: card, Target: target}
}

func Discard(card Card) Move {
	return Move{Action: DiscardAction, Card: card}
}

func (m Move) String() string {
	if m.Action == DiscardAction {
		return fmt.Sprintf("discard %s", m.Card)
	}
	return fmt.Sprintf("%s %s at %s", m.Action, m.Card, m.Target)
}
