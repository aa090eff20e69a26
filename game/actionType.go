package game

// ActionType is what a move does with its card.
type ActionType int

const (
	PlaceAction   ActionType = iota // claim a cell (normal or wild card)
	RemoveAction                    // clear an opponent chip (removal card)
	DiscardAction                   // give up a card with no legal target
)

func (a ActionType) String() string {
	switch a {
	case PlaceAction:
		return "place"
	case RemoveAction:
		return "remove"
	case DiscardAction:
		return "discard"
	default:
		return "unknown"
	}
}

// actionFor returns the action a card performs on the board.
func actionFor(card Card) ActionType {
	if card.IsRemoval() {
		return RemoveAction
	}
	return PlaceAction
}
