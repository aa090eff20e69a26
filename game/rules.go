package game

// canPlay is the single legality check shared by PlayCard, ValidMoves and GameState.
func (b *Board) canPlay(card Card, player PlayerID, p Point) bool {
	c, ok := b.cell(p)
	if !ok {
		return false
	}
	switch card.Kind() {
	case WildCard:
		return !c.Owner.IsOwned()
	case RemovalCard:
		owner, owned := c.Owner.Player()
		return owned && owner != player && !c.Corner && !b.IsProtected(p.Row, p.Col)
	default:
		return !c.Corner && !c.Owner.IsOwned() && c.Card == card
	}
}

// PlayCard applies the card for player at the cell. It returns false, leaving the board
// untouched, when the play is illegal.
func (b *Board) PlayCard(player PlayerID, card Card, row, col int) bool {
	p := Point{row, col}
	if !b.canPlay(card, player, p) {
		return false
	}
	if card.IsRemoval() {
		b.removeChip(p)
		return true
	}
	return b.PlaceChip(row, col, player)
}

// ValidMoves lists the cells where the card may be played, in row-major order.
func (b *Board) ValidMoves(card Card, player PlayerID) []Point {
	var points []Point
	if card.Kind() == NormalCard {
		for _, p := range b.Positions(card) {
			if b.canPlay(card, player, p) {
				points = append(points, p)
			}
		}
		return points
	}
	for row := range Size {
		for col := range Size {
			p := Point{row, col}
			if b.canPlay(card, player, p) {
				points = append(points, p)
			}
		}
	}
	return points
}

// IsDeadCard reports whether a normal card can no longer be played because both cells
// bearing it are taken, by either player. Dead means no legal target, so it agrees with
// ValidMoves. Jacks are never dead.
func (b *Board) IsDeadCard(card Card, player PlayerID) bool {
	if card.Kind() != NormalCard {
		return false
	}
	return len(b.ValidMoves(card, player)) == 0
}
