package game

import "sequence/utils"

// GenerateMoves lists every legal place and remove move for the hand. Duplicate cards
// yield their moves once. Moves are ordered by hand position, then row-major.
func GenerateMoves(b *Board, hand Hand, player PlayerID) []Move {
	var moves []Move
	for _, card := range utils.Unique(hand) {
		action := actionFor(card)
		for _, p := range b.ValidMoves(card, player) {
			moves = append(moves, Move{Action: action, Card: card, Target: p})
		}
	}
	return moves
}

// DeadCards lists the distinct cards in the hand that have no legal target.
func DeadCards(b *Board, hand Hand, player PlayerID) []Card {
	var dead []Card
	for _, card := range utils.Unique(hand) {
		if len(b.ValidMoves(card, player)) == 0 {
			dead = append(dead, card)
		}
	}
	return dead
}
