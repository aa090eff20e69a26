package game

import (
	"errors"
	"fmt"
)

const DefaultHandSize = 7

var (
	ErrGameOver      = errors.New("game is over")
	ErrCardNotInHand = errors.New("card not in hand")
	ErrIllegalMove   = errors.New("illegal move")
)

type Phase int

const (
	AwaitingMove Phase = iota
	Completed          // a player reached WinThreshold sequences
	Exhausted          // the draw pile is empty and the player to move cannot play
)

func (p Phase) String() string {
	switch p {
	case AwaitingMove:
		return "awaiting move"
	case Completed:
		return "completed"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Status describes the game from outside. Active is meaningful while AwaitingMove,
// Winner once Completed.
type Status struct {
	Phase  Phase
	Active PlayerID
	Winner PlayerID
}

// Transition is the outcome of one applied move.
type Transition struct {
	Player    PlayerID
	Move      Move
	Forced    bool // a failed move replaced by a discard
	Drew      bool // a replacement card was drawn
	Sequences int  // mover's sequence count after the move
	Status    Status
}

type StateOption func(*GameState)

func WithHandSize(n int) StateOption {
	return func(gs *GameState) {
		if n > 0 {
			gs.handSize = n
		}
	}
}

// WithStartingPlayer selects which of the players (by index) moves first.
func WithStartingPlayer(index int) StateOption {
	return func(gs *GameState) {
		if index >= 0 && index < len(gs.Players) {
			gs.current = index
		}
	}
}

type GameState struct {
	Board   *Board
	Deck    *Deck
	Players []*Player

	current  int
	phase    Phase
	winner   PlayerID
	turn     int
	handSize int
}

// NewGameState deals opening hands from the deck and waits for the starting player.
func NewGameState(players []*Player, deck *Deck, options ...StateOption) *GameState {
	if len(players) != 2 {
		panic("a game needs exactly two players")
	}
	if players[0].ID == players[1].ID {
		panic("players must have distinct ids")
	}

	gs := &GameState{
		Board:    NewBoard(),
		Deck:     deck,
		Players:  players,
		handSize: DefaultHandSize,
	}
	for _, option := range options {
		option(gs)
	}

	for range gs.handSize {
		for _, p := range players {
			if card, ok := deck.Draw(); ok {
				p.Hand.Add(card)
			}
		}
	}
	gs.checkExhausted()
	return gs
}

func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.current]
}

func (gs *GameState) Opponent() *Player {
	return gs.Players[1-gs.current]
}

// Player returns the player with the given id, or nil.
func (gs *GameState) Player(id PlayerID) *Player {
	for _, p := range gs.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Turn is the number of moves applied so far.
func (gs *GameState) Turn() int {
	return gs.turn
}

func (gs *GameState) Status() Status {
	s := Status{Phase: gs.phase}
	switch gs.phase {
	case AwaitingMove:
		s.Active = gs.CurrentPlayer().ID
	case Completed:
		s.Winner = gs.winner
	}
	return s
}

// LegalMoves lists the current player's place and remove moves, plus a discard for every
// card without a legal target.
func (gs *GameState) LegalMoves() []Move {
	if gs.phase != AwaitingMove {
		return nil
	}
	p := gs.CurrentPlayer()
	moves := GenerateMoves(gs.Board, p.Hand, p.ID)
	for _, card := range DeadCards(gs.Board, p.Hand, p.ID) {
		moves = append(moves, Discard(card))
	}
	return moves
}

// ApplyMove plays a move for the current player. An illegal move returns an error and
// leaves the state unchanged.
func (gs *GameState) ApplyMove(m Move) (Transition, error) {
	if gs.phase != AwaitingMove {
		return Transition{}, ErrGameOver
	}
	p := gs.CurrentPlayer()
	if !p.Hand.Contains(m.Card) {
		return Transition{}, fmt.Errorf("%w: %s", ErrCardNotInHand, m.Card)
	}

	switch m.Action {
	case PlaceAction, RemoveAction:
		if actionFor(m.Card) != m.Action {
			return Transition{}, fmt.Errorf("%w: cannot %s with %s", ErrIllegalMove, m.Action, m.Card)
		}
		if !gs.Board.PlayCard(p.ID, m.Card, m.Target.Row, m.Target.Col) {
			return Transition{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
		}
	case DiscardAction:
		if len(gs.Board.ValidMoves(m.Card, p.ID)) > 0 {
			return Transition{}, fmt.Errorf("%w: %s still has a legal target", ErrIllegalMove, m.Card)
		}
	default:
		return Transition{}, fmt.Errorf("%w: unknown action %d", ErrIllegalMove, m.Action)
	}
	return gs.complete(p, m, false), nil
}

// ForceDiscard consumes a held card without playing it. It is the fallback when a chosen
// move could not be applied.
func (gs *GameState) ForceDiscard(card Card) (Transition, error) {
	if gs.phase != AwaitingMove {
		return Transition{}, ErrGameOver
	}
	p := gs.CurrentPlayer()
	if !p.Hand.Contains(card) {
		return Transition{}, fmt.Errorf("%w: %s", ErrCardNotInHand, card)
	}
	return gs.complete(p, Discard(card), true), nil
}

func (gs *GameState) complete(p *Player, m Move, forced bool) Transition {
	p.Hand.Remove(m.Card)
	card, drew := gs.Deck.Draw()
	if drew {
		p.Hand.Add(card)
	}
	gs.turn++

	if m.Action != DiscardAction && gs.Board.HasWon(p.ID) {
		gs.phase = Completed
		gs.winner = p.ID
	} else {
		gs.current = 1 - gs.current
		gs.checkExhausted()
	}

	return Transition{
		Player:    p.ID,
		Move:      m,
		Forced:    forced,
		Drew:      drew,
		Sequences: gs.Board.CountSequences(p.ID),
		Status:    gs.Status(),
	}
}

// checkExhausted ends the game once nothing can be drawn and the player to move has no
// card that can be played.
func (gs *GameState) checkExhausted() {
	if gs.phase != AwaitingMove || gs.Deck.Len() > 0 {
		return
	}
	p := gs.CurrentPlayer()
	if len(GenerateMoves(gs.Board, p.Hand, p.ID)) == 0 {
		gs.phase = Exhausted
	}
}
