package game

import (
	"fmt"
	"sync"
)

type PlayerID int

// Owner is the chip state of a cell: either Unowned or owned by exactly one player.
type Owner struct {
	player PlayerID
	owned  bool
}

func Unowned() Owner {
	return Owner{}
}

func OwnedBy(player PlayerID) Owner {
	return Owner{player: player, owned: true}
}

func (o Owner) Player() (PlayerID, bool) {
	return o.player, o.owned
}

func (o Owner) IsOwned() bool {
	return o.owned
}

// Is reports whether the chip belongs to player.
func (o Owner) Is(player PlayerID) bool {
	return o.owned && o.player == player
}

func (o Owner) String() string {
	if !o.owned {
		return "unowned"
	}
	return fmt.Sprintf("player %d", o.player)
}

type Point struct {
	Row int
	Col int
}

func (p Point) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Point) index() int {
	return p.Row*Size + p.Col
}

// Cell is one position on the board. Corners carry no card identity.
type Cell struct {
	Card   Card
	Corner bool
	Owner  Owner
}

// Board is the 10x10 grid. Card identities are fixed; only chip ownership changes.
// Accepted sequences are cached per player and dropped on every mutation.
type Board struct {
	cells [Size][Size]Cell

	mu    sync.Mutex
	cache map[PlayerID]sequenceSet
}

func NewBoard() *Board {
	return &Board{cells: standardBoard.cells}
}

// Copy returns an independent snapshot of the board.
func (b *Board) Copy() *Board {
	return &Board{cells: b.cells}
}

func (b *Board) cell(p Point) (Cell, bool) {
	if !p.InBounds() {
		return Cell{}, false
	}
	return b.cells[p.Row][p.Col], true
}

// CardAt returns the card printed at the cell. It reports false for corners and out of
// bounds coordinates.
func (b *Board) CardAt(row, col int) (Card, bool) {
	c, ok := b.cell(Point{row, col})
	if !ok || c.Corner {
		return Card{}, false
	}
	return c.Card, true
}

func (b *Board) ChipAt(row, col int) Owner {
	c, _ := b.cell(Point{row, col})
	return c.Owner
}

func (b *Board) IsCorner(row, col int) bool {
	c, ok := b.cell(Point{row, col})
	return ok && c.Corner
}

// PlaceChip claims an unowned cell for player. Corners always accept a placement but
// never record an owner.
func (b *Board) PlaceChip(row, col int, player PlayerID) bool {
	p := Point{row, col}
	c, ok := b.cell(p)
	if !ok || c.Owner.IsOwned() {
		return false
	}
	if c.Corner {
		return true
	}
	b.setOwner(p, OwnedBy(player))
	return true
}

func (b *Board) removeChip(p Point) {
	b.setOwner(p, Unowned())
}

func (b *Board) setOwner(p Point, o Owner) {
	b.cells[p.Row][p.Col].Owner = o
	b.mu.Lock()
	b.cache = nil
	b.mu.Unlock()
}

// Positions returns the cells bearing the card's identity. Jacks are not on the board.
func (b *Board) Positions(card Card) []Point {
	return standardBoard.positions[card]
}

// Chips counts the cells owned by player.
func (b *Board) Chips(player PlayerID) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if b.cells[r][c].Owner.Is(player) {
				n++
			}
		}
	}
	return n
}

// satisfies is the sequence membership predicate: the cell is a corner or owned by player.
func (b *Board) satisfies(p Point, player PlayerID) bool {
	c, ok := b.cell(p)
	return ok && (c.Corner || c.Owner.Is(player))
}
