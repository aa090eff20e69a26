package game

import (
	"math/bits"
	"slices"
)

type direction struct {
	dr, dc int
}

// Scan order matters for overlap resolution: horizontal, vertical, then both diagonals.
var directions = [...]direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Run is five aligned cells, ordered from the start of the line.
type Run [RunLength]Point

func (r Run) mask() cellMask {
	var m cellMask
	for _, p := range r {
		m.set(p)
	}
	return m
}

// cellMask is a set of board cells, one bit per cell.
type cellMask [2]uint64

func (m *cellMask) set(p Point) {
	i := p.index()
	m[i/64] |= 1 << (i % 64)
}

func (m cellMask) has(p Point) bool {
	i := p.index()
	return m[i/64]&(1<<(i%64)) != 0
}

func (m cellMask) shared(o cellMask) int {
	return bits.OnesCount64(m[0]&o[0]) + bits.OnesCount64(m[1]&o[1])
}

type sequenceSet struct {
	runs  []Run
	cells cellMask
}

func newSequenceSet(runs []Run) sequenceSet {
	s := sequenceSet{runs: runs}
	for _, r := range runs {
		for _, p := range r {
			s.cells.set(p)
		}
	}
	return s
}

// findRuns lists every canonical run of cells satisfying member. A run is canonical when
// the cell before its start does not satisfy member, so a longer line yields one run.
func findRuns(member func(Point) bool) []Run {
	var runs []Run
	for _, d := range directions {
		for row := range Size {
			for col := range Size {
				prev := Point{row - d.dr, col - d.dc}
				if prev.InBounds() && member(prev) {
					continue
				}
				var run Run
				complete := true
				for i := range RunLength {
					p := Point{row + i*d.dr, col + i*d.dc}
					if !p.InBounds() || !member(p) {
						complete = false
						break
					}
					run[i] = p
				}
				if complete {
					runs = append(runs, run)
				}
			}
		}
	}
	return runs
}

// resolveOverlaps drops duplicate runs, then accepts runs greedily in order. A run sharing
// more than one cell with an already accepted run is rejected.
func resolveOverlaps(candidates []Run) []Run {
	seen := make(map[cellMask]bool, len(candidates))
	var accepted []Run
	var masks []cellMask
	for _, run := range candidates {
		m := run.mask()
		if seen[m] {
			continue
		}
		seen[m] = true

		overlaps := false
		for _, am := range masks {
			if am.shared(m) > 1 {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		accepted = append(accepted, run)
		masks = append(masks, m)
	}
	return accepted
}

func (b *Board) sequences(player PlayerID) sequenceSet {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.cache[player]; ok {
		return s
	}
	member := func(p Point) bool { return b.satisfies(p, player) }
	s := newSequenceSet(resolveOverlaps(findRuns(member)))
	if b.cache == nil {
		b.cache = make(map[PlayerID]sequenceSet)
	}
	b.cache[player] = s
	return s
}

// Sequences returns the player's counted sequences in discovery order.
func (b *Board) Sequences(player PlayerID) []Run {
	return slices.Clone(b.sequences(player).runs)
}

func (b *Board) CountSequences(player PlayerID) int {
	return len(b.sequences(player).runs)
}

func (b *Board) HasWon(player PlayerID) bool {
	return b.CountSequences(player) >= WinThreshold
}

// IsProtected reports whether the chip at the cell is part of one of its owner's counted
// sequences. Protected chips cannot be removed.
func (b *Board) IsProtected(row, col int) bool {
	p := Point{row, col}
	c, ok := b.cell(p)
	if !ok || c.Corner {
		return false
	}
	owner, owned := c.Owner.Player()
	if !owned {
		return false
	}
	return b.sequences(owner).cells.has(p)
}

// ProjectSequences counts the player's sequences as if the cell at p had owner o. The
// board is not modified.
func (b *Board) ProjectSequences(player PlayerID, p Point, o Owner) int {
	member := func(q Point) bool {
		if q == p {
			return b.IsCorner(q.Row, q.Col) || o.Is(player)
		}
		return b.satisfies(q, player)
	}
	return len(resolveOverlaps(findRuns(member)))
}
