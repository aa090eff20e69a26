package game

// Read-only board analysis used to score candidate moves. The line helpers count p as
// held by the player whatever its current owner.

// center is the reference cell for centrality.
var center = Point{Row: (Size - 1) / 2, Col: (Size - 1) / 2}

func (b *Board) lineThrough(p Point, player PlayerID, d direction) int {
	n := 1
	for _, sign := range [2]int{1, -1} {
		for i := 1; i < RunLength; i++ {
			q := Point{p.Row + sign*i*d.dr, p.Col + sign*i*d.dc}
			if !b.satisfies(q, player) {
				break
			}
			n++
		}
	}
	return n
}

// LongestLine is the longest line through p, in any direction, that the player would hold
// with p. Each side contributes at most RunLength-1 cells.
func (b *Board) LongestLine(p Point, player PlayerID) int {
	longest := 0
	for _, d := range directions {
		longest = max(longest, b.lineThrough(p, player, d))
	}
	return longest
}

// LinesAtLeast counts the directions in which the line through p reaches length.
func (b *Board) LinesAtLeast(p Point, player PlayerID, length int) int {
	n := 0
	for _, d := range directions {
		if b.lineThrough(p, player, d) >= length {
			n++
		}
	}
	return n
}

func neighbors(p Point, radius int) []Point {
	var points []Point
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			q := Point{p.Row + dr, p.Col + dc}
			if (dr != 0 || dc != 0) && q.InBounds() {
				points = append(points, q)
			}
		}
	}
	return points
}

// AdjacentChips counts the neighbouring cells that satisfy the player, corners included.
func (b *Board) AdjacentChips(p Point, player PlayerID) int {
	n := 0
	for _, q := range neighbors(p, 1) {
		if b.satisfies(q, player) {
			n++
		}
	}
	return n
}

// EmptyNeighbors counts the neighbouring cells a chip could still be placed on.
func (b *Board) EmptyNeighbors(p Point) int {
	n := 0
	for _, q := range neighbors(p, 1) {
		if c, _ := b.cell(q); !c.Corner && !c.Owner.IsOwned() {
			n++
		}
	}
	return n
}

// ChipsWithin counts the player's chips in the square of the given radius around p.
func (b *Board) ChipsWithin(p Point, player PlayerID, radius int) int {
	n := 0
	for _, q := range neighbors(p, radius) {
		if b.ChipAt(q.Row, q.Col).Is(player) {
			n++
		}
	}
	return n
}

// NearCompleteWindows counts the five-cell windows through p that hold four cells
// satisfying the player, p included, and one empty cell that would complete them.
func (b *Board) NearCompleteWindows(p Point, player PlayerID) int {
	if !b.satisfies(p, player) {
		return 0
	}
	return b.windows(p, player)
}

// OpenWindows is NearCompleteWindows with p counted as held by the player, i.e. the
// windows a chip at p would leave one cell short of a sequence.
func (b *Board) OpenWindows(p Point, player PlayerID) int {
	if c, ok := b.cell(p); !ok || (c.Owner.IsOwned() && !c.Owner.Is(player)) {
		return 0
	}
	return b.windows(p, player)
}

func (b *Board) windows(p Point, player PlayerID) int {
	n := 0
	for _, d := range directions {
		for offset := range RunLength {
			start := Point{p.Row - offset*d.dr, p.Col - offset*d.dc}
			held, empty, inside := 0, 0, true
			for i := range RunLength {
				q := Point{start.Row + i*d.dr, start.Col + i*d.dc}
				c, ok := b.cell(q)
				switch {
				case !ok:
					inside = false
				case q == p || c.Corner || c.Owner.Is(player):
					held++
				case !c.Owner.IsOwned():
					empty++
				}
			}
			if inside && held == RunLength-1 && empty == 1 {
				n++
			}
		}
	}
	return n
}

// Centrality is higher the closer p is to the middle of the board.
func Centrality(p Point) int {
	return 8 - abs(p.Row-center.Row) - abs(p.Col-center.Col)
}

// NearCorner reports whether p is in one of the 2x2 blocks at the board corners.
func NearCorner(p Point) bool {
	return (p.Row <= 1 || p.Row >= Size-2) && (p.Col <= 1 || p.Col >= Size-2)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
