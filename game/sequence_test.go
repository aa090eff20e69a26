package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func horizontal(row, col int) Run {
	var r Run
	for i := range RunLength {
		r[i] = Point{row, col + i}
	}
	return r
}

func vertical(row, col int) Run {
	var r Run
	for i := range RunLength {
		r[i] = Point{row + i, col}
	}
	return r
}

func TestCountSequences(t *testing.T) {
	t.Run("side run through a corner", func(t *testing.T) {
		b := NewBoard()
		placeRow(b, 1, 0, 0, 4)

		require.Equal(t, 1, b.CountSequences(1), "Corner plus four chips should count once")
		require.False(t, b.HasWon(1), "One sequence should not win")
		require.Equal(t, []Run{horizontal(0, 0)}, b.Sequences(1))
		require.Zero(t, b.CountSequences(2), "Opponent should have nothing")
	})

	t.Run("two runs meeting at a corner", func(t *testing.T) {
		b := NewBoard()
		placeRow(b, 1, 0, 1, 4)
		for row := 1; row < RunLength; row++ {
			b.PlaceChip(row, 0, 1)
		}

		require.Equal(t, 2, b.CountSequences(1), "Runs sharing only the corner should both count")
		require.True(t, b.HasWon(1), "Two sequences should win")
	})

	t.Run("two runs sharing one chip", func(t *testing.T) {
		b := NewBoard()
		placeRow(b, 1, 5, 0, 4)
		for row := 5; row < Size; row++ {
			b.PlaceChip(row, 4, 1)
		}

		require.Equal(t, 2, b.CountSequences(1), "Runs sharing one chip should both count")
		require.True(t, b.HasWon(1))
	})

	t.Run("long line counts once", func(t *testing.T) {
		b := NewBoard()
		placeRow(b, 1, 4, 1, 7) // seven in a row, runs would share interior chips

		require.Equal(t, 1, b.CountSequences(1), "Overlapping runs on one line should count once")
		require.False(t, b.HasWon(1))
	})

	t.Run("nine in a row counts once", func(t *testing.T) {
		b := NewBoard()
		placeRow(b, 1, 6, 1, 9)

		require.Equal(t, 1, b.CountSequences(1), "Canonical run should start at the line start")
	})

	t.Run("diagonal from a corner", func(t *testing.T) {
		b := NewBoard()
		for i := 1; i <= 5; i++ {
			b.PlaceChip(i, i, 1)
		}

		require.Equal(t, 1, b.CountSequences(1), "Diagonal line should count once")
		seq := b.Sequences(1)[0]
		require.Equal(t, Point{0, 0}, seq[0], "Diagonal run should start at the corner")
	})

	t.Run("anti-diagonal", func(t *testing.T) {
		b := NewBoard()
		for i := range RunLength {
			b.PlaceChip(2+i, 7-i, 2)
		}

		require.Equal(t, 1, b.CountSequences(2), "Anti-diagonal line should count")
	})

	t.Run("broken line does not count", func(t *testing.T) {
		b := NewBoard()
		placeRow(b, 1, 3, 1, 3)
		b.PlaceChip(3, 4, 2)
		placeRow(b, 1, 3, 5, 6)

		require.Zero(t, b.CountSequences(1), "Opponent chip should break the line")
	})

	t.Run("mutations invalidate the cache", func(t *testing.T) {
		b := NewBoard()
		placeRow(b, 1, 5, 0, 3)
		require.Zero(t, b.CountSequences(1))

		b.PlaceChip(5, 4, 1)
		require.Equal(t, 1, b.CountSequences(1), "New chip should be seen")
	})

	t.Run("placement order does not matter", func(t *testing.T) {
		cells := []Point{}
		for col := range Size {
			cells = append(cells, Point{5, col})
		}
		for row := range Size {
			cells = append(cells, Point{row, 2})
		}
		for i := range 6 {
			cells = append(cells, Point{2 + i, 3 + i})
		}

		reference := NewBoard()
		for _, p := range cells {
			reference.PlaceChip(p.Row, p.Col, 1)
		}
		want := reference.CountSequences(1)

		rng := rand.New(rand.NewSource(11))
		for range 20 {
			b := NewBoard()
			for _, i := range rng.Perm(len(cells)) {
				b.PlaceChip(cells[i].Row, cells[i].Col, 1)
			}
			require.Equal(t, want, b.CountSequences(1), "Count should depend only on the final board")
			require.Equal(t, reference.Sequences(1), b.Sequences(1), "Accepted runs should match")
		}
	})
}

func TestResolveOverlaps(t *testing.T) {
	a := horizontal(0, 0)
	b := horizontal(0, 3) // shares (0,3) and (0,4) with a
	c := vertical(0, 4)   // shares (0,4) with a and b

	t.Run("runs sharing two cells are exclusive", func(t *testing.T) {
		require.Equal(t, []Run{a}, resolveOverlaps([]Run{a, b}), "Later overlapping run should be dropped")
	})

	t.Run("runs sharing one cell both count", func(t *testing.T) {
		require.Equal(t, []Run{a, c}, resolveOverlaps([]Run{a, c}))
	})

	t.Run("discovery order decides", func(t *testing.T) {
		require.Equal(t, []Run{b, c}, resolveOverlaps([]Run{b, a, c}), "First accepted run should win")
		require.Equal(t, []Run{a, c}, resolveOverlaps([]Run{a, b, c}))
	})

	t.Run("duplicates are dropped", func(t *testing.T) {
		require.Equal(t, []Run{a}, resolveOverlaps([]Run{a, a}))
		require.Empty(t, resolveOverlaps(nil))
	})
}

func TestIsProtected(t *testing.T) {
	b := NewBoard()
	placeRow(b, 2, 5, 0, 4)
	b.PlaceChip(5, 6, 2)

	require.True(t, b.IsProtected(5, 2), "Chip in a counted sequence should be protected")
	require.False(t, b.IsProtected(5, 6), "Loose chip should not be protected")
	require.False(t, b.IsProtected(3, 3), "Empty cell is not protected")
	require.False(t, b.IsProtected(0, 0), "Corner is not protected")
	require.False(t, b.IsProtected(-1, 0), "Out of bounds is not protected")
}

func TestProjectSequences(t *testing.T) {
	b := NewBoard()
	placeRow(b, 1, 5, 0, 3)

	require.Equal(t, 1, b.ProjectSequences(1, Point{5, 4}, OwnedBy(1)), "Projected chip should complete the run")
	require.Zero(t, b.ProjectSequences(1, Point{5, 4}, OwnedBy(2)), "Opponent chip should not help")
	require.Zero(t, b.CountSequences(1), "Projection should not change the board")
	require.False(t, b.ChipAt(5, 4).IsOwned(), "Projection should not place a chip")

	b.PlaceChip(5, 4, 1)
	require.Zero(t, b.ProjectSequences(1, Point{5, 2}, Unowned()), "Projected removal should break the run")
	require.Equal(t, 1, b.CountSequences(1))
}
