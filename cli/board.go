package cli

import (
	"fmt"
	"io"
	"strings"

	"sequence/game"

	"github.com/fatih/color"
)

var (
	chipColors = map[game.PlayerID]*color.Color{
		1: color.New(color.FgBlue, color.Bold),
		2: color.New(color.FgRed, color.Bold),
	}
	cornerColor = color.New(color.FgYellow)
	markColor   = color.New(color.FgGreen, color.Underline)
	labelColor  = color.New(color.Faint)
)

const cellWidth = 5

func chipColor(id game.PlayerID) *color.Color {
	if c, ok := chipColors[id]; ok {
		return c
	}
	return color.New(color.FgMagenta)
}

// cellText is the plain label of a cell: its card, "*" for a corner, "[n]" for a chip of
// player n and "<n>" for a chip inside a counted sequence.
func cellText(b *game.Board, row, col int) (string, *color.Color) {
	if b.IsCorner(row, col) {
		return "*", cornerColor
	}
	if id, owned := b.ChipAt(row, col).Player(); owned {
		if b.IsProtected(row, col) {
			return fmt.Sprintf("<%d>", id), chipColor(id)
		}
		return fmt.Sprintf("[%d]", id), chipColor(id)
	}
	card, _ := b.CardAt(row, col)
	return card.String(), nil
}

// RenderBoard writes the board with row and column labels. Marked cells, such as the
// targets of a selected card, are underlined.
func RenderBoard(w io.Writer, b *game.Board, marked ...game.Point) {
	isMarked := make(map[game.Point]bool, len(marked))
	for _, p := range marked {
		isMarked[p] = true
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for col := range game.Size {
		sb.WriteString(labelColor.Sprintf("%-*d", cellWidth, col))
	}
	sb.WriteString("\n")

	for row := range game.Size {
		sb.WriteString(labelColor.Sprintf("%-3d", row))
		for col := range game.Size {
			text, c := cellText(b, row, col)
			padded := fmt.Sprintf("%-*s", cellWidth, text)
			switch {
			case isMarked[game.Point{Row: row, Col: col}]:
				padded = markColor.Sprint(text) + strings.Repeat(" ", cellWidth-len(text))
			case c != nil:
				padded = c.Sprint(text) + strings.Repeat(" ", cellWidth-len(text))
			}
			sb.WriteString(padded)
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(w, sb.String())
}
