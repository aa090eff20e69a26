package game

const (
	Size         = 10
	RunLength    = 5
	WinThreshold = 2
)

const cornerMark = "*"

// standardLayout is the printed board. Every non-corner identity appears on exactly two cells.
var standardLayout = [Size][Size]string{
	{"*", "6D", "7D", "8D", "9D", "10D", "QD", "KD", "AD", "*"},
	{"5D", "3H", "2H", "2S", "3S", "4S", "5S", "6S", "7S", "AC"},
	{"4D", "4H", "KD", "AD", "AC", "KC", "QC", "10C", "8S", "KC"},
	{"3D", "5H", "QD", "QH", "10H", "9H", "8H", "9C", "9S", "QC"},
	{"2D", "6H", "10D", "KH", "3H", "2H", "7H", "8C", "10S", "10C"},
	{"AS", "7H", "9D", "AH", "4H", "5H", "6H", "7C", "QS", "9C"},
	{"KS", "8H", "8D", "2C", "3C", "4C", "5C", "6C", "KS", "8C"},
	{"QS", "9H", "7D", "6D", "5D", "4D", "3D", "2D", "AS", "7C"},
	{"10S", "10H", "QH", "KH", "AH", "2C", "3C", "4C", "5C", "6C"},
	{"*", "9S", "8S", "7S", "6S", "5S", "4S", "3S", "2S", "*"},
}

// layout is the parsed standard board together with a reverse index from card to cells.
type layout struct {
	cells     [Size][Size]Cell
	positions map[Card][]Point
}

var standardBoard = parseLayout(standardLayout)

func parseLayout(raw [Size][Size]string) layout {
	l := layout{positions: make(map[Card][]Point)}
	for r := range Size {
		for c := range Size {
			if raw[r][c] == cornerMark {
				l.cells[r][c] = Cell{Corner: true}
				continue
			}
			card := MustParseCard(raw[r][c])
			l.cells[r][c] = Cell{Card: card}
			l.positions[card] = append(l.positions[card], Point{Row: r, Col: c})
		}
	}
	return l
}
