package agent

import (
	"slices"

	"sequence/game"
)

type band int

const (
	winBand band = iota
	blockBand
	completeBand
	disruptBand
	heuristicBand
	numBands
)

var bandNames = [...]string{"win", "block", "complete", "disrupt", "heuristic"}

func (b band) String() string {
	return bandNames[b]
}

// Score is compared band by band, so any value in a higher band outweighs every value
// in the bands below it.
type Score [numBands]int

func (s Score) Compare(o Score) int {
	return slices.Compare(s[:], o[:])
}

// Band names the highest band with a positive value.
func (s Score) Band() string {
	for b := winBand; b < heuristicBand; b++ {
		if s[b] > 0 {
			return b.String()
		}
	}
	return heuristicBand.String()
}

// Weights are the heuristic band coefficients.
type Weights struct {
	Progress        int // per cell of the longest own line through the target
	Corner          int // target in a corner block
	Centrality      int // per step closer to the centre
	WildProgress    int // extra progress weight when spending a wild card
	RemovalProgress int // extra progress weight when spending a removal card
	Waste           int // spending a card on a corner, which claims nothing
	Jitter          int // exclusive bound of the random tie breaker

	Threat         int // per direction with an own line of three or more
	OpponentThreat int // per direction with an opponent line of three or more
	Flexibility    int // per empty neighbour
	Control        int // per own chip within controlRadius
	Tempo          int // own line of four or more
	MultiThreat    int // two or more threats at once

	// Applied when a player is one sequence away from winning.
	EndgameSetup   int // complete band, move leaves an own window one cell short
	EndgameThreat  int // per threat
	EndgameDisrupt int // complete band, move disrupts the opponent
	Occupation     int // per cell of the opponent's line through the target
}

func DefaultWeights() Weights {
	return Weights{
		Progress:        1000,
		Corner:          500,
		Centrality:      100,
		WildProgress:    500,
		RemovalProgress: 300,
		Waste:           -5000,
		Jitter:          100,

		Threat:         2000,
		OpponentThreat: -1500,
		Flexibility:    500,
		Control:        200,
		Tempo:          1000,
		MultiThreat:    2000,

		EndgameSetup:   1,
		EndgameThreat:  5000,
		EndgameDisrupt: 1,
		Occupation:     800,
	}
}

func flag(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

func (w Weights) tactical(f features, m game.Move, jitter int) Score {
	var s Score
	s[winBand] = flag(f.win)
	s[blockBand] = flag(f.blocksWin)
	s[completeBand] = flag(f.completes)
	s[disruptBand] = flag(f.disrupts)

	h := f.progress*w.Progress + f.centrality*w.Centrality + jitter
	if f.nearCorner {
		h += w.Corner
	}
	if f.corner {
		h += w.Waste
	}
	switch m.Card.Kind() {
	case game.WildCard:
		h += f.progress * w.WildProgress
	case game.RemovalCard:
		h += f.progress * w.RemovalProgress
	}
	s[heuristicBand] = h
	return s
}

func (w Weights) strategic(f features, m game.Move, jitter int, pos position) Score {
	s := w.tactical(f, m, jitter)

	h := f.threats*w.Threat + f.oppThreats*w.OpponentThreat +
		f.flexibility*w.Flexibility + f.control*w.Control
	if f.progress >= game.RunLength-1 {
		h += w.Tempo
	}
	if f.threats >= 2 {
		h += w.MultiThreat
	}

	// One sequence from the end, a setup or a disruption ranks with completing.
	if pos.own == game.WinThreshold-1 {
		if f.setups > 0 {
			s[completeBand] += w.EndgameSetup
		}
		h += f.threats * w.EndgameThreat
	}
	if pos.opp == game.WinThreshold-1 {
		if f.disrupts {
			s[completeBand] += w.EndgameDisrupt
		}
		h += f.oppProgress * w.Occupation
	}

	s[heuristicBand] += h
	return s
}
