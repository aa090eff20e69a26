package agent

import (
	"sequence/game"

	"golang.org/x/sync/errgroup"
)

const (
	threatLength  = 3 // own line length that counts as a threat
	controlRadius = 2
)

// position is what every candidate of one decision shares.
type position struct {
	board    *game.Board
	self     game.PlayerID
	opponent game.PlayerID
	own      int // sequences held by self
	opp      int // sequences held by the opponent
}

func newPosition(b *game.Board, self, opponent game.PlayerID) position {
	return position{
		board:    b,
		self:     self,
		opponent: opponent,
		own:      b.CountSequences(self),
		opp:      b.CountSequences(opponent),
	}
}

// features is everything the scorers know about a candidate move.
type features struct {
	win       bool // reaches the winning number of sequences
	blocksWin bool // stops an opponent completion that would win
	completes bool // adds an own sequence
	disrupts  bool // sits next to two or more opponent cells
	setups    int  // own windows left one cell short by the move

	progress    int
	oppProgress int
	corner      bool
	nearCorner  bool
	centrality  int
	threats     int
	oppThreats  int
	flexibility int
	control     int
}

// analyze projects the move onto the board without modifying it.
func (pos position) analyze(m game.Move) features {
	b, p := pos.board, m.Target
	f := features{
		progress:    b.LongestLine(p, pos.self),
		oppProgress: b.LongestLine(p, pos.opponent),
		corner:      b.IsCorner(p.Row, p.Col),
		nearCorner:  game.NearCorner(p),
		centrality:  game.Centrality(p),
		threats:     b.LinesAtLeast(p, pos.self, threatLength),
		oppThreats:  b.LinesAtLeast(p, pos.opponent, threatLength),
		flexibility: b.EmptyNeighbors(p),
		control:     b.ChipsWithin(p, pos.self, controlRadius),
		disrupts:    b.AdjacentChips(p, pos.opponent) >= 2,
	}

	switch m.Action {
	case game.PlaceAction:
		after := b.ProjectSequences(pos.self, p, game.OwnedBy(pos.self))
		f.win = after >= game.WinThreshold
		f.completes = after > pos.own
		f.setups = b.OpenWindows(p, pos.self)
		f.blocksWin = pos.opp >= 1 &&
			b.ProjectSequences(pos.opponent, p, game.OwnedBy(pos.opponent)) >= game.WinThreshold
	case game.RemoveAction:
		f.blocksWin = pos.opp >= 1 && b.NearCompleteWindows(p, pos.opponent) > 0
	}
	return f
}

// analyze runs the projection for every move, spreading the work over the configured
// workers. Results are indexed like moves.
func (a *agent) analyze(pos position, moves []game.Move) []features {
	found := make([]features, len(moves))
	if a.workers <= 1 {
		for i, m := range moves {
			found[i] = pos.analyze(m)
		}
		return found
	}

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, m := range moves {
		g.Go(func() error {
			found[i] = pos.analyze(m)
			return nil
		})
	}
	_ = g.Wait()
	return found
}

// score draws jitter in candidate order before scoring so that the result does not
// depend on how the work was scheduled.
func (a *agent) score(pos position, moves []game.Move) []Score {
	jitter := make([]int, len(moves))
	if a.weights.Jitter > 0 {
		for i := range jitter {
			jitter[i] = a.rng.Intn(a.weights.Jitter)
		}
	}

	found := a.analyze(pos, moves)
	scores := make([]Score, len(moves))
	for i, f := range found {
		if a.tier == Strategic {
			scores[i] = a.weights.strategic(f, moves[i], jitter[i], pos)
		} else {
			scores[i] = a.weights.tactical(f, moves[i], jitter[i])
		}
	}
	return scores
}
