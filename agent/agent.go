package agent

import (
	"fmt"
	"strings"

	"sequence/experiments/metrics"
	"sequence/game"
	"sequence/meta"

	"golang.org/x/exp/rand"
)

// Tier selects how the computer opponent scores its candidate moves.
type Tier int

const (
	Baseline  Tier = iota // mostly random, occasionally takes a forcing move
	Tactical              // banded heuristic scoring
	Strategic             // tactical plus threat, tempo and endgame terms
)

var tierNames = [...]string{"baseline", "tactical", "strategic"}

func (t Tier) String() string {
	if t < Baseline || t > Strategic {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Tiers lists every tier from weakest to strongest.
func Tiers() []Tier {
	return []Tier{Baseline, Tactical, Strategic}
}

// ParseTier accepts a tier name or the easy/medium/hard aliases.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "baseline", "easy":
		return Baseline, nil
	case "tactical", "medium":
		return Tactical, nil
	case "strategic", "hard":
		return Strategic, nil
	}
	return 0, fmt.Errorf("unknown tier %q", s)
}

// Agent picks a move for self. The board must not be modified.
type Agent interface {
	ChooseMove(board *game.Board, self, opponent *game.Player) game.Move
}

type Option func(c *config)

type config struct {
	seed        uint64
	smartChance float64
	workers     int
	weights     Weights
	metrics     metrics.Collector
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithSmartChance sets the probability that the baseline agent looks for a forcing move.
func WithSmartChance(p float64) Option {
	return func(c *config) {
		if p >= 0 && p <= 1 {
			c.smartChance = p
		}
	}
}

// WithWorkers scores candidates on up to n goroutines.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithWeights(w Weights) Option {
	return func(c *config) {
		c.weights = w
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func New(tier Tier, options ...Option) Agent {
	c := config{ // Default values
		seed:        meta.SEED,
		smartChance: meta.SMART_CHANCE,
		workers:     1,
		weights:     DefaultWeights(),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}

	return &agent{
		tier:   tier,
		config: c,
		rng:    rand.New(rand.NewSource(c.seed)),
	}
}

type agent struct {
	tier Tier
	config
	rng *rand.Rand
}

func (a *agent) ChooseMove(board *game.Board, self, opponent *game.Player) game.Move {
	a.metrics.Start(a.tier.String(), a.workers)

	moves := game.GenerateMoves(board, self.Hand, self.ID)
	a.metrics.AddCandidates(len(moves))
	if len(moves) == 0 {
		// Every card is dead
		a.metrics.SetBand("discard")
		if len(self.Hand) == 0 {
			// Unreachable in a game: it is exhausted before a player runs out of cards.
			return game.Discard(game.Card{})
		}
		return game.Discard(self.Hand[0])
	}

	pos := newPosition(board, self.ID, opponent.ID)
	if a.tier == Baseline {
		return a.chooseBaseline(pos, moves)
	}

	scores := a.score(pos, moves)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Compare(scores[best]) > 0 {
			best = i
		}
	}
	a.metrics.SetBand(scores[best].Band())
	return moves[best]
}

// chooseBaseline mostly plays at random. With probability smartChance it first looks for a
// winning move, then a move blocking the opponent's win, then one completing a sequence.
func (a *agent) chooseBaseline(pos position, moves []game.Move) game.Move {
	if a.rng.Float64() < a.smartChance {
		found := a.analyze(pos, moves)
		checks := []struct {
			band band
			ok   func(features) bool
		}{
			{winBand, func(f features) bool { return f.win }},
			{blockBand, func(f features) bool { return f.blocksWin }},
			{completeBand, func(f features) bool { return f.completes }},
		}
		for _, check := range checks {
			for i, f := range found {
				if check.ok(f) {
					a.metrics.SetBand(check.band.String())
					return moves[i]
				}
			}
		}
	}
	a.metrics.SetBand("random")
	return moves[a.rng.Intn(len(moves))]
}
