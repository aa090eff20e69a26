package agent

import (
	"testing"

	"sequence/game"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("higher bands dominate", func(t *testing.T) {
		disrupt := Score{0, 0, 0, 1, -1_000_000}
		positional := Score{0, 0, 0, 0, 1_000_000_000}
		require.Positive(t, disrupt.Compare(positional), "Disrupting should beat any heuristic value")

		block := Score{0, 1, 0, 0, 0}
		complete := Score{0, 0, 5, 5, 5}
		require.Positive(t, block.Compare(complete), "Blocking should beat completing")

		win := Score{1, 0, 0, 0, 0}
		require.Positive(t, win.Compare(Score{0, 9, 9, 9, 9}), "Winning should beat everything")
		require.Zero(t, win.Compare(win))
	})

	t.Run("band names", func(t *testing.T) {
		require.Equal(t, "block", Score{0, 1, 1, 0, 0}.Band())
		require.Equal(t, "heuristic", Score{0, 0, 0, 0, -4}.Band())
	})
}

func TestWeights(t *testing.T) {
	w := DefaultWeights()
	place := game.Place(game.MustParseCard("QH"), game.Point{Row: 3, Col: 3})
	wild := game.Place(game.MustParseCard("JH"), game.Point{Row: 3, Col: 3})

	t.Run("tactical heuristic", func(t *testing.T) {
		f := features{progress: 3, centrality: 6, nearCorner: true}
		s := w.tactical(f, place, 7)
		require.Equal(t, 3*1000+6*100+500+7, s[heuristicBand])
		require.Equal(t, s[heuristicBand]+3*500, w.tactical(f, wild, 7)[heuristicBand], "Wild card should add its progress bonus")
	})

	t.Run("defending ranks disruption with completion", func(t *testing.T) {
		disrupt := features{disrupts: true, progress: 4, threats: 3}
		complete := features{completes: true}
		plain := features{progress: 4}

		require.Negative(t, w.strategic(disrupt, place, 0, position{}).Compare(w.strategic(complete, place, 0, position{})),
			"Completing should come first while the opponent is far from winning")
		require.Positive(t, w.strategic(disrupt, place, 0, position{opp: 1}).Compare(w.strategic(complete, place, 0, position{opp: 1})),
			"Disrupting should overtake completing once the opponent needs one sequence")
		require.Positive(t, w.strategic(disrupt, place, 0, position{opp: 1}).Compare(w.strategic(plain, place, 0, position{opp: 1})))

		off := w
		off.EndgameDisrupt = 0
		require.Negative(t, off.strategic(disrupt, place, 0, position{opp: 1}).Compare(off.strategic(complete, place, 0, position{opp: 1})),
			"Without the endgame weight the order should not change")
	})

	t.Run("closing ranks a setup above disruption", func(t *testing.T) {
		setup := features{setups: 1}
		disrupt := features{disrupts: true}

		require.Negative(t, w.strategic(setup, place, 0, position{}).Compare(w.strategic(disrupt, place, 0, position{})))
		require.Positive(t, w.strategic(setup, place, 0, position{own: 1}).Compare(w.strategic(disrupt, place, 0, position{own: 1})),
			"One sequence from winning, leaving a window one cell short should come first")

		off := w
		off.EndgameSetup = 0
		require.Negative(t, off.strategic(setup, place, 0, position{own: 1}).Compare(off.strategic(disrupt, place, 0, position{own: 1})))
	})

	t.Run("endgame heuristic terms", func(t *testing.T) {
		f := features{threats: 2, oppProgress: 2}
		quiet := w.strategic(f, place, 0, position{})

		require.Equal(t, quiet[heuristicBand]+2*5000, w.strategic(f, place, 0, position{own: 1})[heuristicBand],
			"Threats should weigh more when closing")
		require.Equal(t, quiet[heuristicBand]+2*800, w.strategic(f, place, 0, position{opp: 1})[heuristicBand],
			"Occupying the opponent's line should weigh more when defending")
	})
}
