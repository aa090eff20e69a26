package engine

import (
	"sequence/experiments/metrics"
	"sequence/game"
)

type Engine interface {
	// Run plays a game until it is completed, exhausted or a max number of turns is reached
	Run() (status game.Status, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Controller supplies the moves for one seat, either a computer agent or a person.
type Controller interface {
	ChooseMove(state *game.GameState) (game.Move, metrics.DecisionMetric)
}
