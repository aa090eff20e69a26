package engine

import (
	"sequence/agent"
	"sequence/experiments/metrics"
	"sequence/game"

	"golang.org/x/exp/rand"
)

// AgentController lets a computer agent take a seat. The agent sees a copy of the board.
type AgentController struct {
	Tier    agent.Tier
	agent   agent.Agent
	metrics metrics.Collector
}

func NewAgentController(tier agent.Tier, options ...agent.Option) *AgentController {
	collector := metrics.NewCollector()
	return &AgentController{
		Tier:    tier,
		agent:   agent.New(tier, append(options, agent.WithMetrics(collector))...),
		metrics: collector,
	}
}

func (c *AgentController) ChooseMove(gs *game.GameState) (game.Move, metrics.DecisionMetric) {
	move := c.agent.ChooseMove(gs.Board.Copy(), gs.CurrentPlayer(), gs.Opponent())
	return move, c.metrics.Complete()
}

// NewGame deals a fresh two player game from a deck shuffled with seed.
func NewGame(seed uint64, names [2]string, options ...game.StateOption) *game.GameState {
	rng := rand.New(rand.NewSource(seed))
	players := []*game.Player{
		game.NewPlayer(1, names[0]),
		game.NewPlayer(2, names[1]),
	}
	return game.NewGameState(players, game.NewDeck(rng), options...)
}
