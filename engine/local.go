package engine

import (
	"time"

	"sequence/experiments/metrics"
	"sequence/game"
	"sequence/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

type LocalEngine struct {
	ID          uuid.UUID
	State       *game.GameState
	Controllers []Controller // indexed like State.Players

	maxTurns int
	hooks    []func(*game.GameState, game.Transition)
	thinking map[game.PlayerID]time.Duration
	sleep    func(time.Duration)
	stop     func() bool
}

func WithMaxTurns(n int) Option {
	return func(e *LocalEngine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// WithAfterMove registers a callback run after every applied move.
func WithAfterMove(hook func(*game.GameState, game.Transition)) Option {
	return func(e *LocalEngine) {
		if hook != nil {
			e.hooks = append(e.hooks, hook)
		}
	}
}

// WithThinkingDelay pauses after the player's controller has chosen, before the move is
// applied. It only affects pacing.
func WithThinkingDelay(player game.PlayerID, d time.Duration) Option {
	return func(e *LocalEngine) {
		if d > 0 {
			e.thinking[player] = d
		}
	}
}

// WithStop ends the game loop early once stop reports true, e.g. when a person quits.
func WithStop(stop func() bool) Option {
	return func(e *LocalEngine) {
		if stop != nil {
			e.stop = stop
		}
	}
}

func WithGameID(id uuid.UUID) Option {
	return func(e *LocalEngine) {
		e.ID = id
	}
}

func NewLocalEngine(state *game.GameState, controllers []Controller, options ...Option) *LocalEngine {
	if len(controllers) != len(state.Players) {
		panic("number of controllers does not match number of players")
	}

	e := &LocalEngine{
		ID:          uuid.New(),
		State:       state,
		Controllers: controllers,
		maxTurns:    meta.MAX_TURNS,
		thinking:    make(map[game.PlayerID]time.Duration),
		sleep:       time.Sleep,
		stop:        func() bool { return false },
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) controller(id game.PlayerID) Controller {
	for i, p := range e.State.Players {
		if p.ID == id {
			return e.Controllers[i]
		}
	}
	panic("no controller for player")
}

// Run executes the game loop until the game is over or the turn limit is reached.
func (e *LocalEngine) Run() (game.Status, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: int(e.State.CurrentPlayer().ID),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: player %d is starting", e.ID, gameMetric.StartingPlayer)

	for e.State.Status().Phase == game.AwaitingMove && e.State.Turn() < e.maxTurns {
		player := e.State.CurrentPlayer()
		move, decision := e.controller(player.ID).ChooseMove(e.State)
		if e.stop() {
			log.Info().Msgf("game %s: stopped by player %d", e.ID, player.ID)
			break
		}
		if d := e.thinking[player.ID]; d > 0 {
			e.sleep(d)
		}

		tr, err := e.State.ApplyMove(move)
		if err != nil {
			log.Warn().Err(err).Msgf("game %s: player %d could not play %s, discarding instead", e.ID, player.ID, move)
			tr, err = e.forceDiscard(player, move.Card)
			if err != nil {
				log.Error().Err(err).Msgf("game %s: player %d has nothing to discard", e.ID, player.ID)
				break
			}
		}
		log.Debug().Msgf("game %s turn %d: player %d %s (%d sequences)", e.ID, e.State.Turn(), player.ID, tr.Move, tr.Sequences)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:           e.State.Turn(),
			Player:         int(player.ID),
			Action:         tr.Move.Action.String(),
			Forced:         tr.Forced,
			DecisionMetric: decision,
		})
		for _, hook := range e.hooks {
			hook(e.State, tr)
		}
	}

	status := e.State.Status()
	gameMetric.Winner = int(status.Winner)
	gameMetric.Phase = status.Phase.String()
	for i, p := range e.State.Players {
		gameMetric.Sequences[i] = e.State.Board.CountSequences(p.ID)
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Turn()

	switch status.Phase {
	case game.Completed:
		log.Info().Msgf("game %s: player %d won after %d turns", e.ID, status.Winner, e.State.Turn())
	case game.Exhausted:
		log.Info().Msgf("game %s: deck exhausted after %d turns", e.ID, e.State.Turn())
	default:
		log.Info().Msgf("game %s: stopped after %d turns without a winner", e.ID, e.State.Turn())
	}

	return status, gameMetric, moveMetrics
}

// forceDiscard gives up the card that failed to play, or the first card in hand when the
// controller named a card it does not hold.
func (e *LocalEngine) forceDiscard(player *game.Player, card game.Card) (game.Transition, error) {
	if !player.Hand.Contains(card) && len(player.Hand) > 0 {
		card = player.Hand[0]
	}
	return e.State.ForceDiscard(card)
}
