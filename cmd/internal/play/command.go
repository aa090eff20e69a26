package play

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"sequence/agent"
	"sequence/cli"
	"sequence/engine"
	"sequence/game"
	"sequence/meta"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type Command struct {
	tier  string
	seed  uint64
	first string
	name  string
	delay bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play a game against the computer" }
func (*Command) Usage() string {
	return `play [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.tier, "tier", "tactical", "computer difficulty (baseline, tactical, strategic)")
	flags.Uint64Var(&c.seed, "seed", 0, "deck seed, 0 for the time")
	flags.StringVar(&c.first, "first", "human", "who moves first (human, ai)")
	flags.StringVar(&c.name, "name", "You", "your name")
	flags.BoolVar(&c.delay, "delay", true, "pause while the computer is thinking")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	tier, err := agent.ParseTier(c.tier)
	if err != nil {
		log.Error().Err(err).Msg("-tier")
		return subcommands.ExitUsageError
	}
	if c.first != "human" && c.first != "ai" {
		log.Error().Msgf("-first: unknown seat %q", c.first)
		return subcommands.ExitUsageError
	}

	workers := meta.GO_ROUTINES
	if len(args) > 0 {
		if env, ok := args[0].(meta.Env); ok {
			workers = env.Workers
		}
	}
	seed := c.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	info := cli.TierNames[tier]
	start := 0
	if c.first == "ai" {
		start = 1
	}
	state := engine.NewGame(seed, [2]string{c.name, info.Name}, game.WithStartingPlayer(start))

	human := cli.NewHuman(os.Stdin, os.Stdout)
	computer := engine.NewAgentController(tier, agent.WithSeed(seed), agent.WithWorkers(workers))

	options := []engine.Option{
		engine.WithStop(human.Closed),
		engine.WithAfterMove(func(gs *game.GameState, tr game.Transition) {
			p := gs.Player(tr.Player)
			fmt.Printf("\n%s plays %s\n", p.Name, tr.Move)
			if tr.Player == state.Players[1].ID {
				cli.RenderBoard(os.Stdout, gs.Board, tr.Move.Target)
			}
		}),
	}
	if c.delay {
		options = append(options, engine.WithThinkingDelay(state.Players[1].ID, info.Thinking))
	}

	fmt.Printf("%s vs %s (%s, %s)\n", c.name, info.Name, tier, info.Description)
	e := engine.NewLocalEngine(state, []engine.Controller{human, computer}, options...)
	status, _, _ := e.Run()

	cli.RenderBoard(os.Stdout, state.Board)
	switch status.Phase {
	case game.Completed:
		fmt.Printf("%s wins!\n", state.Player(status.Winner).Name)
	case game.Exhausted:
		fmt.Println("No cards left to play, the game is a draw.")
	default:
		fmt.Println("Game abandoned.")
	}
	return subcommands.ExitSuccess
}
