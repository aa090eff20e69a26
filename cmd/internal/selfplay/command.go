package selfplay

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"sequence/agent"
	"sequence/experiments"
	"sequence/experiments/metrics"
	"sequence/logs"
	"sequence/meta"

	"github.com/google/subcommands"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
)

type Command struct {
	name     string
	tiers    string
	games    int
	threads  int
	workers  int
	seed     uint64
	maxTurns int
	out      string
	db       string
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play the AI tiers against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.name, "name", "tournament", "experiment name")
	flags.StringVar(&c.tiers, "tiers", "baseline,tactical,strategic", "comma separated tiers to play round robin")
	flags.IntVar(&c.games, "games", 0, "games per matchup, seats alternate (default from SEQUENCE_GAMES)")
	flags.IntVar(&c.threads, "threads", 4, "number of games played in parallel")
	flags.IntVar(&c.workers, "workers", 0, "scoring goroutines per agent (default from SEQUENCE_WORKERS)")
	flags.Uint64Var(&c.seed, "seed", 0, "experiment seed (default from SEQUENCE_SEED)")
	flags.IntVar(&c.maxTurns, "max-turns", 0, "cut games off after this many turns")
	flags.StringVar(&c.out, "out", "", "directory to write CSV results to (default from SEQUENCE_OUT)")
	flags.StringVar(&c.db, "db", "", "SQLite file to log games to (default from SEQUENCE_DB)")
}

func (c *Command) configure(env meta.Env) {
	if c.games == 0 {
		c.games = env.Games
	}
	if c.workers == 0 {
		c.workers = env.Workers
	}
	if c.seed == 0 {
		c.seed = env.Seed
	}
	if c.maxTurns == 0 {
		c.maxTurns = env.MaxTurns
	}
	if c.out == "" {
		c.out = env.OutDir
	}
	if c.db == "" {
		c.db = env.Database
	}
}

func (c *Command) agentConfigs() ([]metrics.AgentConfig, error) {
	configs := []metrics.AgentConfig{}
	for i, name := range strings.Split(c.tiers, ",") {
		tier, err := agent.ParseTier(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		configs = append(configs, metrics.AgentConfig{
			ID:          i + 1,
			Tier:        tier.String(),
			Workers:     c.workers,
			SmartChance: meta.SMART_CHANCE,
		})
	}
	if len(configs) < 2 {
		return nil, fmt.Errorf("need at least two tiers, got %q", c.tiers)
	}
	return configs, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := meta.LoadEnv()
	if len(args) > 0 {
		if e, ok := args[0].(meta.Env); ok {
			env = e
		}
	}
	c.configure(env)

	configs, err := c.agentConfigs()
	if err != nil {
		log.Error().Err(err).Msg("-tiers")
		return subcommands.ExitUsageError
	}

	var repo *logs.Repository
	if c.db != "" {
		repo, err = logs.Open(c.db)
		if err != nil {
			log.Error().Err(err).Msgf("open %s", c.db)
			return subcommands.ExitFailure
		}
		defer repo.Close()
	}

	cfg := experiments.Config{
		Name:       c.name,
		Games:      c.games,
		Seed:       c.seed,
		Threads:    c.threads,
		MaxTurns:   c.maxTurns,
		OutDir:     c.out,
		Repository: repo,
	}
	result, err := experiments.Run(cfg, configs, experiments.RoundRobin(configs))
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitFailure
	}

	experiments.RenderStats(os.Stdout, c.name, result.Stats)

	if repo != nil {
		standings, err := repo.Standings(c.name)
		if err != nil {
			log.Error().Err(err).Msg("standings")
			return subcommands.ExitFailure
		}
		renderStandings(c.name, standings)
	}
	return subcommands.ExitSuccess
}

func renderStandings(name string, standings []logs.Standing) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(name + " standings")
	t.AppendHeader(table.Row{"Agent", "Games", "Wins", "Losses", "Draws"})
	for _, s := range standings {
		t.AppendRow(table.Row{s.Agent, s.Games, s.Wins, s.Losses, s.Draws})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
