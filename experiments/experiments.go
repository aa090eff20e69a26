package experiments

import (
	"fmt"

	"sequence/agent"
	"sequence/engine"
	"sequence/experiments/metrics"
	"sequence/logs"
	"sequence/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Config controls a tournament run.
type Config struct {
	Name     string
	Games    int // per matchup, seats alternate between games
	Seed     uint64
	Threads  int // games played in parallel
	MaxTurns int

	OutDir     string           // CSV results, skipped when empty
	Repository *logs.Repository // game log, skipped when nil
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Stats []Stats
}

// DefaultConfigs is one agent per tier.
func DefaultConfigs(workers int) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for i, tier := range agent.Tiers() {
		configs = append(configs, metrics.AgentConfig{
			ID:          i + 1,
			Tier:        tier.String(),
			Workers:     workers,
			SmartChance: meta.SMART_CHANCE,
		})
	}
	return configs
}

// RoundRobin pairs every config with every other config once.
func RoundRobin(configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	matchUps := [][2]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return matchUps
}

type job struct {
	id      int
	matchUp int
	seat1   metrics.AgentConfig
	seat2   metrics.AgentConfig
	seed    uint64
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays every matchup and stores the results. Game seeds depend only on Config.Seed and
// the game number, so a run is reproducible whatever the thread count.
func Run(cfg Config, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (Result, error) {
	if cfg.Games <= 0 {
		cfg.Games = meta.GAMES
	}
	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = meta.MAX_TURNS
	}

	jobs := []job{}
	for mi, matchUp := range matchUps {
		for i := range cfg.Games {
			id := len(jobs) + 1
			seat1, seat2 := matchUp[0], matchUp[1]
			if i%2 == 1 {
				seat1, seat2 = seat2, seat1
			}
			jobs = append(jobs, job{
				id:      id,
				matchUp: mi,
				seat1:   seat1,
				seat2:   seat2,
				seed:    7919*cfg.Seed + uint64(id),
			})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, len(jobs))

	outcomes := make([]outcome, len(jobs))
	var g errgroup.Group
	g.SetLimit(cfg.Threads)
	for i, j := range jobs {
		g.Go(func() error {
			outcomes[i] = runGame(j, cfg.MaxTurns)
			log.Info().Msgf("completed game %d of %d (%s vs %s): winner %d",
				j.id, len(jobs), j.seat1.Tier, j.seat2.Tier, outcomes[i].game.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{}
	for _, o := range outcomes {
		result.Games = append(result.Games, o.game)
		result.Moves = append(result.Moves, o.moves...)
	}
	result.Stats = Summarize(matchUps, result.Games)

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.OutDir != "" {
		if err := write(cfg, configs, result); err != nil {
			return result, err
		}
	}
	if cfg.Repository != nil {
		if err := record(cfg, configs, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// runGame executes a single game between two agents
func runGame(j job, maxTurns int) outcome {
	state := engine.NewGame(j.seed, [2]string{j.seat1.Tier, j.seat2.Tier})
	controllers := []engine.Controller{
		newController(j.seat1, j.seed),
		newController(j.seat2, j.seed+1),
	}
	e := engine.NewLocalEngine(state, controllers, engine.WithMaxTurns(maxTurns))

	_, gameMetric, moveMetrics := e.Run()

	o := outcome{game: metrics.GameRecord{
		ID:         j.id,
		Agent1:     j.seat1.ID,
		Agent2:     j.seat2.ID,
		GameMetric: gameMetric,
	}}
	for _, mm := range moveMetrics {
		o.moves = append(o.moves, metrics.MoveRecord{Game: j.id, MoveMetric: mm})
	}
	return o
}

func newController(config metrics.AgentConfig, seed uint64) engine.Controller {
	tier, err := agent.ParseTier(config.Tier)
	if err != nil {
		panic(fmt.Sprintf("invalid agent config %d: %v", config.ID, err))
	}
	return engine.NewAgentController(tier,
		agent.WithSeed(seed),
		agent.WithWorkers(config.Workers),
		agent.WithSmartChance(config.SmartChance),
	)
}

func write(cfg Config, configs []metrics.AgentConfig, result Result) error {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}

func record(cfg Config, configs []metrics.AgentConfig, result Result) error {
	names := make(map[int]string)
	for _, c := range configs {
		names[c.ID] = fmt.Sprintf("%d:%s", c.ID, c.Tier)
	}
	games := make([]*logs.Game, 0, len(result.Games))
	for _, g := range result.Games {
		games = append(games, &logs.Game{
			ID:         g.GameMetric.ID.String(),
			Experiment: cfg.Name,
			Timestamp:  g.StartTime,
			Agent1:     names[g.Agent1],
			Agent2:     names[g.Agent2],
			Starting:   g.StartingPlayer,
			Phase:      g.Phase,
			Winner:     g.Winner,
			Sequences1: g.Sequences[0],
			Sequences2: g.Sequences[1],
			Moves:      g.TotalMoves,
		})
	}
	if err := cfg.Repository.InsertGames(games); err != nil {
		return fmt.Errorf("failed to log games: %w", err)
	}
	log.Info().Msgf("logged %d games", len(games))
	return nil
}
