package main

import (
	"context"
	"flag"
	"os"

	"sequence/cmd/internal/play"
	"sequence/cmd/internal/selfplay"
	"sequence/meta"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevel = flag.String("log-level", "", "zerolog level (default from SEQUENCE_LOG_LEVEL)")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")

	flag.Parse()

	env := meta.LoadEnv()
	if *logLevel != "" {
		env.LogLevel = *logLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx, env)))
}
