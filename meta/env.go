package meta

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env is the runtime configuration read from the environment and an optional .env file.
type Env struct {
	Seed     uint64
	Workers  int
	Games    int
	MaxTurns int
	LogLevel string
	Database string // SQLite file for tournament results, empty to skip
	OutDir   string // directory for CSV results
}

// LoadEnv reads SEQUENCE_* variables, loading files (default ".env") first if present.
func LoadEnv(files ...string) Env {
	_ = godotenv.Load(files...)

	return Env{
		Seed:     uintDef(os.Getenv("SEQUENCE_SEED"), SEED),
		Workers:  atoiDef(os.Getenv("SEQUENCE_WORKERS"), GO_ROUTINES),
		Games:    atoiDef(os.Getenv("SEQUENCE_GAMES"), GAMES),
		MaxTurns: atoiDef(os.Getenv("SEQUENCE_MAX_TURNS"), MAX_TURNS),
		LogLevel: strDef(os.Getenv("SEQUENCE_LOG_LEVEL"), "info"),
		Database: os.Getenv("SEQUENCE_DB"),
		OutDir:   strDef(os.Getenv("SEQUENCE_OUT"), "results"),
	}
}

func atoiDef(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func uintDef(s string, def uint64) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return def
	}
	return n
}

func strDef(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
