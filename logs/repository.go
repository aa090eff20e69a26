package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

// Repository stores finished tournament games.
type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

type Game struct {
	ID         string    `db:"id"`
	Experiment string    `db:"experiment"`
	Timestamp  time.Time `db:"time"`
	Agent1     string    `db:"agent1"`
	Agent2     string    `db:"agent2"`
	Starting   int       `db:"starting"`
	Phase      string    `db:"phase"`
	Winner     int       `db:"winner"`
	Sequences1 int       `db:"sequences1"`
	Sequences2 int       `db:"sequences2"`
	Moves      int       `db:"moves"`
}

// Standing is one agent's record across an experiment.
type Standing struct {
	Agent  string `db:"agent"`
	Games  int    `db:"games"`
	Wins   int    `db:"wins"`
	Losses int    `db:"losses"`
	Draws  int    `db:"draws"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(createGameTable)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create game table: %w", err)
	}
	_, err = db.Exec(createAgentView)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create agent_games view: %w", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertGame(g *Game) error {
	_, err := r.insert.Exec(g)
	return err
}

func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if _, e := stmt.Exec(g); e != nil {
			return fmt.Errorf("insert game %s: %w", g.ID, e)
		}
	}
	return txn.Commit()
}

func (r *Repository) Games(experiment string) ([]Game, error) {
	var games []Game
	err := r.db.Select(&games, selectGames, experiment)
	return games, err
}

func (r *Repository) Standings(experiment string) ([]Standing, error) {
	var standings []Standing
	err := r.db.Select(&standings, selectStandings, experiment)
	return standings, err
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
