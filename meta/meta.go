// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines used to score candidate moves.
const GO_ROUTINES = 4

// GAMES defines the number of games per tournament matchup.
const GAMES = 20

// SMART_CHANCE defines how often the baseline agent looks for a forcing move.
const SMART_CHANCE = 0.3

// MAX_TURNS caps the length of a game before it is abandoned.
const MAX_TURNS = 400

// SEED defines the default seed for decks and agents.
const SEED = 1
