// meta/meta.go
package meta

// HOLES defines the default number of holes per side.
const HOLES = 6

// BEANS defines the default number of beans initially placed in each hole.
const BEANS = 4

// LOOKAHEAD_DEPTH defines the default minimax depth in plies.
const LOOKAHEAD_DEPTH = 5

// MAX_TURNS bounds a single game in case a player never runs out of moves.
const MAX_TURNS = 1000

// GAMES defines the number of games per experiment matchup.
const GAMES = 20
