package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"kalah/engine"
	"kalah/experiments"
	"kalah/game"
	"kalah/meta"
	"kalah/player"
	"kalah/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	holes := flag.Int("holes", meta.HOLES, "Number of pits per side")
	beans := flag.Int("beans", meta.BEANS, "Beans initially in each pit")
	depth := flag.Int("depth", meta.LOOKAHEAD_DEPTH, "Lookahead depth of minimax players")
	south := flag.String("south", "human", "South player: human, minimax, first or random")
	north := flag.String("north", "minimax", "North player: human, minimax, first or random")
	seed := flag.Uint64("seed", 1, "Seed for random players")
	experiment := flag.String("experiment", "", "Run an experiment instead of a game: depth, baseline or evaluation")
	games := flag.Int("games", meta.GAMES, "Games per experiment matchup")
	out := flag.String("out", "results", "Directory experiment records are written under")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", *level)
	}
	zerolog.SetGlobalLevel(lvl)

	if *experiment != "" {
		setup := experiments.Setup{Root: *out, Holes: *holes, Beans: *beans, Games: *games}
		err = runExperiment(*experiment, setup, *depth)
		if err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
		}
		return
	}

	southPlayer, err := createPlayer(*south, "South", *depth, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid south player")
	}
	northPlayer, err := createPlayer(*north, "North", *depth, *seed+1)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid north player")
	}

	e := engine.LocalEngine(game.NewBoard(*holes, *beans), southPlayer, northPlayer, engine.WithOutput(os.Stdout))
	res, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	log.Info().Msgf("game over after %d moves in %s: South %d, North %d", res.Game.TotalMoves, res.Game.Duration, res.Game.SouthPot, res.Game.NorthPot)
}

func runExperiment(name string, setup experiments.Setup, depth int) error {
	switch name {
	case "depth":
		return experiments.RunDepthExperiment(setup)
	case "baseline":
		return experiments.RunBaselineExperiment(setup, depth)
	case "evaluation":
		return experiments.RunEvaluationExperiment(setup, depth)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
}

func createPlayer(kind, name string, depth int, seed uint64) (player.Player, error) {
	switch kind {
	case "human":
		return player.NewHumanPlayer(name, os.Stdin, os.Stdout), nil
	case "minimax":
		return player.NewMinimaxPlayer(name, searcher.NewMinimax(searcher.WithDepth(depth))), nil
	case "first":
		return player.NewFirstLegalPlayer(name), nil
	case "random":
		return player.NewRandomPlayer(name, seed), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}
