package experiments

import (
	"fmt"

	"kalah/engine"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/player"
	"kalah/searcher"

	"github.com/rs/zerolog/log"
)

// Setup fixes the board every game of an experiment starts from.
type Setup struct {
	Root  string // Directory the experiment records are written under
	Holes int
	Beans int
	Games int // Per matchup
}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 1, Evaluate: "pot"},
	{ID: 2, Kind: "minimax", Depth: 2, Evaluate: "pot"},
	{ID: 3, Kind: "minimax", Depth: 3, Evaluate: "pot"},
	{ID: 4, Kind: "minimax", Depth: 4, Evaluate: "pot"},
	{ID: 5, Kind: "minimax", Depth: 5, Evaluate: "pot"},
	{ID: 6, Kind: "minimax", Depth: 6, Evaluate: "pot"},
}

// RunDepthExperiment pairs every lookahead depth against the shallowest one.
func RunDepthExperiment(setup Setup) error {
	baseline := depthConfigs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment(setup, "depth", depthConfigs, matchUps)
}

// RunBaselineExperiment measures the default minimax player against the
// naive and random players.
func RunBaselineExperiment(setup Setup, depth int) error {
	configs := []metrics.AgentConfig{
		{ID: 0, Kind: "minimax", Depth: depth, Evaluate: "pot"},
		{ID: 1, Kind: "first"},
		{ID: 2, Kind: "random", Seed: 1},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[0], configs[2]},
		{configs[1], configs[2]},
	}
	return runExperiment(setup, "baseline", configs, matchUps)
}

// RunEvaluationExperiment compares the static evaluation functions at equal
// depth.
func RunEvaluationExperiment(setup Setup, depth int) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: depth, Evaluate: "pot"},
		{ID: 2, Kind: "minimax", Depth: depth, Evaluate: "material"},
	}
	matchUps := [][]metrics.AgentConfig{{configs[0], configs[1]}}
	return runExperiment(setup, "evaluation", configs, matchUps)
}

func runExperiment(setup Setup, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < setup.Games; i++ {
			// Alternate which agent plays South, the side that moves first
			south, north := matchup[0], matchup[1]
			if i%2 == 1 {
				south, north = north, south
			}

			res, err := runGame(setup, south, north, uint64(i))
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     south.ID,
				Agent2:     north.ID,
				GameMetric: res.Game,
			})
			for _, mm := range res.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, res.Game.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(setup.Root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame plays a single game between two agents
func runGame(setup Setup, south, north metrics.AgentConfig, gameIndex uint64) (engine.Result, error) {
	board := game.NewBoard(setup.Holes, setup.Beans)
	e := engine.LocalEngine(board, CreatePlayer(south, "South", gameIndex), CreatePlayer(north, "North", gameIndex))
	return e.Run()
}

// CreatePlayer builds the player an agent config describes. Random players
// are reseeded per game so repeated games differ.
func CreatePlayer(config metrics.AgentConfig, name string, gameIndex uint64) player.Player {
	name = fmt.Sprintf("%s-%d (%s)", config.Kind, config.ID, name)
	switch config.Kind {
	case "first":
		return player.NewFirstLegalPlayer(name)
	case "random":
		return player.NewRandomPlayer(name, config.Seed+gameIndex)
	default:
		options := []searcher.Option{searcher.WithMetrics()}
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		if evaluate := EvaluationFn(config.Evaluate); evaluate != nil {
			options = append(options, searcher.WithEvaluationFn(evaluate))
		}
		return player.NewMinimaxPlayer(name, searcher.NewMinimax(options...))
	}
}

// EvaluationFn resolves an evaluation function by name; unknown names give nil.
func EvaluationFn(name string) game.Evaluate {
	switch name {
	case "pot":
		return game.EvaluatePotDifference
	case "material":
		return game.EvaluateMaterial
	default:
		return nil
	}
}
