package experiments

import (
	"boardgames/agent"
	"boardgames/catalog"
	"boardgames/engine"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

// Settings are shared by every game of an experiment.
type Settings struct {
	Games     int // per match-up
	MaxTurns  int
	OutputDir string
	// Progress, when set, is called after every game
	Progress func(done, total int)
}

type Result struct {
	Dir       string
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []metrics.Summary
}

// RunDepthExperiment pairs a random baseline against search agents of
// increasing depth up to ai.Depth.
func RunDepthExperiment(entry catalog.Entry, ai metrics.AgentConfig, settings Settings) (*Result, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom, Seed: ai.Seed}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= ai.Depth; depth++ {
		config := ai
		config.ID = depth
		config.Kind = KindSearch
		config.Depth = depth
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment(entry.Name+"_depth", entry, configs, matchUps, settings)
}

// RunParallelizationExperiment pairs the sequential search against root
// parallel searches of the same depth. Unseeded searches pick the same moves
// whatever their goroutine count, so only the timings should differ.
func RunParallelizationExperiment(entry catalog.Entry, ai metrics.AgentConfig, settings Settings) (*Result, error) {
	baseline := ai
	baseline.ID, baseline.Kind, baseline.Goroutines = 0, KindSearch, 1
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range []int{2, 4, 8} {
		config := baseline
		config.ID = i + 1
		config.Goroutines = goroutines
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment(entry.Name+"_parallelization", entry, configs, matchUps, settings)
}

// RunMatch plays one match-up of two configs.
func RunMatch(entry catalog.Entry, first, second metrics.AgentConfig, settings Settings) (*Result, error) {
	first.ID, second.ID = 1, 2
	configs := []metrics.AgentConfig{first, second}
	return runExperiment(entry.Name+"_match", entry, configs, [][2]metrics.AgentConfig{{first, second}}, settings)
}

func runExperiment(name string, entry catalog.Entry, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, settings Settings) (*Result, error) {
	if settings.Games < 1 {
		return nil, errors.Errorf("experiment %s needs at least one game per match-up", name)
	}
	result := &Result{}
	total := len(matchUps) * settings.Games
	done := 0

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < settings.Games; i++ {
			// Alternate who opens
			config1, config2 := matchUp[0], matchUp[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			winner, gameMetric, moveMetrics := runGame(entry, config1, config2, uint64(i), settings.MaxTurns)
			result.Games = append(result.Games, metrics.GameRecord{
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				agentID := config1.ID
				if mm.Player == game.Second {
					agentID = config2.ID
				}
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       gameMetric.ID,
					Agent:      agentID,
					MoveMetric: mm,
				})
			}

			done++
			if settings.Progress != nil {
				settings.Progress(done, total)
			}
			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)
	result.Summaries = metrics.Summarize(result.Games, result.Moves)

	dir, err := store(name, settings.OutputDir, configs, result)
	if err != nil {
		return nil, err
	}
	result.Dir = dir
	return result, nil
}

func store(name, outputDir string, configs []metrics.AgentConfig, result *Result) (string, error) {
	writer, err := metrics.NewWriter(outputDir, name)
	if err != nil {
		return "", errors.WithMessage(err, "failed to create experiment writer")
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteSummaries(result.Summaries); err != nil {
		return "", err
	}
	log.Info().Msgf("stored summaries in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays a single game with config1 as First and returns the winner.
// round varies the seeds from game to game.
func runGame(entry catalog.Entry, config1, config2 metrics.AgentConfig, round uint64, maxTurns int) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		NewAgent(entry, config1, round),
		NewAgent(entry, config2, round),
	}
	e := engine.LocalEngine(entry.Name, entry.New(), agents, engine.WithMaxTurns(maxTurns))
	return e.Run()
}

// NewAgent builds the agent a config describes. A zero seed leaves a search
// agent's tie-breaking deterministic.
func NewAgent(entry catalog.Entry, config metrics.AgentConfig, round uint64) agent.Agent {
	if config.Kind == KindRandom {
		return agent.NewRandomAgent(config.Seed + round)
	}

	options := []searcher.Option{
		searcher.WithEvaluationFn(entry.Evaluate),
		searcher.WithMetrics(),
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Seed != 0 {
		options = append(options, searcher.WithSeed(config.Seed+round))
	}
	if config.Prescan {
		options = append(options, searcher.WithPrescan())
	}
	return agent.NewSearchAgent(searcher.NewAlphaBeta(max(config.Goroutines, 1), options...))
}
