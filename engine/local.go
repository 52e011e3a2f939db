package engine

import (
	"time"

	"boardgames/agent"
	"boardgames/experiments/metrics"
	"boardgames/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const DefaultMaxTurns = 500

type LocalOption func(l *Local)

// WithMaxTurns stops a game unfinished after the given number of moves.
func WithMaxTurns(turns int) LocalOption {
	return func(l *Local) {
		if turns > 0 {
			l.maxTurns = turns
		}
	}
}

// Local plays two agents against each other on one game instance.
type Local struct {
	name     string
	engine   *Engine
	agents   [2]agent.Agent
	maxTurns int
}

// LocalEngine sets up a game called name from state. agents[0] plays First
// and agents[1] plays Second.
func LocalEngine(name string, state game.State, agents []agent.Agent, options ...LocalOption) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	l := &Local{
		name:     name,
		engine:   NewEngine(state),
		agents:   [2]agent.Agent{agents[0], agents[1]},
		maxTurns: DefaultMaxTurns,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Local) State() game.State {
	return l.engine.State()
}

// Run plays until the game ends or the turn limit is reached. An agent that
// fails to produce a legal move forfeits.
func (l *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.New(),
		Game:           l.name,
		StartingPlayer: l.engine.State().Player(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s: %s is starting", l.name, gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	winner := game.Nobody
	for turn := 1; turn <= l.maxTurns; turn++ {
		state := l.engine.State()
		if winner = state.Winner(); winner != game.Nobody {
			break
		}
		player := state.Player()

		move, searchMetric := l.agents[player-game.First].FindMove(state)
		if err := l.engine.Play(player, move); err != nil {
			log.Warn().Err(err).Msgf("%s: %s forfeits", l.name, player)
			winner = player.Other()
			break
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("%s: turn %d %s played %s", l.name, turn, player, move)
	}
	if winner == game.Nobody {
		winner = l.engine.State().Winner()
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner == game.Nobody {
		log.Info().Msgf("%s: stopped after %d moves without a result", l.name, len(moveMetrics))
	} else {
		log.Info().Msgf("%s: finished after %d moves with result %s", l.name, len(moveMetrics), winner)
	}
	return winner, gameMetric, moveMetrics
}
