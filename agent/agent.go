package agent

import (
	"boardgames/experiments/metrics"
	"boardgames/game"
)

type Agent interface {
	// FindMove returns the agent's move for the side to move and the metrics
	// collected while choosing it
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}
