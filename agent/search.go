package agent

import (
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's choice, falling
// back to the first legal move if the searcher returns none or an illegal one.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	move, metric := a.searcher.FindMove(state)
	legal := state.LegalMoves(state.Player())
	if move != nil && game.Contains(legal, move) {
		return move, metric
	}
	if len(legal) == 0 {
		return nil, metric
	}
	log.Warn().Msgf("searcher returned move %v which is not legal, playing %s instead", move, legal[0])
	return legal[0], metric
}
