package searcher

import (
	"boardgames/experiments/metrics"
	"boardgames/game"
)

// Search parameters

const DefaultDepth = 4

// Terminal positions score WinScore less the ply they are reached at, so
// quicker wins and slower losses are preferred.
const WinScore = 1e6

// Extra turns keep the remaining depth at most MaxExtensions times per line.
const MaxExtensions = 8

type Searcher interface {
	// FindMove returns the chosen move for the side to move and the metrics
	// of the search, or a nil move when the side to move has none
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}

func terminalScore(winner, root game.Player, ply int) float64 {
	switch winner {
	case root:
		return WinScore - float64(ply)
	case root.Other():
		return -WinScore + float64(ply)
	default:
		return 0
	}
}
