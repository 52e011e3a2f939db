package agent

import (
	"sync"
	"time"

	"boardgames/experiments/metrics"
	"boardgames/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{r: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	moves := state.LegalMoves(state.Player())
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}
	}

	a.mu.Lock()
	i := a.r.Intn(len(moves))
	a.mu.Unlock()

	return moves[i], metrics.SearchMetric{Goroutines: 1, Duration: time.Since(start), Nodes: 1}
}
