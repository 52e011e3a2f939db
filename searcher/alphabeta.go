package searcher

import (
	"math"
	"sync"

	"boardgames/experiments/metrics"
	"boardgames/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// tieMargin widens the root window so moves tied with the best are scored
// exactly when ties are broken at random.
const tieMargin = 1e-6

type Option func(a *AlphaBeta)

type AlphaBeta struct {
	goroutines int
	depth      int
	evaluate   game.Evaluate
	seed       uint64
	seeded     bool
	prescan    bool
	pruning    bool
	collector  func() metrics.Collector
}

func WithDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

// WithSeed breaks ties among equally scored root moves at random. The same
// seed picks the same move for the same position.
func WithSeed(seed uint64) Option {
	return func(a *AlphaBeta) {
		a.seed = seed
		a.seeded = true
	}
}

// WithPrescan plays an immediate win, or restricts the search to moves
// that do not hand the opponent one, before searching.
func WithPrescan() Option {
	return func(a *AlphaBeta) {
		a.prescan = true
	}
}

// WithoutPruning searches the full minimax tree.
func WithoutPruning() Option {
	return func(a *AlphaBeta) {
		a.pruning = false
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.collector = metrics.NewCollector
	}
}

func NewAlphaBeta(goroutines int, options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		goroutines: goroutines,
		depth:      DefaultDepth,
		pruning:    true,
		collector:  metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(a)
	}
	if a.goroutines < 1 {
		panic("Must use at least one goroutine")
	}
	if a.evaluate == nil {
		panic("Must specify an evaluation function")
	}
	return a
}

func (a *AlphaBeta) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	c := a.collector()
	c.Start(a.goroutines, a.depth)

	root := state.Player()
	if state.Winner() != game.Nobody {
		return nil, c.Complete(0)
	}
	moves := state.LegalMoves(root)
	switch len(moves) {
	case 0:
		return nil, c.Complete(0)
	case 1:
		return moves[0], c.Complete(0)
	}

	if a.prescan {
		win, safe := prescan(state, root, moves)
		if win != nil {
			log.Debug().Msgf("prescan found winning move %s", win)
			return win, c.Complete(terminalScore(root, root, 1))
		}
		switch len(safe) {
		case 0:
			// every move loses at once; search them all for the least bad
		case 1:
			log.Debug().Msgf("prescan found the only safe move %s", safe[0])
			return safe[0], c.Complete(0)
		default:
			moves = safe
		}
	}

	scores := a.scoreRoot(state, root, moves, c)
	move, score := a.choose(moves, scores)

	metric := c.Complete(score)
	log.Debug().Msgf("best move %s scored %.2f after %d nodes and %d cutoffs", move, score, metric.Nodes, metric.Cutoffs)
	return move, metric
}

// scoreRoot searches the root moves on the configured goroutines. Each
// goroutine takes moves in order and keeps its own lower bound, so a score
// is exact whenever it beats every earlier score of the same goroutine.
func (a *AlphaBeta) scoreRoot(state game.State, root game.Player, moves []game.Move, c metrics.Collector) []float64 {
	scores := make([]float64, len(moves))
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < min(a.goroutines, len(moves)); g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			best := math.Inf(-1)
			for i := range task {
				alpha := best
				if a.seeded {
					alpha = best - tieMargin
				}
				scores[i] = a.child(state, moves[i], root, a.depth, 0, 0, alpha, math.Inf(1), c)
				best = max(best, scores[i])
			}
		}()
	}
	wg.Wait()

	return scores
}

// choose returns the first move with the best score, or a seeded random
// pick among all moves sharing it. The first move reaching the best score
// always beat its goroutine's earlier bound, so its score is exact and no
// fail-low bound can tie ahead of it.
func (a *AlphaBeta) choose(moves []game.Move, scores []float64) (game.Move, float64) {
	best := math.Inf(-1)
	for _, score := range scores {
		best = max(best, score)
	}
	var tied []int
	for i, score := range scores {
		if score == best {
			tied = append(tied, i)
		}
	}
	pick := tied[0]
	if a.seeded && len(tied) > 1 {
		r := rand.New(rand.NewSource(a.seed))
		pick = tied[r.Intn(len(tied))]
	}
	return moves[pick], best
}

// child plays m from s and searches the result. The depth is kept when the
// mover moves again, up to MaxExtensions times on one line.
func (a *AlphaBeta) child(s game.State, m game.Move, root game.Player, depth, ply, extensions int, alpha, beta float64, c metrics.Collector) float64 {
	next := s.Play(m)
	if next.Winner() == game.Nobody && next.Player() == s.Player() && extensions < MaxExtensions {
		c.AddExtension()
		return a.search(next, root, depth, ply+1, extensions+1, alpha, beta, c)
	}
	return a.search(next, root, depth-1, ply+1, extensions, alpha, beta, c)
}

func (a *AlphaBeta) search(s game.State, root game.Player, depth, ply, extensions int, alpha, beta float64, c metrics.Collector) float64 {
	c.AddNode()
	if w := s.Winner(); w != game.Nobody {
		return terminalScore(w, root, ply)
	}
	if depth <= 0 {
		return a.evaluate(s, root)
	}
	mover := s.Player()
	moves := s.LegalMoves(mover)
	if len(moves) == 0 {
		return a.evaluate(s, root)
	}

	maximizing := mover == root
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, m := range moves {
		value := a.child(s, m, root, depth, ply, extensions, alpha, beta, c)
		if maximizing {
			best = max(best, value)
			alpha = max(alpha, best)
		} else {
			best = min(best, value)
			beta = min(beta, best)
		}
		if a.pruning && beta <= alpha {
			c.AddCutoff()
			break
		}
	}
	return best
}
