package reversi

import "boardgames/game"

// weights favors corners and edges and punishes the squares next to corners.
var weights = [Size * Size]int{
	100, -20, 10, 5, 5, 10, -20, 100,
	-20, -50, -2, -2, -2, -2, -50, -20,
	10, -2, -1, -1, -1, -1, -2, 10,
	5, -2, -1, -1, -1, -1, -2, 5,
	5, -2, -1, -1, -1, -1, -2, 5,
	10, -2, -1, -1, -1, -1, -2, 10,
	-20, -50, -2, -2, -2, -2, -50, -20,
	100, -20, 10, 5, 5, 10, -20, 100,
}

const (
	mobilityWeight = 5
	parityWeight   = 2
	endgameEmpty   = 12
)

// Evaluate combines the positional weight table with mobility, and disc
// parity once few empty squares remain.
func Evaluate(gs game.State, p game.Player) float64 {
	s, ok := gs.(*State)
	if !ok {
		panic("unexpected state type")
	}

	score, empty := 0, 0
	for i, owner := range s.board {
		if owner == game.Nobody {
			empty++
		}
		score += int(game.Sign(p, owner)) * weights[i]
	}

	score += mobilityWeight * (len(GenerateMoves(s, p)) - len(GenerateMoves(s, p.Other())))
	if empty <= endgameEmpty {
		score += parityWeight * (s.Count(p) - s.Count(p.Other()))
	}
	return float64(score)
}
