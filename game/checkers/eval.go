package checkers

import "boardgames/game"

const (
	manValue       = 100
	kingBonus      = 60
	advanceWeight  = 4
	centreWeight   = 6
	mobilityWeight = 2
)

// Evaluate scores material with a king bonus, how far men have advanced,
// pieces on the central squares and mobility, from p's point of view.
func Evaluate(gs game.State, p game.Player) float64 {
	s, ok := gs.(*State)
	if !ok {
		panic("unexpected state type")
	}

	score := 0
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			piece := s.board[r*s.size+c]
			if !piece.Owner.IsSide() {
				continue
			}
			v := manValue
			if piece.King {
				v += kingBonus
			} else {
				v += advanceWeight * s.advancement(piece.Owner, r)
			}
			if s.central(r, c) {
				v += centreWeight
			}
			if piece.Owner == p {
				score += v
			} else {
				score -= v
			}
		}
	}

	score += mobilityWeight * (len(GenerateMoves(s, p)) - len(GenerateMoves(s, p.Other())))
	return float64(score)
}

// advancement counts the rows a man of p has moved from its home edge.
func (s *State) advancement(p game.Player, row int) int {
	if p == game.First {
		return s.size - 1 - row
	}
	return row
}

func (s *State) central(row, col int) bool {
	lo, hi := s.size/2-2, s.size/2+1
	return row >= lo && row <= hi && col >= lo && col <= hi
}
