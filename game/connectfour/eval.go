package connectfour

import "boardgames/game"

const centerWeight = 3

// Evaluate scores every 4-cell window on the board from p's point of view
// and adds a bonus for pieces in the centre column.
func Evaluate(gs game.State, p game.Player) float64 {
	s, ok := gs.(*State)
	if !ok {
		panic("unexpected state type")
	}

	score := 0
	for r := 0; r < Rows; r++ {
		switch s.At(r, Columns/2) {
		case p:
			score += centerWeight
		case p.Other():
			score -= centerWeight
		}
	}

	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			for _, axis := range axes {
				endRow, endCol := r+axis.Row*(Connect-1), c+axis.Col*(Connect-1)
				if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Columns {
					continue
				}
				own, opp := 0, 0
				for i := 0; i < Connect; i++ {
					switch s.At(r+axis.Row*i, c+axis.Col*i) {
					case p:
						own++
					case p.Other():
						opp++
					}
				}
				score += scoreWindow(own, opp)
			}
		}
	}
	return float64(score)
}

func scoreWindow(own, opp int) int {
	empty := Connect - own - opp
	switch {
	case own == 4:
		return 100
	case own == 3 && empty == 1:
		return 5
	case own == 2 && empty == 2:
		return 2
	case opp == 3 && empty == 1:
		return -4
	}
	return 0
}
