package mancala

import "boardgames/game"

const rowWeight = 0.25

// Evaluate returns p's store lead plus a smaller weight for seeds still on
// p's side of the board.
func Evaluate(gs game.State, p game.Player) float64 {
	s, ok := gs.(*State)
	if !ok {
		panic("unexpected state type")
	}
	stores := float64(s.board[s.Store(p)] - s.board[s.Store(p.Other())])
	return stores + rowWeight*float64(s.rowSeeds(p)-s.rowSeeds(p.Other()))
}

func (s *State) rowSeeds(p game.Player) int {
	first, store := s.row(p)
	seeds := 0
	for i := first; i < store; i++ {
		seeds += s.board[i]
	}
	return seeds
}
