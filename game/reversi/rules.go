package reversi

import (
	"math/bits"

	"boardgames/game"
)

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// GenerateMoves returns every empty cell where p flips at least one run,
// in row-major order.
func GenerateMoves(s *State, p game.Player) []Move {
	if s.winner != game.Nobody || !p.IsSide() {
		return nil
	}
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if flips := s.flips(r, c, p); flips != 0 {
				moves = append(moves, Move{Row: r, Col: c, Flips: flips})
			}
		}
	}
	return moves
}

// ApplyMove places a disc for the side to move and flips every bounded run.
// Placements that flip nothing return s unchanged.
func ApplyMove(s *State, m Move) *State {
	if s.winner != game.Nobody {
		return s
	}
	flips := s.flips(m.Row, m.Col, s.turn)
	if flips == 0 {
		return s
	}
	return s.apply(Move{Row: m.Row, Col: m.Col, Flips: flips})
}

func IsTerminal(s *State) game.Player {
	return s.winner
}

func (s *State) apply(m Move) *State {
	next := *s
	next.board[m.Row*Size+m.Col] = s.turn
	for flips := m.Flips; flips != 0; flips &= flips - 1 {
		next.board[bits.TrailingZeros64(flips)] = s.turn
	}
	next.history = s.history.Append(m)
	next.settleTurn(s.turn)
	return &next
}

// settleTurn hands the move to mover's opponent if it can move, back to mover
// otherwise, and ends the game when neither side can move.
func (s *State) settleTurn(mover game.Player) {
	switch {
	case s.canMove(mover.Other()):
		s.turn = mover.Other()
	case s.canMove(mover):
		s.turn = mover
	default:
		own, other := s.Count(game.First), s.Count(game.Second)
		switch {
		case own > other:
			s.winner = game.First
		case other > own:
			s.winner = game.Second
		default:
			s.winner = game.Draw
		}
	}
}

func (s *State) canMove(p game.Player) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s.flips(r, c, p) != 0 {
				return true
			}
		}
	}
	return false
}

// flips returns the mask of opponent discs bounded by p's discs when p plays
// (row, col), zero if the cell is occupied, p is not a side or the move
// flips nothing.
func (s *State) flips(row, col int, p game.Player) uint64 {
	if !p.IsSide() || row < 0 || row >= Size || col < 0 || col >= Size || s.board[row*Size+col] != game.Nobody {
		return 0
	}
	var mask uint64
	for _, d := range directions {
		var run uint64
		r, c := row+d[0], col+d[1]
		for s.At(r, c) == p.Other() {
			run |= 1 << uint(r*Size+c)
			r, c = r+d[0], c+d[1]
		}
		if run != 0 && s.At(r, c) == p {
			mask |= run
		}
	}
	return mask
}
