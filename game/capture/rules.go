package capture

import "boardgames/game"

// GenerateMoves returns every empty point where p may place a stone, in
// row-major order. Suicide is only legal when it captures.
func GenerateMoves(s *State, p game.Player) []Move {
	if s.winner != game.Nobody || !p.IsSide() {
		return nil
	}
	var moves []Move
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if pt := (Point{r, c}); s.legal(pt, p) {
				moves = append(moves, Move{pt})
			}
		}
	}
	return moves
}

// ApplyMove places a stone for the side to move. Occupied points and
// suicides return s unchanged.
func ApplyMove(s *State, m Move) *State {
	if s.winner != game.Nobody || !s.legal(m.Point, s.turn) {
		return s
	}
	return s.apply(m)
}

func IsTerminal(s *State) game.Player {
	return s.winner
}

func (s *State) apply(m Move) *State {
	mover := s.turn
	next := *s
	next.board = append([]game.Player(nil), s.board...)
	next.history = s.history.Append(m)
	next.place(m.Point, mover)

	if next.captured[mover-game.First] >= next.goal {
		next.winner = mover
		return &next
	}
	next.turn = mover.Other()
	next.settle()
	return &next
}

// place puts p's stone on pt and removes enemy groups left without
// liberties, crediting p with the stones removed.
func (s *State) place(pt Point, p game.Player) {
	s.board[pt.Row*s.size+pt.Col] = p
	for _, n := range s.neighbours(pt) {
		if s.At(n) != p.Other() {
			continue
		}
		g := s.GroupAt(n)
		if len(g.Liberties) > 0 {
			continue
		}
		for _, stone := range g.Stones {
			s.board[stone.Row*s.size+stone.Col] = game.Nobody
		}
		s.captured[p-game.First] += len(g.Stones)
	}
}

// settle ends the game when the side to move cannot place a stone.
func (s *State) settle() {
	if !s.turn.IsSide() {
		return
	}
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if s.legal(Point{r, c}, s.turn) {
				return
			}
		}
	}
	s.winner = s.turn.Other()
}

func (s *State) legal(pt Point, p game.Player) bool {
	if !s.inside(pt) || s.At(pt) != game.Nobody {
		return false
	}
	for _, n := range s.neighbours(pt) {
		if s.At(n) == game.Nobody {
			return true
		}
	}
	// Without an empty neighbour the stone survives only by joining a
	// group with another liberty or by capturing.
	try := *s
	try.board = append([]game.Player(nil), s.board...)
	try.place(pt, p)
	return len(try.GroupAt(pt).Liberties) > 0
}
