package checkers

import "boardgames/game"

var (
	firstForward  = [][2]int{{-1, -1}, {-1, 1}}
	secondForward = [][2]int{{1, -1}, {1, 1}}
	allDiagonals  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// GenerateMoves returns p's legal moves in board order. Jumps exclude steps
// entirely, and during a chain only the active piece may jump.
func GenerateMoves(s *State, p game.Player) []Move {
	if s.winner != game.Nobody || !p.IsSide() {
		return nil
	}
	if s.chaining && p == s.turn {
		return s.jumpsFrom(s.active)
	}

	var jumps, steps []Move
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if s.board[r*s.size+c].Owner != p {
				continue
			}
			from := Square{r, c}
			jumps = append(jumps, s.jumpsFrom(from)...)
			if len(jumps) == 0 {
				steps = append(steps, s.stepsFrom(from)...)
			}
		}
	}
	if len(jumps) > 0 {
		return jumps
	}
	return steps
}

// ApplyMove plays a step or jump for the side to move. Moves that are not
// currently legal return s unchanged.
func ApplyMove(s *State, m Move) *State {
	for _, legal := range GenerateMoves(s, s.turn) {
		if legal.From == m.From && legal.To == m.To {
			return s.apply(legal)
		}
	}
	return s
}

func IsTerminal(s *State) game.Player {
	return s.winner
}

func (s *State) apply(m Move) *State {
	next := *s
	next.board = append([]Piece(nil), s.board...)
	next.history = s.history.Append(m)

	piece := next.board[m.From.Row*s.size+m.From.Col]
	next.board[m.From.Row*s.size+m.From.Col] = Piece{}
	if m.Jump {
		next.board[m.Captured.Row*s.size+m.Captured.Col] = Piece{}
	}
	promoted := !piece.King && m.To.Row == s.promotionRow(piece.Owner)
	if promoted {
		piece.King = true
	}
	next.board[m.To.Row*s.size+m.To.Col] = piece

	next.chaining, next.active = false, Square{}
	if m.Jump && !promoted && len(next.jumpsFrom(m.To)) > 0 {
		next.chaining, next.active = true, m.To
	} else {
		next.turn = s.turn.Other()
	}
	next.settle()
	return &next
}

// settle ends the game when the side to move has no legal move.
func (s *State) settle() {
	if !s.turn.IsSide() {
		return
	}
	if len(GenerateMoves(s, s.turn)) == 0 {
		s.winner = s.turn.Other()
	}
}

func directions(p Piece) [][2]int {
	switch {
	case p.King:
		return allDiagonals
	case p.Owner == game.First:
		return firstForward
	default:
		return secondForward
	}
}

func (s *State) stepsFrom(from Square) []Move {
	piece := s.At(from.Row, from.Col)
	var moves []Move
	for _, d := range directions(piece) {
		r, c := from.Row+d[0], from.Col+d[1]
		if s.inside(r, c) && s.board[r*s.size+c].Owner == game.Nobody {
			moves = append(moves, Move{From: from, To: Square{r, c}})
		}
	}
	return moves
}

func (s *State) jumpsFrom(from Square) []Move {
	piece := s.At(from.Row, from.Col)
	if !piece.Owner.IsSide() {
		return nil
	}
	var moves []Move
	for _, d := range directions(piece) {
		mr, mc := from.Row+d[0], from.Col+d[1]
		r, c := mr+d[0], mc+d[1]
		if !s.inside(r, c) || s.board[r*s.size+c].Owner != game.Nobody {
			continue
		}
		if s.At(mr, mc).Owner == piece.Owner.Other() {
			moves = append(moves, Move{From: from, To: Square{r, c}, Captured: Square{mr, mc}, Jump: true})
		}
	}
	return moves
}
