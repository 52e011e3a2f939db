package chess

import "boardgames/game"

// GenerateMoves returns every move of p that does not leave p's king
// attacked, ordered by origin then destination square.
func GenerateMoves(s *State, p game.Player) []Move {
	if s.winner != game.Nobody || !p.IsSide() {
		return nil
	}
	var moves []Move
	for from := Square(0); from < 64; from++ {
		if s.board[from].Owner != p {
			continue
		}
		for to := Square(0); to < 64; to++ {
			if !s.board.reaches(from, to) {
				continue
			}
			m := s.board.move(from, to)
			after := s.board
			after.play(m)
			if !after.attacked(after.king(p), p.Other()) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// ApplyMove plays m for the side to move, or returns s unchanged when m is
// not legal.
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
	next.board.play(m)
	next.turn = s.turn.Other()
	next.history = s.history.Append(m)
	next.settle()
	return &next
}

// settle decides checkmate, stalemate and bare kings for the side to move.
func (s *State) settle() {
	if !s.turn.IsSide() {
		return
	}
	if s.board.bareKings() {
		s.winner = game.Draw
		return
	}
	if len(GenerateMoves(s, s.turn)) > 0 {
		return
	}
	if s.InCheck(s.turn) {
		s.winner = s.turn.Other()
	} else {
		// Stalemate ends the game as a draw rather than staying unscored.
		s.winner = game.Draw
	}
}

// move builds the move from one square to another, promoting pawns that
// reach the last rank.
func (b *board) move(from, to Square) Move {
	m := Move{From: from, To: to}
	if p := b[from]; p.Kind == Pawn && to.Rank() == lastRank(p.Owner) {
		m.Promotion = Queen
	}
	return m
}

func (b *board) play(m Move) {
	p := b[m.From]
	if m.Promotion != None {
		p.Kind = m.Promotion
	}
	b[m.To] = p
	b[m.From] = Piece{}
}

// reaches reports whether the piece on from may move to to under its
// movement rule. Moves onto the mover's own pieces never reach.
func (b *board) reaches(from, to Square) bool {
	p := b[from]
	if from == to || b[to].Owner == p.Owner {
		return false
	}
	dr, df := to.Rank()-from.Rank(), to.File()-from.File()

	switch p.Kind {
	case Pawn:
		dir, start := 1, 1
		if p.Owner == game.Second {
			dir, start = -1, 6
		}
		if df == 0 {
			if b[to].Owner != game.Nobody {
				return false
			}
			if dr == dir {
				return true
			}
			return dr == 2*dir && from.Rank() == start && b[int(from)+8*dir].Owner == game.Nobody
		}
		return abs(df) == 1 && dr == dir && b[to].Owner == p.Owner.Other()
	case Knight:
		return abs(dr)*abs(df) == 2
	case Bishop:
		return abs(dr) == abs(df) && b.clear(from, to)
	case Rook:
		return (dr == 0 || df == 0) && b.clear(from, to)
	case Queen:
		return (dr == 0 || df == 0 || abs(dr) == abs(df)) && b.clear(from, to)
	case King:
		return abs(dr) <= 1 && abs(df) <= 1
	case None:
		return false
	default:
		panic("unknown piece kind")
	}
}

// clear reports whether every square strictly between from and to on a
// rank, file or diagonal is empty.
func (b *board) clear(from, to Square) bool {
	sr, sf := sign(to.Rank()-from.Rank()), sign(to.File()-from.File())
	r, f := from.Rank()+sr, from.File()+sf
	for NewSquare(r, f) != to {
		if b[NewSquare(r, f)].Owner != game.Nobody {
			return false
		}
		r, f = r+sr, f+sf
	}
	return true
}

// attacked reports whether any piece of by reaches sq.
func (b *board) attacked(sq Square, by game.Player) bool {
	if sq < 0 {
		return false
	}
	for from := Square(0); from < 64; from++ {
		if b[from].Owner == by && b.reaches(from, sq) {
			return true
		}
	}
	return false
}

// king returns p's king square, or -1 when it has none.
func (b *board) king(p game.Player) Square {
	for sq := Square(0); sq < 64; sq++ {
		if b[sq] == (Piece{Owner: p, Kind: King}) {
			return sq
		}
	}
	return -1
}

func (b *board) bareKings() bool {
	for _, p := range b {
		if p.Kind != None && p.Kind != King {
			return false
		}
	}
	return true
}

func lastRank(p game.Player) int {
	if p == game.First {
		return 7
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
