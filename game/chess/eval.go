package chess

import "boardgames/game"

var material = [...]int{
	None:   0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   0,
}

// Piece-square tables are indexed by rank counted from the owner's back
// rank, then file.
var (
	pawnTable = [8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	knightTable = [8][8]int{
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	}
	kingTable = [8][8]int{
		{20, 30, 10, 0, 0, 10, 30, 20},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
	}
)

const mobilityWeight = 2

// Evaluate scores material, piece placement and pseudo-legal mobility from
// p's point of view.
func Evaluate(gs game.State, p game.Player) float64 {
	s, ok := gs.(*State)
	if !ok {
		panic("unexpected state type")
	}

	score := 0
	for sq := Square(0); sq < 64; sq++ {
		piece := s.board[sq]
		if piece.Kind == None {
			continue
		}
		v := material[piece.Kind] + placement(piece, sq) + mobilityWeight*s.board.mobility(sq)
		if piece.Owner == p {
			score += v
		} else {
			score -= v
		}
	}
	return float64(score)
}

func placement(p Piece, sq Square) int {
	rank := sq.Rank()
	if p.Owner == game.Second {
		rank = 7 - rank
	}
	switch p.Kind {
	case Pawn:
		return pawnTable[rank][sq.File()]
	case Knight:
		return knightTable[rank][sq.File()]
	case King:
		return kingTable[rank][sq.File()]
	default:
		return 0
	}
}

// mobility counts the squares the piece on from reaches, ignoring king
// safety. Pawns are left to their table.
func (b *board) mobility(from Square) int {
	if b[from].Kind == Pawn {
		return 0
	}
	n := 0
	for to := Square(0); to < 64; to++ {
		if b.reaches(from, to) {
			n++
		}
	}
	return n
}
