// Package chess implements chess without castling or en passant. Pawns
// always promote to queens.
package chess

import (
	"fmt"
	"strings"

	"boardgames/game"

	nchess "github.com/notnil/chess"
	"github.com/pkg/errors"
)

// Kind is the tagged piece type every movement rule switches on.
type Kind int8

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	return string(" pnbrqk"[k])
}

// Piece is owned by First (white) or Second (black).
type Piece struct {
	Owner game.Player
	Kind  Kind
}

// Square numbers the board a1=0, b1=1 ... h8=63.
type Square int8

func NewSquare(rank, file int) Square {
	return Square(rank*8 + file)
}

func (sq Square) Rank() int {
	return int(sq) / 8
}

func (sq Square) File() int {
	return int(sq) % 8
}

func (sq Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.Rank()+1)
}

type Move struct {
	From, To  Square
	Promotion Kind
}

func (m Move) String() string {
	if m.Promotion != None {
		return m.From.String() + m.To.String() + m.Promotion.String()
	}
	return m.From.String() + m.To.String()
}

type board [64]Piece

type State struct {
	board   board
	turn    game.Player
	winner  game.Player
	history *game.History
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// New returns the standard starting position with white to move.
func New() *State {
	s := &State{turn: game.First}
	for f, k := range backRank {
		s.board[NewSquare(0, f)] = Piece{Owner: game.First, Kind: k}
		s.board[NewSquare(1, f)] = Piece{Owner: game.First, Kind: Pawn}
		s.board[NewSquare(6, f)] = Piece{Owner: game.Second, Kind: Pawn}
		s.board[NewSquare(7, f)] = Piece{Owner: game.Second, Kind: k}
	}
	return s
}

var fenKinds = map[nchess.PieceType]Kind{
	nchess.Pawn:   Pawn,
	nchess.Knight: Knight,
	nchess.Bishop: Bishop,
	nchess.Rook:   Rook,
	nchess.Queen:  Queen,
	nchess.King:   King,
}

// FromFEN builds a position from a FEN record. Castling rights and the en
// passant square are ignored.
func FromFEN(fen string) (*State, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, errors.WithMessagef(err, "parse fen %q", fen)
	}
	pos := nchess.NewGame(opt).Position()

	s := &State{turn: game.First}
	if pos.Turn() == nchess.Black {
		s.turn = game.Second
	}
	kings := map[game.Player]int{}
	for sq, p := range pos.Board().SquareMap() {
		if p == nchess.NoPiece {
			continue
		}
		owner := game.First
		if p.Color() == nchess.Black {
			owner = game.Second
		}
		kind := fenKinds[p.Type()]
		if kind == King {
			kings[owner]++
		}
		s.board[sq] = Piece{Owner: owner, Kind: kind}
	}
	if kings[game.First] != 1 || kings[game.Second] != 1 {
		return nil, errors.Errorf("fen %q: each side needs exactly one king", fen)
	}
	if s.InCheck(s.turn.Other()) {
		return nil, errors.Errorf("fen %q: %s is in check but not to move", fen, s.turn.Other())
	}
	s.settle()
	return s, nil
}

func (s *State) At(sq Square) Piece {
	return s.board[sq]
}

// InCheck reports whether p's king is attacked.
func (s *State) InCheck(p game.Player) bool {
	return s.board.attacked(s.board.king(p), p.Other())
}

func (s *State) History() []game.Move {
	return s.history.Moves()
}

func (s *State) Player() game.Player {
	return s.turn
}

func (s *State) Winner() game.Player {
	return s.winner
}

func (s *State) LegalMoves(p game.Player) []game.Move {
	moves := GenerateMoves(s, p)
	generic := make([]game.Move, len(moves))
	for i, m := range moves {
		generic[i] = m
	}
	return generic
}

func (s *State) Play(m game.Move) game.State {
	return s.apply(m.(Move))
}

func (s *State) Hash() game.StateHash {
	h := game.NewHasher().Int(int(s.turn))
	for _, p := range s.board {
		h.Int(int(p.Owner)<<4 | int(p.Kind))
	}
	return h.Sum()
}

// String draws the board from rank 8 down, white pieces in upper case.
func (s *State) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			p := s.board[NewSquare(rank, file)]
			switch p.Owner {
			case game.First:
				b.WriteString(strings.ToUpper(p.Kind.String()))
			case game.Second:
				b.WriteString(p.Kind.String())
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
