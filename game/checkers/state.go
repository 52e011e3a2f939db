// Package checkers implements draughts on an N×N board with mandatory
// capture, chained jumps and promotion on the far row.
package checkers

import (
	"fmt"
	"strings"

	"boardgames/game"

	"github.com/pkg/errors"
)

const (
	DefaultSize = 8
	// rows of men each side starts with
	setupRows = 3
)

// Square addresses the board; row 0 is Second's home row.
type Square struct {
	Row, Col int
}

func (sq Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+sq.Col, sq.Row+1)
}

type Piece struct {
	Owner game.Player
	King  bool
}

// Move is a step or a single jump. Captured is only meaningful for jumps.
type Move struct {
	From, To Square
	Captured Square
	Jump     bool
}

func (m Move) String() string {
	if m.Jump {
		return m.From.String() + "x" + m.To.String()
	}
	return m.From.String() + "-" + m.To.String()
}

type State struct {
	size   int
	board  []Piece
	turn   game.Player
	winner game.Player
	// active is the piece that must continue a chain when chaining is set
	active   Square
	chaining bool
	history  *game.History
}

// New returns the starting layout on a size×size board with First moving
// up from the bottom rows.
func New(size int) *State {
	s := &State{size: size, board: make([]Piece, size*size), turn: game.First}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !dark(r, c) {
				continue
			}
			switch {
			case r < setupRows:
				s.board[r*size+c] = Piece{Owner: game.Second}
			case r >= size-setupRows:
				s.board[r*size+c] = Piece{Owner: game.First}
			}
		}
	}
	return s
}

// FromRows builds a position from text rows, row 0 first. 'b' and 'B' are
// First's men and kings, 'w' and 'W' Second's, '.' is empty.
func FromRows(rows []string, turn game.Player) (*State, error) {
	if !turn.IsSide() {
		return nil, errors.Errorf("side to move %s is not a side", turn)
	}
	size := len(rows)
	if size < 4 {
		return nil, errors.Errorf("board of %d rows is too small", size)
	}
	s := &State{size: size, board: make([]Piece, size*size), turn: turn}
	for r, row := range rows {
		if len(row) != size {
			return nil, errors.Errorf("row %d: expected %d cells, got %d", r, size, len(row))
		}
		for c, ch := range row {
			var p Piece
			switch ch {
			case 'b':
				p = Piece{Owner: game.First}
			case 'B':
				p = Piece{Owner: game.First, King: true}
			case 'w':
				p = Piece{Owner: game.Second}
			case 'W':
				p = Piece{Owner: game.Second, King: true}
			case '.':
			default:
				return nil, errors.Errorf("row %d: unexpected cell %q", r, ch)
			}
			s.board[r*size+c] = p
		}
	}
	s.settle()
	return s, nil
}

func (s *State) Size() int {
	return s.size
}

// At returns the piece on (row, col); the zero Piece is empty or off board.
func (s *State) At(row, col int) Piece {
	if !s.inside(row, col) {
		return Piece{}
	}
	return s.board[row*s.size+col]
}

// ActivePiece returns the square of the piece that must keep jumping, if a
// chain is in progress.
func (s *State) ActivePiece() (Square, bool) {
	return s.active, s.chaining
}

// Count returns how many men and kings p has.
func (s *State) Count(p game.Player) (men, kings int) {
	for _, piece := range s.board {
		if piece.Owner != p {
			continue
		}
		if piece.King {
			kings++
		} else {
			men++
		}
	}
	return men, kings
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
	h := game.NewHasher().Int(int(s.turn)).Int(s.size)
	if s.chaining {
		h.Int(s.active.Row).Int(s.active.Col)
	} else {
		h.Int(-1)
	}
	for _, piece := range s.board {
		v := int(piece.Owner)
		if piece.King {
			v += 4
		}
		h.Int(v)
	}
	return h.Sum()
}

func (s *State) String() string {
	var b strings.Builder
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			b.WriteByte(pieceChar(s.At(r, c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func pieceChar(p Piece) byte {
	var ch byte
	switch p.Owner {
	case game.First:
		ch = 'b'
	case game.Second:
		ch = 'w'
	default:
		return '.'
	}
	if p.King {
		ch -= 'a' - 'A'
	}
	return ch
}

func dark(row, col int) bool {
	return (row+col)%2 == 1
}

func (s *State) inside(row, col int) bool {
	return row >= 0 && row < s.size && col >= 0 && col < s.size
}

// promotionRow is the far row for p's men.
func (s *State) promotionRow(p game.Player) int {
	if p == game.First {
		return 0
	}
	return s.size - 1
}
