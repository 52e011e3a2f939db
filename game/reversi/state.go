// Package reversi implements Othello on an 8x8 board.
package reversi

import (
	"fmt"
	"math/bits"
	"strings"

	"boardgames/game"

	"github.com/pkg/errors"
)

const Size = 8

// Move places a disc on (Row, Col). Flips is the mask of discs it turns,
// bit r*Size+c for each flipped cell.
type Move struct {
	Row, Col int
	Flips    uint64
}

func (m Move) String() string {
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

// FlipCount returns how many discs the move turns over.
func (m Move) FlipCount() int {
	return bits.OnesCount64(m.Flips)
}

type State struct {
	board   [Size * Size]game.Player
	turn    game.Player
	winner  game.Player
	history *game.History
}

// New returns the standard opening with First (black) to move.
func New() *State {
	s := &State{turn: game.First}
	mid := Size / 2
	s.board[(mid-1)*Size+mid-1], s.board[mid*Size+mid] = game.Second, game.Second
	s.board[(mid-1)*Size+mid], s.board[mid*Size+mid-1] = game.First, game.First
	return s
}

// FromRows builds a position from text rows where 'B' is First, 'W' is
// Second and '.' is empty. If turn cannot move the other side moves, and a
// position where nobody can move is finished.
func FromRows(rows []string, turn game.Player) (*State, error) {
	if !turn.IsSide() {
		return nil, errors.Errorf("side to move %s is not a side", turn)
	}
	if len(rows) != Size {
		return nil, errors.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	s := &State{turn: turn}
	for r, row := range rows {
		if len(row) != Size {
			return nil, errors.Errorf("row %d: expected %d cells, got %d", r, Size, len(row))
		}
		for c, ch := range strings.ToUpper(row) {
			switch ch {
			case 'B':
				s.board[r*Size+c] = game.First
			case 'W':
				s.board[r*Size+c] = game.Second
			case '.':
			default:
				return nil, errors.Errorf("row %d: unexpected cell %q", r, ch)
			}
		}
	}
	s.settleTurn(turn.Other())
	return s, nil
}

func (s *State) At(row, col int) game.Player {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return game.Nobody
	}
	return s.board[row*Size+col]
}

// Count returns the number of discs p has on the board.
func (s *State) Count(p game.Player) int {
	n := 0
	for _, owner := range s.board {
		if owner == p {
			n++
		}
	}
	return n
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
	for _, owner := range s.board {
		h.Int(int(owner))
	}
	return h.Sum()
}

func (s *State) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch s.At(r, c) {
			case game.First:
				b.WriteByte('B')
			case game.Second:
				b.WriteByte('W')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
