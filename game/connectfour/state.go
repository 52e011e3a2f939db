// Package connectfour implements the 6x7 gravity drop game.
package connectfour

import (
	"fmt"
	"strings"

	"boardgames/game"

	"github.com/pkg/errors"
)

const (
	Rows    = 6
	Columns = 7
	Connect = 4
)

// Cell addresses the board; row 0 is the top row and Rows-1 the bottom.
type Cell struct {
	Row, Col int
}

// Move drops a piece into Column. Row is the cell the piece lands on.
type Move struct {
	Column int
	Row    int
}

func (m Move) String() string {
	return fmt.Sprintf("drop %d", m.Column)
}

type State struct {
	board   [Rows * Columns]game.Player
	turn    game.Player
	winner  game.Player
	line    []Cell
	history *game.History
}

// New returns an empty board with First (red) to move.
func New() *State {
	return &State{turn: game.First}
}

// FromRows builds a position from text rows, top row first, where 'R' is
// First, 'Y' is Second and '.' is empty.
func FromRows(rows []string, turn game.Player) (*State, error) {
	if !turn.IsSide() {
		return nil, errors.Errorf("side to move %s is not a side", turn)
	}
	if len(rows) != Rows {
		return nil, errors.Errorf("expected %d rows, got %d", Rows, len(rows))
	}
	s := &State{turn: turn}
	for r, row := range rows {
		if len(row) != Columns {
			return nil, errors.Errorf("row %d: expected %d columns, got %d", r, Columns, len(row))
		}
		for c, ch := range strings.ToUpper(row) {
			switch ch {
			case 'R':
				s.board[r*Columns+c] = game.First
			case 'Y':
				s.board[r*Columns+c] = game.Second
			case '.':
			default:
				return nil, errors.Errorf("row %d: unexpected cell %q", r, ch)
			}
		}
	}
	for r := 0; r < Rows && s.winner == game.Nobody; r++ {
		for c := 0; c < Columns; c++ {
			owner := s.At(r, c)
			if owner == game.Nobody {
				continue
			}
			if line := s.runThrough(r, c, owner); len(line) >= Connect {
				s.winner, s.line = owner, line
				break
			}
		}
	}
	if s.winner == game.Nobody && s.full() {
		s.winner = game.Draw
	}
	return s, nil
}

// At returns the owner of a cell, Nobody when it is empty or off the board.
func (s *State) At(row, col int) game.Player {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return game.Nobody
	}
	return s.board[row*Columns+col]
}

// WinningLine returns the run that decided the game, ordered from one end to
// the other, or nil when there is none.
func (s *State) WinningLine() []Cell {
	return append([]Cell(nil), s.line...)
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
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			switch s.At(r, c) {
			case game.First:
				b.WriteByte('R')
			case game.Second:
				b.WriteByte('Y')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *State) landingRow(col int) int {
	for r := Rows - 1; r >= 0; r-- {
		if s.board[r*Columns+col] == game.Nobody {
			return r
		}
	}
	return -1
}

func (s *State) full() bool {
	for c := 0; c < Columns; c++ {
		if s.board[c] == game.Nobody {
			return false
		}
	}
	return true
}
