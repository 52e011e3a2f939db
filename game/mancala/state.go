// Package mancala implements two-row sowing with stores, extra turns and
// captures from the opposite pit.
package mancala

import (
	"fmt"
	"strings"

	"boardgames/game"

	"github.com/pkg/errors"
)

const (
	DefaultPits  = 6
	DefaultSeeds = 4
)

// Move sows the seeds of Pit, an index into the circular board.
type Move struct {
	Pit   int
	Seeds int
}

func (m Move) String() string {
	return fmt.Sprintf("sow %d (%d seeds)", m.Pit, m.Seeds)
}

// State holds pits and stores in one circular slice: First's pits
// [0, pits), First's store at pits, Second's pits (pits, 2*pits] and
// Second's store at 2*pits+1.
type State struct {
	pits    int
	board   []int
	turn    game.Player
	winner  game.Player
	history *game.History
}

// New returns the initial layout with seeds in every pit and empty stores.
func New(pits, seeds int) *State {
	s := &State{pits: pits, board: make([]int, 2*pits+2), turn: game.First}
	for i := range s.board {
		if !s.isStore(i) {
			s.board[i] = seeds
		}
	}
	return s
}

// FromBoard builds a position from a full board slice laid out like State.
func FromBoard(board []int, turn game.Player) (*State, error) {
	if !turn.IsSide() {
		return nil, errors.Errorf("side to move %s is not a side", turn)
	}
	if len(board) < 4 || len(board)%2 != 0 {
		return nil, errors.Errorf("board of %d slots is not two rows plus stores", len(board))
	}
	s := &State{pits: len(board)/2 - 1, board: append([]int(nil), board...), turn: turn}
	for i, seeds := range s.board {
		if seeds < 0 {
			return nil, errors.Errorf("slot %d has negative seeds", i)
		}
	}
	s.finish()
	return s, nil
}

func (s *State) Pits() int {
	return s.pits
}

// Board returns a copy of every pit and store.
func (s *State) Board() []int {
	return append([]int(nil), s.board...)
}

func (s *State) Seeds(i int) int {
	return s.board[i]
}

// Store returns the index of p's store.
func (s *State) Store(p game.Player) int {
	if p == game.Second {
		return 2*s.pits + 1
	}
	return s.pits
}

// Total returns the seeds on the whole board, stores included.
func (s *State) Total() int {
	total := 0
	for _, seeds := range s.board {
		total += seeds
	}
	return total
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
	for _, seeds := range s.board {
		h.Int(seeds)
	}
	return h.Sum()
}

func (s *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%2d |", s.board[s.Store(game.Second)])
	for i := 2 * s.pits; i > s.pits; i-- {
		fmt.Fprintf(&b, " %2d", s.board[i])
	}
	b.WriteString("\n   |")
	for i := 0; i < s.pits; i++ {
		fmt.Fprintf(&b, " %2d", s.board[i])
	}
	fmt.Fprintf(&b, " | %2d\n", s.board[s.Store(game.First)])
	return b.String()
}

func (s *State) isStore(i int) bool {
	return i == s.pits || i == 2*s.pits+1
}

// owner returns the side whose row or store contains slot i.
func (s *State) owner(i int) game.Player {
	if i <= s.pits {
		return game.First
	}
	return game.Second
}

// row returns the first pit index and the store index of p's side.
func (s *State) row(p game.Player) (first, store int) {
	if p == game.Second {
		return s.pits + 1, 2*s.pits + 1
	}
	return 0, s.pits
}

func (s *State) opposite(i int) int {
	return 2*s.pits - i
}
