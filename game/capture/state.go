// Package capture implements a Go-like placement game on an N×N grid that
// ends when a side reaches its capture goal.
package capture

import (
	"fmt"
	"strings"

	"boardgames/game"

	"github.com/pkg/errors"
)

const (
	DefaultSize = 9
	DefaultGoal = 1
)

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

type Move struct {
	Point
}

// Group is a connected set of stones of one owner and the empty points
// adjacent to it.
type Group struct {
	Owner     game.Player
	Stones    []Point
	Liberties []Point
}

type State struct {
	size     int
	goal     int
	board    []game.Player
	captured [2]int
	turn     game.Player
	winner   game.Player
	history  *game.History
}

// New returns an empty size×size board where the first side to capture
// goal stones wins.
func New(size, goal int) *State {
	return &State{size: size, goal: goal, board: make([]game.Player, size*size), turn: game.First}
}

// FromRows builds a position from text rows where 'B' is First, 'W' is
// Second and '.' is empty. Groups without liberties are rejected.
func FromRows(rows []string, turn game.Player, goal int) (*State, error) {
	if !turn.IsSide() {
		return nil, errors.Errorf("side to move %s is not a side", turn)
	}
	size := len(rows)
	if size < 2 {
		return nil, errors.Errorf("board of %d rows is too small", size)
	}
	if goal < 1 {
		return nil, errors.Errorf("capture goal %d must be positive", goal)
	}
	s := New(size, goal)
	s.turn = turn
	for r, row := range rows {
		if len(row) != size {
			return nil, errors.Errorf("row %d: expected %d points, got %d", r, size, len(row))
		}
		for c, ch := range strings.ToUpper(row) {
			switch ch {
			case 'B':
				s.board[r*size+c] = game.First
			case 'W':
				s.board[r*size+c] = game.Second
			case '.':
			default:
				return nil, errors.Errorf("row %d: unexpected point %q", r, ch)
			}
		}
	}
	for _, g := range s.Groups() {
		if len(g.Liberties) == 0 {
			return nil, errors.Errorf("group at %s has no liberties", g.Stones[0])
		}
	}
	s.settle()
	return s, nil
}

func (s *State) Size() int {
	return s.size
}

func (s *State) Goal() int {
	return s.goal
}

// At returns the stone on pt, Nobody when empty or off the board.
func (s *State) At(pt Point) game.Player {
	if !s.inside(pt) {
		return game.Nobody
	}
	return s.board[pt.Row*s.size+pt.Col]
}

// Captured returns how many enemy stones p has removed.
func (s *State) Captured(p game.Player) int {
	if !p.IsSide() {
		return 0
	}
	return s.captured[p-game.First]
}

// GroupAt returns the group containing pt. The zero Group is returned for
// empty points.
func (s *State) GroupAt(pt Point) Group {
	owner := s.At(pt)
	if owner == game.Nobody {
		return Group{}
	}
	return s.flood(pt, make([]bool, len(s.board)))
}

// Groups returns every group on the board, ordered by their first stone.
func (s *State) Groups() []Group {
	seen := make([]bool, len(s.board))
	var groups []Group
	for i, owner := range s.board {
		if owner == game.Nobody || seen[i] {
			continue
		}
		groups = append(groups, s.flood(Point{i / s.size, i % s.size}, seen))
	}
	return groups
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
	h := game.NewHasher().Int(int(s.turn)).Int(s.captured[0]).Int(s.captured[1])
	for _, p := range s.board {
		h.Int(int(p))
	}
	return h.Sum()
}

func (s *State) String() string {
	var b strings.Builder
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			switch s.At(Point{r, c}) {
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

func (s *State) inside(pt Point) bool {
	return pt.Row >= 0 && pt.Row < s.size && pt.Col >= 0 && pt.Col < s.size
}

func (s *State) neighbours(pt Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if n := (Point{pt.Row + d.Row, pt.Col + d.Col}); s.inside(n) {
			out = append(out, n)
		}
	}
	return out
}

// flood collects the group at start, marking its stones in seen.
func (s *State) flood(start Point, seen []bool) Group {
	g := Group{Owner: s.At(start)}
	libs := make(map[Point]bool)
	stack := []Point{start}
	seen[start.Row*s.size+start.Col] = true
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		g.Stones = append(g.Stones, pt)
		for _, n := range s.neighbours(pt) {
			switch s.At(n) {
			case game.Nobody:
				if !libs[n] {
					libs[n] = true
					g.Liberties = append(g.Liberties, n)
				}
			case g.Owner:
				if i := n.Row*s.size + n.Col; !seen[i] {
					seen[i] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return g
}
