// Package honeycomb implements the hex-grid line game: four in a row wins,
// but a run of exactly three loses for the player who made it.
package honeycomb

import (
	"fmt"
	"strings"

	"boardgames/game"

	"github.com/pkg/errors"
)

const DefaultRadius = 4

// Hex is an axial coordinate. Cells satisfy max(|Q|, |R|, |Q+R|) <= radius.
type Hex struct {
	Q, R int
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

func (h Hex) distance() int {
	return max(abs(h.Q), abs(h.R), abs(h.Q+h.R))
}

type Move struct {
	Hex
}

type State struct {
	radius  int
	cells   []game.Player
	turn    game.Player
	winner  game.Player
	history *game.History
}

// New returns an empty board of the given radius with First to move.
func New(radius int) *State {
	side := 2*radius + 1
	return &State{radius: radius, cells: make([]game.Player, side*side), turn: game.First}
}

// FromStones builds a position with stones already placed. No win or loss
// is derived from the stones; only a full board ends the game.
func FromStones(radius int, stones map[Hex]game.Player, turn game.Player) (*State, error) {
	if !turn.IsSide() {
		return nil, errors.Errorf("side to move %s is not a side", turn)
	}
	if radius < 1 {
		return nil, errors.Errorf("radius %d is too small", radius)
	}
	s := New(radius)
	s.turn = turn
	for h, p := range stones {
		if !s.Inside(h) {
			return nil, errors.Errorf("%s is outside a board of radius %d", h, radius)
		}
		if !p.IsSide() {
			return nil, errors.Errorf("%s: stone owner %s is not a side", h, p)
		}
		s.cells[s.index(h)] = p
	}
	if s.full() {
		s.winner = game.Draw
	}
	return s, nil
}

func (s *State) Radius() int {
	return s.radius
}

func (s *State) Inside(h Hex) bool {
	return h.distance() <= s.radius
}

// At returns the owner of h, Nobody when empty or off the board.
func (s *State) At(h Hex) game.Player {
	if !s.Inside(h) {
		return game.Nobody
	}
	return s.cells[s.index(h)]
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
	h := game.NewHasher().Int(int(s.turn)).Int(s.radius)
	for _, p := range s.cells {
		h.Int(int(p))
	}
	return h.Sum()
}

// String draws one line per R with rows indented so neighbours line up.
func (s *State) String() string {
	var b strings.Builder
	for r := -s.radius; r <= s.radius; r++ {
		b.WriteString(strings.Repeat(" ", abs(r)))
		for q := -s.radius; q <= s.radius; q++ {
			h := Hex{q, r}
			if !s.Inside(h) {
				continue
			}
			switch s.At(h) {
			case game.First:
				b.WriteString("X ")
			case game.Second:
				b.WriteString("O ")
			default:
				b.WriteString(". ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cells is a square array over q, r in [-radius, radius]; corners outside
// the hexagon are never used.
func (s *State) index(h Hex) int {
	side := 2*s.radius + 1
	return (h.Q+s.radius)*side + h.R + s.radius
}

func (s *State) full() bool {
	for q := -s.radius; q <= s.radius; q++ {
		for r := -s.radius; r <= s.radius; r++ {
			if h := (Hex{q, r}); s.Inside(h) && s.At(h) == game.Nobody {
				return false
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
