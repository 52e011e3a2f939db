package honeycomb

import "boardgames/game"

const (
	winRun  = 4
	loseRun = 3
)

var axes = [3]Hex{{1, 0}, {0, 1}, {1, -1}}

// GenerateMoves returns every empty cell ordered by Q then R.
func GenerateMoves(s *State, p game.Player) []Move {
	if s.winner != game.Nobody || !p.IsSide() {
		return nil
	}
	var moves []Move
	for q := -s.radius; q <= s.radius; q++ {
		for r := -s.radius; r <= s.radius; r++ {
			h := Hex{q, r}
			if s.Inside(h) && s.At(h) == game.Nobody {
				moves = append(moves, Move{h})
			}
		}
	}
	return moves
}

// ApplyMove places a stone for the side to move. Occupied or off-board
// cells return s unchanged.
func ApplyMove(s *State, m Move) *State {
	if s.winner != game.Nobody || !s.Inside(m.Hex) || s.At(m.Hex) != game.Nobody {
		return s
	}
	return s.apply(m)
}

func IsTerminal(s *State) game.Player {
	return s.winner
}

func (s *State) apply(m Move) *State {
	next := *s
	next.cells = append([]game.Player(nil), s.cells...)
	next.cells[s.index(m.Hex)] = s.turn
	next.history = s.history.Append(m)

	switch outcome(&next, m.Hex, s.turn) {
	case win:
		next.winner = s.turn
	case loss:
		next.winner = s.turn.Other()
	default:
		if next.full() {
			next.winner = game.Draw
		} else {
			next.turn = s.turn.Other()
		}
	}
	return &next
}

type result int

const (
	undecided result = iota
	win
	loss
)

// outcome checks the three axes through h. A win on any axis takes
// precedence over an exact three on another.
func outcome(s *State, h Hex, p game.Player) result {
	res := undecided
	for _, axis := range axes {
		switch n := s.run(h, axis, p); {
		case n >= winRun:
			return win
		case n == loseRun:
			res = loss
		}
	}
	return res
}

// run counts p's stones through h along axis in both directions.
func (s *State) run(h, axis Hex, p game.Player) int {
	n := 1
	for c := (Hex{h.Q + axis.Q, h.R + axis.R}); s.At(c) == p; c = (Hex{c.Q + axis.Q, c.R + axis.R}) {
		n++
	}
	for c := (Hex{h.Q - axis.Q, h.R - axis.R}); s.At(c) == p; c = (Hex{c.Q - axis.Q, c.R - axis.R}) {
		n++
	}
	return n
}
