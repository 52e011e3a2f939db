package connectfour

import "boardgames/game"

// axes are scanned in both directions from the placed cell.
var axes = [4]Cell{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// GenerateMoves returns one move per column that is not full, left to right.
func GenerateMoves(s *State, p game.Player) []Move {
	if s.winner != game.Nobody || !p.IsSide() {
		return nil
	}
	moves := make([]Move, 0, Columns)
	for c := 0; c < Columns; c++ {
		if r := s.landingRow(c); r >= 0 {
			moves = append(moves, Move{Column: c, Row: r})
		}
	}
	return moves
}

// ApplyMove drops a piece for the side to move. Drops into a full column, or
// after the game is over, return s unchanged.
func ApplyMove(s *State, m Move) *State {
	if s.winner != game.Nobody || m.Column < 0 || m.Column >= Columns {
		return s
	}
	r := s.landingRow(m.Column)
	if r < 0 {
		return s
	}
	return s.apply(Move{Column: m.Column, Row: r})
}

func IsTerminal(s *State) game.Player {
	return s.winner
}

func (s *State) apply(m Move) *State {
	next := *s
	next.board[m.Row*Columns+m.Column] = s.turn
	next.history = s.history.Append(m)

	if line := next.runThrough(m.Row, m.Column, s.turn); len(line) >= Connect {
		next.winner = s.turn
		next.line = line
		return &next
	}
	if next.full() {
		next.winner = game.Draw
		return &next
	}
	next.turn = s.turn.Other()
	return &next
}

// runThrough returns the longest same-colored run through (row, col) over
// the four axes.
func (s *State) runThrough(row, col int, owner game.Player) []Cell {
	var best []Cell
	for _, axis := range axes {
		r, c := row, col
		for s.At(r-axis.Row, c-axis.Col) == owner {
			r, c = r-axis.Row, c-axis.Col
		}
		var line []Cell
		for s.At(r, c) == owner {
			line = append(line, Cell{r, c})
			r, c = r+axis.Row, c+axis.Col
		}
		if len(line) > len(best) {
			best = line
		}
	}
	return best
}
