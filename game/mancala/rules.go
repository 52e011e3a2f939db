package mancala

import "boardgames/game"

// GenerateMoves returns p's non-empty pits in board order.
func GenerateMoves(s *State, p game.Player) []Move {
	if s.winner != game.Nobody || !p.IsSide() {
		return nil
	}
	first, store := s.row(p)
	var moves []Move
	for i := first; i < store; i++ {
		if s.board[i] > 0 {
			moves = append(moves, Move{Pit: i, Seeds: s.board[i]})
		}
	}
	return moves
}

// ApplyMove sows the chosen pit for the side to move. Pits that are empty or
// not the mover's return s unchanged.
func ApplyMove(s *State, m Move) *State {
	if s.winner != game.Nobody || m.Pit < 0 || m.Pit >= len(s.board) {
		return s
	}
	if s.isStore(m.Pit) || s.owner(m.Pit) != s.turn || s.board[m.Pit] == 0 {
		return s
	}
	return s.apply(Move{Pit: m.Pit, Seeds: s.board[m.Pit]})
}

func IsTerminal(s *State) game.Player {
	return s.winner
}

func (s *State) apply(m Move) *State {
	mover := s.turn
	next := &State{
		pits:    s.pits,
		board:   append([]int(nil), s.board...),
		turn:    mover,
		history: s.history.Append(m),
	}

	skip := next.Store(mover.Other())
	seeds := next.board[m.Pit]
	next.board[m.Pit] = 0
	last := m.Pit
	for seeds > 0 {
		last = (last + 1) % len(next.board)
		if last == skip {
			continue
		}
		next.board[last]++
		seeds--
	}

	switch {
	case last == next.Store(mover):
		// extra turn
	case next.owner(last) == mover && next.board[last] == 1:
		// the pit was empty before the last seed landed
		opposite := next.opposite(last)
		next.board[next.Store(mover)] += 1 + next.board[opposite]
		next.board[last] = 0
		next.board[opposite] = 0
		next.turn = mover.Other()
	default:
		next.turn = mover.Other()
	}

	next.finish()
	return next
}

// finish ends the game when either row is empty, sweeping the remaining
// seeds into their owners' stores.
func (s *State) finish() {
	if !s.rowEmpty(game.First) && !s.rowEmpty(game.Second) {
		return
	}
	for _, p := range []game.Player{game.First, game.Second} {
		first, store := s.row(p)
		for i := first; i < store; i++ {
			s.board[store] += s.board[i]
			s.board[i] = 0
		}
	}
	own, other := s.board[s.Store(game.First)], s.board[s.Store(game.Second)]
	switch {
	case own > other:
		s.winner = game.First
	case other > own:
		s.winner = game.Second
	default:
		s.winner = game.Draw
	}
}

func (s *State) rowEmpty(p game.Player) bool {
	first, store := s.row(p)
	for i := first; i < store; i++ {
		if s.board[i] > 0 {
			return false
		}
	}
	return true
}
