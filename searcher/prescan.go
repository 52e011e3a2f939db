package searcher

import "boardgames/game"

// prescan returns a move that wins on the spot, or else the moves that
// neither lose on the spot nor give the opponent an immediate win.
func prescan(s game.State, root game.Player, moves []game.Move) (win game.Move, safe []game.Move) {
	children := make([]game.State, len(moves))
	for i, m := range moves {
		children[i] = s.Play(m)
		if children[i].Winner() == root {
			return m, nil
		}
	}
	for i, m := range moves {
		if children[i].Winner() != root.Other() && !winsNext(children[i], root.Other()) {
			safe = append(safe, m)
		}
	}
	return nil, safe
}

// winsNext reports whether p is to move in s and has a move that wins.
func winsNext(s game.State, p game.Player) bool {
	if s.Winner() != game.Nobody || s.Player() != p {
		return false
	}
	for _, m := range s.LegalMoves(p) {
		if s.Play(m).Winner() == p {
			return true
		}
	}
	return false
}
