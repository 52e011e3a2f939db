package game

// History is a persistent list of played moves. Appending shares the
// existing prefix, so every snapshot keeps its own history without copying.
type History struct {
	move Move
	prev *History
	size int
}

// Append returns a new history ending with m. A nil history is empty.
func (h *History) Append(m Move) *History {
	return &History{move: m, prev: h, size: h.Len() + 1}
}

func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return h.size
}

// Last returns the most recent move, or nil for an empty history.
func (h *History) Last() Move {
	if h == nil {
		return nil
	}
	return h.move
}

// Moves returns the moves in the order they were played.
func (h *History) Moves() []Move {
	moves := make([]Move, h.Len())
	for node := h; node != nil; node = node.prev {
		moves[node.size-1] = node.move
	}
	return moves
}
