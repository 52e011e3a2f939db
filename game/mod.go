package game

import "fmt"

// Move is one legal transition of a game. Every game defines its own
// comparable move value; moves are always taken from State.LegalMoves.
type Move interface {
	fmt.Stringer
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	// Player returns the side to move.
	Player() Player
	// LegalMoves enumerates every legal move of p in a deterministic order.
	// It is empty exactly when p cannot move.
	LegalMoves(p Player) []Move
	// Play applies a move returned by LegalMoves(Player()).
	Play(Move) State
	// Winner returns Nobody while the game continues.
	Winner() Player
	Hash() StateHash
}

// Evaluates the game state to a score indicating how favorable the position
// is for p. Larger is better for p.
type Evaluate func(s State, p Player) float64

// Contains reports whether m is one of moves.
func Contains(moves []Move, m Move) bool {
	for _, legal := range moves {
		if legal == m {
			return true
		}
	}
	return false
}
