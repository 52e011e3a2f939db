package searcher

import (
	"strconv"

	"boardgames/game"

	"golang.org/x/exp/rand"
)

type mockMove int

func (m mockMove) String() string {
	return strconv.Itoa(int(m))
}

// mockState is a hand-built game tree. value is the static evaluation from
// First's point of view.
type mockState struct {
	id       int
	player   game.Player
	winner   game.Player
	value    float64
	children []*mockState
}

func (m *mockState) Player() game.Player {
	return m.player
}

func (m *mockState) LegalMoves(p game.Player) []game.Move {
	if m.winner != game.Nobody {
		return nil
	}
	moves := make([]game.Move, len(m.children))
	for i := range m.children {
		moves[i] = mockMove(i)
	}
	return moves
}

func (m *mockState) Play(move game.Move) game.State {
	return m.children[move.(mockMove)]
}

func (m *mockState) Winner() game.Player {
	return m.winner
}

func (m *mockState) Hash() game.StateHash {
	return game.StateHash(m.id)
}

func evaluateMock(s game.State, p game.Player) float64 {
	v := s.(*mockState).value
	if p == game.Second {
		return -v
	}
	return v
}

func leaf(player game.Player, value float64) *mockState {
	return &mockState{player: player, value: value}
}

func won(winner game.Player) *mockState {
	return &mockState{player: winner.Other(), winner: winner}
}

func node(player game.Player, children ...*mockState) *mockState {
	return &mockState{player: player, children: children}
}

// randomTree alternates players and gives every inner node between two and
// branching children.
func randomTree(r *rand.Rand, depth, branching int, player game.Player) *mockState {
	if depth == 0 {
		return leaf(player, float64(r.Intn(21)-10))
	}
	n := node(player)
	for i := 0; i < 2+r.Intn(branching-1); i++ {
		n.children = append(n.children, randomTree(r, depth-1, branching, player.Other()))
	}
	return n
}
