package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testMove string

func (m testMove) String() string { return string(m) }

func TestHistory(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		var h *History

		require.Equal(t, 0, h.Len(), "Nil history should be empty")
		require.Nil(t, h.Last(), "Empty history has no last move")
		require.Empty(t, h.Moves(), "Empty history has no moves")
	})

	t.Run("branches share their prefix", func(t *testing.T) {
		var root *History
		trunk := root.Append(testMove("a")).Append(testMove("b"))
		left := trunk.Append(testMove("c"))
		right := trunk.Append(testMove("d"))

		require.Equal(t, []Move{testMove("a"), testMove("b")}, trunk.Moves(), "Appending should not modify the parent")
		require.Equal(t, []Move{testMove("a"), testMove("b"), testMove("c")}, left.Moves())
		require.Equal(t, []Move{testMove("a"), testMove("b"), testMove("d")}, right.Moves())
		require.Equal(t, testMove("d"), right.Last())
	})
}

func TestPlayer(t *testing.T) {
	require.Equal(t, Second, First.Other())
	require.Equal(t, First, Second.Other())
	require.Equal(t, Draw, Draw.Other(), "Draw has no opponent")
	require.False(t, Nobody.IsSide())
	require.Equal(t, 1.0, Sign(First, First))
	require.Equal(t, -1.0, Sign(First, Second))
	require.Equal(t, 0.0, Sign(First, Draw))
}

func TestContains(t *testing.T) {
	moves := []Move{testMove("a"), testMove("b")}

	require.True(t, Contains(moves, testMove("b")))
	require.False(t, Contains(moves, testMove("c")))
}
