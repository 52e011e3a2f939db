package connectfour

import (
	"testing"

	"boardgames/game"

	"github.com/stretchr/testify/require"
)

func play(t *testing.T, s *State, columns ...int) *State {
	t.Helper()
	for _, c := range columns {
		next := ApplyMove(s, Move{Column: c})
		require.NotSame(t, s, next, "Drop into column %d should be legal", c)
		s = next
	}
	return s
}

func TestGenerateMoves(t *testing.T) {
	t.Run("empty board offers every column on the bottom row", func(t *testing.T) {
		moves := GenerateMoves(New(), game.First)

		require.Len(t, moves, Columns)
		for c, m := range moves {
			require.Equal(t, Move{Column: c, Row: Rows - 1}, m)
		}
	})

	t.Run("full column is not offered", func(t *testing.T) {
		s := play(t, New(), 0, 0, 0, 0, 0, 0)

		for _, m := range GenerateMoves(s, s.Player()) {
			require.NotEqual(t, 0, m.Column, "Full column should not be generated")
		}
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("pieces stack with gravity", func(t *testing.T) {
		s := play(t, New(), 3, 3)

		require.Equal(t, game.First, s.At(Rows-1, 3))
		require.Equal(t, game.Second, s.At(Rows-2, 3))
		require.Equal(t, game.First, s.Player(), "Turn should alternate")
	})

	t.Run("dropping into a full column is rejected", func(t *testing.T) {
		s := play(t, New(), 2, 2, 2, 2, 2, 2)

		got := ApplyMove(s, Move{Column: 2})

		require.Same(t, s, got, "State should be returned unchanged")
	})

	t.Run("input state is not mutated", func(t *testing.T) {
		s := New()
		_ = ApplyMove(s, Move{Column: 4})

		require.Equal(t, game.Nobody, s.At(Rows-1, 4))
		require.Empty(t, s.History())
	})
}

func TestWinDetection(t *testing.T) {
	t.Run("red wins along the bottom row", func(t *testing.T) {
		s := play(t, New(), 0, 6, 1, 6, 2, 6, 3)

		require.Equal(t, game.First, IsTerminal(s))
		require.Equal(t, []Cell{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, s.WinningLine())
		require.Empty(t, GenerateMoves(s, game.Second), "No moves after the game is over")
		require.Len(t, s.History(), 7)
	})

	t.Run("vertical and diagonal runs", func(t *testing.T) {
		s := play(t, New(), 0, 1, 0, 1, 0, 1, 0)
		require.Equal(t, game.First, IsTerminal(s))
		require.Len(t, s.WinningLine(), 4)

		s, err := FromRows([]string{
			".......",
			".......",
			"...R...",
			"..RY...",
			".RYY...",
			"RYYR...",
		}, game.Second)
		require.NoError(t, err)
		require.Equal(t, game.First, IsTerminal(s), "Diagonal run should already be decided")
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		s, err := FromRows([]string{
			"RRYRRY.",
			"YYRYYRY",
			"RRYRRYR",
			"YYRYYRY",
			"RRYRRYR",
			"YYRYYRY",
		}, game.First)
		require.NoError(t, err)
		require.Equal(t, game.Nobody, IsTerminal(s))

		s = ApplyMove(s, Move{Column: 6})

		require.Equal(t, game.Draw, IsTerminal(s))
		require.Nil(t, s.WinningLine())
	})
}

func TestEvaluate(t *testing.T) {
	s, err := FromRows([]string{
		".......",
		".......",
		".......",
		".......",
		".......",
		"RRR....",
	}, game.Second)
	require.NoError(t, err)

	require.Greater(t, Evaluate(s, game.First), 0.0, "Open three should favor its owner")
	require.Less(t, Evaluate(s, game.Second), 0.0, "Open three should count against the opponent")
}

func TestFromRows(t *testing.T) {
	empty := []string{".......", ".......", ".......", ".......", ".......", "......."}

	_, err := FromRows(empty, game.Nobody)
	require.Error(t, err, "Nobody cannot be the side to move")
	_, err = FromRows(empty[:5], game.First)
	require.Error(t, err)
	_, err = FromRows([]string{".......", ".......", ".......", ".......", ".......", "...X..."}, game.First)
	require.Error(t, err)
}
