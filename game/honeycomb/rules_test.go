package honeycomb

import (
	"testing"

	"boardgames/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func stones(first, second []Hex) map[Hex]game.Player {
	m := map[Hex]game.Player{}
	for _, h := range first {
		m[h] = game.First
	}
	for _, h := range second {
		m[h] = game.Second
	}
	return m
}

func TestGenerateMoves(t *testing.T) {
	require.Len(t, GenerateMoves(New(DefaultRadius), game.First), 61)
	require.Len(t, GenerateMoves(New(1), game.First), 7)

	s := ApplyMove(New(DefaultRadius), Move{Hex{0, 0}})
	require.Len(t, GenerateMoves(s, game.Second), 60)
	require.Same(t, s, ApplyMove(s, Move{Hex{0, 0}}), "Occupied cells are rejected")
	require.Same(t, s, ApplyMove(s, Move{Hex{5, 0}}), "Cells off the board are rejected")
}

func TestOutcome(t *testing.T) {
	t.Run("four in a row wins", func(t *testing.T) {
		s, err := FromStones(DefaultRadius, stones([]Hex{{-1, 0}, {0, 0}, {2, 0}}, []Hex{{0, 1}, {1, 1}, {-1, 2}}), game.First)
		require.NoError(t, err)

		next := ApplyMove(s, Move{Hex{1, 0}})

		require.Equal(t, game.First, IsTerminal(next))
	})

	t.Run("longer runs also win", func(t *testing.T) {
		s, err := FromStones(DefaultRadius, stones([]Hex{{-2, 0}, {-1, 0}, {1, 0}, {2, 0}}, nil), game.First)
		require.NoError(t, err)

		require.Equal(t, game.First, IsTerminal(ApplyMove(s, Move{Hex{0, 0}})))
	})

	t.Run("exactly three loses for the mover", func(t *testing.T) {
		s, err := FromStones(DefaultRadius, stones([]Hex{{0, 0}, {1, 0}}, []Hex{{0, 2}}), game.First)
		require.NoError(t, err)

		next := ApplyMove(s, Move{Hex{2, 0}})

		require.Equal(t, game.Second, IsTerminal(next))
		require.Empty(t, GenerateMoves(next, game.Second), "No moves after the game ends")
	})

	t.Run("win takes precedence over a simultaneous three", func(t *testing.T) {
		s, err := FromStones(DefaultRadius, stones(
			[]Hex{{0, 0}, {1, 0}, {3, 0}, {2, -1}, {2, -2}},
			[]Hex{{-1, 1}, {-2, 2}, {0, 2}, {-3, 3}},
		), game.First)
		require.NoError(t, err)

		next := ApplyMove(s, Move{Hex{2, 0}})

		require.Equal(t, 4, next.run(Hex{2, 0}, Hex{1, 0}, game.First))
		require.Equal(t, 3, next.run(Hex{2, 0}, Hex{0, 1}, game.First))
		require.Equal(t, game.First, IsTerminal(next), "Four on one axis beats three on another")
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		s, err := FromStones(1, stones(
			[]Hex{{-1, 0}, {0, 1}, {1, -1}},
			[]Hex{{0, 0}, {-1, 1}, {0, -1}},
		), game.First)
		require.NoError(t, err)
		require.Equal(t, game.Nobody, IsTerminal(s))

		next := ApplyMove(s, Move{Hex{1, 0}})

		require.Equal(t, game.Draw, IsTerminal(next))
	})
}

func TestFromStones(t *testing.T) {
	_, err := FromStones(2, stones([]Hex{{3, 0}}, nil), game.First)
	require.Error(t, err)

	_, err = FromStones(0, nil, game.First)
	require.Error(t, err)

	_, err = FromStones(2, nil, game.Draw)
	require.Error(t, err, "Draw cannot be the side to move")
}

func TestRandomGames(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for g := 0; g < 20; g++ {
		s := New(DefaultRadius)
		for IsTerminal(s) == game.Nobody {
			moves := GenerateMoves(s, s.Player())
			require.NotEmpty(t, moves)
			before := s.Hash()

			next := ApplyMove(s, moves[r.Intn(len(moves))])

			require.Equal(t, before, s.Hash(), "Applying a move must not mutate its input")
			require.Len(t, next.History(), len(s.History())+1)
			s = next
		}
	}
}

func TestEvaluate(t *testing.T) {
	centre, err := FromStones(DefaultRadius, stones([]Hex{{0, 0}}, nil), game.Second)
	require.NoError(t, err)
	edge, err := FromStones(DefaultRadius, stones([]Hex{{4, 0}}, nil), game.Second)
	require.NoError(t, err)

	require.Greater(t, Evaluate(centre, game.First), Evaluate(edge, game.First))
	require.Equal(t, -Evaluate(centre, game.First), Evaluate(centre, game.Second))
}
