package engine

import (
	"testing"

	"boardgames/agent"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/game/connectfour"
	"boardgames/game/mancala"
	"boardgames/searcher"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// scripted drops into the given columns in order.
type scripted struct {
	columns []int
}

func (a *scripted) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	column := a.columns[0]
	a.columns = a.columns[1:]
	for _, m := range state.LegalMoves(state.Player()) {
		if m.(connectfour.Move).Column == column {
			return m, metrics.SearchMetric{Nodes: 1}
		}
	}
	return connectfour.Move{Column: column}, metrics.SearchMetric{}
}

func drop(s game.State, column int) connectfour.Move {
	for _, m := range s.LegalMoves(s.Player()) {
		if m.(connectfour.Move).Column == column {
			return m.(connectfour.Move)
		}
	}
	return connectfour.Move{Column: column, Row: -1}
}

func TestValidate(t *testing.T) {
	s := connectfour.New()

	t.Run("accepts a legal move of the side to move", func(t *testing.T) {
		require.NoError(t, Validate(s, game.First, drop(s, 3)))
	})

	t.Run("rejects the side not to move", func(t *testing.T) {
		err := Validate(s, game.Second, drop(s, 3))
		require.True(t, errors.Is(err, ErrNotYourTurn), "got %v", err)
	})

	t.Run("rejects non-sides", func(t *testing.T) {
		err := Validate(s, game.Draw, drop(s, 3))
		require.True(t, errors.Is(err, ErrNotYourTurn), "got %v", err)
	})

	t.Run("rejects moves not generated", func(t *testing.T) {
		err := Validate(s, game.First, connectfour.Move{Column: 3, Row: 0})
		require.True(t, errors.Is(err, ErrIllegalMove), "got %v", err)
		err = Validate(s, game.First, nil)
		require.True(t, errors.Is(err, ErrIllegalMove), "got %v", err)
	})

	t.Run("rejects moves after the end", func(t *testing.T) {
		over, err := connectfour.FromRows([]string{
			".......",
			".......",
			".......",
			".......",
			".......",
			"RRRRYYY",
		}, game.Second)
		require.NoError(t, err)
		require.ErrorIs(t, Validate(over, game.Second, drop(over, 6)), ErrGameOver)
	})
}

func TestEnginePlay(t *testing.T) {
	e := NewEngine(connectfour.New())
	follow := e.Follow()

	_, ok := follow()
	require.False(t, ok, "No update before the first move")

	require.NoError(t, e.Play(game.First, drop(e.State(), 2)))
	require.Error(t, e.Play(game.First, drop(e.State(), 2)), "First cannot move twice")
	require.NoError(t, e.Play(game.Second, drop(e.State(), 2)))

	u, ok := follow()
	require.True(t, ok)
	require.Equal(t, 1, u.Step)
	require.Equal(t, connectfour.Move{Column: 2, Row: connectfour.Rows - 1}, u.Move)

	u, ok = follow()
	require.True(t, ok)
	require.Equal(t, connectfour.Move{Column: 2, Row: connectfour.Rows - 2}, u.Move)
	require.Equal(t, e.State().Hash(), u.Hash)

	_, ok = follow()
	require.False(t, ok)
	require.Len(t, e.State().(*connectfour.State).History(), 2)
}

func TestLocalRun(t *testing.T) {
	t.Run("connect four bottom row", func(t *testing.T) {
		red := &scripted{columns: []int{0, 1, 2, 3}}
		yellow := &scripted{columns: []int{6, 6, 6}}
		l := LocalEngine("connectfour", connectfour.New(), []agent.Agent{red, yellow})

		winner, gameMetric, moveMetrics := l.Run()

		require.Equal(t, game.First, winner)
		require.Equal(t, game.First, gameMetric.Winner)
		require.Equal(t, "connectfour", gameMetric.Game)
		require.Equal(t, 7, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 7)
		require.Equal(t, game.First, moveMetrics[6].Player)

		final := l.State().(*connectfour.State)
		require.Equal(t, game.First, connectfour.IsTerminal(final))
		bottom := connectfour.Rows - 1
		require.ElementsMatch(t, []connectfour.Cell{
			{Row: bottom, Col: 0}, {Row: bottom, Col: 1}, {Row: bottom, Col: 2}, {Row: bottom, Col: 3},
		}, final.WinningLine())
	})

	t.Run("illegal move forfeits", func(t *testing.T) {
		red := &scripted{columns: []int{0, 0, 0, 1}}
		yellow := &scripted{columns: []int{0, 0, 0, 0}}
		l := LocalEngine("connectfour", connectfour.New(), []agent.Agent{red, yellow})

		winner, _, moveMetrics := l.Run()

		require.Equal(t, game.First, winner, "Second dropped into a full column")
		require.Len(t, moveMetrics, 7)
	})

	t.Run("turn limit", func(t *testing.T) {
		agents := []agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}
		l := LocalEngine("connectfour", connectfour.New(), agents, WithMaxTurns(3))

		winner, gameMetric, moveMetrics := l.Run()

		require.Equal(t, game.Nobody, winner)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 3)
	})

	t.Run("search agents finish mancala", func(t *testing.T) {
		newAgent := func() agent.Agent {
			return agent.NewSearchAgent(searcher.NewAlphaBeta(2, searcher.WithDepth(2), searcher.WithEvaluationFn(mancala.Evaluate)))
		}
		l := LocalEngine("mancala", mancala.New(mancala.DefaultPits, mancala.DefaultSeeds), []agent.Agent{newAgent(), newAgent()})

		winner, gameMetric, moveMetrics := l.Run()

		require.NotEqual(t, game.Nobody, winner)
		require.Equal(t, winner, l.State().Winner())
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			require.NotEmpty(t, m.Move)
		}
	})

	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine("connectfour", connectfour.New(), []agent.Agent{agent.NewRandomAgent(1)})
		})
	})
}
