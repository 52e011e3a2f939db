package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"boardgames/game"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent work", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 3)

		var wg sync.WaitGroup
		for g := 0; g < 4; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					c.AddNode()
				}
				c.AddCutoff()
				c.AddExtension()
			}()
		}
		wg.Wait()

		m := c.Complete(1.5)
		require.Equal(t, 4, m.Goroutines)
		require.Equal(t, 3, m.Depth)
		require.Equal(t, 400, m.Nodes)
		require.Equal(t, 4, m.Cutoffs)
		require.Equal(t, 4, m.Extensions)
		require.Equal(t, 1.5, m.Score)
	})

	t.Run("dummy only keeps the score", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, 3)
		c.AddNode()

		require.Equal(t, SearchMetric{Score: 2}, c.Complete(2))
	})
}

func TestSummarize(t *testing.T) {
	g1, g2, g3 := uuid.New(), uuid.New(), uuid.New()
	games := []GameRecord{
		{Agent1: 1, Agent2: 2, GameMetric: GameMetric{ID: g1, Winner: game.First}},
		{Agent1: 2, Agent2: 1, GameMetric: GameMetric{ID: g2, Winner: game.First}},
		{Agent1: 1, Agent2: 2, GameMetric: GameMetric{ID: g3, Winner: game.Draw}},
	}
	moves := []MoveRecord{
		{Game: g1, Agent: 1, MoveMetric: MoveMetric{SearchMetric: SearchMetric{Nodes: 10, Duration: time.Second}}},
		{Game: g1, Agent: 1, MoveMetric: MoveMetric{SearchMetric: SearchMetric{Nodes: 30, Duration: 3 * time.Second}}},
		{Game: g1, Agent: 2, MoveMetric: MoveMetric{SearchMetric: SearchMetric{Nodes: 5, Duration: 2 * time.Second}}},
	}

	summaries := Summarize(games, moves)

	require.Len(t, summaries, 2)
	one, two := summaries[0], summaries[1]
	require.Equal(t, Summary{Agent: 1, Games: 3, Wins: 1, Losses: 1, Draws: 1}, Summary{
		Agent: one.Agent, Games: one.Games, Wins: one.Wins, Losses: one.Losses, Draws: one.Draws,
	})
	require.Equal(t, 20.0, one.MeanNodes)
	require.InDelta(t, 14.142, one.StdNodes, 1e-3, "Sample standard deviation")
	require.Equal(t, 2*time.Second, one.MeanDuration)

	require.Equal(t, 2, two.Agent)
	require.Equal(t, 1, two.Wins)
	require.Equal(t, 1, two.Losses)
	require.Equal(t, 5.0, two.MeanNodes)
	require.Equal(t, 2*time.Second, two.MedianDuration)
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)

	id := uuid.New()
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "search", Goroutines: 2, Depth: 4}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{Agent1: 1, Agent2: 1, GameMetric: GameMetric{ID: id, Game: "reversi", Winner: game.Second}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: id, Agent: 1, MoveMetric: MoveMetric{Step: 1, Player: game.First, Move: "d3"}}}))

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2, "Header and one record")
	require.Equal(t, "id", rows[0][0])
	require.Equal(t, id.String(), rows[1][0])
	require.Equal(t, "reversi", rows[1][1])
	require.Equal(t, "second", rows[1][5])
}
