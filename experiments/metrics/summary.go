package metrics

import (
	"sort"
	"time"

	"boardgames/game"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates one agent's results over an experiment.
type Summary struct {
	Agent          int
	Games          int
	Wins           int
	Losses         int
	Draws          int
	MeanNodes      float64
	StdNodes       float64
	MeanDuration   time.Duration
	MedianDuration time.Duration
}

// Summarize returns one summary per agent that appears in games, ordered by
// agent ID. Unfinished games count as draws.
func Summarize(games []GameRecord, moves []MoveRecord) []Summary {
	byAgent := map[int]*Summary{}
	get := func(agent int) *Summary {
		s, ok := byAgent[agent]
		if !ok {
			s = &Summary{Agent: agent}
			byAgent[agent] = s
		}
		return s
	}

	for _, g := range games {
		first, second := get(g.Agent1), get(g.Agent2)
		first.Games++
		second.Games++
		switch g.Winner {
		case game.First:
			first.Wins++
			second.Losses++
		case game.Second:
			second.Wins++
			first.Losses++
		default:
			first.Draws++
			second.Draws++
		}
	}

	nodes := map[int][]float64{}
	durations := map[int][]float64{}
	for _, m := range moves {
		nodes[m.Agent] = append(nodes[m.Agent], float64(m.Nodes))
		durations[m.Agent] = append(durations[m.Agent], float64(m.Duration))
	}

	summaries := make([]Summary, 0, len(byAgent))
	for agent, s := range byAgent {
		if xs := nodes[agent]; len(xs) > 0 {
			s.MeanNodes, s.StdNodes = stat.MeanStdDev(xs, nil)
		}
		if ds := durations[agent]; len(ds) > 0 {
			s.MeanDuration = time.Duration(stat.Mean(ds, nil))
			sort.Float64s(ds)
			s.MedianDuration = time.Duration(stat.Quantile(0.5, stat.Empirical, ds, nil))
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Agent < summaries[j].Agent
	})
	return summaries
}
