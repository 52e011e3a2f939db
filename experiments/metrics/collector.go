package metrics

import (
	"sync/atomic"
	"time"

	"boardgames/game"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Duration   time.Duration
	Nodes      int
	Cutoffs    int
	Extensions int
	Score      float64
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID             uuid.UUID
	Game           string
	StartingPlayer game.Player
	Winner         game.Player
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector counts search work. One collector serves a single search and
// may be shared by that search's goroutines.
type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddCutoff()
	AddExtension()
	Complete(score float64) SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
	cutoffs    atomic.Int64
	extensions atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddExtension() {
	m.extensions.Add(1)
}

func (m *collector) Complete(score float64) SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		Extensions: int(m.extensions.Load()),
		Score:      score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddCutoff()                  {}
func (m *dummyCollector) AddExtension()               {}
func (m *dummyCollector) Complete(score float64) SearchMetric {
	return SearchMetric{Score: score}
}
