package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth      int
	Duration   time.Duration
	Nodes      int // Positions expanded
	Leaves     int // Depth-exhausted positions scored statically
	Terminals  int // Positions where the side to move had no beans in play
	ExtraTurns int // Expansions that kept the same side to move
	Score      int
	Hole       int
}

type MoveMetric struct {
	Step   int
	Player string // Side name
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a tie
	NorthPot       int
	SouthPot       int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddExtraTurn()
	Complete(score, hole int) SearchMetric
}

// collector is not safe for concurrent use.
type collector struct {
	depth      int
	startTime  time.Time
	nodes      int
	leaves     int
	terminals  int
	extraTurns int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	*m = collector{depth: depth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddTerminal() {
	m.terminals++
}

func (m *collector) AddExtraTurn() {
	m.extraTurns++
}

func (m *collector) Complete(score, hole int) SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes,
		Leaves:     m.leaves,
		Terminals:  m.terminals,
		ExtraTurns: m.extraTurns,
		Score:      score,
		Hole:       hole,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                       {}
func (m *dummyCollector) AddNode()                              {}
func (m *dummyCollector) AddLeaf()                              {}
func (m *dummyCollector) AddTerminal()                          {}
func (m *dummyCollector) AddExtraTurn()                         {}
func (m *dummyCollector) Complete(score, hole int) SearchMetric { return SearchMetric{} }
