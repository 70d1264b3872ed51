package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one move-selection call.
type SearchMetric struct {
	Strategy       string
	Duration       time.Duration
	Nodes          int64 // recursive calls entered
	LeafEvals      int64 // heuristic evaluations of child boards
	CompletedDepth int   // deepest fully finished deepening round
}

// Collector accumulates counters while a search runs. The search side only
// ever increments; Complete snapshots the totals.
type Collector interface {
	Start(strategy string)
	AddNode()
	AddLeafEval()
	CompleteDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	strategy       string
	startTime      time.Time
	nodes          atomic.Int64
	leafEvals      atomic.Int64
	completedDepth atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(strategy string) {
	c.strategy = strategy
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leafEvals.Store(0)
	c.completedDepth.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeafEval() {
	c.leafEvals.Add(1)
}

func (c *collector) CompleteDepth(depth int) {
	c.completedDepth.Store(int64(depth))
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:       c.strategy,
		Duration:       time.Since(c.startTime),
		Nodes:          c.nodes.Load(),
		LeafEvals:      c.leafEvals.Load(),
		CompletedDepth: int(c.completedDepth.Load()),
	}
}

type nopCollector struct{}

// NewNopCollector returns a collector that records nothing, for agents that
// run without instrumentation.
func NewNopCollector() Collector {
	return &nopCollector{}
}

func (nopCollector) Start(strategy string)   {}
func (nopCollector) AddNode()                {}
func (nopCollector) AddLeafEval()            {}
func (nopCollector) CompleteDepth(depth int) {}
func (nopCollector) Complete() SearchMetric  { return SearchMetric{} }
