package searcher

import (
	"math"
	"time"

	"isolation/game"
	"isolation/metrics"
)

type Option func(*Agent)

// WithStrategy picks the engine run under the driver.
func WithStrategy(strategy Strategy) Option {
	return func(a *Agent) {
		a.strategy = strategy
	}
}

// WithFixedDepth disables iterative deepening and searches the given ply
// budget exactly once per move.
func WithFixedDepth(depth int) Option {
	return func(a *Agent) {
		if depth > 0 {
			a.depth = depth
			a.iterative = false
		}
	}
}

// WithScoreFn replaces the heuristic used at the leaf layer.
func WithScoreFn(score game.Score) Option {
	return func(a *Agent) {
		if score != nil {
			a.score = score
		}
	}
}

// WithThreshold sets the remaining-time margin at which search is cancelled.
func WithThreshold(threshold time.Duration) Option {
	return func(a *Agent) {
		if threshold > 0 {
			a.threshold = threshold
		}
	}
}

// WithCollector instruments the agent's searches.
func WithCollector(collector metrics.Collector) Option {
	return func(a *Agent) {
		if collector != nil {
			a.collector = collector
		}
	}
}

// Agent selects moves by iterative-deepening game-tree search under a
// wall-clock budget. Its configuration is fixed at construction; everything
// per-call lives in a fresh search value, so one decision leaves no state
// behind for the next.
type Agent struct {
	strategy  Strategy
	depth     int
	iterative bool
	score     game.Score
	threshold time.Duration
	collector metrics.Collector
}

func NewAgent(options ...Option) *Agent {
	a := &Agent{ // Default values
		strategy:  Minimax,
		depth:     3,
		iterative: true,
		score:     game.ScoreCenterMobility,
		threshold: DefaultThreshold,
		collector: metrics.NewNopCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// search carries the per-call state shared by both engines: the fixed
// identity of the side being played, the heuristic, and the turn clock.
type search struct {
	player    game.Player
	score     game.Score
	timeLeft  func() time.Duration
	threshold time.Duration
	collector metrics.Collector
}

func (s *search) run(strategy Strategy, b game.Board, depth int) (Result, error) {
	if strategy == AlphaBeta {
		return s.alphabeta(b, depth, math.Inf(-1), math.Inf(1), true)
	}
	return s.minimax(b, depth, true)
}

// FindMove picks a move for the side to move before the turn clock expires.
// timeLeft reports the wall-clock budget remaining; once it sinks below the
// threshold the in-flight depth is abandoned and the result of the deepest
// fully completed depth wins. The sentinel NoMove comes back only when legal
// is empty; otherwise the returned move is always one of legal, whatever the
// clock does.
func (a *Agent) FindMove(b game.Board, legal []game.Move, timeLeft func() time.Duration) game.Move {
	if len(legal) == 0 {
		return game.NoMove
	}

	a.collector.Start(a.strategy.String())
	s := &search{
		player:    b.ToMove(),
		score:     a.score,
		timeLeft:  timeLeft,
		threshold: a.threshold,
		collector: a.collector,
	}

	// Keep the first legal move at hand in case the clock expires before
	// depth 1 completes.
	best := Result{Score: math.Inf(-1), Move: legal[0]}

	if !a.iterative {
		if result, err := s.run(a.strategy, b, a.depth); err == nil {
			best = result
		}
		return best.Move
	}

	// Deepening stops once a completed depth proves a decided game or the
	// horizon covers every remaining cell; past either point deeper rounds
	// re-search an identical tree until the clock expires.
	maxDepth := len(b.BlankSpaces())
	for depth := 1; ; depth++ {
		result, err := s.run(a.strategy, b, depth)
		if err != nil {
			// Deadline hit: drop the interrupted depth's partial work.
			break
		}
		best = result
		a.collector.CompleteDepth(depth)
		if math.IsInf(result.Score, 0) || depth >= maxDepth {
			break
		}
	}
	return best.Move
}
