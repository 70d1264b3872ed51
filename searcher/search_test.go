package searcher

import (
	"time"

	"isolation/game"
	"isolation/metrics"
)

const (
	maxSide = game.Player("max")
	minSide = game.Player("min")
)

// fakeBoard is a hand-built game tree node. Interior nodes list legal moves
// per player and map each move to a child; fakeScore reads values straight
// off the node, so any shape of tree can be scripted in a test.
type fakeBoard struct {
	toMove   game.Player
	moves    map[game.Player][]game.Move
	children map[game.Move]*fakeBoard
	value    float64
	utility  float64
	locs     map[game.Player]game.Move
	blanks   int
}

func (f *fakeBoard) ToMove() game.Player { return f.toMove }

func (f *fakeBoard) Opponent(p game.Player) game.Player {
	if p == maxSide {
		return minSide
	}
	return maxSide
}

func (f *fakeBoard) LegalMoves() []game.Move { return f.moves[f.toMove] }

func (f *fakeBoard) LegalMovesFor(p game.Player) []game.Move { return f.moves[p] }

func (f *fakeBoard) Apply(m game.Move) game.Board {
	child, ok := f.children[m]
	if !ok {
		panic("fake board has no child for move")
	}
	return child
}

func (f *fakeBoard) IsWinner(p game.Player) bool {
	return p != f.toMove && len(f.moves[f.toMove]) == 0
}

func (f *fakeBoard) IsLoser(p game.Player) bool {
	return p == f.toMove && len(f.moves[p]) == 0
}

func (f *fakeBoard) Utility(p game.Player) float64 { return f.utility }

func (f *fakeBoard) Location(p game.Player) game.Move { return f.locs[p] }

func (f *fakeBoard) BlankSpaces() []game.Move { return make([]game.Move, f.blanks) }

func (f *fakeBoard) Width() int  { return 7 }
func (f *fakeBoard) Height() int { return 7 }

func fakeScore(b game.Board, p game.Player) float64 {
	return b.(*fakeBoard).value
}

func newTestSearch(collector metrics.Collector) *search {
	return &search{
		player:    maxSide,
		score:     fakeScore,
		timeLeft:  unlimitedClock,
		threshold: time.Millisecond,
		collector: collector,
	}
}

func unlimitedClock() time.Duration { return time.Hour }

// trippingClock allows the given number of deadline checks before expiring.
func trippingClock(allowed int) func() time.Duration {
	calls := 0
	return func() time.Duration {
		calls++
		if calls > allowed {
			return 0
		}
		return time.Hour
	}
}

// buildTree grows a uniform tree with the given number of levels below this
// node and branching moves per node, alternating the side to move. Every node
// gets a distinct value from the counter (multiplying by 59 permutes the
// residues of the prime 127, good for 127 nodes) so searches at any depth see
// no score ties.
func buildTree(levels, branching int, toMove game.Player, counter *int) *fakeBoard {
	moves := make([]game.Move, branching)
	for i := range moves {
		moves[i] = game.Move{Row: i, Col: i}
	}

	node := &fakeBoard{
		toMove: toMove,
		moves: map[game.Player][]game.Move{
			maxSide: moves,
			minSide: moves,
		},
		children: map[game.Move]*fakeBoard{},
		value:    float64((*counter * 59) % 127),
		locs: map[game.Player]game.Move{
			maxSide: {Row: 9, Col: 9},
			minSide: {Row: 8, Col: 8},
		},
		blanks: 100,
	}
	*counter++

	if levels > 0 {
		opponent := node.Opponent(toMove)
		for _, move := range moves {
			node.children[move] = buildTree(levels-1, branching, opponent, counter)
		}
	}
	return node
}
