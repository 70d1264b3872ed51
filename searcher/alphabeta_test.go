package searcher

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"isolation/game"
	"isolation/metrics"
)

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	counter := 0
	tree := buildTree(4, 3, maxSide, &counter)

	for depth := 1; depth <= 4; depth++ {
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			minimaxCollector := metrics.NewCollector()
			minimaxCollector.Start("minimax")
			s := newTestSearch(minimaxCollector)
			want, err := s.minimax(tree, depth, true)
			require.NoError(t, err)

			alphabetaCollector := metrics.NewCollector()
			alphabetaCollector.Start("alphabeta")
			s = newTestSearch(alphabetaCollector)
			got, err := s.alphabeta(tree, depth, math.Inf(-1), math.Inf(1), true)
			require.NoError(t, err)

			require.Equal(t, want.Score, got.Score, "pruning must not change the score")
			require.Equal(t, want.Move, got.Move, "with distinct leaf values pruning must not change the move")
			require.LessOrEqual(t, alphabetaCollector.Complete().LeafEvals, minimaxCollector.Complete().LeafEvals,
				"pruning should never evaluate more leaves")
		})
	}
}

func TestAlphaBetaLeafBetaCutoff(t *testing.T) {
	root := &fakeBoard{
		toMove: maxSide,
		moves: map[game.Player][]game.Move{
			maxSide: {{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
			minSide: {{Row: 5, Col: 5}},
		},
		children: map[game.Move]*fakeBoard{
			{Row: 0, Col: 0}: {value: 7},
			{Row: 1, Col: 1}: {value: 1},
			{Row: 2, Col: 2}: {value: 2},
		},
		blanks: 30,
	}

	collector := metrics.NewCollector()
	collector.Start("alphabeta")
	s := newTestSearch(collector)
	got, err := s.alphabeta(root, 1, math.Inf(-1), 5, true)

	require.NoError(t, err)
	require.Equal(t, Result{Score: 7, Move: game.Move{Row: 0, Col: 0}}, got,
		"a score at or above beta should return immediately")
	require.Equal(t, int64(1), collector.Complete().LeafEvals,
		"moves after a fail-high should stay unexamined")
}

func TestAlphaBetaLeafKeepsFirstOfEqualScores(t *testing.T) {
	// Same two equal top scores as the minimax tie-break test; the leaf scan
	// keeps the first one it meets instead of the lexicographically larger.
	root := &fakeBoard{
		toMove: maxSide,
		moves: map[game.Player][]game.Move{
			maxSide: {{Row: 1, Col: 4}, {Row: 2, Col: 3}},
			minSide: {{Row: 5, Col: 5}},
		},
		children: map[game.Move]*fakeBoard{
			{Row: 1, Col: 4}: {value: 9},
			{Row: 2, Col: 3}: {value: 9},
		},
		blanks: 30,
	}

	s := newTestSearch(metrics.NewNopCollector())
	got, err := s.alphabeta(root, 1, math.Inf(-1), math.Inf(1), true)

	require.NoError(t, err)
	require.Equal(t, Result{Score: 9, Move: game.Move{Row: 1, Col: 4}}, got)
}

func TestAlphaBetaEndgameShortcut(t *testing.T) {
	// One blank cell left: depth is ignored and candidates score directly.
	// The child has no continuation, so recursing would panic.
	root := &fakeBoard{
		toMove: maxSide,
		moves: map[game.Player][]game.Move{
			maxSide: {{Row: 0, Col: 0}},
			minSide: {{Row: 3, Col: 3}},
		},
		children: map[game.Move]*fakeBoard{
			{Row: 0, Col: 0}: {value: 4},
		},
		blanks: 1,
	}

	s := newTestSearch(metrics.NewNopCollector())
	got, err := s.alphabeta(root, 5, math.Inf(-1), math.Inf(1), true)

	require.NoError(t, err)
	require.Equal(t, Result{Score: 4, Move: game.Move{Row: 0, Col: 0}}, got)
}

func TestAlphaBetaMinimizingWithoutMoves(t *testing.T) {
	board := &fakeBoard{
		toMove: minSide,
		moves:  map[game.Player][]game.Move{maxSide: {{Row: 0, Col: 0}}, minSide: {}},
		blanks: 5,
	}

	s := newTestSearch(metrics.NewNopCollector())
	got, err := s.alphabeta(board, 3, math.Inf(-1), math.Inf(1), false)

	require.NoError(t, err)
	require.Equal(t, Result{Score: math.Inf(1), Move: game.NoMove}, got,
		"a minimizing ply without moves should keep its sentinel initial result")
}
