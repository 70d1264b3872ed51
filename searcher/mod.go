package searcher

import "isolation/game"

// Strategy selects the tree search an agent runs under the deepening driver.
type Strategy int

const (
	Minimax Strategy = iota
	AlphaBeta
)

func (s Strategy) String() string {
	switch s {
	case AlphaBeta:
		return "alphabeta"
	default:
		return "minimax"
	}
}

// Result is one search outcome: the score of a branch and the move entering
// it. The move is NoMove when the branch had no playable candidate.
type Result struct {
	Score float64
	Move  game.Move
}

// above reports whether r orders after other, lexicographically by
// (Score, Move). Equal scores fall through to the move comparison, so ties
// resolve by coordinate pair rather than by scan order.
func (r Result) above(other Result) bool {
	if r.Score != other.Score {
		return r.Score > other.Score
	}
	return other.Move.Less(r.Move)
}

// below is the mirror of above for minimizing folds.
func (r Result) below(other Result) bool {
	if r.Score != other.Score {
		return r.Score < other.Score
	}
	return r.Move.Less(other.Move)
}
