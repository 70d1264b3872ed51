package searcher

import (
	"math"

	"isolation/game"
)

// minimax runs an unpruned fixed-depth search and returns the best
// (score, move) pair for the ply. The maximizing flag models whose turn the
// ply simulates; the terminal and utility tests stay keyed to s.player on
// every ply, minimizing ones included.
func (s *search) minimax(b game.Board, depth int, maximizing bool) (Result, error) {
	if err := checkDeadline(s.timeLeft, s.threshold); err != nil {
		return Result{}, err
	}
	s.collector.AddNode()

	if len(b.LegalMovesFor(s.player)) == 0 {
		return Result{Score: b.Utility(s.player), Move: b.Location(s.player)}, nil
	}

	// Depth 1 is the leaf layer: children are scored directly. The
	// minimization starts from (+Inf, NoMove) so a ply where the side to
	// move is already trapped still yields a defined result.
	if depth == 1 {
		if maximizing {
			best := Result{Score: math.Inf(-1), Move: game.NoMove}
			for _, move := range b.LegalMoves() {
				s.collector.AddLeafEval()
				candidate := Result{Score: s.score(b.Apply(move), s.player), Move: move}
				if candidate.above(best) {
					best = candidate
				}
			}
			return best, nil
		}

		worst := Result{Score: math.Inf(1), Move: game.NoMove}
		for _, move := range b.LegalMoves() {
			s.collector.AddLeafEval()
			candidate := Result{Score: s.score(b.Apply(move), s.player), Move: move}
			if candidate.below(worst) {
				worst = candidate
			}
		}
		return worst, nil
	}

	// Deeper plies recurse and pair the child's score with the move entering
	// it, not with the child's own continuation.
	if maximizing {
		best := Result{Score: math.Inf(-1), Move: game.NoMove}
		for _, move := range b.LegalMoves() {
			child, err := s.minimax(b.Apply(move), depth-1, false)
			if err != nil {
				return Result{}, err
			}
			candidate := Result{Score: child.Score, Move: move}
			if candidate.above(best) {
				best = candidate
			}
		}
		return best, nil
	}

	worst := Result{Score: math.Inf(1), Move: game.NoMove}
	for _, move := range b.LegalMoves() {
		child, err := s.minimax(b.Apply(move), depth-1, true)
		if err != nil {
			return Result{}, err
		}
		candidate := Result{Score: child.Score, Move: move}
		if candidate.below(worst) {
			worst = candidate
		}
	}
	return worst, nil
}
