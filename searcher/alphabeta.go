package searcher

import (
	"math"

	"isolation/game"
)

// alphabeta runs a fixed-depth search with alpha-beta pruning. The top-level
// call passes alpha = -Inf, beta = +Inf, maximizing = true. Terminal and
// utility tests are keyed to s.player on every ply, as in minimax.
//
// The leaf layer replaces its running best on strict improvement in scan
// order, keeping the earliest of equally scored moves. Deeper plies inherit
// the lexicographic behavior through the scores they propagate.
func (s *search) alphabeta(b game.Board, depth int, alpha, beta float64, maximizing bool) (Result, error) {
	if err := checkDeadline(s.timeLeft, s.threshold); err != nil {
		return Result{}, err
	}
	s.collector.AddNode()

	legal := b.LegalMoves()

	if len(b.LegalMovesFor(s.player)) == 0 {
		return Result{Score: b.Utility(s.player), Move: b.Location(s.player)}, nil
	}

	// With a single blank cell left there is no branching beyond this ply,
	// so the endgame collapses into the leaf layer regardless of depth.
	if depth == 1 || len(b.BlankSpaces()) == 1 {
		if maximizing {
			best := Result{Score: math.Inf(-1), Move: legal[0]}
			for _, move := range legal {
				s.collector.AddLeafEval()
				score := s.score(b.Apply(move), s.player)
				if score >= beta {
					return Result{Score: score, Move: move}, nil
				}
				if score > best.Score {
					best = Result{Score: score, Move: move}
				}
			}
			return best, nil
		}

		worst := Result{Score: math.Inf(1), Move: game.NoMove}
		for _, move := range legal {
			s.collector.AddLeafEval()
			score := s.score(b.Apply(move), s.player)
			if score <= alpha {
				return Result{Score: score, Move: move}, nil
			}
			if score < worst.Score {
				worst = Result{Score: score, Move: move}
			}
		}
		return worst, nil
	}

	if maximizing {
		best := Result{Score: math.Inf(-1), Move: legal[0]}
		for _, move := range legal {
			child, err := s.alphabeta(b.Apply(move), depth-1, alpha, beta, false)
			if err != nil {
				return Result{}, err
			}
			if child.Score >= beta {
				// Fail high: the minimizing parent already has a better
				// alternative, remaining moves stay unexamined.
				return Result{Score: child.Score, Move: move}, nil
			}
			if child.Score > best.Score {
				best = Result{Score: child.Score, Move: move}
				alpha = child.Score
			}
		}
		return best, nil
	}

	worst := Result{Score: math.Inf(1), Move: game.NoMove}
	for _, move := range legal {
		child, err := s.alphabeta(b.Apply(move), depth-1, alpha, beta, true)
		if err != nil {
			return Result{}, err
		}
		if child.Score <= alpha {
			// Fail low, mirror of the cutoff above.
			return Result{Score: child.Score, Move: move}, nil
		}
		if child.Score < worst.Score {
			worst = Result{Score: child.Score, Move: move}
			beta = child.Score
		}
	}
	return worst, nil
}
