package searcher

import (
	"errors"
	"time"
)

// ErrDeadline cancels an in-flight search once the turn clock runs down to
// the threshold margin. Every active frame of both engines forwards it
// upward untouched; only the driver in FindMove handles it.
var ErrDeadline = errors.New("searcher: deadline exceeded")

// DefaultThreshold is the remaining-time margin at which a search aborts,
// leaving slack to unwind the recursion and still return a move in time.
const DefaultThreshold = 10 * time.Millisecond

// checkDeadline trips when remaining time drops below the threshold. It runs
// on entry of every recursive call, never mid-node, so an overrun past the
// threshold is bounded by the cost of expanding a single node.
func checkDeadline(timeLeft func() time.Duration, threshold time.Duration) error {
	if timeLeft() < threshold {
		return ErrDeadline
	}
	return nil
}
