package engine

import (
	"time"

	"golang.org/x/exp/rand"

	"isolation/game"
)

// Random is a baseline agent picking uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(b game.Board, legal []game.Move, timeLeft func() time.Duration) game.Move {
	if len(legal) == 0 {
		return game.NoMove
	}
	return legal[r.rng.Intn(len(legal))]
}
