package engine

import (
	"time"

	"isolation/game"
	"isolation/metrics"
)

// MaxMoves caps a game that neither side manages to finish.
const MaxMoves = 10000

// Agent picks a move for the side to move within the remaining turn budget.
// Returning NoMove forfeits the game.
type Agent interface {
	FindMove(b game.Board, legal []game.Move, timeLeft func() time.Duration) game.Move
}

// Engine runs a game to completion.
type Engine interface {
	Run() (winner game.Player, moves []metrics.MoveRecord)
}
