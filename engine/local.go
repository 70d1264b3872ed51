package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"isolation/game"
	"isolation/metrics"
)

// Local plays one full game between two agents on the same board, giving each
// turn a fixed wall-clock budget through the timeLeft accessor it hands to
// the agent.
type Local struct {
	Board      game.Board
	Agents     map[game.Player]Agent
	Collectors map[game.Player]metrics.Collector
	TurnBudget time.Duration
}

// NewLocal sets up a fresh width x height game between first and second.
func NewLocal(width, height int, first, second Agent, budget time.Duration) *Local {
	const p1, p2 = game.Player("player1"), game.Player("player2")
	return &Local{
		Board:      game.NewPosition(width, height, p1, p2),
		Agents:     map[game.Player]Agent{p1: first, p2: second},
		Collectors: map[game.Player]metrics.Collector{},
		TurnBudget: budget,
	}
}

// Run loops until one side is out of moves or forfeits. It returns the winner
// and, for players with a registered collector, one metrics record per move.
func (e *Local) Run() (game.Player, []metrics.MoveRecord) {
	log.Info().Msgf("player %s is starting", e.Board.ToMove())

	var records []metrics.MoveRecord
	for turn := 1; turn <= MaxMoves; turn++ {
		side := e.Board.ToMove()
		legal := e.Board.LegalMoves()
		if len(legal) == 0 {
			winner := e.Board.Opponent(side)
			log.Info().Msgf("player %s has no moves left, player %s wins", side, winner)
			return winner, records
		}

		start := time.Now()
		timeLeft := func() time.Duration { return e.TurnBudget - time.Since(start) }
		move := e.Agents[side].FindMove(e.Board, legal, timeLeft)

		if collector, ok := e.Collectors[side]; ok {
			records = append(records, metrics.MoveRecord{
				Step:         turn,
				Player:       string(side),
				SearchMetric: collector.Complete(),
			})
		}

		if findIndex(legal, move) == -1 {
			winner := e.Board.Opponent(side)
			log.Warn().Msgf("player %s forfeits with move %v, player %s wins", side, move, winner)
			return winner, records
		}

		e.Board = e.Board.Apply(move)
		log.Info().
			Str("player", string(side)).
			Int("row", move.Row).
			Int("col", move.Col).
			Dur("took", time.Since(start)).
			Msg("move played")
	}

	log.Warn().Msgf("stopped after %d moves with no winner", MaxMoves)
	return "", records
}

func findIndex(moves []game.Move, move game.Move) int {
	for i, m := range moves {
		if m == move {
			return i
		}
	}
	return -1
}
