package game

import "math"

// Heuristic score functions. Each one classifies decided boards first so the
// searcher and the board never disagree on a terminal state.

// ScoreDistanceBetween favors staying close to the opponent: the inverse
// Manhattan distance between the two players.
func ScoreDistanceBetween(b Board, player Player) float64 {
	if b.IsLoser(player) {
		return math.Inf(-1)
	}
	if b.IsWinner(player) {
		return math.Inf(1)
	}

	own := b.Location(player)
	opp := b.Location(b.Opponent(player))
	return 1.0 / (math.Abs(float64(own.Row-opp.Row)) + math.Abs(float64(own.Col-opp.Col)))
}

// ScoreDistanceToCenter favors the middle of the board: the inverse Manhattan
// distance to the center point, +Inf when exactly centered.
func ScoreDistanceToCenter(b Board, player Player) float64 {
	if b.IsLoser(player) {
		return math.Inf(-1)
	}
	if b.IsWinner(player) {
		return math.Inf(1)
	}

	loc := b.Location(player)
	deltaRow := float64(loc.Row) - float64(b.Width())/2
	deltaCol := float64(loc.Col) - float64(b.Height())/2

	if deltaRow == 0 && deltaCol == 0 {
		return math.Inf(1)
	}
	return 1.0 / (math.Abs(deltaRow) + math.Abs(deltaCol))
}

// ScoreClosestCenterMove measures how near the opponent can still get to the
// (width, height) reference point: the minimum Manhattan distance over all of
// the opponent's moves. Smaller means the opponent keeps better access, so a
// maximizing side prefers boards where this value is large.
func ScoreClosestCenterMove(b Board, player Player) float64 {
	if b.IsLoser(player) {
		return math.Inf(-1)
	}
	if b.IsWinner(player) {
		return math.Inf(1)
	}

	refRow, refCol := b.Width(), b.Height()
	closest := math.Inf(1)
	for _, move := range b.LegalMovesFor(b.Opponent(player)) {
		distance := math.Abs(float64(move.Row-refRow)) + math.Abs(float64(move.Col-refCol))
		if distance < closest {
			closest = distance
		}
	}
	return closest
}

// Weighs the inverse center distance against raw mobility. The inverse
// distance is always below 1 while mobility counts differ by whole moves, so
// the distance term is scaled up and the mobility term scaled down to let
// both matter.
const centerMobilityWeight = 5.0

// ScoreCenterMobility combines distance to the center with the number of
// moves left, the default heuristic for search agents.
func ScoreCenterMobility(b Board, player Player) float64 {
	if b.IsLoser(player) {
		return math.Inf(-1)
	}
	if b.IsWinner(player) {
		return math.Inf(1)
	}

	loc := b.Location(player)
	deltaRow := float64(loc.Row) - float64(b.Width())/2
	deltaCol := float64(loc.Col) - float64(b.Height())/2

	if deltaRow == 0 && deltaCol == 0 {
		return math.Inf(1)
	}
	mobility := float64(len(b.LegalMovesFor(player)))
	return centerMobilityWeight/(math.Abs(deltaRow)+math.Abs(deltaCol)) +
		mobility/centerMobilityWeight
}
