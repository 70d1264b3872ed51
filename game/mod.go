package game

// Player identifies one of the two competitors. The searcher treats it as an
// opaque handle; the board maps it to a location and a side to move.
type Player string

// Score evaluates a board for a player. Implementations must return +Inf for a
// state the player has won and -Inf for a state the player has lost, matching
// the board's own terminal tests so search and scoring never disagree on a
// decided game.
type Score func(Board, Player) float64

// Board is an immutable-per-query view of the game state. Apply returns a new
// independent board; the receiver is never modified by any method.
type Board interface {
	ToMove() Player
	Opponent(Player) Player
	// LegalMoves enumerates the moves available to the side to move.
	LegalMoves() []Move
	LegalMovesFor(Player) []Move
	Apply(Move) Board
	IsWinner(Player) bool
	IsLoser(Player) bool
	// Utility is +Inf for a won board, -Inf for a lost one, 0 otherwise.
	Utility(Player) float64
	Location(Player) Move
	BlankSpaces() []Move
	Width() int
	Height() int
}
