package game

import (
	"math"
	"strings"
)

// knightOffsets are the eight L-shaped displacements a placed player may move
// by. Move generation scans them in this order.
var knightOffsets = [8]Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Position is the concrete isolation board: two players on a width x height
// grid, every visited cell blocked for the rest of the game, and the first
// side unable to move on their turn loses. Before a player's first move their
// location is NoMove and they may open on any blank cell.
type Position struct {
	width   int
	height  int
	blocked []bool
	players [2]Player
	locs    [2]Move
	toMove  int
}

// NewPosition returns an empty board with first to move.
func NewPosition(width, height int, first, second Player) *Position {
	return &Position{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
		players: [2]Player{first, second},
		locs:    [2]Move{NoMove, NoMove},
	}
}

func (p *Position) Width() int  { return p.width }
func (p *Position) Height() int { return p.height }

func (p *Position) ToMove() Player { return p.players[p.toMove] }

func (p *Position) Opponent(player Player) Player {
	return p.players[1-p.index(player)]
}

func (p *Position) Location(player Player) Move {
	return p.locs[p.index(player)]
}

// LegalMoves enumerates the moves of the side to move.
func (p *Position) LegalMoves() []Move {
	return p.LegalMovesFor(p.players[p.toMove])
}

// LegalMovesFor enumerates blank in-bounds knight destinations for a placed
// player, or every blank cell for one still waiting to open.
func (p *Position) LegalMovesFor(player Player) []Move {
	loc := p.locs[p.index(player)]
	if loc == NoMove {
		return p.BlankSpaces()
	}

	moves := make([]Move, 0, len(knightOffsets))
	for _, offset := range knightOffsets {
		candidate := Move{Row: loc.Row + offset.Row, Col: loc.Col + offset.Col}
		if p.inBounds(candidate) && !p.blocked[p.cell(candidate)] {
			moves = append(moves, candidate)
		}
	}
	return moves
}

// Apply plays a move for the side to move and returns the resulting board.
// The destination cell stays blocked for the rest of the game and the turn
// passes to the opponent. The move is trusted to be legal; legality is the
// caller's concern.
func (p *Position) Apply(move Move) Board {
	next := &Position{
		width:   p.width,
		height:  p.height,
		blocked: make([]bool, len(p.blocked)),
		players: p.players,
		locs:    p.locs,
		toMove:  1 - p.toMove,
	}
	copy(next.blocked, p.blocked)
	next.locs[p.toMove] = move
	next.blocked[next.cell(move)] = true
	return next
}

// IsLoser reports whether player is to move with no move left.
func (p *Position) IsLoser(player Player) bool {
	return p.index(player) == p.toMove && len(p.LegalMoves()) == 0
}

// IsWinner reports whether player's opponent is to move with no move left.
func (p *Position) IsWinner(player Player) bool {
	return p.index(player) != p.toMove && len(p.LegalMoves()) == 0
}

func (p *Position) Utility(player Player) float64 {
	if p.IsWinner(player) {
		return math.Inf(1)
	}
	if p.IsLoser(player) {
		return math.Inf(-1)
	}
	return 0
}

// BlankSpaces lists never-visited cells in row-major order.
func (p *Position) BlankSpaces() []Move {
	blanks := []Move{}
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			if !p.blocked[row*p.width+col] {
				blanks = append(blanks, Move{Row: row, Col: col})
			}
		}
	}
	return blanks
}

// String renders the grid for logs: '-' blank, '*' blocked, '1'/'2' players.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			cell := Move{Row: row, Col: col}
			switch {
			case cell == p.locs[0]:
				sb.WriteByte('1')
			case cell == p.locs[1]:
				sb.WriteByte('2')
			case p.blocked[p.cell(cell)]:
				sb.WriteByte('*')
			default:
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Position) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < p.height && m.Col >= 0 && m.Col < p.width
}

func (p *Position) cell(m Move) int {
	return m.Row*p.width + m.Col
}

func (p *Position) index(player Player) int {
	switch player {
	case p.players[0]:
		return 0
	case p.players[1]:
		return 1
	default:
		panic("unknown player")
	}
}
