package game

// Move is a destination cell on the grid.
type Move struct {
	Row int
	Col int
}

// NoMove marks forfeiture. It also pads candidate lists that would otherwise
// be empty, so extremum folds always have a defined result.
var NoMove = Move{Row: -1, Col: -1}

// Less orders moves lexicographically by (Row, Col).
func (m Move) Less(other Move) bool {
	if m.Row != other.Row {
		return m.Row < other.Row
	}
	return m.Col < other.Col
}
