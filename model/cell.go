package model

// Cell is the state of a single board position
type Cell uint8

const (
	// Empty is an unoccupied position and the zero value of Cell
	Empty Cell = iota
	// Occupied is a living cell
	Occupied
)

const (
	emptyRune    = '_'
	occupiedRune = 'X'
)

// String renders the cell the way the serializer does
func (c Cell) String() string {
	return string(c.rune())
}

func (c Cell) rune() rune {
	if c == Occupied {
		return occupiedRune
	}
	return emptyRune
}
