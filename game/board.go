package game

import (
	"mogul/dice"
)

// BoardSize is the number of properties on a generated board.
const BoardSize = 20

// Board is an ordered ring of properties. Positions wrap around its length.
type Board struct {
	properties []*Property
}

// NewBoard creates a board over the given properties.
func NewBoard(properties []*Property) *Board {
	if len(properties) == 0 {
		panic("need at least one property")
	}
	return &Board{properties: properties}
}

// RandomBoard generates a board of BoardSize random properties.
func RandomBoard(src dice.Source, maxSellCost, maxRentCost int) (*Board, error) {
	properties := make([]*Property, 0, BoardSize)
	for i := 0; i < BoardSize; i++ {
		property, err := RandomProperty(src, maxSellCost, maxRentCost)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return NewBoard(properties), nil
}

// Length returns the number of properties on the board.
func (b *Board) Length() int {
	return len(b.properties)
}

// PropertyAt returns the property at a board position. The caller reduces
// positions modulo Length first; an out of range position is a bug and
// panics.
func (b *Board) PropertyAt(position int) *Property {
	return b.properties[position]
}

// Properties returns the board's property list.
func (b *Board) Properties() []*Property {
	return b.properties
}
