package game

import (
	"errors"

	"mogul/dice"
)

// ErrInvalidPriceBound reports a price bound below 1 passed to the random
// generators.
var ErrInvalidPriceBound = errors.New("price bounds must be at least 1")

// Property is a single board slot. Prices are fixed at construction; only
// the owner changes during play.
type Property struct {
	sellCost int
	rentCost int
	owner    *Player
}

// NewProperty creates an unowned property with the given prices.
func NewProperty(sellCost, rentCost int) *Property {
	return &Property{sellCost: sellCost, rentCost: rentCost}
}

// RandomProperty creates an unowned property with prices drawn uniformly
// from [1, maxSellCost] and [1, maxRentCost].
func RandomProperty(src dice.Source, maxSellCost, maxRentCost int) (*Property, error) {
	if maxSellCost < 1 || maxRentCost < 1 {
		return nil, ErrInvalidPriceBound
	}
	return NewProperty(
		dice.Between(src, 1, maxSellCost),
		dice.Between(src, 1, maxRentCost),
	), nil
}

func (p *Property) SellCost() int {
	return p.sellCost
}

func (p *Property) RentCost() int {
	return p.rentCost
}

// HasOwner reports whether the property is currently owned.
func (p *Property) HasOwner() bool {
	return p.owner != nil
}

// Owner returns the current owner, nil when unowned.
func (p *Property) Owner() *Player {
	return p.owner
}

// SetOwner records a new owner. A nil owner returns the property to the
// bank.
func (p *Property) SetOwner(owner *Player) {
	p.owner = owner
}
