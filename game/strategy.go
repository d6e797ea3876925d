package game

import (
	"mogul/dice"
)

const (
	// demandingRentFloor is the rent above which a demanding player buys.
	demandingRentFloor = 50
	// cautiousReserve is what a cautious player keeps aside after buying.
	cautiousReserve = 80
)

// Strategy decides whether a player buys the unowned property it landed
// on. Buys is only consulted when the player can afford the property.
type Strategy interface {
	Name() string
	Buys(balance int, property *Property) bool
}

// Impulsive buys every property it can afford.
type Impulsive struct{}

func (Impulsive) Name() string { return "impulsive" }

func (Impulsive) Buys(balance int, property *Property) bool {
	return true
}

// Demanding buys only properties whose rent is worth collecting.
type Demanding struct{}

func (Demanding) Name() string { return "demanding" }

func (Demanding) Buys(balance int, property *Property) bool {
	return property.RentCost() > demandingRentFloor
}

// Cautious buys only when a reserve is left over after the purchase.
type Cautious struct{}

func (Cautious) Name() string { return "cautious" }

func (Cautious) Buys(balance int, property *Property) bool {
	return balance >= property.SellCost()+cautiousReserve
}

// Random buys on a coin toss.
type Random struct {
	Src dice.Source
}

func (Random) Name() string { return "random" }

func (r Random) Buys(balance int, property *Property) bool {
	return dice.CoinToss(r.Src)
}

// NewStandardPlayers returns one player per strategy in the standard seat
// order. The source drives the random player's coin tosses.
func NewStandardPlayers(src dice.Source) []*Player {
	return []*Player{
		NewPlayer(Impulsive{}),
		NewPlayer(Demanding{}),
		NewPlayer(Cautious{}),
		NewPlayer(Random{Src: src}),
	}
}
