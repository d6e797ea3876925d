package game

import (
	"mogul/dice"
)

const (
	// MaxTurns caps a game; reaching it without a winner is a timeout.
	MaxTurns = 1000
	// LapBonus is credited for completing a full track around the board.
	LapBonus = 100
)

// Game drives one match over a board and a fixed seat order. It tracks
// per-seat positions and active flags; balances and ownership live on the
// players and properties themselves.
type Game struct {
	board   *Board
	players []*Player
	src     dice.Source

	current   int
	turn      int
	positions []int
	active    []bool
}

// NewGame creates a game at turn 1 with every player active at position 0.
func NewGame(board *Board, players []*Player, src dice.Source) *Game {
	if board == nil {
		panic("need a board")
	}
	if len(players) == 0 {
		panic("need at least one player")
	}
	if src == nil {
		panic("need a randomness source")
	}

	g := &Game{
		board:     board,
		players:   players,
		src:       src,
		turn:      1,
		positions: make([]int, len(players)),
		active:    make([]bool, len(players)),
	}
	for seat := range g.active {
		g.active[seat] = true
	}
	return g
}

// Play runs consecutive turns until one player remains or the turn cap is
// reached. It returns the winner, nil when the game timed out.
func (g *Game) Play() *Player {
	for g.Winner() == nil && g.turn < MaxTurns {
		g.playTurn()
	}
	return g.Winner()
}

func (g *Game) playTurn() {
	player := g.players[g.current]

	g.positions[g.current] += dice.RollDie(g.src)
	if g.positions[g.current] >= g.board.Length() {
		g.positions[g.current] %= g.board.Length()
		player.IncreaseBalance(LapBonus)
	}

	property := g.board.PropertyAt(g.positions[g.current])
	if property.HasOwner() {
		// Rent is due even to oneself; Transfer makes that a no-op.
		Transfer(player, property.Owner(), property.RentCost())
		if player.Balance() < 0 {
			g.eliminate(g.current)
		}
	} else if player.Balance() >= property.SellCost() &&
		player.Strategy().Buys(player.Balance(), property) {
		// The strategy is only consulted on affordable properties.
		property.SetOwner(player)
		player.DecreaseBalance(property.SellCost())
	}

	g.turn++
	g.nextPlayer()
}

// nextPlayer advances to the next active seat, scanning at most one full
// round. With a single active player the turn stays with that player.
func (g *Game) nextPlayer() {
	n := len(g.players)
	for step := 1; step <= n; step++ {
		seat := (g.current + step) % n
		if g.active[seat] {
			g.current = seat
			return
		}
	}
	panic("no active player left")
}

// eliminate retires a seat and returns its properties to the bank.
func (g *Game) eliminate(seat int) {
	g.active[seat] = false
	for _, property := range g.board.Properties() {
		if property.Owner() == g.players[seat] {
			property.SetOwner(nil)
		}
	}
}

// Winner returns the sole remaining active player, nil otherwise.
func (g *Game) Winner() *Player {
	var winner *Player
	active := 0
	for seat, player := range g.players {
		if g.active[seat] {
			winner = player
			active++
		}
	}
	if active != 1 {
		return nil
	}
	return winner
}

// PlayerWithHighestBalance returns the richest player, eliminated players
// included. Ties go to the earliest seat.
func (g *Game) PlayerWithHighestBalance() *Player {
	richest := g.players[0]
	for _, player := range g.players[1:] {
		if player.Balance() > richest.Balance() {
			richest = player
		}
	}
	return richest
}

// CurrentTurn returns the turn counter. It starts at 1 and also counts the
// final turn of a decided game.
func (g *Game) CurrentTurn() int {
	return g.turn
}
