package game

// StartingBalance is every player's balance at the start of a game.
const StartingBalance = 300

// Player couples a purchasing strategy with a balance. Balances may go
// negative; elimination is the game's concern, not the player's.
type Player struct {
	strategy Strategy
	balance  int
}

// NewPlayer creates a player with the starting balance.
func NewPlayer(strategy Strategy) *Player {
	if strategy == nil {
		panic("player needs a strategy")
	}
	return &Player{strategy: strategy, balance: StartingBalance}
}

func (p *Player) Balance() int {
	return p.balance
}

func (p *Player) Strategy() Strategy {
	return p.strategy
}

// IncreaseBalance credits the balance by amount.
func (p *Player) IncreaseBalance(amount int) {
	p.balance += amount
}

// DecreaseBalance debits the balance by amount. The balance may go
// negative.
func (p *Player) DecreaseBalance(amount int) {
	p.balance -= amount
}

// ResetBalance puts the balance back to the starting amount.
func (p *Player) ResetBalance() {
	p.balance = StartingBalance
}

// Transfer moves amount from one player to another. The receiver is
// credited at most the payer's current balance while the payer is debited
// the full amount, so a payer short on funds goes negative. Paying oneself
// changes nothing.
func Transfer(from, to *Player, amount int) {
	if amount < 0 {
		panic("transfer amount cannot be negative")
	}
	if from == to {
		return
	}
	to.IncreaseBalance(min(from.balance, amount))
	from.DecreaseBalance(amount)
}
