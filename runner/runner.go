package runner

import (
	"errors"
	"fmt"
	"time"

	"mogul/dice"
	"mogul/game"

	"github.com/rs/zerolog/log"
)

// NoWinner keys the tally bucket for games that timed out without a sole
// survivor.
const NoWinner = "none"

// ErrNoGames reports a statistic requested before any game was simulated.
var ErrNoGames = errors.New("no games simulated")

// GameRecord is the per-game outcome kept for reporting.
type GameRecord struct {
	ID       int
	Winner   string
	Turns    int
	TimedOut bool
}

type Option func(r *Runner)

// WithSource injects the randomness stream, enabling deterministic runs.
func WithSource(src dice.Source) Option {
	return func(r *Runner) {
		if src != nil {
			r.src = src
		}
	}
}

// WithCarryOver keeps player balances across games instead of resetting
// them, so later games start from earlier winnings.
func WithCarryOver() Option {
	return func(r *Runner) {
		r.carryOver = true
	}
}

// Runner simulates games over the same players and accumulates their
// outcomes. Aggregates are never reset mid-run.
type Runner struct {
	players     []*game.Player
	maxSellCost int
	maxRentCost int
	src         dice.Source
	carryOver   bool

	games    int
	timeouts int
	turns    []int
	winners  []string
	wins     map[string]int
	records  []GameRecord
}

// New creates a runner over the given players. Price bounds below 1 are
// rejected with ErrInvalidPriceBound.
func New(players []*game.Player, maxSellCost, maxRentCost int, options ...Option) (*Runner, error) {
	if len(players) == 0 {
		panic("need at least one player")
	}
	if maxSellCost < 1 || maxRentCost < 1 {
		return nil, fmt.Errorf("sell cost bound %d, rent cost bound %d: %w",
			maxSellCost, maxRentCost, game.ErrInvalidPriceBound)
	}

	r := &Runner{
		players:     players,
		maxSellCost: maxSellCost,
		maxRentCost: maxRentCost,
		src:         dice.New(uint64(time.Now().UnixNano())),
		wins:        map[string]int{NoWinner: 0},
	}
	for _, player := range players {
		r.wins[player.Strategy().Name()] = 0
	}
	for _, option := range options {
		option(r)
	}
	return r, nil
}

// Run simulates the given number of games.
func (r *Runner) Run(games int) error {
	log.Info().Msgf("starting %d games with price bounds sell=%d rent=%d...",
		games, r.maxSellCost, r.maxRentCost)

	for i := 0; i < games; i++ {
		err := r.PlayGame()
		if err != nil {
			return fmt.Errorf("game %d of %d: %w", i+1, games, err)
		}
	}

	log.Info().Msgf("completed %d games (%d timed out)", games, r.timeouts)
	return nil
}

// PlayGame plays one game on a fresh random board and records its outcome.
// The players are shared across games; unless the runner carries balances
// over, each starts back at the standard balance.
func (r *Runner) PlayGame() error {
	board, err := game.RandomBoard(r.src, r.maxSellCost, r.maxRentCost)
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}
	if !r.carryOver {
		for _, player := range r.players {
			player.ResetBalance()
		}
	}

	g := game.NewGame(board, r.players, r.src)
	winner := g.Play()

	r.games++
	recorded := winner
	bucket := NoWinner
	if winner == nil {
		r.timeouts++
		recorded = g.PlayerWithHighestBalance()
	} else {
		bucket = winner.Strategy().Name()
	}
	r.wins[bucket]++
	r.turns = append(r.turns, g.CurrentTurn())
	r.winners = append(r.winners, recorded.Strategy().Name())
	r.records = append(r.records, GameRecord{
		ID:       r.games,
		Winner:   recorded.Strategy().Name(),
		Turns:    g.CurrentTurn(),
		TimedOut: winner == nil,
	})

	log.Debug().Msgf("completed game %d: winner=%s turns=%d timed_out=%t",
		r.games, recorded.Strategy().Name(), g.CurrentTurn(), winner == nil)
	return nil
}

// GamesSimulated returns how many games have been played so far.
func (r *Runner) GamesSimulated() int {
	return r.games
}

// TimedOutGames returns how many games hit the turn cap.
func (r *Runner) TimedOutGames() int {
	return r.timeouts
}

// Winners returns the recorded winner strategy per game; a timed out game
// records the highest-balance player.
func (r *Runner) Winners() []string {
	return r.winners
}

// Records returns the per-game outcome records.
func (r *Runner) Records() []GameRecord {
	return r.records
}

// Wins returns the raw win tallies per strategy, the NoWinner bucket
// included.
func (r *Runner) Wins() map[string]int {
	wins := make(map[string]int, len(r.wins))
	for name, count := range r.wins {
		wins[name] = count
	}
	return wins
}

// AverageTurns returns the mean game length in turns.
func (r *Runner) AverageTurns() (float64, error) {
	if r.games == 0 {
		return 0, ErrNoGames
	}

	total := 0
	for _, turns := range r.turns {
		total += turns
	}
	return float64(total) / float64(r.games), nil
}

// WinPercentageByStrategy returns each strategy's share of all simulated
// games won, as a fraction in [0,1]. Timed out games count in the
// denominator but belong to no strategy, so the shares sum to the fraction
// of games with a clear winner.
func (r *Runner) WinPercentageByStrategy() (map[string]float64, error) {
	if r.games == 0 {
		return nil, ErrNoGames
	}

	shares := make(map[string]float64, len(r.wins)-1)
	for name, wins := range r.wins {
		if name == NoWinner {
			continue
		}
		shares[name] = float64(wins) / float64(r.games)
	}
	return shares, nil
}

// MostSuccessful returns the strategy with the highest win share. Ties go
// to the earliest seat.
func (r *Runner) MostSuccessful() (string, float64, error) {
	shares, err := r.WinPercentageByStrategy()
	if err != nil {
		return "", 0, err
	}

	best := ""
	for _, player := range r.players {
		name := player.Strategy().Name()
		if best == "" || shares[name] > shares[best] {
			best = name
		}
	}
	return best, shares[best], nil
}
