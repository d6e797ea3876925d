package game

import (
	"testing"

	"mogul/dice"

	"github.com/stretchr/testify/require"
)

func TestImpulsive(t *testing.T) {
	strategy := Impulsive{}

	require.True(t, strategy.Buys(0, NewProperty(1_000_000, 1)))
	require.True(t, strategy.Buys(300, NewProperty(1, 1)))
}

func TestDemanding(t *testing.T) {
	strategy := Demanding{}

	require.True(t, strategy.Buys(300, NewProperty(100, 51)), "rent above the floor is worth collecting")
	require.False(t, strategy.Buys(300, NewProperty(100, 50)), "rent at the floor is not")
	require.False(t, strategy.Buys(300, NewProperty(100, 1)))
}

func TestCautious(t *testing.T) {
	strategy := Cautious{}

	require.True(t, strategy.Buys(180, NewProperty(100, 10)), "a full reserve remains after buying")
	require.False(t, strategy.Buys(179, NewProperty(100, 10)), "one short of the reserve")
	require.True(t, strategy.Buys(80, NewProperty(0, 10)))
}

func TestRandom(t *testing.T) {
	t.Run("buys on heads", func(t *testing.T) {
		strategy := Random{Src: &diceScript{tosses: []float64{0.5}}}
		require.True(t, strategy.Buys(300, NewProperty(100, 10)))
	})

	t.Run("declines on tails", func(t *testing.T) {
		strategy := Random{Src: &diceScript{tosses: []float64{0.2}}}
		require.False(t, strategy.Buys(300, NewProperty(100, 10)))
	})
}

func TestNewStandardPlayers(t *testing.T) {
	players := NewStandardPlayers(dice.New(1))

	require.Len(t, players, 4)
	names := make([]string, len(players))
	for i, player := range players {
		names[i] = player.Strategy().Name()
		require.Equal(t, StartingBalance, player.Balance())
	}
	require.Equal(t, []string{"impulsive", "demanding", "cautious", "random"}, names)
}
