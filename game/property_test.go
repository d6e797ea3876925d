package game

import (
	"testing"

	"mogul/dice"

	"github.com/stretchr/testify/require"
)

func TestPropertyOwnership(t *testing.T) {
	t.Run("starts unowned", func(t *testing.T) {
		property := NewProperty(100, 30)

		require.False(t, property.HasOwner())
		require.Nil(t, property.Owner())
		require.Equal(t, 100, property.SellCost())
		require.Equal(t, 30, property.RentCost())
	})

	t.Run("records a new owner", func(t *testing.T) {
		property := NewProperty(100, 30)
		player := NewPlayer(Impulsive{})

		property.SetOwner(player)

		require.True(t, property.HasOwner())
		require.Equal(t, player, property.Owner())
	})

	t.Run("a nil owner returns it to the bank", func(t *testing.T) {
		property := NewProperty(100, 30)
		property.SetOwner(NewPlayer(Impulsive{}))

		property.SetOwner(nil)

		require.False(t, property.HasOwner())
		require.Nil(t, property.Owner())
	})
}

func TestRandomProperty(t *testing.T) {
	t.Run("prices stay within the bounds", func(t *testing.T) {
		src := dice.New(3)
		for i := 0; i < 500; i++ {
			property, err := RandomProperty(src, 300, 80)
			require.NoError(t, err)
			require.GreaterOrEqual(t, property.SellCost(), 1)
			require.LessOrEqual(t, property.SellCost(), 300)
			require.GreaterOrEqual(t, property.RentCost(), 1)
			require.LessOrEqual(t, property.RentCost(), 80)
			require.False(t, property.HasOwner())
		}
	})

	t.Run("rejects non-positive bounds", func(t *testing.T) {
		src := dice.New(3)

		_, err := RandomProperty(src, 0, 80)
		require.ErrorIs(t, err, ErrInvalidPriceBound)

		_, err = RandomProperty(src, 300, 0)
		require.ErrorIs(t, err, ErrInvalidPriceBound)

		_, err = RandomProperty(src, -5, -5)
		require.ErrorIs(t, err, ErrInvalidPriceBound)
	})
}
