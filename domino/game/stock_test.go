package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/domino/tile"
	"github.com/stretchr/testify/require"
)

func TestStock(t *testing.T) {
	t.Run("starts_with_the_full_set", func(t *testing.T) {
		stock := game.NewStock()
		require.Equal(t, 28, stock.Size())
		require.ElementsMatch(t, keys(tile.Set()), keys(stock.Tiles()))
	})

	t.Run("draws_until_exhausted", func(t *testing.T) {
		stock := game.NewStock()
		drawn := make([]tile.Tile, 0, 28)
		for !stock.NoTiles() {
			next, ok := stock.DrawOne()
			require.True(t, ok)
			drawn = append(drawn, next)
		}
		require.ElementsMatch(t, keys(tile.Set()), keys(drawn))

		_, ok := stock.DrawOne()
		require.False(t, ok)
	})

	t.Run("shuffle_follows_the_seed", func(t *testing.T) {
		stockOne := game.NewStock()
		stockTwo := game.NewStock()
		stockOne.Shuffle(rand.New(rand.NewSource(9)))
		stockTwo.Shuffle(rand.New(rand.NewSource(9)))
		require.Equal(t, keys(stockOne.Tiles()), keys(stockTwo.Tiles()))
		require.ElementsMatch(t, keys(tile.Set()), keys(stockOne.Tiles()))
	})
}
