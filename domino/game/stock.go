package game

import (
	"math/rand"

	"github.com/ratel-online/domino/domino/tile"
)

// Stock holds the undealt tiles. Draws come off the end.
type Stock struct {
	tiles []tile.Tile
}

func NewStock() *Stock {
	return &Stock{tiles: tile.Set()}
}

func (s *Stock) NoTiles() bool {
	return len(s.tiles) == 0
}

func (s *Stock) Size() int {
	return len(s.tiles)
}

func (s *Stock) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(s.tiles))
	copy(tiles, s.tiles)
	return tiles
}

// DrawOne takes the last tile; ok is false once the stock is exhausted.
func (s *Stock) DrawOne() (drawn tile.Tile, ok bool) {
	if s.NoTiles() {
		return tile.Tile{}, false
	}
	drawn = s.tiles[len(s.tiles)-1]
	s.tiles = s.tiles[:len(s.tiles)-1]
	return drawn, true
}

func (s *Stock) Shuffle(random *rand.Rand) {
	shuffleTiles(s.tiles, random)
}

func shuffleTiles(tiles []tile.Tile, random *rand.Rand) {
	random.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
}
