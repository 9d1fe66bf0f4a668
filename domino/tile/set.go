package tile

import "github.com/ratel-online/domino/consts"

var set = buildSet()

func buildSet() []Tile {
	tiles := make([]Tile, 0, consts.SetSize)
	for low := consts.MinPip; low <= consts.MaxPip; low++ {
		for high := low; high <= consts.MaxPip; high++ {
			tiles = append(tiles, MustNew(low, high))
		}
	}
	return tiles
}

// Set returns a copy of the 28 tiles of a double-six set.
func Set() []Tile {
	tiles := make([]Tile, len(set))
	copy(tiles, set)
	return tiles
}

// Highest is the double-six.
func Highest() Tile {
	return MustNew(consts.MaxPip, consts.MaxPip)
}
