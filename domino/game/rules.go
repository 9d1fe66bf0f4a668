package game

import (
	"github.com/ratel-online/domino/domino/tile"
)

// Playable reports whether candidate can touch an open end showing pip end.
func Playable(candidate tile.Tile, end int) bool {
	return candidate.Has(end)
}

// Orient turns candidate so that the pip facing the open end equals end.
// Side says which end of the chain the tile is attached to.
func Orient(candidate *tile.Tile, end int, side Side) {
	switch side {
	case SideLeft:
		if candidate.Right() != end {
			candidate.Rotate()
		}
	case SideRight:
		if candidate.Left() != end {
			candidate.Rotate()
		}
	}
}

// Outranks orders tiles for choosing the opener: any double beats any other
// tile, then the higher pip total, then the higher single pip.
func Outranks(candidate tile.Tile, other tile.Tile) bool {
	if candidate.Double() != other.Double() {
		return candidate.Double()
	}
	if candidate.Pips() != other.Pips() {
		return candidate.Pips() > other.Pips()
	}
	return candidate.Key().High > other.Key().High
}
