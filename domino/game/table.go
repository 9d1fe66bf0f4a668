package game

import (
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/tile"
)

// Table is the chain of placed tiles. Tiles only ever join at either end.
type Table struct {
	tiles  []tile.Tile
	counts [consts.MaxPip + 1]int
}

func NewTable() *Table {
	return &Table{tiles: make([]tile.Tile, 0, consts.SetSize)}
}

func (t *Table) Empty() bool {
	return len(t.tiles) == 0
}

func (t *Table) Size() int {
	return len(t.tiles)
}

func (t *Table) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(t.tiles))
	copy(tiles, t.tiles)
	return tiles
}

// LeftEnd returns the open pip on the left; ok is false on an empty table.
func (t *Table) LeftEnd() (pip int, ok bool) {
	if t.Empty() {
		return 0, false
	}
	return t.tiles[0].Left(), true
}

func (t *Table) RightEnd() (pip int, ok bool) {
	if t.Empty() {
		return 0, false
	}
	return t.tiles[len(t.tiles)-1].Right(), true
}

// Count is the number of tile halves showing pip on the table.
func (t *Table) Count(pip int) int {
	if pip < 0 || pip >= len(t.counts) {
		return 0
	}
	return t.counts[pip]
}

func (t *Table) Blocked() bool {
	left, ok := t.LeftEnd()
	if !ok {
		return false
	}
	right, _ := t.RightEnd()
	if left != right {
		return false
	}
	return t.counts[left] == consts.BlockCount
}

func (t *Table) CanPlayLeft(candidate tile.Tile) bool {
	end, ok := t.LeftEnd()
	return ok && Playable(candidate, end)
}

func (t *Table) CanPlayRight(candidate tile.Tile) bool {
	end, ok := t.RightEnd()
	return ok && Playable(candidate, end)
}

// CanPlay is true for any tile on an empty table.
func (t *Table) CanPlay(candidate tile.Tile) bool {
	if t.Empty() {
		return true
	}
	return t.CanPlayLeft(candidate) || t.CanPlayRight(candidate)
}

// Add places candidate on the table. SideAny picks the left end first and
// falls back to the right, refusing non-doubles that fit both ends.
func (t *Table) Add(candidate tile.Tile, side Side) error {
	if side != SideAny && side != SideLeft && side != SideRight {
		return consts.ErrorsInvalidSide
	}
	if t.Empty() {
		t.tiles = append(t.tiles, candidate)
		t.count(candidate)
		return nil
	}
	switch side {
	case SideLeft:
		return t.addLeft(candidate)
	case SideRight:
		return t.addRight(candidate)
	}
	if !candidate.Double() && t.CanPlayLeft(candidate) && t.CanPlayRight(candidate) {
		return consts.ErrorsAmbiguousTilePlacement
	}
	if t.CanPlayLeft(candidate) {
		return t.addLeft(candidate)
	}
	return t.addRight(candidate)
}

func (t *Table) addLeft(candidate tile.Tile) error {
	if !t.CanPlayLeft(candidate) {
		return consts.ErrorsInvalidTilePlacement
	}
	end, _ := t.LeftEnd()
	Orient(&candidate, end, SideLeft)
	t.tiles = append([]tile.Tile{candidate}, t.tiles...)
	t.count(candidate)
	return nil
}

func (t *Table) addRight(candidate tile.Tile) error {
	if !t.CanPlayRight(candidate) {
		return consts.ErrorsInvalidTilePlacement
	}
	end, _ := t.RightEnd()
	Orient(&candidate, end, SideRight)
	t.tiles = append(t.tiles, candidate)
	t.count(candidate)
	return nil
}

func (t *Table) count(placed tile.Tile) {
	t.counts[placed.Left()]++
	t.counts[placed.Right()]++
}
