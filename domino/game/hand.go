package game

import (
	"github.com/ratel-online/domino/domino/tile"
)

// Hand is a duplicate-free set of tiles kept in draw order.
type Hand struct {
	tiles []tile.Tile
}

func NewHand() *Hand {
	return &Hand{tiles: make([]tile.Tile, 0, 7)}
}

// AddTiles ignores tiles already held.
func (h *Hand) AddTiles(tiles []tile.Tile) {
	for _, candidate := range tiles {
		if !h.Contains(candidate) {
			h.tiles = append(h.tiles, candidate)
		}
	}
}

func (h *Hand) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(h.tiles))
	copy(tiles, h.tiles)
	return tiles
}

func (h *Hand) Contains(searched tile.Tile) bool {
	return h.indexOf(searched) >= 0
}

func (h *Hand) Empty() bool {
	return len(h.tiles) == 0
}

func (h *Hand) PlayableTiles(table *Table) []tile.Tile {
	var playableTiles []tile.Tile
	for _, candidate := range h.tiles {
		if table.CanPlay(candidate) {
			playableTiles = append(playableTiles, candidate)
		}
	}
	return playableTiles
}

// RemoveTile keeps the order of the remaining tiles.
func (h *Hand) RemoveTile(removed tile.Tile) bool {
	index := h.indexOf(removed)
	if index < 0 {
		return false
	}
	h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
	return true
}

func (h *Hand) Size() int {
	return len(h.tiles)
}

func (h *Hand) Score() int {
	score := 0
	for _, held := range h.tiles {
		score += held.Pips()
	}
	return score
}

func (h *Hand) indexOf(searched tile.Tile) int {
	for index, held := range h.tiles {
		if held.Equal(searched) {
			return index
		}
	}
	return -1
}
