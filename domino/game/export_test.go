package game

import "github.com/ratel-online/domino/domino/tile"

// Arrange skips the shuffle and deal so tests can build an exact position.
// Hands and the table are set up through the public API beforehand.
func (g *Game) Arrange(first int, stock []tile.Tile) {
	g.stock.tiles = append([]tile.Tile(nil), stock...)
	g.dealt = true
	g.cycler.Start(first)
}
