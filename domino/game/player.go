package game

import (
	"github.com/ratel-online/domino/domino/tile"
)

// Player owns a hand for the length of one round. Names need not be unique.
type Player struct {
	name string
	hand *Hand
}

func NewPlayer(name string) *Player {
	return &Player{
		name: name,
		hand: NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) AddTiles(tiles ...tile.Tile) {
	p.hand.AddTiles(tiles)
}

func (p *Player) Hand() []tile.Tile {
	return p.hand.Tiles()
}

func (p *Player) Holds(t tile.Tile) bool {
	return p.hand.Contains(t)
}

func (p *Player) NoTiles() bool {
	return p.hand.Empty()
}

// Score is the pip total left in hand.
func (p *Player) Score() int {
	return p.hand.Score()
}

func (p *Player) String() string {
	return p.name
}
