package state

import (
	"math/rand"

	"github.com/ratel-online/domino/domino/game"
)

// Seat is one chair at the table. Auto seats play their first legal tile.
type Seat struct {
	Name string
	Auto bool
}

type Session struct {
	Game  *game.Game
	seats map[*game.Player]Seat
}

func NewSession(seats []Seat, random *rand.Rand) (*Session, error) {
	players := make([]*game.Player, 0, len(seats))
	seatsByPlayer := make(map[*game.Player]Seat, len(seats))
	for _, seat := range seats {
		player := game.NewPlayer(seat.Name)
		players = append(players, player)
		seatsByPlayer[player] = seat
	}
	g, err := game.New(players, random)
	if err != nil {
		return nil, err
	}
	return &Session{
		Game:  g,
		seats: seatsByPlayer,
	}, nil
}

func (s *Session) Auto(player *game.Player) bool {
	return s.seats[player].Auto
}
