package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/event"
	"github.com/ratel-online/domino/domino/tile"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseRoundOver
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in progress"
	case PhaseRoundOver:
		return "round over"
	default:
		return "not started"
	}
}

// Game is a single round. Build a new one for every round.
type Game struct {
	id      string
	players []*Player
	table   *Table
	stock   *Stock
	cycler  *Cycler
	random  *rand.Rand
	dealt   bool
	passes  int
	winner  *Player
	blocked bool
}

// New seats 2 to 4 players. A nil random falls back to a time-seeded source.
func New(players []*Player, random *rand.Rand) (*Game, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, consts.ErrorsInvalidPlayerCount
	}
	if random == nil {
		random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	seats := make([]*Player, len(players))
	copy(seats, players)
	return &Game{
		id:      uuid.NewString(),
		players: seats,
		table:   NewTable(),
		stock:   NewStock(),
		cycler:  NewCycler(len(seats)),
		random:  random,
	}, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

func (g *Game) Table() *Table {
	return g.table
}

func (g *Game) StockSize() int {
	return g.stock.Size()
}

func (g *Game) Turn() int {
	return g.cycler.Turn()
}

func (g *Game) Phase() Phase {
	switch {
	case !g.dealt:
		return PhaseNotStarted
	case g.winner != nil:
		return PhaseRoundOver
	default:
		return PhaseInProgress
	}
}

// FirstPlayer is the seat that opened the round; ok is false before Deal.
func (g *Game) FirstPlayer() (seat int, ok bool) {
	if !g.cycler.Started() {
		return 0, false
	}
	return g.cycler.First(), true
}

// Deal shuffles the whole set and hands out seven tiles each, one at a time.
// The opener holds the double-six, or failing that the best tile dealt by
// Outranks.
func (g *Game) Deal() error {
	if g.dealt {
		return consts.ErrorsAlreadyDealt
	}
	g.stock.Shuffle(g.random)
	for i := 0; i < consts.HandSize; i++ {
		for _, player := range g.players {
			drawn, _ := g.stock.DrawOne()
			player.AddTiles(drawn)
		}
	}
	g.dealt = true
	g.cycler.Start(g.opener())
	return nil
}

func (g *Game) opener() int {
	var best tile.Tile
	seat := -1
	for index, player := range g.players {
		for _, held := range player.Hand() {
			if seat < 0 || Outranks(held, best) {
				best = held
				seat = index
			}
		}
	}
	if seat < 0 {
		return 0
	}
	return seat
}

func (g *Game) CurrentPlayer() (*Player, error) {
	if !g.cycler.Started() {
		return nil, consts.ErrorsNotStarted
	}
	return g.players[g.cycler.Current()], nil
}

func (g *Game) AvailablePlays() ([]tile.Tile, error) {
	player, err := g.CurrentPlayer()
	if err != nil {
		return nil, err
	}
	return player.hand.PlayableTiles(g.table), nil
}

// Play places a tile from the current player's hand. It returns the winner
// when the play ends the round, nil while the round goes on.
func (g *Game) Play(played tile.Tile, side Side) (*Player, error) {
	player, err := g.activePlayer()
	if err != nil {
		return nil, err
	}
	if !player.Holds(played) {
		return nil, consts.ErrorsNotInHand
	}
	if err := g.table.Add(played, side); err != nil {
		return nil, err
	}
	player.hand.RemoveTile(played)
	g.passes = 0
	event.TilePlayed.Emit(event.TilePlayedPayload{
		PlayerName: player.Name(),
		Tile:       played,
		End:        side.String(),
	})

	if player.NoTiles() {
		return g.finish(player, false), nil
	}
	if g.table.Blocked() {
		return g.finish(g.lowestScore(), true), nil
	}
	g.cycler.Next()
	return nil, nil
}

// DrawUntilPlayable moves tiles from the stock into the current player's hand
// until one fits the table or the stock runs out. The turn does not move.
func (g *Game) DrawUntilPlayable() ([]tile.Tile, error) {
	player, err := g.activePlayer()
	if err != nil {
		return nil, err
	}
	var drawn []tile.Tile
	for !g.stock.NoTiles() && len(player.hand.PlayableTiles(g.table)) == 0 {
		next, _ := g.stock.DrawOne()
		player.AddTiles(next)
		drawn = append(drawn, next)
	}
	if len(drawn) > 0 {
		event.TilesDrawn.Emit(event.TilesDrawnPayload{
			PlayerName: player.Name(),
			Tiles:      drawn,
		})
	}
	return drawn, nil
}

// Pass skips a player who can neither play nor draw. Once everyone has passed
// in a row the round is scored as blocked.
func (g *Game) Pass() (*Player, error) {
	player, err := g.activePlayer()
	if err != nil {
		return nil, err
	}
	if !g.stock.NoTiles() || len(player.hand.PlayableTiles(g.table)) > 0 {
		return nil, consts.ErrorsMustPlay
	}
	g.passes++
	event.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: player.Name(), Passes: g.passes})
	if g.passes >= len(g.players) {
		return g.finish(g.lowestScore(), true), nil
	}
	g.cycler.Next()
	return nil, nil
}

// Winner reports the outcome once the round is over.
func (g *Game) Winner() (*Player, bool) {
	return g.winner, g.winner != nil
}

// Blocked tells whether the round ended without anyone going out.
func (g *Game) Blocked() bool {
	return g.blocked
}

func (g *Game) activePlayer() (*Player, error) {
	player, err := g.CurrentPlayer()
	if err != nil {
		return nil, err
	}
	if g.winner != nil {
		return nil, consts.ErrorsRoundOver
	}
	return player, nil
}

// lowestScore breaks ties by seat order.
func (g *Game) lowestScore() *Player {
	lowest := g.players[0]
	for _, player := range g.players[1:] {
		if player.Score() < lowest.Score() {
			lowest = player
		}
	}
	return lowest
}

func (g *Game) finish(winner *Player, blocked bool) *Player {
	g.winner = winner
	g.blocked = blocked
	event.RoundOver.Emit(event.RoundOverPayload{
		WinnerName: winner.Name(),
		Score:      winner.Score(),
		Blocked:    blocked,
	})
	return winner
}

// ExtractState lists players in turn order from the one about to move.
func (g *Game) ExtractState(player *Player) State {
	playerSequence := make([]string, 0, len(g.players))
	handCounts := make([]int, 0, len(g.players))
	visit := func(seat int) {
		playerSequence = append(playerSequence, g.players[seat].Name())
		handCounts = append(handCounts, g.players[seat].hand.Size())
	}
	if g.cycler.Started() {
		g.cycler.ForEach(visit)
	} else {
		for seat := range g.players {
			visit(seat)
		}
	}
	state := State{
		Table:             g.table.Tiles(),
		CurrentPlayerHand: player.Hand(),
		PlayerSequence:    playerSequence,
		HandCounts:        handCounts,
		StockSize:         g.stock.Size(),
		Blocked:           g.table.Blocked(),
	}
	if left, ok := g.table.LeftEnd(); ok {
		right, _ := g.table.RightEnd()
		state.LeftEnd, state.RightEnd = &left, &right
	}
	return state
}
