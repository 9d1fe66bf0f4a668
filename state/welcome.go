package state

import (
	"sync"

	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/event"
	"github.com/ratel-online/domino/domino/msg"
	"github.com/ratel-online/domino/ui"
)

var announce sync.Once

type welcome struct{}

func (*welcome) Next(session *Session) (consts.StateID, error) {
	announce.Do(func() {
		listener := announcer{}
		event.TilePlayed.AddListener(listener)
		event.TilesDrawn.AddListener(listener)
		event.PlayerPassed.AddListener(listener)
	})
	ui.Print(msg.Message.Welcome())
	return consts.StateDeal, nil
}

// announcer echoes game events to the console.
type announcer struct{}

func (announcer) OnTilePlayed(payload event.TilePlayedPayload) {
	ui.Print(msg.Message.PlayerPlayedTile(payload.PlayerName, payload.Tile, payload.End))
}

func (announcer) OnTilesDrawn(payload event.TilesDrawnPayload) {
	ui.Print(msg.Message.PlayerDrewTiles(payload.PlayerName, payload.Tiles))
}

func (announcer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	ui.Print(msg.Message.PlayerPassed(payload.PlayerName, payload.Passes))
}
