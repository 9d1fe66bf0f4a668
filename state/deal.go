package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/msg"
	"github.com/ratel-online/domino/ui"
)

type deal struct{}

func (*deal) Next(session *Session) (consts.StateID, error) {
	g := session.Game
	if err := g.Deal(); err != nil {
		return 0, err
	}
	opener, err := g.CurrentPlayer()
	if err != nil {
		return 0, err
	}
	log.Infof("round %s dealt to %d players, %s opens\n", g.ID(), len(g.Players()), opener.Name())

	for _, player := range g.Players() {
		if !session.Auto(player) {
			ui.Print(msg.Message.Dealt(player.Name(), player.Hand()))
		}
	}
	ui.Print(msg.Message.FirstPlayer(opener.Name()))
	return consts.StateTurn, nil
}
