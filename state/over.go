package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/msg"
	"github.com/ratel-online/domino/ui"
)

type over struct{}

func (*over) Next(session *Session) (consts.StateID, error) {
	g := session.Game
	winner, ok := g.Winner()
	if !ok {
		return consts.StateTurn, nil
	}
	if g.Blocked() {
		ui.Print(msg.Message.RoundBlocked(winner.Name(), winner.Score()))
	} else {
		ui.Print(msg.Message.WinnerFound(winner.Name()))
	}
	log.Infof("round %s over after %d turns, winner %s (blocked: %v)\n", g.ID(), g.Turn()+1, winner.Name(), g.Blocked())
	return 0, nil
}
