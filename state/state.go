package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/domino/consts"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateDeal, &deal{})
	register(consts.StateTurn, &turn{})
	register(consts.StateOver, &over{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// State returns the next state to enter, or 0 once the round is finished.
type State interface {
	Next(session *Session) (consts.StateID, error)
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Run drives the session from the welcome banner to the end of the round.
func Run(session *Session) error {
	stateID := Root()
	for stateID > 0 {
		state := states[stateID]
		next, err := state.Next(session)
		if err != nil {
			log.Error(err)
			return err
		}
		stateID = next
	}
	return nil
}
