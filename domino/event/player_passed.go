package event

// PlayerPassed fires when a player with no play and an empty stock skips a turn.
var PlayerPassed = &playerPassedEmitter{}

// PlayerPassedPayload counts the passes in a row, this one included.
type PlayerPassedPayload struct {
	PlayerName string
	Passes     int
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type playerPassedEmitter struct {
	listeners []PlayerPassedListener
}

func (e *playerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerPassed(payload)
	}
}
