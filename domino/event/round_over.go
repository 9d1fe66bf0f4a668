package event

var RoundOver = &roundOverEmitter{}

// RoundOverPayload carries the winner. Blocked is set when nobody emptied
// their hand and the lowest pip total decided the round.
type RoundOverPayload struct {
	WinnerName string
	Score      int
	Blocked    bool
}

type RoundOverListener interface {
	OnRoundOver(RoundOverPayload)
}

type roundOverEmitter struct {
	listeners []RoundOverListener
}

func (e *roundOverEmitter) AddListener(listener RoundOverListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundOverEmitter) Emit(payload RoundOverPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundOver(payload)
	}
}
