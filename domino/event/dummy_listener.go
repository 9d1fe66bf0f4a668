package event

type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) Reset() {
	l.receivedPayloads = l.receivedPayloads[:0]
}

func (l *DummyListener) OnTilePlayed(payload TilePlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnTilesDrawn(payload TilesDrawnPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnRoundOver(payload RoundOverPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}
