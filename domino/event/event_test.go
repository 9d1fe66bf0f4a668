package event_test

import (
	"testing"

	"github.com/ratel-online/domino/domino/event"
	"github.com/ratel-online/domino/domino/tile"
	"github.com/stretchr/testify/require"
)

func TestTilePlayed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.TilePlayed.AddListener(listenerOne)
	event.TilePlayed.AddListener(listenerTwo)

	payloads := []event.TilePlayedPayload{
		{
			PlayerName: "Someone",
			Tile:       tile.MustNew(6, 6),
			End:        "any",
		},
		{
			PlayerName: "Somebody",
			Tile:       tile.MustNew(3, 6),
			End:        "right",
		},
	}

	for _, payload := range payloads {
		event.TilePlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestTilesDrawn(t *testing.T) {
	listener := event.NewDummyListener()
	event.TilesDrawn.AddListener(listener)

	payloads := []event.TilesDrawnPayload{
		{
			PlayerName: "Someone",
			Tiles:      []tile.Tile{tile.MustNew(0, 1)},
		},
		{
			PlayerName: "Somebody",
			Tiles:      []tile.Tile{tile.MustNew(2, 4), tile.MustNew(5, 5)},
		},
	}

	for _, payload := range payloads {
		event.TilesDrawn.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listener.ReceivedPayloads())
}

func TestPlayerPassed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.PlayerPassed.AddListener(listenerOne)
	event.PlayerPassed.AddListener(listenerTwo)

	payloads := []event.PlayerPassedPayload{
		{
			PlayerName: "Someone",
			Passes:     1,
		},
		{
			PlayerName: "Somebody",
			Passes:     2,
		},
	}

	for _, payload := range payloads {
		event.PlayerPassed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestRoundOver(t *testing.T) {
	listener := event.NewDummyListener()
	event.RoundOver.AddListener(listener)

	payload := event.RoundOverPayload{WinnerName: "Someone", Score: 4, Blocked: true}
	event.RoundOver.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())

	listener.Reset()
	require.Empty(t, listener.ReceivedPayloads())
}
