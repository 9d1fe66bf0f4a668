package game_test

import (
	"testing"

	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/domino/tile"
	"github.com/stretchr/testify/require"
)

func TestPlayable(t *testing.T) {
	scenarios := []struct {
		description    string
		candidate      tile.Tile
		end            int
		expectedResult bool
	}{
		{description: "left_pip_matches", candidate: tile.MustNew(3, 5), end: 3, expectedResult: true},
		{description: "right_pip_matches", candidate: tile.MustNew(3, 5), end: 5, expectedResult: true},
		{description: "double_matches", candidate: tile.MustNew(0, 0), end: 0, expectedResult: true},
		{description: "no_pip_matches", candidate: tile.MustNew(3, 5), end: 4, expectedResult: false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedResult, game.Playable(scenario.candidate, scenario.end))
		})
	}
}

func TestOrient(t *testing.T) {
	candidate := tile.MustNew(2, 5)
	game.Orient(&candidate, 2, game.SideLeft)
	require.Equal(t, "[5|2]", candidate.String())

	game.Orient(&candidate, 2, game.SideRight)
	require.Equal(t, "[2|5]", candidate.String())

	game.Orient(&candidate, 2, game.SideRight)
	require.Equal(t, "[2|5]", candidate.String())
}

func TestOutranks(t *testing.T) {
	scenarios := []struct {
		description string
		candidate   tile.Tile
		other       tile.Tile
		expected    bool
	}{
		{description: "double_beats_heavier_tile", candidate: tile.MustNew(0, 0), other: tile.MustNew(5, 6), expected: true},
		{description: "higher_double", candidate: tile.MustNew(6, 6), other: tile.MustNew(5, 5), expected: true},
		{description: "lower_double", candidate: tile.MustNew(1, 1), other: tile.MustNew(5, 5), expected: false},
		{description: "heavier_tile", candidate: tile.MustNew(4, 6), other: tile.MustNew(3, 5), expected: true},
		{description: "same_weight_higher_pip", candidate: tile.MustNew(1, 6), other: tile.MustNew(2, 5), expected: true},
		{description: "same_weight_lower_pip", candidate: tile.MustNew(2, 5), other: tile.MustNew(1, 6), expected: false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, game.Outranks(scenario.candidate, scenario.other))
		})
	}
}
