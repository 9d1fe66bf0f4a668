package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/domino/domino/tile"
)

type State struct {
	Table             []tile.Tile
	LeftEnd           *int
	RightEnd          *int
	CurrentPlayerHand []tile.Tile
	PlayerSequence    []string
	HandCounts        []int
	StockSize         int
	Blocked           bool
}

func (s State) String() string {
	var lines []string
	if len(s.Table) == 0 {
		lines = append(lines, "Table: empty")
	} else {
		lines = append(lines, fmt.Sprintf("Table: %s", tile.ToTileString(s.Table)))
		lines = append(lines, fmt.Sprintf("Open ends: %d and %d", *s.LeftEnd, *s.RightEnd))
	}

	var playerStatuses []string
	for index, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d tile(s))", playerName, s.HandCounts[index])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Stock: %d tile(s)", s.StockSize))
	lines = append(lines, fmt.Sprintf("Your hand: %s", tile.ToTileString(s.CurrentPlayerHand)))

	return strings.Join(lines, "\n")
}
