package msg

import (
	"fmt"

	"github.com/ratel-online/domino/domino/tile"
	"github.com/ratel-online/domino/domino/tile/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return line(
		"WELCOME TO %s%s%s%s%s%s!",
		color.Red.Paint("D"),
		color.Yellow.Paint("O"),
		color.Green.Paint("M"),
		color.Blue.Paint("I"),
		color.Magenta.Paint("N"),
		color.White.Paint("O"),
	)
}

func (m MessageWriter) Dealt(playerName string, hand []tile.Tile) string {
	return line("%s was dealt %s", playerName, tile.ToTileString(hand))
}

func (m MessageWriter) FirstPlayer(playerName string) string {
	return line("%s opens the round!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return line("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerPlayedTile(playerName string, played tile.Tile, end string) string {
	if end == "left" || end == "right" {
		return line("%s played %s on the %s!", playerName, played, end)
	}
	return line("%s played %s!", playerName, played)
}

func (m MessageWriter) PlayerDrewTiles(playerName string, tiles []tile.Tile) string {
	if len(tiles) == 1 {
		return line("%s drew a tile!", playerName)
	}
	return line("%s drew %d tiles!", playerName, len(tiles))
}

func (m MessageWriter) HumanPlayerDrewTiles(tiles []tile.Tile) string {
	return line("You drew %s!", tile.ToTileString(tiles))
}

func (m MessageWriter) PlayerPassed(playerName string, passes int) string {
	if passes > 1 {
		return line("%s passed! That makes %d passes in a row.", playerName, passes)
	}
	return line("%s passed!", playerName)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return line("%s wins!", playerName)
}

func (m MessageWriter) RoundBlocked(playerName string, score int) string {
	return line("The game is blocked! %s wins with %d pip(s) left!", playerName, score)
}

func line(format string, args ...interface{}) string {
	return fmt.Sprintln(fmt.Sprintf(format, args...))
}
