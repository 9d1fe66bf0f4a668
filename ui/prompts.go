package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/domino/tile"
)

var Stdin io.Reader = bufio.NewReader(os.Stdin)

func PromptString(message string) (string, error) {
	for {
		Println(message)
		var input string
		_, err := fmt.Fscanln(Stdin, &input)
		if err == io.EOF {
			return "", err
		}
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func promptUppercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToUpper(input), err
}

// PromptTileSelection labels the tiles A, B, C... in the given order. Typing
// the pips, e.g. 5-3, works as well.
func PromptTileSelection(tiles []tile.Tile) (tile.Tile, error) {
	sequence := tileLabels{}
	labels := make([]string, 0, len(tiles))
	tileOptions := make(map[string]tile.Tile, len(tiles))
	for _, option := range tiles {
		label := sequence.next()
		labels = append(labels, label)
		tileOptions[label] = option
	}

	tileSelectionLines := []string{"Select a tile to play:"}
	for _, label := range labels {
		tileSelectionLines = append(tileSelectionLines, fmt.Sprintf("%s (enter %s)", tileOptions[label], label))
	}
	tileSelectionMessage := strings.Join(tileSelectionLines, "\n")

	for {
		selectedLabel, err := promptUppercaseString(tileSelectionMessage)
		if err != nil {
			return tile.Tile{}, err
		}
		if selectedTile, found := tileOptions[selectedLabel]; found {
			return selectedTile, nil
		}
		if typed, err := tile.Parse(selectedLabel); err == nil {
			for _, option := range tiles {
				if option.Equal(typed) {
					return option, nil
				}
			}
		}
		Printfln("No tile assigned to '%s'", selectedLabel)
	}
}

func PromptSide(selected tile.Tile) (game.Side, error) {
	message := fmt.Sprintf("%s fits both ends: 'left' or 'right'?", selected)
	for {
		input, err := PromptString(message)
		if err != nil {
			return game.SideAny, err
		}
		side, err := game.ParseSide(input)
		if err != nil || side == game.SideAny {
			Printfln("Unknown side '%s'", input)
			continue
		}
		return side, nil
	}
}
