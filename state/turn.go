package state

import (
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/domino/msg"
	"github.com/ratel-online/domino/domino/tile"
	"github.com/ratel-online/domino/ui"
)

type turn struct{}

func (*turn) Next(session *Session) (consts.StateID, error) {
	g := session.Game
	player, err := g.CurrentPlayer()
	if err != nil {
		return 0, err
	}
	auto := session.Auto(player)
	if !auto {
		ui.Print(msg.Message.PlayerTurnStarted(player.Name()))
		ui.Println(g.ExtractState(player).String())
	}

	plays, err := g.AvailablePlays()
	if err != nil {
		return 0, err
	}
	if len(plays) == 0 {
		drawn, err := g.DrawUntilPlayable()
		if err != nil {
			return 0, err
		}
		if !auto && len(drawn) > 0 {
			ui.Print(msg.Message.HumanPlayerDrewTiles(drawn))
		}
		if plays, err = g.AvailablePlays(); err != nil {
			return 0, err
		}
	}
	if len(plays) == 0 {
		winner, err := g.Pass()
		if err != nil {
			return 0, err
		}
		return afterMove(winner), nil
	}

	if auto {
		return playAuto(g, plays[0])
	}
	return playHuman(g, plays)
}

func playAuto(g *game.Game, selected tile.Tile) (consts.StateID, error) {
	winner, err := g.Play(selected, game.SideAny)
	if err == consts.ErrorsAmbiguousTilePlacement {
		winner, err = g.Play(selected, game.SideLeft)
	}
	if err != nil {
		return 0, err
	}
	return afterMove(winner), nil
}

func playHuman(g *game.Game, plays []tile.Tile) (consts.StateID, error) {
	for {
		selected, err := ui.PromptTileSelection(plays)
		if err != nil {
			return 0, err
		}
		winner, err := g.Play(selected, game.SideAny)
		if err == consts.ErrorsAmbiguousTilePlacement {
			side, promptErr := ui.PromptSide(selected)
			if promptErr != nil {
				return 0, promptErr
			}
			winner, err = g.Play(selected, side)
		}
		if gameErr, ok := err.(consts.Error); ok && !gameErr.Exit {
			ui.Println(gameErr.Error())
			continue
		}
		if err != nil {
			return 0, err
		}
		return afterMove(winner), nil
	}
}

func afterMove(winner *game.Player) consts.StateID {
	if winner != nil {
		return consts.StateOver
	}
	return consts.StateTurn
}
