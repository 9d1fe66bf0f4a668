package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/domino/state"
	"github.com/ratel-online/domino/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	names := flag.String("players", "You,Bot", "comma separated player names, 2 to 4")
	auto := flag.Bool("auto", false, "let every seat play its first legal tile")
	seed := flag.Int64("seed", time.Now().UnixNano(), "shuffle seed")
	delay := flag.Duration("delay", ui.Delay, "pause between console messages")
	flag.Parse()

	ui.Delay = *delay
	seats := make([]state.Seat, 0, 4)
	for index, name := range strings.Split(*names, ",") {
		seats = append(seats, state.Seat{
			Name: strings.TrimSpace(name),
			Auto: *auto || index > 0,
		})
	}

	session, err := state.NewSession(seats, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Error(err)
		return
	}
	log.Infof("round %s seeded with %d\n", session.Game.ID(), *seed)
	if err := state.Run(session); err != nil {
		log.Error(err)
	}
}
