// Command diceroller is the firmware for the dice roller. Build it for a board
// with TinyGo, or run it with the regular Go toolchain to open the simulator:
//
//	tinygo flash -target=arduino ./cmd/diceroller
//	go run ./cmd/diceroller
package main

import (
	"context"
	"log/slog"
	"math/rand"
	"os"

	"github.com/aykevl/dice"
)

func main() {
	ctx := context.Background()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log.LogAttrs(ctx, slog.LevelInfo, "start", slog.String("board", dice.Name))

	inputs := dice.Buttons.Configure()
	bus := dice.Display.Configure()

	// Reseeded from the button timing on every roll.
	rng := rand.New(rand.NewSource(0))

	c := dice.NewController(inputs, bus, rng, log)
	c.Run(ctx, dice.SinceBoot())
}
