//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life3d/internal/app"
	"life3d/pkg/core"
	"life3d/pkg/sims/life3d"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lc := cfg.Life()
	if err := lc.Validate(); err != nil {
		log.Fatal(err)
	}
	life, err := life3d.New(lc.Width, lc.Height, lc.Depth)
	if err != nil {
		log.Fatal(err)
	}
	if err := life.Populate(core.NewRNG(lc.Seed).Source(), lc.Rate); err != nil {
		log.Fatal(err)
	}

	game := app.New(life, lc, cfg.Scale, cfg.TPS)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life3d — " + life.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
