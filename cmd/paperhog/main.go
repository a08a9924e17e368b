//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"paperhog/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	game := app.New(cfg)
	defer game.Close()

	ebiten.SetWindowTitle("paperhog")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
