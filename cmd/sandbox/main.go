//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"atlantis/internal/app"
	"atlantis/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world := sand.NewWithLogger(sand.FromMap(cfg.SimConfig()), log.Default())
	defer func() {
		if err := world.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()
	world.Reset(cfg.Seed)

	game := app.New(world, cfg.Scale, cfg.Seed, cfg.Material)
	size := world.Size()

	ebiten.SetWindowTitle("atlantis sandbox")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Print(err)
	}
}
