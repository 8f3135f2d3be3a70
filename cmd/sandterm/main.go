// Command sandterm runs the sandbox in a terminal, drawing two grid rows per
// text row with half-block glyphs.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"atlantis/internal/app"
	"atlantis/internal/core"
	"atlantis/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write scheduler logs to this file instead of discarding them")
	flag.Parse()

	var logger *log.Logger
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	world := sand.NewWithLogger(sand.FromMap(cfg.SimConfig()), logger)
	defer func() {
		if err := world.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()
	world.Reset(cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	run(newView(world, screen, app.NewBrush(cfg.Material), cfg.Seed), cfg.TPS)
}

// run pumps terminal events and steps the world at tps until the user quits.
func run(v *view, tps int) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	clock := core.NewFixedStep(tps)
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-ticker.C:
			if clock.ShouldStep() {
				v.tick()
			}
			v.draw()
		}
	}
}
