package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"atlantis/internal/render"
	"atlantis/internal/sims/sand"
)

type scenario struct {
	seed     int64
	parallel bool
}

func (s scenario) mode() string {
	if s.parallel {
		return "chunked"
	}
	return "serial"
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d %s", s.seed, s.mode())
}

type scenarioResult struct {
	scenario   scenario
	elapsed    time.Duration
	particles  int
	peak       int
	boids      int
	liveBoids  int
	consistent bool
	firstBad   int
	cells      []uint8
	size       image.Point
}

func (r scenarioResult) ok() bool {
	return r.consistent && r.boids == r.liveBoids
}

// runScenario steps one world and records whether the grid stayed
// consistent and the boid counter matched the grid.
func runScenario(base sand.Config, sc scenario, steps int, brushes []brushStroke) scenarioResult {
	cfg := base
	cfg.Parallel = sc.parallel
	world := sand.NewWithConfig(cfg)
	defer world.Close()
	world.Reset(sc.seed)
	for _, b := range brushes {
		world.PlaceBrush(b.x, b.y, b.radius, b.material)
	}

	res := scenarioResult{scenario: sc, consistent: true, firstBad: -1}
	start := time.Now()
	for step := 0; step < steps; step++ {
		world.Step()
		if res.consistent && !world.Grid().Consistent() {
			res.consistent = false
			res.firstBad = step + 1
		}
		res.peak = max(res.peak, world.Grid().Count())
	}
	res.elapsed = time.Since(start)
	res.particles = world.Grid().Count()
	res.boids = world.Env().BoidCount()
	res.liveBoids = world.Grid().LiveBoids()
	res.cells = append([]uint8(nil), world.Cells()...)
	res.size = image.Pt(world.Size().W, world.Size().H)
	return res
}

type brushStroke struct {
	x, y, radius int
	material     sand.Material
}

// defaultStrokes seeds reactive materials over the demo scene so every rule
// family runs.
func defaultStrokes(w, h int) []brushStroke {
	return []brushStroke{
		{x: w / 4, y: h / 2, radius: 3, material: sand.Fire},
		{x: w / 2, y: h / 5, radius: 3, material: sand.Acid},
		{x: 3 * w / 4, y: h / 5, radius: 2, material: sand.Slime},
		{x: w / 3, y: h / 6, radius: 2, material: sand.Chaos},
		{x: 2 * w / 3, y: h / 6, radius: 2, material: sand.Grassium},
		{x: w / 8, y: h / 8, radius: 2, material: sand.Void},
	}
}

// writeSnapshot encodes the final cell tags of a result as a PNG in dir.
func writeSnapshot(dir string, res scenarioResult) (string, error) {
	img := image.NewRGBA(image.Rectangle{Max: res.size})
	render.FillPaletteRGBA(img.Pix, res.cells, sand.BasePalette())
	name := fmt.Sprintf("seed%d-%s.png", res.scenario.seed, res.scenario.mode())
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("snapshot %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	return path, f.Close()
}
