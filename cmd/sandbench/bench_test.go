package main

import (
	"image/png"
	"os"
	"testing"

	"atlantis/internal/sims/sand"
)

func TestRunScenarioKeepsInvariants(t *testing.T) {
	base := sand.DefaultConfig()
	base.Width, base.Height = 48, 40
	base.Chunks = 4
	base.Scene = sand.SceneDemo
	for _, parallel := range []bool{false, true} {
		res := runScenario(base, scenario{seed: 5, parallel: parallel}, 40, defaultStrokes(48, 40))
		if !res.ok() {
			t.Fatalf("%s: consistent=%v boids=%d live=%d", res.scenario, res.consistent, res.boids, res.liveBoids)
		}
		if res.particles == 0 || res.peak < res.particles {
			t.Fatalf("%s: particles=%d peak=%d", res.scenario, res.particles, res.peak)
		}
		if len(res.cells) != 48*40 {
			t.Fatalf("%s: captured %d cells", res.scenario, len(res.cells))
		}
	}
}

func TestWriteSnapshot(t *testing.T) {
	base := sand.DefaultConfig()
	base.Width, base.Height = 16, 12
	base.Scene = sand.SceneDemo
	res := runScenario(base, scenario{seed: 1}, 5, nil)

	path, err := writeSnapshot(t.TempDir(), res)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Fatalf("snapshot bounds = %v", b)
	}
}
