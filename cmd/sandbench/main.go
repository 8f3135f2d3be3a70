// Command sandbench steps many seeded worlds serially and in chunks, checks
// the grid invariants after every tick and reports timings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"atlantis/internal/sims/sand"
)

func main() {
	steps := flag.Int("steps", 300, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 8, "number of seeds to sweep")
	width := flag.Int("w", 160, "grid width")
	height := flag.Int("h", 120, "grid height")
	chunks := flag.Int("chunks", 10, "chunk count for chunked runs")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worlds stepped at once")
	snapshot := flag.String("snapshot", "", "directory to write final-frame PNGs into")
	flag.Parse()

	base := sand.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Chunks = *chunks
	base.Scene = sand.SceneDemo
	strokes := defaultStrokes(base.Width, base.Height)

	var scenarios []scenario
	for i := 0; i < *seeds; i++ {
		seed := int64(1000 + i)
		scenarios = append(scenarios, scenario{seed: seed}, scenario{seed: seed, parallel: true})
	}

	fmt.Printf("Running %d scenarios on a %dx%d grid (%d workers, %d steps, %d chunks)\n",
		len(scenarios), base.Width, base.Height, *workers, *steps, base.Chunks)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, *steps, strokes)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	failed := 0
	for res := range results {
		all = append(all, res)
		if !res.ok() {
			failed++
			log.Printf("FAIL %s: consistent=%v (first bad tick %d) boids=%d live=%d",
				res.scenario, res.consistent, res.firstBad, res.boids, res.liveBoids)
		}
		if *snapshot != "" {
			path, err := writeSnapshot(*snapshot, res)
			if err != nil {
				log.Printf("%s: %v", res.scenario, err)
			} else {
				log.Printf("%s: wrote %s", res.scenario, path)
			}
		}
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].scenario.seed != all[j].scenario.seed {
			return all[i].scenario.seed < all[j].scenario.seed
		}
		return !all[i].scenario.parallel
	})

	var serial, chunked time.Duration
	for _, res := range all {
		fmt.Printf("%-22s %8s  particles=%d peak=%d boids=%d ok=%v\n",
			res.scenario, res.elapsed.Round(time.Millisecond), res.particles, res.peak, res.boids, res.ok())
		if res.scenario.parallel {
			chunked += res.elapsed
		} else {
			serial += res.elapsed
		}
	}
	fmt.Printf("\nSerial total %s, chunked total %s, wall %s\n",
		serial.Round(time.Millisecond), chunked.Round(time.Millisecond), elapsed.Round(time.Millisecond))

	if failed > 0 {
		log.Printf("%d of %d scenarios failed", failed, len(all))
		os.Exit(1)
	}
}
