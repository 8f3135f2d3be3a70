package sand

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"atlantis/internal/core"
)

// ErrSchedulerClosed is returned by Tick after Close.
var ErrSchedulerClosed = errors.New("sand: scheduler closed")

// chunk is a worker's private copy of one column range. Particles are moved,
// not copied, into it and carry chunk-local coordinates while it is out.
type chunk struct {
	spec ChunkSpec
	grid *Grid
	env  *Env
	rng  *rand.Rand
	tick uint64
}

// task is the controller-to-worker message: either a chunk to update or the
// stop sentinel.
type task struct {
	stop  bool
	chunk *chunk
}

// Scheduler runs ticks across a fixed pool of workers. Each tick uses the
// aligned or staggered layout by tick parity and runs in two half-steps,
// even-indexed chunks first. A half-step only starts once the previous one
// has been written back, and only the controller touches the shared grid.
//
// A Scheduler is driven from a single goroutine.
type Scheduler struct {
	chunks  int
	workers int
	tasks   chan task
	results chan *chunk
	group   errgroup.Group
	logger  *log.Logger

	mu     sync.Mutex
	closed bool
}

// NewScheduler starts one worker per chunk. A nil logger disables logging.
func NewScheduler(chunks int, logger *log.Logger) *Scheduler {
	if chunks < 1 {
		chunks = 1
	}
	s := &Scheduler{
		chunks:  chunks,
		workers: chunks,
		tasks:   make(chan task, chunks+1),
		results: make(chan *chunk, chunks+1),
		logger:  logger,
	}
	for i := 0; i < s.workers; i++ {
		s.group.Go(s.work)
	}
	s.logf("scheduler: started %d workers", s.workers)
	return s
}

// Chunks reports the configured chunk count.
func (s *Scheduler) Chunks() int { return s.chunks }

func (s *Scheduler) work() error {
	for t := range s.tasks {
		if t.stop {
			return nil
		}
		c := t.chunk
		lo := c.spec.Update.Lo - c.spec.Extent.Lo
		NewFrame(c.env, c.grid, c.rng, c.tick).Scan(lo, lo+c.spec.Update.Len())
		s.results <- c
	}
	return nil
}

// Tick advances g by one tick. seed feeds the per-chunk generators, so equal
// seeds on equal grids reproduce the same result.
func (s *Scheduler) Tick(g *Grid, env *Env, tick, seed uint64) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrSchedulerClosed
	}

	layout := Partition(g.W, s.chunks, tick%2 == 1)
	for phase := 0; phase < 2; phase++ {
		sent := 0
		for _, spec := range layout {
			if spec.Phase() != phase {
				continue
			}
			stream := uint64(phase)<<32 | uint64(spec.Index)
			s.tasks <- task{chunk: extract(g, spec, env, core.Child(seed, stream), tick)}
			sent++
		}
		for i := 0; i < sent; i++ {
			c := <-s.results
			reassemble(g, c)
		}
	}
	return nil
}

// Close stops every worker and waits for them to exit. It is safe to call
// more than once.
func (s *Scheduler) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	for i := 0; i < s.workers; i++ {
		s.tasks <- task{stop: true}
	}
	if err := s.group.Wait(); err != nil {
		return fmt.Errorf("sand: join workers: %w", err)
	}
	s.logf("scheduler: stopped %d workers", s.workers)
	return nil
}

func (s *Scheduler) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// extract moves the particles inside spec.Extent out of g into a fresh
// chunk-local grid.
func extract(g *Grid, spec ChunkSpec, env *Env, rng *rand.Rand, tick uint64) *chunk {
	off := spec.Extent.Lo
	local := NewGrid(spec.Extent.Len(), g.H)
	for y := 0; y < g.H; y++ {
		for x := spec.Extent.Lo; x < spec.Extent.Hi; x++ {
			p := g.take(x, y)
			if p == nil {
				continue
			}
			p.toLocal(off)
			local.put(p.X, y, p)
		}
	}
	return &chunk{spec: spec, grid: local, env: env, rng: rng, tick: tick}
}

// reassemble writes a finished chunk back into g. The extent was emptied by
// extract, so every cell is overwritten wholesale.
func reassemble(g *Grid, c *chunk) {
	off := c.spec.Extent.Lo
	for y := 0; y < c.grid.H; y++ {
		for x := 0; x < c.grid.W; x++ {
			p := c.grid.At(x, y)
			if p == nil {
				continue
			}
			p.toGlobal(off)
			g.put(p.X, y, p)
		}
	}
}
