package sand

import (
	"image/color"
	"log"
	"math"

	"atlantis/internal/core"
)

// MaxBrush is the largest brush radius Place accepts.
const MaxBrush = 10

// World is the falling-sand sandbox. It owns the authoritative grid and,
// in parallel mode, the worker pool that updates it in chunks.
type World struct {
	cfg Config

	grid  *Grid
	env   *Env
	rng   *core.RNG
	tick  uint64
	sched *Scheduler
	log   *log.Logger

	cells *core.ByteGrid
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options.
// Parallel worlds start their workers immediately; call Close to join them.
func NewWithConfig(cfg Config) *World {
	return NewWithLogger(cfg, nil)
}

// NewWithLogger is NewWithConfig with scheduler logging sent to logger.
func NewWithLogger(cfg Config, logger *log.Logger) *World {
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	if cfg.Chunks < 1 {
		cfg.Chunks = 1
	}
	w := &World{
		cfg:   cfg,
		grid:  NewGrid(cfg.Width, cfg.Height),
		env:   NewEnv(cfg.Params, uint64(cfg.Seed)),
		rng:   core.NewRNG(cfg.Seed),
		log:   logger,
		cells: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	if cfg.Parallel {
		w.sched = NewScheduler(cfg.Chunks, logger)
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the material tag of every cell, refreshed after each Step
// and placement.
func (w *World) Cells() []uint8 { return w.cells.Cells() }

// Grid exposes the authoritative grid.
func (w *World) Grid() *Grid { return w.grid }

// Env exposes the shared simulation context.
func (w *World) Env() *Env { return w.env }

// Tick reports how many steps have run since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// Parallel reports whether steps run on the chunk scheduler.
func (w *World) Parallel() bool { return w.sched != nil }

// Layout returns the chunk layout the next Step will use, or nil in serial
// mode.
func (w *World) Layout() []ChunkSpec {
	if w.sched == nil {
		return nil
	}
	return Partition(w.grid.W, w.sched.Chunks(), (w.tick+1)%2 == 1)
}

// Reset clears the grid and rebuilds the configured scene. A zero seed
// reuses the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.grid.Clear()
	w.env.reset(uint64(seed))
	w.rng = core.NewRNG(seed)
	w.tick = 0
	w.frame().buildScene(w.cfg.Scene)
	w.snapshot()
}

// Step advances every color animator once, then runs one tick with the
// serial scan or the chunk scheduler.
func (w *World) Step() {
	w.tick++
	w.env.shaders.Advance()
	if w.sched != nil {
		err := w.sched.Tick(w.grid, w.env, w.tick, w.rng.Uint64())
		if err == nil {
			w.snapshot()
			return
		}
		if w.log != nil {
			w.log.Printf("sand: chunked tick %d failed, continuing serially: %v", w.tick, err)
		}
		w.sched = nil
	}
	w.frame().Scan(0, w.grid.W)
	w.snapshot()
}

// Close joins the scheduler workers, if any.
func (w *World) Close() error {
	if w.sched == nil {
		return nil
	}
	err := w.sched.Close()
	w.sched = nil
	return err
}

// CreateParticle builds an unplaced particle for a material name. Unknown
// names return ok=false. The particle does not count toward any population
// until Insert puts it on the grid.
func (w *World) CreateParticle(name string, x, y int) (*Particle, bool) {
	m, ok := ParseMaterial(name)
	if !ok {
		return nil, false
	}
	p := w.frame().spawn(m, x, y)
	return p, p != nil
}

// Insert puts a particle built by CreateParticle into the cell named by its
// position. It fails when the cell is out of range or occupied.
func (w *World) Insert(p *Particle) bool {
	if p == nil || !p.Material.Valid() || !w.grid.InBounds(p.X, p.Y) || w.grid.At(p.X, p.Y) != nil {
		return false
	}
	w.frame().place(p.X, p.Y, p)
	w.setCell(p.X, p.Y, p.Material)
	return true
}

// Place puts material m into (x, y) when the cell exists and is empty.
func (w *World) Place(x, y int, m Material) bool {
	if !m.Valid() || !w.grid.InBounds(x, y) || w.grid.At(x, y) != nil {
		return false
	}
	return w.Insert(w.frame().spawn(m, x, y))
}

// PlaceBrush stamps m into every empty cell within Euclidean radius of
// (x, y). The radius is clamped to [1, MaxBrush]; radius 1 paints a single
// cell. It returns the number of particles placed.
func (w *World) PlaceBrush(x, y, radius int, m Material) int {
	radius = ClampBrush(radius)
	if radius == 1 {
		if w.Place(x, y, m) {
			return 1
		}
		return 0
	}
	placed := 0
	r := float64(radius)
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if math.Hypot(float64(i), float64(j)) > r {
				continue
			}
			if w.Place(x+i, y+j, m) {
				placed++
			}
		}
	}
	return placed
}

// EraseBrush clears every cell within Euclidean radius of (x, y), with the
// same radius rules as PlaceBrush. It returns the number of cells cleared.
func (w *World) EraseBrush(x, y, radius int) int {
	radius = ClampBrush(radius)
	if radius == 1 {
		if w.Erase(x, y) {
			return 1
		}
		return 0
	}
	cleared := 0
	r := float64(radius)
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if math.Hypot(float64(i), float64(j)) <= r && w.Erase(x+i, y+j) {
				cleared++
			}
		}
	}
	return cleared
}

// ClampBrush limits a brush radius to [1, MaxBrush].
func ClampBrush(r int) int {
	return min(max(r, 1), MaxBrush)
}

// Erase removes whatever occupies (x, y).
func (w *World) Erase(x, y int) bool {
	p := w.grid.At(x, y)
	if p == nil {
		return false
	}
	w.frame().remove(p)
	w.setCell(x, y, Empty)
	return true
}

// ColorAt reports the display color of (x, y); ok is false for empty or
// out-of-range cells.
func (w *World) ColorAt(x, y int) (color.RGBA, bool) {
	p := w.grid.At(x, y)
	if p == nil {
		return color.RGBA{}, false
	}
	return p.Color(), true
}

// MaterialAt reports the material at (x, y), Empty when vacant.
func (w *World) MaterialAt(x, y int) Material {
	if p := w.grid.At(x, y); p != nil {
		return p.Material
	}
	return Empty
}

func (w *World) frame() *Frame {
	return NewFrame(w.env, w.grid, w.rng.Source(), w.tick)
}

func (w *World) setCell(x, y int, m Material) {
	w.cells.Set(x, y, uint8(m))
}

func (w *World) snapshot() {
	data := w.cells.Cells()
	for i := range data {
		data[i] = 0
	}
	w.grid.Each(func(p *Particle) {
		w.cells.Set(p.X, p.Y, uint8(p.Material))
	})
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
