//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"atlantis/internal/render"
	"atlantis/internal/sims/sand"
	"atlantis/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the side panel.
const HUDWidth = 260

// Game adapts a sand world to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	brush   Brush

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	chars    []rune
}

// New constructs a Game for the provided world. material names the initial
// brush material.
func New(world *sand.World, scale int, seed int64, material string) *Game {
	size := world.Size()
	if scale < 1 {
		scale = 1
	}
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H, color.RGBA{A: 255}),
		hud:     ui.NewHUD(world, HUDWidth),
		overlay: ui.NewOverlay(world, size.H, scale),
		brush:   NewBrush(material),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.Reset(time.Now().UnixNano())
		} else {
			g.Reset(g.seed)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.brush.Grow(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.brush.Grow(-1)
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.brush.HandleRune(r)
	}

	g.overlay.Update()
	g.hud.Update(g.gridWidth())
	g.paint()

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	g.hud.SetStatus(g.status()...)
	return nil
}

// paint applies the brush under the cursor: left button places, right
// button erases.
func (g *Game) paint() {
	x, y, ok := g.cursorCell()
	if !ok {
		return
	}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.world.PlaceBrush(x, y, g.brush.Radius, g.brush.Material)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.world.EraseBrush(x, y, g.brush.Radius)
	}
}

func (g *Game) cursorCell() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	if g.hud.Contains(mx, my) {
		return 0, 0, false
	}
	x, y := mx/g.scale, my/g.scale
	size := g.world.Size()
	if mx < 0 || my < 0 || x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

func (g *Game) status() []string {
	mode := "serial"
	if g.world.Parallel() {
		mode = fmt.Sprintf("chunked x%d", len(g.world.Layout()))
	}
	state := "running"
	if g.paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("Brush: %s r%d", g.brush.Material, g.brush.Radius),
		fmt.Sprintf("Tick: %d (%s)", g.world.Tick(), state),
		fmt.Sprintf("Particles: %d  Boids: %d", g.world.Grid().Count(), g.world.Env().BoidCount()),
		fmt.Sprintf("Mode: %s", mode),
	}
}

// Draw renders the world, overlays and side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world, g.scale)
	g.overlay.Draw(screen)
	if x, y, ok := g.cursorCell(); ok {
		g.overlay.DrawBrush(screen, x, y, g.brush.Radius)
	}
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

func (g *Game) gridWidth() int { return g.world.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + HUDWidth, g.world.Size().H * g.scale
}
