package main

import (
	"fmt"

	"atlantis/internal/app"
	"atlantis/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

// halfBlock draws two grid rows per terminal row: the foreground is the
// upper cell and the background the lower one.
const halfBlock = '▀'

var (
	emptyColor  = tcell.NewRGBColor(0, 0, 0)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// view binds a world to a terminal screen and translates input into edits.
type view struct {
	world  *sand.World
	screen tcell.Screen
	brush  app.Brush
	seed   int64

	cursorX, cursorY int
	paused           bool
	stepOnce         bool
}

func newView(world *sand.World, screen tcell.Screen, brush app.Brush, seed int64) *view {
	size := world.Size()
	return &view{world: world, screen: screen, brush: brush, seed: seed, cursorX: size.W / 2, cursorY: size.H / 2}
}

// tick advances the world unless paused.
func (v *view) tick() {
	if v.paused && !v.stepOnce {
		return
	}
	v.world.Step()
	v.stepOnce = false
}

// handle applies one event. It returns false when the user asked to quit.
func (v *view) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		v.cursorX, v.cursorY = x, y*2
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			v.world.PlaceBrush(v.cursorX, v.cursorY, v.brush.Radius, v.brush.Material)
		case ev.Buttons()&tcell.Button2 != 0:
			v.world.EraseBrush(v.cursorX, v.cursorY, v.brush.Radius)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *view) handleKey(ev *tcell.EventKey) bool {
	size := v.world.Size()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.cursorY = max(v.cursorY-1, 0)
	case tcell.KeyDown:
		v.cursorY = min(v.cursorY+1, size.H-1)
	case tcell.KeyLeft:
		v.cursorX = max(v.cursorX-1, 0)
	case tcell.KeyRight:
		v.cursorX = min(v.cursorX+1, size.W-1)
	case tcell.KeyEnter:
		v.world.PlaceBrush(v.cursorX, v.cursorY, v.brush.Radius, v.brush.Material)
	case tcell.KeyDelete:
		v.world.EraseBrush(v.cursorX, v.cursorY, v.brush.Radius)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.world.Reset(v.seed)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.stepOnce = true
		default:
			v.brush.HandleRune(r)
		}
	}
	return true
}

// draw renders the grid, the cursor and a status line.
func (v *view) draw() {
	v.screen.Clear()
	size := v.world.Size()
	rows := (size.H + 1) / 2
	for ty := 0; ty < rows; ty++ {
		for x := 0; x < size.W; x++ {
			style := tcell.StyleDefault.
				Foreground(v.cellColor(x, 2*ty)).
				Background(v.cellColor(x, 2*ty+1))
			v.screen.SetContent(x, ty, halfBlock, nil, style)
		}
	}
	if v.cursorX >= 0 && v.cursorX < size.W && v.cursorY >= 0 && v.cursorY < size.H {
		v.screen.SetContent(v.cursorX, v.cursorY/2, '+', nil, cursorStyle)
	}
	state := "running"
	if v.paused {
		state = "paused"
	}
	status := fmt.Sprintf(" %s r%d | tick %d %s | particles %d boids %d | space pause, n step, [ ] cycle, +/- size, q quit",
		v.brush.Material, v.brush.Radius, v.world.Tick(), state, v.world.Grid().Count(), v.world.Env().BoidCount())
	drawText(v.screen, 0, rows, status, statusStyle)
	v.screen.Show()
}

func (v *view) cellColor(x, y int) tcell.Color {
	c, ok := v.world.ColorAt(x, y)
	if !ok {
		return emptyColor
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
