package main

import (
	"testing"

	"atlantis/internal/app"
	"atlantis/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func newTestView(t *testing.T) (*view, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(16, 10)
	w := sand.New(16, 16)
	return newView(w, screen, app.NewBrush("sand"), 1), screen
}

func TestViewDrawsHalfBlocks(t *testing.T) {
	v, screen := newTestView(t)
	v.world.Place(2, 4, sand.Rock)
	v.cursorX, v.cursorY = 15, 15
	v.draw()

	r, _, style, _ := screen.GetContent(2, 2)
	if r != halfBlock {
		t.Fatalf("cell rune = %q, want half block", r)
	}
	want, _ := v.world.ColorAt(2, 4)
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(int32(want.R), int32(want.G), int32(want.B)) {
		t.Fatalf("upper cell color = %v, want rock", fg)
	}
	if bg != emptyColor {
		t.Fatalf("lower cell color = %v, want empty", bg)
	}
	if r, _, _, _ := screen.GetContent(0, 8); r != ' ' {
		t.Fatalf("status line should start with a space, got %q", r)
	}
}

func TestViewInput(t *testing.T) {
	v, _ := newTestView(t)
	if !v.handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) || v.brush.Material != sand.Water {
		t.Fatal("w should select water")
	}
	v.handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	if v.world.MaterialAt(3, 4) != sand.Water {
		t.Fatal("left click should paint at the upper half of the text cell")
	}
	v.handle(tcell.NewEventMouse(3, 2, tcell.Button2, tcell.ModNone))
	if v.world.MaterialAt(3, 4) != sand.Empty {
		t.Fatal("right click should erase")
	}

	v.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	v.tick()
	if v.world.Tick() != 0 {
		t.Fatal("a paused view should not step")
	}
	v.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	v.tick()
	v.tick()
	if v.world.Tick() != 1 {
		t.Fatalf("n should step exactly once, tick = %d", v.world.Tick())
	}

	v.cursorX, v.cursorY = 0, 0
	v.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	v.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if v.cursorX != 0 || v.cursorY != 0 {
		t.Fatal("cursor should stay on the grid")
	}
	v.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if v.world.MaterialAt(0, 0) != sand.Water {
		t.Fatal("enter should paint at the cursor")
	}

	if v.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if v.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}
