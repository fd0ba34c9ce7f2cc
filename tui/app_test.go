package tui

import (
	"testing"

	"github.com/faiface/pixel"
	"github.com/gdamore/tcell/v2"
	"github.com/nathanKramer/pendulum/pendulum"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	settings := pendulum.DefaultSettings()
	return NewApp(screen, settings, nil), screen
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestGridCorners(t *testing.T) {
	g := newGrid(80, 24)
	sim := pendulum.Bounds()

	if x, y := g.toCell(sim.Min); x != 0 || y != 0 {
		t.Errorf("top left maps to (%d, %d), want (0, 0)", x, y)
	}
	if x, y := g.toCell(sim.Max); x != 79 || y != 23 {
		t.Errorf("bottom right maps to (%d, %d), want (79, 23)", x, y)
	}
	if x, y := g.toCell(pixel.V(-500, 5000)); x != 0 || y != 23 {
		t.Errorf("outside point maps to (%d, %d), want clamped (0, 23)", x, y)
	}
}

func TestGridCellCentreRoundTrip(t *testing.T) {
	g := newGrid(80, 24)
	for _, c := range [][2]int{{0, 0}, {40, 12}, {79, 23}, {3, 17}} {
		x, y := g.toCell(g.toSimulation(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Errorf("cell %v round trips to (%d, %d)", c, x, y)
		}
	}
}

func TestGridNeverEmpty(t *testing.T) {
	g := newGrid(0, -3)
	if g.cols != 1 || g.rows != 1 {
		t.Fatalf("grid = %dx%d, want 1x1", g.cols, g.rows)
	}
}

func TestKeysAreEdges(t *testing.T) {
	var s inputState
	g := newGrid(80, 24)

	s.handle(keyRune('g'))
	s.handle(keyRune(' '))
	s.handle(keyRune('r'))

	in := s.take(g)
	if !in.ToggleGravity || !in.ToggleElastic || !in.Reset {
		t.Fatalf("first take = %+v, want all toggles set", in)
	}
	in = s.take(g)
	if in.ToggleGravity || in.ToggleElastic || in.Reset {
		t.Fatalf("second take = %+v, want toggles cleared", in)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"q", keyRune('q')},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			if app.handleEvent(tt.ev) {
				t.Errorf("app kept running after %s", tt.name)
			}
		})
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	app, _ := newTestApp(t)
	if !app.handleEvent(keyRune('x')) {
		t.Fatal("app quit on an unbound key")
	}
	if app.input != (inputState{}) {
		t.Fatalf("input state changed: %+v", app.input)
	}
}

func TestMouseHoldAndRelease(t *testing.T) {
	var s inputState
	g := newGrid(80, 24)

	s.handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	in := s.take(g)
	if !in.Dragging {
		t.Fatal("not dragging while button held")
	}
	if in.Pointer != g.toSimulation(10, 5) {
		t.Fatalf("pointer = %v, want %v", in.Pointer, g.toSimulation(10, 5))
	}

	// the button stays down across ticks until a release arrives
	if !s.take(g).Dragging {
		t.Fatal("drag dropped between ticks")
	}

	s.handle(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if s.take(g).Dragging {
		t.Fatal("still dragging after release")
	}
}

func TestTickTogglesGravity(t *testing.T) {
	app, _ := newTestApp(t)

	app.handleEvent(keyRune('g'))
	app.tick()
	if app.world.Toggles.Gravity {
		t.Fatal("gravity still on after g")
	}
	app.tick()
	if app.world.Toggles.Gravity {
		t.Fatal("gravity toggled back without a key press")
	}
}

func TestTickDragsBallAndDrawsIt(t *testing.T) {
	app, screen := newTestApp(t)

	app.handleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	app.tick()

	want := app.grid.toSimulation(40, 12)
	if app.world.Ball.Origin != want {
		t.Fatalf("ball at %v, want under the pointer at %v", app.world.Ball.Origin, want)
	}
	if r, _, _, _ := screen.GetContent(40, 12); r != ballRune {
		t.Fatalf("cell under the ball = %q, want %q", r, ballRune)
	}
}

func TestTickResetsWorld(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 30; i++ {
		app.tick()
	}
	app.handleEvent(keyRune('r'))
	app.tick()

	if app.world.Frame != 1 {
		t.Fatalf("frame after reset and one tick = %d, want 1", app.world.Frame)
	}
}

func TestHudToggle(t *testing.T) {
	app, screen := newTestApp(t)

	app.tick()
	if r, _, _, _ := screen.GetContent(1, 0); r != '[' {
		t.Fatalf("hud not drawn, got %q at (1, 0)", r)
	}

	app.handleEvent(keyRune('h'))
	app.tick()
	if app.showHud {
		t.Fatal("hud still on after h")
	}
	if r, _, _, _ := screen.GetContent(1, 0); r == '[' {
		t.Fatal("hud still drawn after h")
	}
}

func TestResizeRebuildsGrid(t *testing.T) {
	app, screen := newTestApp(t)

	screen.SetSize(120, 40)
	if !app.handleEvent(tcell.NewEventResize(120, 40)) {
		t.Fatal("app quit on resize")
	}
	if app.grid.cols != 120 || app.grid.rows != 40 {
		t.Fatalf("grid = %dx%d, want 120x40", app.grid.cols, app.grid.rows)
	}
}

func TestRenderDrawsObstacles(t *testing.T) {
	app, screen := newTestApp(t)
	app.showHud = false
	app.tick()

	x, y := app.grid.toCell(app.world.Static.Origin)
	want := tcell.StyleDefault.Background(toTcell(app.world.Static.DisplayColor()))
	if r, _, style, _ := screen.GetContent(x, y); r != obstacleRune || style != want {
		t.Fatalf("static obstacle centre = %q %v, want %q %v", r, style, obstacleRune, want)
	}
}
