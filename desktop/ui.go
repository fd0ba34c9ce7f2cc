package desktop

import (
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/nathanKramer/pendulum/pendulum"
)

const uiActionDrag = pixelgl.MouseButtonLeft
const uiActionGravity = pixelgl.KeyG
const uiActionElastic = pixelgl.KeySpace
const uiActionReset = pixelgl.KeyR
const uiActionHud = pixelgl.KeyH
const uiActionQuit = pixelgl.KeyEscape

type uiContext struct {
	viewport pendulum.Viewport
	MousePos pixel.Vec // simulation space
}

func NewUi(win *pixelgl.Window) *uiContext {
	ui := &uiContext{}
	ui.SetBounds(win.Bounds())
	return ui
}

// SetBounds refits the window to the simulation, for when the window changes size.
func (ui *uiContext) SetBounds(bounds pixel.Rect) {
	ui.viewport = pendulum.NewViewport(pendulum.Bounds(), bounds)
}

// PollInput turns this frame's keyboard and mouse state into simulation input.
func (ui *uiContext) PollInput(win *pixelgl.Window) pendulum.Input {
	ui.MousePos = ui.viewport.ToSimulation(win.MousePosition())

	return pendulum.Input{
		ToggleGravity: win.JustPressed(uiActionGravity),
		ToggleElastic: win.JustPressed(uiActionElastic),
		Reset:         win.JustPressed(uiActionReset),
		Dragging:      win.Pressed(uiActionDrag),
		Pointer:       ui.MousePos,
	}
}

func uiToggleHud(win *pixelgl.Window) bool {
	return win.JustPressed(uiActionHud)
}

func uiQuit(win *pixelgl.Window) bool {
	return win.JustPressed(uiActionQuit)
}
