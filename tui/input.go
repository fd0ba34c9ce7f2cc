package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/nathanKramer/pendulum/pendulum"
)

// inputState collects terminal events between ticks. Key presses are edges and
// are consumed by the next tick; the mouse button is held until it is released.
type inputState struct {
	toggleGravity bool
	toggleElastic bool
	reset         bool
	toggleHud     bool
	quit          bool

	dragging bool
	pointerX int
	pointerY int
}

func (s *inputState) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventMouse:
		s.pointerX, s.pointerY = ev.Position()
		s.dragging = ev.Buttons()&tcell.Button1 != 0
	}
}

func (s *inputState) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'g', 'G':
		s.toggleGravity = true
	case ' ':
		s.toggleElastic = true
	case 'r', 'R':
		s.reset = true
	case 'h', 'H':
		s.toggleHud = true
	case 'q', 'Q':
		s.quit = true
	}
}

// take builds the step input and clears the edges.
func (s *inputState) take(g grid) pendulum.Input {
	in := pendulum.Input{
		ToggleGravity: s.toggleGravity,
		ToggleElastic: s.toggleElastic,
		Reset:         s.reset,
		Dragging:      s.dragging,
		Pointer:       g.toSimulation(s.pointerX, s.pointerY),
	}
	s.toggleGravity = false
	s.toggleElastic = false
	s.reset = false
	return in
}
