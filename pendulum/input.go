package pendulum

import "github.com/faiface/pixel"

// Input is what a frontend hands the world each tick. The toggles are edges: set them
// only on the tick the key went down.
type Input struct {
	ToggleGravity bool
	ToggleElastic bool
	Reset         bool

	Dragging bool      // primary button held
	Pointer  pixel.Vec // in simulation space
}

// Toggles are the two switches the user can flip while the simulation runs.
type Toggles struct {
	Gravity bool
	Elastic bool // when false every rope element is length limited
}

func DefaultToggles() Toggles {
	return Toggles{Gravity: true, Elastic: false}
}

func (t *Toggles) apply(in Input) {
	if in.ToggleElastic {
		t.Elastic = !t.Elastic
	}
	if in.ToggleGravity {
		t.Gravity = !t.Gravity
	}
}
