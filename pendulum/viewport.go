package pendulum

import (
	"math"

	"github.com/faiface/pixel"
)

// Viewport maps simulation space (y down) onto a y-up target such as a window,
// scaled uniformly to fit and centred.
type Viewport struct {
	sim    pixel.Rect
	target pixel.Rect
	scale  float64
}

func NewViewport(sim pixel.Rect, target pixel.Rect) Viewport {
	scale := math.Min(target.W()/sim.W(), target.H()/sim.H())
	return Viewport{sim: sim, target: target, scale: scale}
}

func (v Viewport) Scale() float64 {
	return v.scale
}

func (v Viewport) ToTarget(p pixel.Vec) pixel.Vec {
	flipped := pixel.V(p.X-v.sim.Min.X, v.sim.Max.Y-p.Y)
	return flipped.Sub(v.sim.Size().Scaled(0.5)).Scaled(v.scale).Add(v.target.Center())
}

func (v Viewport) ToSimulation(p pixel.Vec) pixel.Vec {
	flipped := p.Sub(v.target.Center()).Scaled(1 / v.scale).Add(v.sim.Size().Scaled(0.5))
	return pixel.V(flipped.X+v.sim.Min.X, v.sim.Max.Y-flipped.Y)
}
