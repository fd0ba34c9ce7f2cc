package pendulum

import (
	"github.com/faiface/pixel"
)

// Impact records a bounce of the ball during a step, for the frontends to make noise about.
type Impact struct {
	Origin pixel.Vec
	Speed  float64 // ball speed just before the bounce
}

// World is the whole simulation: a ball, a rope hanging off it, and two obstacles.
// Every step runs in the same fixed order, so a world fed the same inputs always ends
// up in the same state.
type World struct {
	Bounds  pixel.Rect
	Ball    Ball
	Chain   Chain
	Static  Obstacle
	Dynamic Obstacle
	Toggles Toggles
	Frame   uint64

	// bounces during the last step
	Impacts []Impact
}

func NewWorld() *World {
	w := new(World)
	w.Reset()
	return w
}

// Reset puts everything back where it started: the ball centred with the rope hanging
// below it, gravity on and the rope inelastic.
func (w *World) Reset() {
	w.Bounds = Bounds()
	w.Ball = *NewBall(worldWidth/2.0, worldHeight/2.0)
	w.Chain = NewChain(w.Ball.Origin, numLinks)
	w.Static = *NewStaticObstacle()
	w.Dynamic = *NewDynamicObstacle()
	w.Toggles = DefaultToggles()
	w.Frame = 0
	w.Impacts = w.Impacts[:0]
}

// Obstacles in the order collisions are resolved against them.
func (w *World) Obstacles() [2]*Obstacle {
	return [2]*Obstacle{&w.Static, &w.Dynamic}
}

// Step advances the simulation by one tick.
func (w *World) Step(in Input) {
	w.Impacts = w.Impacts[:0]

	w.Dynamic.Origin.X = oscillation(w.Frame)

	w.Toggles.apply(in)

	if w.Toggles.Gravity {
		w.Ball.ApplyGravity()
		for i := range w.Chain {
			w.Chain[i].ApplyGravity()
		}
	}

	speed := w.Ball.Velocity.Len()
	if w.Ball.Integrate(w.Bounds) {
		w.Impacts = append(w.Impacts, Impact{Origin: w.Ball.Origin, Speed: speed})
	}
	// a held ball goes wherever the pointer is, whatever integration just did
	if in.Dragging {
		w.Ball.DragTo(in.Pointer)
		w.Impacts = w.Impacts[:0]
	}

	head := w.Chain.Head()
	head.Origin = w.Ball.Origin

	for _, o := range w.Obstacles() {
		before := w.Ball.Velocity.Len()
		if w.Ball.ResolveCollision(o.Origin, o.Radius) {
			w.Impacts = append(w.Impacts, Impact{Origin: w.Ball.Origin, Speed: before})
		}
	}
	w.collideNode(head)

	last := len(w.Chain) - 1
	for i := 1; i < last; i++ {
		n := &w.Chain[i]
		n.AccumulateSpringForce(n.Origin.Sub(w.Chain[i-1].Origin))
		n.AccumulateSpringForce(n.Origin.Sub(w.Chain[i+1].Origin))
		n.Integrate(w.Bounds)
		if !w.Toggles.Elastic {
			n.LimitTo(w.Chain[i-1].Origin)
		}
		w.collideNode(n)
	}

	// the tail is always limited, even when the rope is elastic, or it flies off
	tail := w.Chain.Tail()
	tail.AccumulateSpringForce(tail.Origin.Sub(w.Chain[last-1].Origin))
	tail.Integrate(w.Bounds)
	tail.LimitTo(w.Chain[last-1].Origin)
	w.collideNode(tail)

	w.Frame++
}

func (w *World) collideNode(n *Node) {
	for _, o := range w.Obstacles() {
		n.ResolveCollision(o.Origin, o.Radius)
	}
}
