package pendulum

import (
	"github.com/faiface/pixel"
)

// A Node is one point of the rope. The rope is a series of these held together by
// springs toward their neighbours. Springs stiff enough to hold the rope up against
// gravity make it jitter, so LimitTo caps each element at twice its rest length,
// which is what makes the rope feel inelastic.
type Node struct {
	Origin        pixel.Vec
	Velocity      pixel.Vec
	SegmentLength float64 // rest length of the element joining this node to the previous one
	Thickness     float64 // only used for drawing
}

func NewNode(x float64, y float64) *Node {
	return &Node{
		Origin:        pixel.V(x, y),
		SegmentLength: nodeSegmentLength,
		Thickness:     nodeThickness,
	}
}

// AccumulateSpringForce adds a Hooke's law impulse along lineOfAction, the vector from a
// neighbour to this node. Called once per neighbour before Integrate; the calls add up.
func (n *Node) AccumulateSpringForce(lineOfAction pixel.Vec) {
	arm := lineOfAction.Len() - n.SegmentLength
	n.Velocity = n.Velocity.Add(normalize(lineOfAction).Scaled(-hooke * arm))
}

// Integrate damps the velocity, moves the node, and stops it dead at the edges of bounds.
func (n *Node) Integrate(bounds pixel.Rect) {
	n.Velocity = n.Velocity.Scaled(nodeFriction)
	n.Origin = n.Origin.Add(n.Velocity)

	if n.Origin.X < bounds.Min.X {
		n.Origin.X = bounds.Min.X
		n.Velocity.X = 0
	}
	if n.Origin.X > bounds.Max.X {
		n.Origin.X = bounds.Max.X
		n.Velocity.X = 0
	}
	if n.Origin.Y < bounds.Min.Y {
		n.Origin.Y = bounds.Min.Y
		n.Velocity.Y = 0
	}
	if n.Origin.Y > bounds.Max.Y {
		n.Origin.Y = bounds.Max.Y
		n.Velocity.Y = 0
	}
}

// LimitTo pulls the node back to within maxStretch segment lengths of target. Target is
// always the previous node, so the rope has a definite head and tail.
func (n *Node) LimitTo(target pixel.Vec) {
	limit := maxStretch * n.SegmentLength
	if distance(n.Origin, target) <= limit {
		return
	}
	n.Origin = target.Add(rescaled(n.Origin.Sub(target), limit))
}

// ResolveCollision pushes the node out onto the surface of a circular obstacle and
// halves its velocity, so the rope drags along the surface instead of bouncing.
func (n *Node) ResolveCollision(center pixel.Vec, radius float64) bool {
	if distance(n.Origin, center) >= radius {
		return false
	}
	n.Origin = center.Add(rescaled(n.Origin.Sub(center), radius))
	n.Velocity = n.Velocity.Scaled(nodeSurfaceDrag)
	return true
}

func (n *Node) ApplyGravity() {
	n.Velocity.Y += nodeGravity
}
