package pendulum

import (
	"github.com/faiface/pixel"
)

// Ball is the draggable mass the head of the rope is pinned to.
// It knows nothing about the rope.
type Ball struct {
	Origin     pixel.Vec
	Velocity   pixel.Vec
	LastOrigin pixel.Vec
	Radius     float64
}

func NewBall(x float64, y float64) *Ball {
	b := new(Ball)
	b.Origin = pixel.V(x, y)
	b.LastOrigin = b.Origin
	b.Radius = ballRadius
	return b
}

func (b *Ball) Circle() pixel.Circle {
	return pixel.C(b.Origin, b.Radius)
}

// Integrate moves the ball by its velocity and bounces it off the edges of bounds,
// losing a tenth of the speed along the bounced axis. It reports whether any edge was hit.
func (b *Ball) Integrate(bounds pixel.Rect) bool {
	b.Origin = b.Origin.Add(b.Velocity)

	minX := bounds.Min.X + b.Radius
	minY := bounds.Min.Y + b.Radius
	maxX := bounds.Max.X - b.Radius
	maxY := bounds.Max.Y - b.Radius

	bounced := false
	if b.Origin.X < minX {
		b.Origin.X = minX
		b.Velocity.X = -b.Velocity.X * ballRestitution
		bounced = true
	}
	if b.Origin.X > maxX {
		b.Origin.X = maxX
		b.Velocity.X = -b.Velocity.X * ballRestitution
		bounced = true
	}
	if b.Origin.Y < minY {
		b.Origin.Y = minY
		b.Velocity.Y = -b.Velocity.Y * ballRestitution
		bounced = true
	}
	if b.Origin.Y > maxY {
		b.Origin.Y = maxY
		b.Velocity.Y = -b.Velocity.Y * ballRestitution
		bounced = true
	}
	return bounced
}

// ResolveCollision bounces the ball off a circular obstacle. The velocity is reflected
// about the obstacle's surface normal and damped, and the ball is put back on the
// surface so it cannot sink in. Returns false when the two do not overlap.
func (b *Ball) ResolveCollision(center pixel.Vec, radius float64) bool {
	reach := radius + b.Radius
	if distance(b.Origin, center) >= reach {
		return false
	}

	n := normalize(b.Origin.Sub(center))
	along := n.Scaled(b.Velocity.Dot(n))
	b.Velocity = b.Velocity.Sub(along.Scaled(2)).Scaled(ballRestitution)
	b.Origin = center.Add(n.Scaled(reach))
	return true
}

func (b *Ball) ApplyGravity() {
	b.Velocity.Y += ballGravity
}

// InferVelocityFromDrag derives the velocity from how far the ball was moved since the
// last call. Only meaningful while something else is positioning the ball each tick.
func (b *Ball) InferVelocityFromDrag() {
	b.Velocity = b.Origin.Sub(b.LastOrigin).Scaled(dragInference)
	b.LastOrigin = b.Origin
}

// DragTo overrides the ball's position and infers the velocity it would be thrown with.
func (b *Ball) DragTo(p pixel.Vec) {
	b.Origin = p
	b.InferVelocityFromDrag()
}
