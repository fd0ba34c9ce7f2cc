package pendulum

import (
	"image/color"
	"math"

	"github.com/faiface/pixel"
)

// An Obstacle is a solid circle the ball and the rope collide with.
type Obstacle struct {
	Origin pixel.Vec
	Radius float64
	Color  color.Color
}

func NewObstacle(x float64, y float64, radius float64, c color.Color) *Obstacle {
	return &Obstacle{
		Origin: pixel.V(x, y),
		Radius: radius,
		Color:  c,
	}
}

func NewStaticObstacle() *Obstacle {
	return NewObstacle(worldWidth*0.8, worldHeight*0.8, staticObstacleRadius, staticObstacleColor)
}

func NewDynamicObstacle() *Obstacle {
	return NewObstacle(0.0, worldHeight*0.5, dynamicObstacleRadius, dynamicObstacleColor)
}

func (o *Obstacle) Circle() pixel.Circle {
	return pixel.C(o.Origin, o.Radius)
}

// DisplayColor is the color the obstacle is drawn with. An override wins over the
// obstacle's own color, and red is used when neither is set.
func (o *Obstacle) DisplayColor(override ...color.Color) color.Color {
	if len(override) > 0 && override[0] != nil {
		return override[0]
	}
	if o.Color != nil {
		return o.Color
	}
	return obstacleColor
}

// oscillation is the horizontal position of the dynamic obstacle at a given frame.
func oscillation(frame uint64) float64 {
	return oscillationAmplitude*math.Sin(float64(frame)/oscillationPeriod) + oscillationAmplitude
}
