package pendulum

import (
	"github.com/faiface/pixel"
)

// normalize returns the unit vector along v, or the zero vector when v has no length.
// pixel.Vec.Unit points a zero vector along +X, which would push a node sideways.
func normalize(v pixel.Vec) pixel.Vec {
	l := v.Len()
	if l == 0 {
		return pixel.ZV
	}
	return v.Scaled(1 / l)
}

func distance(a, b pixel.Vec) float64 {
	return a.To(b).Len()
}

// rescaled returns v stretched or shrunk to the given length.
func rescaled(v pixel.Vec, length float64) pixel.Vec {
	return normalize(v).Scaled(length)
}
