package pendulum

import (
	"image/color"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"
)

const worldWidth = 1280.0
const worldHeight = 720.0

// TicksPerSecond is the rate the frontends step the world at.
const TicksPerSecond = 60

const gameTitle = "Pendulum Demo"

const numLinks = 64

// spring constant. Values above 0.2 make the rope jump in its direction of travel.
const hooke = 0.1

const ballGravity = 1.0
const nodeGravity = 0.9

const ballRadius = 16.0
const ballRestitution = 0.9
const dragInference = 0.75

const nodeFriction = 0.91
const nodeSurfaceDrag = 0.5
const nodeSegmentLength = 4.0
const nodeThickness = 4.0

// stretch past this multiple of the rest length is clamped when the rope is inelastic
const maxStretch = 2.0

const staticObstacleRadius = 256.0
const dynamicObstacleRadius = 80.0

// dynamic obstacle sweeps x = amplitude*sin(frame/period) + amplitude
const oscillationAmplitude = 150.0
const oscillationPeriod = 64.0

var ballColor = colornames.Darkgreen
var obstacleColor = colornames.Red
var staticObstacleColor = color.RGBA{0xc8, 0x7a, 0xff, 0xff}
var dynamicObstacleColor = color.RGBA{0x70, 0x1f, 0x7e, 0xff}
var backgroundColor = colornames.Whitesmoke

// rope segments alternate between these two
var segmentColors = [2]color.RGBA{
	{0xff, 0x40, 0x00, 0xff},
	{0xff, 0xc4, 0x00, 0xff},
}

// Bounds is the rectangle every body is kept inside, in simulation space (y down).
func Bounds() pixel.Rect {
	return pixel.R(0, 0, worldWidth, worldHeight)
}

func Title() string {
	return gameTitle
}

func BallColor() color.Color {
	return ballColor
}

func BackgroundColor() color.Color {
	return backgroundColor
}

// SegmentColor is the color of the rope segment ending at node i.
func SegmentColor(i int) color.RGBA {
	return segmentColors[i%2]
}
