package tui

import (
	"fmt"
	"image/color"

	"github.com/faiface/pixel"
	"github.com/gdamore/tcell/v2"
	"github.com/nathanKramer/pendulum/pendulum"
)

const ropeRune = '•'
const ballRune = 'O'
const obstacleRune = ' '

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// render draws the world onto the screen. It only reads the world.
func render(screen tcell.Screen, g grid, world *pendulum.World, hud string) {
	background := tcell.StyleDefault.Background(toTcell(pendulum.BackgroundColor()))
	screen.Fill(' ', background)

	for _, o := range world.Obstacles() {
		drawObstacle(screen, g, o)
	}
	drawRope(screen, g, world.Chain, background)
	drawBall(screen, g, &world.Ball, background)

	if hud != "" {
		style := background.Foreground(tcell.ColorDimGray)
		for i, r := range hud {
			if i >= g.cols {
				break
			}
			screen.SetContent(i, 0, r, nil, style)
		}
	}
	screen.Show()
}

func drawObstacle(screen tcell.Screen, g grid, o *pendulum.Obstacle, colors ...color.Color) {
	style := tcell.StyleDefault.Background(toTcell(o.DisplayColor(colors...)))
	minX, minY := g.toCell(o.Origin.Sub(pixel.V(o.Radius, o.Radius)))
	maxX, maxY := g.toCell(o.Origin.Add(pixel.V(o.Radius, o.Radius)))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if o.Circle().Contains(g.toSimulation(x, y)) {
				screen.SetContent(x, y, obstacleRune, nil, style)
			}
		}
	}
}

// drawRope walks each element cell by cell so stretched elements have no gaps.
func drawRope(screen tcell.Screen, g grid, chain pendulum.Chain, background tcell.Style) {
	for i := 1; i < len(chain); i++ {
		style := background.Foreground(toTcell(pendulum.SegmentColor(i)))
		x0, y0 := g.toCell(chain[i-1].Origin)
		x1, y1 := g.toCell(chain[i].Origin)
		steps := maxInt(absInt(x1-x0), absInt(y1-y0))
		for s := 0; s <= steps; s++ {
			x, y := x0, y0
			if steps > 0 {
				x = x0 + (x1-x0)*s/steps
				y = y0 + (y1-y0)*s/steps
			}
			screen.SetContent(x, y, ropeRune, nil, style)
		}
	}
}

func drawBall(screen tcell.Screen, g grid, ball *pendulum.Ball, background tcell.Style) {
	style := background.Foreground(toTcell(pendulum.BallColor())).Bold(true)
	x, y := g.toCell(ball.Origin)
	screen.SetContent(x, y, ballRune, nil, style)
}

func hudLine(world *pendulum.World) string {
	gravity := "off"
	if world.Toggles.Gravity {
		gravity = "on"
	}
	rope := "inelastic"
	if world.Toggles.Elastic {
		rope = "elastic"
	}
	return fmt.Sprintf(" [g] gravity: %s  [space] rope: %s  [r] reset  [h] hide  [q] quit", gravity, rope)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
