package tui

import (
	"math"

	"github.com/faiface/pixel"
	"github.com/nathanKramer/pendulum/pendulum"
)

// grid maps the simulation domain onto the terminal's cells. Cells are not square,
// so x and y are scaled independently and the whole domain always fills the screen.
type grid struct {
	cols, rows int
	sim        pixel.Rect
}

func newGrid(cols, rows int) grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return grid{cols: cols, rows: rows, sim: pendulum.Bounds()}
}

func (g grid) cellSize() pixel.Vec {
	return pixel.V(g.sim.W()/float64(g.cols), g.sim.H()/float64(g.rows))
}

func (g grid) toCell(p pixel.Vec) (int, int) {
	size := g.cellSize()
	x := int(math.Floor((p.X - g.sim.Min.X) / size.X))
	y := int(math.Floor((p.Y - g.sim.Min.Y) / size.Y))
	return clampInt(x, 0, g.cols-1), clampInt(y, 0, g.rows-1)
}

// toSimulation is the centre of a cell in simulation space.
func (g grid) toSimulation(x, y int) pixel.Vec {
	size := g.cellSize()
	return pixel.V(
		g.sim.Min.X+(float64(x)+0.5)*size.X,
		g.sim.Min.Y+(float64(y)+0.5)*size.Y,
	)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
