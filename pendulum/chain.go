package pendulum

import (
	"strconv"

	"github.com/faiface/pixel"
)

// A Chain is the rope, head first. The head is pinned to the ball.
type Chain []Node

// NewChain hangs count nodes straight down from anchor, each one segment below the last.
func NewChain(anchor pixel.Vec, count int) Chain {
	if count < 2 {
		panic(`chain needs a head and a tail, got ` + strconv.Itoa(count) + ` nodes`)
	}
	c := make(Chain, count)
	c[0] = *NewNode(anchor.X, anchor.Y)
	for i := 1; i < count; i++ {
		c[i] = *NewNode(c[i-1].Origin.X, 0.0)
		c[i].Origin.Y = c[i-1].Origin.Y + c[i].SegmentLength
	}
	return c
}

func (c Chain) Head() *Node {
	return &c[0]
}

func (c Chain) Tail() *Node {
	return &c[len(c)-1]
}

// Length is the summed rest length of every element of the rope.
func (c Chain) Length() float64 {
	total := 0.0
	for i := 1; i < len(c); i++ {
		total += c[i].SegmentLength
	}
	return total
}
