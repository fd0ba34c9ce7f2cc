package desktop

import (
	"fmt"
	"image/color"
	"io/ioutil"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/golang/freetype/truetype"
	"github.com/nathanKramer/pendulum/pendulum"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type DrawContext struct {
	imd *imdraw.IMDraw

	hudFont *text.Atlas
	hudTxt  *text.Text
	fpsTxt  *text.Text
}

func NewDrawContext(hud pendulum.HudSettings) (*DrawContext, error) {
	drawContext := new(DrawContext)
	drawContext.imd = imdraw.New(nil)

	face, err := loadFace(hud)
	if err != nil {
		return nil, err
	}
	drawContext.hudFont = text.NewAtlas(face, text.ASCII)
	drawContext.hudTxt = text.New(pixel.ZV, drawContext.hudFont)
	drawContext.hudTxt.Color = colornames.Dimgray
	drawContext.fpsTxt = text.New(pixel.ZV, drawContext.hudFont)
	drawContext.fpsTxt.Color = colornames.Darkgreen

	return drawContext, nil
}

// loadFace reads the HUD's truetype font, or falls back to the built in bitmap face.
func loadFace(hud pendulum.HudSettings) (font.Face, error) {
	if hud.FontPath == "" {
		return basicfont.Face7x13, nil
	}

	ttfData, err := ioutil.ReadFile(hud.FontPath)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", hud.FontPath, err)
	}
	tFont, err := truetype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", hud.FontPath, err)
	}
	return truetype.NewFace(tFont, &truetype.Options{
		Size: hud.FontSize,
		DPI:  96,
	}), nil
}

func drawObstacle(d *imdraw.IMDraw, vp pendulum.Viewport, o *pendulum.Obstacle, colors ...color.Color) {
	d.Color = o.DisplayColor(colors...)
	d.Push(vp.ToTarget(o.Origin))
	d.Circle(o.Radius*vp.Scale(), 0)
}

func drawRope(d *imdraw.IMDraw, vp pendulum.Viewport, chain pendulum.Chain) {
	// each element is drawn from a node back to the one before it, so the head has none
	for i := 1; i < len(chain); i++ {
		d.Color = pendulum.SegmentColor(i)
		d.Push(vp.ToTarget(chain[i].Origin), vp.ToTarget(chain[i-1].Origin))
		d.Line(chain[i].Thickness * vp.Scale())
	}
}

func drawBall(d *imdraw.IMDraw, vp pendulum.Viewport, ball *pendulum.Ball) {
	d.Color = pendulum.BallColor()
	d.Push(vp.ToTarget(ball.Origin))
	d.Circle(ball.Radius*vp.Scale(), 0)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func ropeMode(t pendulum.Toggles) string {
	if t.Elastic {
		return "elastic"
	}
	return "inelastic"
}

func drawHud(win *pixelgl.Window, game *game, d *DrawContext) {
	bounds := win.Bounds()

	d.hudTxt.Clear()
	d.hudTxt.Orig = pixel.V(bounds.Min.X+12, bounds.Max.Y-24)
	d.hudTxt.Dot = d.hudTxt.Orig
	fmt.Fprintf(d.hudTxt, "[G] gravity: %s\n", onOff(game.world.Toggles.Gravity))
	fmt.Fprintf(d.hudTxt, "[Space] rope: %s\n", ropeMode(game.world.Toggles))
	fmt.Fprintf(d.hudTxt, "[R] reset  [H] hide  [Esc] quit\n")
	d.hudTxt.Draw(win, pixel.IM)

	d.fpsTxt.Clear()
	d.fpsTxt.Orig = pixel.V(bounds.Max.X-80, bounds.Min.Y+16)
	d.fpsTxt.Dot = d.fpsTxt.Orig
	fmt.Fprintf(d.fpsTxt, "%d FPS", game.fps)
	d.fpsTxt.Draw(win, pixel.IM)
}

// DrawGame only reads the world; it must run after the step for the frame.
func DrawGame(win *pixelgl.Window, game *game, d *DrawContext, vp pendulum.Viewport) {
	win.Clear(pendulum.BackgroundColor())
	d.imd.Clear()

	world := game.world
	drawObstacle(d.imd, vp, &world.Static)
	drawObstacle(d.imd, vp, &world.Dynamic)
	drawRope(d.imd, vp, world.Chain)
	drawBall(d.imd, vp, &world.Ball)
	d.imd.Draw(win)

	if game.showHud {
		drawHud(win, game, d)
	}
}
