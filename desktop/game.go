package desktop

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/nathanKramer/pendulum/pendulum"
)

type game struct {
	state string
	world *pendulum.World
	sound *pendulum.SoundBoard

	showHud bool

	// Frame state
	frames       int
	fps          int
	lastFpsCheck time.Time
}

func NewGame(settings pendulum.Settings, sound *pendulum.SoundBoard) *game {
	game := new(game)
	game.state = "playing"
	game.world = pendulum.NewWorld()
	game.sound = sound
	game.showHud = settings.Hud.Show
	game.lastFpsCheck = time.Now()
	return game
}

func UpdateGame(win *pixelgl.Window, game *game, ui *uiContext) {
	if game.state == "quitting" {
		win.SetClosed(true)
		return
	}

	if uiQuit(win) {
		game.state = "quitting"
		return
	}
	if uiToggleHud(win) {
		game.showHud = !game.showHud
	}

	in := ui.PollInput(win)
	if in.Reset {
		game.world.Reset()
	}
	game.world.Step(in)
	game.sound.PlayImpacts(game.world.Impacts)

	game.frames++
	if time.Since(game.lastFpsCheck) >= time.Second {
		game.fps = game.frames
		game.frames = 0
		game.lastFpsCheck = time.Now()
	}
}

// Run opens the window and steps the world at a fixed rate until it is closed.
// It has to be called through pixelgl.Run.
func Run(settings pendulum.Settings, sound *pendulum.SoundBoard) error {
	bounds := pendulum.Bounds()
	cfg := pixelgl.WindowConfig{
		Title:  settings.Window.Title,
		Bounds: pixel.R(0, 0, bounds.W(), bounds.H()),
		VSync:  settings.Window.VSync,
	}
	if settings.Window.Fullscreen {
		cfg.Monitor = pixelgl.PrimaryMonitor()
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Destroy()

	draw, err := NewDrawContext(settings.Hud)
	if err != nil {
		return err
	}
	ui := NewUi(win)
	game := NewGame(settings, sound)

	tick := time.NewTicker(time.Second / pendulum.TicksPerSecond)
	defer tick.Stop()

	fmt.Printf("[Boot] %s running at %d ticks per second\n", settings.Window.Title, pendulum.TicksPerSecond)
	for !win.Closed() {
		ui.SetBounds(win.Bounds())

		UpdateGame(win, game, ui)
		DrawGame(win, game, draw, ui.viewport)

		win.Update()
		<-tick.C
	}
	return nil
}
