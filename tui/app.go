// Package tui runs the pendulum toy in a terminal.
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/nathanKramer/pendulum/pendulum"
)

type App struct {
	screen tcell.Screen
	world  *pendulum.World
	sound  *pendulum.SoundBoard

	input   inputState
	grid    grid
	showHud bool
}

// NewApp expects an initialised screen. The sound board may be nil.
func NewApp(screen tcell.Screen, settings pendulum.Settings, sound *pendulum.SoundBoard) *App {
	cols, rows := screen.Size()
	return &App{
		screen:  screen,
		world:   pendulum.NewWorld(),
		sound:   sound,
		grid:    newGrid(cols, rows),
		showHud: settings.Hud.Show,
	}
}

// handleEvent reports whether the app should keep running.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.grid = newGrid(cols, rows)
		a.screen.Sync()
	default:
		a.input.handle(ev)
	}
	return !a.input.quit
}

func (a *App) tick() {
	if a.input.toggleHud {
		a.showHud = !a.showHud
		a.input.toggleHud = false
	}

	in := a.input.take(a.grid)
	if in.Reset {
		a.world.Reset()
	}
	a.world.Step(in)
	a.sound.PlayImpacts(a.world.Impacts)

	hud := ""
	if a.showHud {
		hud = hudLine(a.world)
	}
	render(a.screen, a.grid, a.world, hud)
}

// Run steps and draws the world at a fixed rate until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(time.Second / pendulum.TicksPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalised
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
		}
	}
}
