package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/nathanKramer/pendulum/pendulum"
	"github.com/nathanKramer/pendulum/tui"
)

var settingsPath = flag.String("settings", pendulum.DefaultSettingsPath, "settings file (yaml)")
var mute = flag.Bool("mute", false, "disable sound")

func main() {
	flag.Parse()

	settings, err := pendulum.ReadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[Boot] %v\n", err)
		os.Exit(1)
	}
	if *mute {
		settings.Sound.Enabled = false
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[Boot] creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "[Boot] initialising screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// printing would scribble over the screen, so a failed sound board is reported on exit
	sound, soundErr := pendulum.NewSoundBoard(settings.Sound)

	app := tui.NewApp(screen, settings, sound)
	app.Run()

	screen.Fini()
	sound.Close()
	if soundErr != nil {
		fmt.Printf("[Sound] disabled: %v\n", soundErr)
	}
}
