package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/faiface/pixel/pixelgl"
	"github.com/nathanKramer/pendulum/desktop"
	"github.com/nathanKramer/pendulum/pendulum"
)

var settingsPath = flag.String("settings", pendulum.DefaultSettingsPath, "settings file (yaml)")
var writeSettings = flag.Bool("write-settings", false, "write the current settings to the settings file and exit")

// To read about how to use these profiles,
// https://blog.golang.org/pprof
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

func run(settings pendulum.Settings) {
	sound, err := pendulum.NewSoundBoard(settings.Sound)
	if err != nil {
		// the toy works fine without sound
		fmt.Printf("[Sound] disabled: %v\n", err)
	}
	defer sound.Close()

	if err := desktop.Run(settings, sound); err != nil {
		log.Fatalf("[Boot] %v", err)
	}
}

func main() {
	flag.Parse()

	settings, err := pendulum.ReadSettings(*settingsPath)
	if err != nil {
		log.Fatalf("[Boot] %v", err)
	}

	if *writeSettings {
		if err := settings.WriteToFile(*settingsPath); err != nil {
			log.Fatalf("[Settings] %v", err)
		}
		fmt.Printf("[Settings] wrote %s\n", *settingsPath)
		return
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	pixelgl.Run(func() {
		run(settings)
	})

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
