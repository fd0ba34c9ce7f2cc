package pendulum

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultSettingsPath = "./pendulum.yml"

// Settings are the presentation options a player can change without rebuilding.
// The physics itself is not configurable.
type Settings struct {
	Window WindowSettings `yaml:"window"`
	Hud    HudSettings    `yaml:"hud"`
	Sound  SoundSettings  `yaml:"sound"`
}

type WindowSettings struct {
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

type HudSettings struct {
	Show     bool    `yaml:"show"`
	FontPath string  `yaml:"font"` // a .ttf; the built in bitmap face is used when empty
	FontSize float64 `yaml:"size"`
}

type SoundSettings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // base 10 exponent, 0 is unchanged
	File    string  `yaml:"file"`   // .mp3 or .wav played on bounces instead of the built in tone
}

func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Title: gameTitle,
			VSync: true,
		},
		Hud: HudSettings{
			Show:     true,
			FontSize: 14.0,
		},
		Sound: SoundSettings{
			Enabled: true,
			Volume:  -0.5,
		},
	}
}

// ReadSettings loads settings from path on top of the defaults. A missing file is fine.
func ReadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := ioutil.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return settings, nil
}

func (s *Settings) WriteToFile(path string) error {
	yml, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	defer f.Close()

	_, err = f.Write(yml)
	return err
}
