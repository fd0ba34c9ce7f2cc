package pendulum

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestReadSettingsMissingFileGivesDefaults(t *testing.T) {
	settings, err := ReadSettings(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", settings)
	}
}

func TestReadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pendulum.yml")
	yml := []byte(`
window:
  fullscreen: true
sound:
  enabled: false
  file: sound/knock.wav
hud:
  size: 20
`)
	if err := ioutil.WriteFile(path, yml, 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !settings.Window.Fullscreen {
		t.Errorf("fullscreen not read")
	}
	if settings.Window.Title != gameTitle || !settings.Window.VSync {
		t.Errorf("unset window fields lost their defaults: %+v", settings.Window)
	}
	if settings.Sound.Enabled || settings.Sound.File != "sound/knock.wav" {
		t.Errorf("sound = %+v", settings.Sound)
	}
	if settings.Sound.Volume != DefaultSettings().Sound.Volume {
		t.Errorf("volume = %f, want default", settings.Sound.Volume)
	}
	if settings.Hud.FontSize != 20 || !settings.Hud.Show {
		t.Errorf("hud = %+v", settings.Hud)
	}
}

func TestReadSettingsRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	if err := ioutil.WriteFile(path, []byte("window: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettings(path)
	if err == nil {
		t.Fatalf("expected an error for malformed yaml")
	}
	if settings != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults alongside the error", settings)
	}
}

func TestSettingsWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pendulum.yml")
	settings := DefaultSettings()
	settings.Hud.FontPath = "font/comfortaa/Comfortaa-Regular.ttf"

	if err := settings.WriteToFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	read, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if read != settings {
		t.Fatalf("read back %+v, want %+v", read, settings)
	}
}
