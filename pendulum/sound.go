package pendulum

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const soundSampleRate = beep.SampleRate(44100)

const toneFrequency = 220.0
const toneDuration = 60 * time.Millisecond

// bounces slower than this are the ball settling, not worth a sound
const minImpactSpeed = 3.0

// bounces at or above this speed play at full volume
const loudImpactSpeed = 40.0

// SoundBoard plays a knock whenever the ball bounces. A nil *SoundBoard is silent.
type SoundBoard struct {
	format beep.Format
	sample *beep.Buffer
	volume float64
}

// NewSoundBoard opens the speaker. It returns a nil board when sound is switched off.
func NewSoundBoard(s SoundSettings) (*SoundBoard, error) {
	if !s.Enabled {
		return nil, nil
	}

	sb := &SoundBoard{
		format: beep.Format{SampleRate: soundSampleRate, NumChannels: 2, Precision: 2},
		volume: s.Volume,
	}

	if s.File != "" {
		buffer, format, err := prepareBuffer(s.File)
		if err != nil {
			return nil, err
		}
		sb.sample = buffer
		sb.format = format
	}

	err := speaker.Init(sb.format.SampleRate, sb.format.SampleRate.N(time.Second/10))
	if err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}
	return sb, nil
}

func prepareBuffer(file string) (*beep.Buffer, beep.Format, error) {
	sound, err := os.Open(file)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("opening sound %s: %w", file, err)
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	ext := strings.ToLower(filepath.Ext(file))
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(sound)
	case ".wav":
		streamer, format, err = wav.Decode(sound)
	default:
		sound.Close()
		return nil, beep.Format{}, fmt.Errorf("unsupported sound file extension: %s", ext)
	}
	if err != nil {
		sound.Close()
		return nil, beep.Format{}, fmt.Errorf("decoding sound %s: %w", file, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, format, nil
}

// impactTone is a short sine knock that fades out to silence.
func impactTone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(sr)
			envelope := 1.0 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*freq*t) * envelope * envelope
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// impactVolume maps a bounce speed to a base 10 volume offset in [-2, 0].
func impactVolume(speed float64) float64 {
	ratio := math.Min(speed/loudImpactSpeed, 1.0)
	ratio = math.Max(ratio, 0.01)
	return math.Log10(ratio)
}

// loudestImpact picks the fastest bounce worth hearing, if any.
func loudestImpact(impacts []Impact) (Impact, bool) {
	loudest := Impact{}
	found := false
	for _, impact := range impacts {
		if impact.Speed < minImpactSpeed {
			continue
		}
		if !found || impact.Speed > loudest.Speed {
			loudest = impact
			found = true
		}
	}
	return loudest, found
}

func (sb *SoundBoard) streamer() beep.Streamer {
	if sb.sample != nil {
		return sb.sample.Streamer(0, sb.sample.Len())
	}
	return impactTone(sb.format.SampleRate, toneFrequency, toneDuration)
}

// PlayImpacts plays one knock for a step, scaled by its hardest bounce.
func (sb *SoundBoard) PlayImpacts(impacts []Impact) {
	if sb == nil {
		return
	}
	impact, ok := loudestImpact(impacts)
	if !ok {
		return
	}

	volume := &effects.Volume{
		Streamer: sb.streamer(),
		Base:     10,
		Volume:   sb.volume + impactVolume(impact.Speed),
		Silent:   false,
	}
	speaker.Play(volume)
}

func (sb *SoundBoard) Close() {
	if sb == nil {
		return
	}
	speaker.Clear()
}
