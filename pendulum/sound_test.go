package pendulum

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/pixel"
)

func TestImpactToneFadesOut(t *testing.T) {
	sr := soundSampleRate
	d := 20 * time.Millisecond
	tone := impactTone(sr, toneFrequency, d)

	samples := make([][2]float64, 512)
	total := 0
	peakFirst, peakLast := 0.0, 0.0
	for {
		n, ok := tone.Stream(samples)
		for i := 0; i < n; i++ {
			v := math.Abs(samples[i][0])
			if samples[i][0] != samples[i][1] {
				t.Fatalf("channels differ at sample %d", total+i)
			}
			if total+i < sr.N(d)/4 {
				peakFirst = math.Max(peakFirst, v)
			} else if total+i >= sr.N(d)*3/4 {
				peakLast = math.Max(peakLast, v)
			}
		}
		total += n
		if !ok {
			break
		}
		if total > sr.N(time.Second) {
			t.Fatalf("tone never ended")
		}
	}

	if total != sr.N(d) {
		t.Fatalf("tone is %d samples, want %d", total, sr.N(d))
	}
	if peakFirst <= peakLast {
		t.Fatalf("tone does not decay: first quarter peak %f, last quarter peak %f", peakFirst, peakLast)
	}
}

func TestImpactVolume(t *testing.T) {
	if v := impactVolume(loudImpactSpeed * 3); v != 0 {
		t.Errorf("volume above the loud speed = %f, want 0", v)
	}
	if v := impactVolume(0); math.Abs(v+2) > 1e-9 {
		t.Errorf("volume at rest = %f, want -2", v)
	}

	last := impactVolume(minImpactSpeed)
	for speed := minImpactSpeed + 1; speed <= loudImpactSpeed; speed++ {
		v := impactVolume(speed)
		if v < last {
			t.Fatalf("volume dropped from %f to %f at speed %f", last, v, speed)
		}
		last = v
	}
}

func TestLoudestImpact(t *testing.T) {
	impacts := []Impact{
		{Origin: pixel.V(1, 1), Speed: 1},
		{Origin: pixel.V(2, 2), Speed: 9},
		{Origin: pixel.V(3, 3), Speed: 4},
	}
	impact, ok := loudestImpact(impacts)
	if !ok || impact.Origin != pixel.V(2, 2) {
		t.Fatalf("loudest = %+v, %v", impact, ok)
	}

	if _, ok := loudestImpact([]Impact{{Speed: minImpactSpeed / 2}}); ok {
		t.Fatalf("a settling bounce should be silent")
	}
	if _, ok := loudestImpact(nil); ok {
		t.Fatalf("no impacts should be silent")
	}
}

func TestDisabledSoundBoardIsSilent(t *testing.T) {
	sb, err := NewSoundBoard(SoundSettings{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb != nil {
		t.Fatalf("expected a nil board when sound is off")
	}
	sb.PlayImpacts([]Impact{{Speed: 100}})
	sb.Close()
}

func TestPrepareBufferRejectsUnknownExtension(t *testing.T) {
	if _, _, err := prepareBuffer("sound_test.go"); err == nil {
		t.Fatalf("expected an error for a .go file")
	}
	if _, _, err := prepareBuffer("missing.wav"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
