package audio

import (
	"math"
	"testing"
	"time"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	d := 50 * time.Millisecond
	s := newTone(440, 440, d, WaveSine, sampleRate)

	got := len(drain(t, s))
	want := sampleRate.N(d)
	if got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}

func TestToneAmplitudeBounded(t *testing.T) {
	waves := map[string]Wave{
		"sine":     WaveSine,
		"square":   WaveSquare,
		"triangle": WaveTriangle,
	}
	for name, w := range waves {
		t.Run(name, func(t *testing.T) {
			s := newTone(200, 800, 20*time.Millisecond, w, sampleRate)
			for i, v := range drain(t, s) {
				if math.Abs(v) > 1.0 {
					t.Fatalf("sample %d out of range: %v", i, v)
				}
			}
		})
	}
}

func TestEnvelopeShapesEndpoints(t *testing.T) {
	d := 100 * time.Millisecond
	attack := 10 * time.Millisecond
	release := 10 * time.Millisecond

	// A square wave has constant magnitude 1, so any attenuation at the
	// edges is the envelope's doing.
	s := newEnvelope(newTone(440, 440, d, WaveSquare, sampleRate), d, attack, release, sampleRate)
	samples := drain(t, s)

	if len(samples) == 0 {
		t.Fatal("no samples produced")
	}
	if math.Abs(samples[0]) > 0.01 {
		t.Errorf("attack should start near zero, got %v", samples[0])
	}
	if last := samples[len(samples)-1]; math.Abs(last) > 0.05 {
		t.Errorf("release should end near zero, got %v", last)
	}

	mid := samples[len(samples)/2]
	if math.Abs(mid) < 0.9 {
		t.Errorf("sustain should pass the signal through, got %v", mid)
	}
}

func TestDisabledEngineIsInert(t *testing.T) {
	e := NewEngine(false)
	if err := e.Init(); err != nil {
		t.Fatalf("Init on a disabled engine should not fail: %v", err)
	}

	// All effect calls must be safe without an initialized speaker.
	e.PaddleHit()
	e.BlockBreak()
	e.WallBounce()
	e.GameOver()
	e.Win()
	e.Close()
}
