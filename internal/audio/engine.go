package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays synthesized one-shot sound effects. A disabled engine
// accepts all calls and plays nothing, so callers never branch on sound
// availability.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
}

// NewEngine creates a sound engine. Pass enabled=false for --no-sound.
func NewEngine(enabled bool) *Engine {
	return &Engine{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Init opens the speaker and starts the mixer. Safe to call more than
// once. A speaker failure disables the engine rather than failing the
// game; sound is a cosmetic collaborator.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled || e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		e.enabled = false
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close silences the mixer. beep offers no speaker teardown; clearing the
// mixer is enough to stop output.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// play adds a one-shot streamer to the mixer. The mixer drops streamers
// when they finish, so one-shots need no bookkeeping.
func (e *Engine) play(s beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// PaddleHit plays a short blip for ball-paddle contact.
func (e *Engine) PaddleHit() {
	d := 60 * time.Millisecond
	s := newTone(440, 520, d, WaveSquare, sampleRate)
	e.play(withVolume(newEnvelope(s, d, time.Millisecond, 20*time.Millisecond, sampleRate), 0.25))
}

// BlockBreak plays a rising chirp for a destroyed block.
func (e *Engine) BlockBreak() {
	d := 90 * time.Millisecond
	s := newTone(600, 1100, d, WaveTriangle, sampleRate)
	e.play(withVolume(newEnvelope(s, d, time.Millisecond, 30*time.Millisecond, sampleRate), 0.3))
}

// WallBounce plays a low tick for wall reflections.
func (e *Engine) WallBounce() {
	d := 40 * time.Millisecond
	s := newTone(220, 220, d, WaveSine, sampleRate)
	e.play(withVolume(newEnvelope(s, d, time.Millisecond, 15*time.Millisecond, sampleRate), 0.2))
}

// GameOver plays a falling sweep when the ball is lost.
func (e *Engine) GameOver() {
	d := 500 * time.Millisecond
	s := newTone(330, 80, d, WaveSquare, sampleRate)
	e.play(withVolume(newEnvelope(s, d, 5*time.Millisecond, 150*time.Millisecond, sampleRate), 0.3))
}

// Win plays a rising sweep when the last block falls.
func (e *Engine) Win() {
	d := 500 * time.Millisecond
	s := newTone(330, 880, d, WaveTriangle, sampleRate)
	e.play(withVolume(newEnvelope(s, d, 5*time.Millisecond, 150*time.Millisecond, sampleRate), 0.3))
}
