package audio

import (
	"math"
	"sync"
	"time"

	"snake-game/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFreq      = 880.0
	eatLength    = 80 * time.Millisecond
	gameOverFreq = 110.0
	gameOverLen  = 400 * time.Millisecond
)

// SoundManager plays the game's sound effects. Every method is a no-op until
// Initialize succeeds, so the game runs unchanged without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// AppleEaten plays a short high blip.
func (sm *SoundManager) AppleEaten(types.Point) {
	sm.play(beep.Take(sampleRate.N(eatLength), NewToneGenerator(sampleRate, eatFreq, eatLength)))
}

// GameOver plays a falling low buzz.
func (sm *SoundManager) GameOver(error) {
	sm.play(beep.Take(sampleRate.N(gameOverLen), NewToneGenerator(sampleRate, gameOverFreq, gameOverLen)))
}

// ToneGenerator is a sine tone with a few harmonics and a linear fade-out.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		length: sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*2*t)

		envelope := 0.0
		if g.pos < g.length {
			envelope = 1 - float64(g.pos)/float64(g.length)
		}
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
