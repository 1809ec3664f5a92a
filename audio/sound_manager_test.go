package audio

import (
	"math"
	"testing"
	"time"

	"snake-game/game/types"
)

// TestSoundManagerGracefulDegradation verifies effects are safe without an audio device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.AppleEaten(types.Point{X: 1, Y: 2})
	sm.GameOver(types.ErrOutOfBounds)
	sm.Cleanup()
}

func TestToneGeneratorFadesOut(t *testing.T) {
	g := NewToneGenerator(sampleRate, 440, 10*time.Millisecond)
	length := sampleRate.N(10 * time.Millisecond)

	samples := make([][2]float64, length+100)
	n, ok := g.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}

	peak := 0.0
	for i := 0; i < length; i++ {
		if samples[i][0] != samples[i][1] {
			t.Fatalf("channels differ at %d", i)
		}
		peak = math.Max(peak, math.Abs(samples[i][0]))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak amplitude %f out of range", peak)
	}
	for i := length; i < len(samples); i++ {
		if samples[i][0] != 0 {
			t.Fatalf("sample %d after the tone is %f", i, samples[i][0])
		}
	}
	if g.Err() != nil {
		t.Error(g.Err())
	}
}
