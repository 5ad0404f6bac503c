package cue

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// tone is an oscillator with an optional frequency sweep and linear decay.
// total == 0 streams forever at full amplitude.
type tone struct {
	spec  Spec
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
	rng   *rand.Rand
}

func newTone(spec Spec, rate beep.SampleRate, total int, rng *rand.Rand) *tone {
	return &tone{spec: spec, rate: rate, total: total, rng: rng}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.total > 0 && t.pos >= t.total {
			return i, i > 0
		}
		freq := t.spec.Freq
		amp := 1.0
		if t.total > 0 {
			progress := float64(t.pos) / float64(t.total)
			if t.spec.EndFreq > 0 {
				freq += (t.spec.EndFreq - t.spec.Freq) * progress
			}
			amp = 1 - progress
		}

		var v float64
		switch t.spec.Wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		v *= amp
		samples[i][0], samples[i][1] = v, v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
