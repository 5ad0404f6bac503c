// Package cue synthesizes weapon audio cues with beep and mixes them into a
// single stream. The bank implements feedback.Audio.
package cue

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/feedback"
)

// Wave selects the oscillator shape.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ParseWave maps a config name to a Wave; unknown names fall back to sine.
func ParseWave(s string) Wave {
	switch s {
	case "square":
		return WaveSquare
	case "saw":
		return WaveSaw
	case "noise":
		return WaveNoise
	}
	return WaveSine
}

// Spec describes one synthesized cue.
type Spec struct {
	Freq     float64
	EndFreq  float64 // 0 keeps Freq
	Duration time.Duration
	Wave     Wave
	Volume   float64
}

// DefaultSpecs returns the built-in cue table.
func DefaultSpecs() map[string]Spec {
	return map[string]Spec{
		"dry_fire":  {Freq: 1800, Duration: 25 * time.Millisecond, Wave: WaveSquare, Volume: 0.4},
		"eject":     {Freq: 420, EndFreq: 260, Duration: 120 * time.Millisecond, Wave: WaveSaw, Volume: 0.5},
		"close":     {Freq: 300, EndFreq: 520, Duration: 90 * time.Millisecond, Wave: WaveSquare, Volume: 0.5},
		"load":      {Freq: 900, Duration: 40 * time.Millisecond, Wave: WaveSquare, Volume: 0.35},
		"fire_a":    {Freq: 140, EndFreq: 60, Duration: 220 * time.Millisecond, Wave: WaveNoise, Volume: 0.9},
		"fire_b":    {Freq: 160, EndFreq: 70, Duration: 200 * time.Millisecond, Wave: WaveNoise, Volume: 0.9},
		"deploy":    {Freq: 600, EndFreq: 1200, Duration: 150 * time.Millisecond, Wave: WaveSaw, Volume: 0.6},
		"sheath":    {Freq: 1200, EndFreq: 500, Duration: 150 * time.Millisecond, Wave: WaveSaw, Volume: 0.6},
		"blade_hum": {Freq: 110, Wave: WaveSine, Volume: 0.2},
	}
}

// Bank plays cues into a beep mixer.
type Bank struct {
	rate   beep.SampleRate
	specs  map[string]Spec
	mixer  *beep.Mixer
	loops  map[string]*beep.Ctrl
	rng    *rand.Rand
	played int
	log    *zap.Logger
}

// NewBank creates a bank at the given sample rate.
func NewBank(sampleRate int, specs map[string]Spec, log *zap.Logger) *Bank {
	if log == nil {
		log = zap.NewNop()
	}
	if specs == nil {
		specs = DefaultSpecs()
	}
	return &Bank{
		rate:  beep.SampleRate(sampleRate),
		specs: specs,
		mixer: &beep.Mixer{},
		loops: make(map[string]*beep.Ctrl),
		rng:   rand.New(rand.NewSource(1)),
		log:   log,
	}
}

func (b *Bank) PlayOneShot(cue string) {
	spec, ok := b.specs[cue]
	if !ok {
		b.log.Debug("unknown audio cue", zap.String("cue", cue))
		return
	}
	if spec.Duration <= 0 {
		spec.Duration = 100 * time.Millisecond
	}
	n := b.rate.N(spec.Duration)
	src := newTone(spec, b.rate, n, b.rng)
	b.mixer.Add(beep.Take(n, withVolume(src, spec.Volume)))
	b.played++
}

func (b *Bank) StartLoop(cue string) {
	if ctrl, ok := b.loops[cue]; ok && ctrl.Streamer != nil {
		return
	}
	spec, ok := b.specs[cue]
	if !ok {
		b.log.Debug("unknown audio cue", zap.String("cue", cue))
		return
	}
	ctrl := &beep.Ctrl{Streamer: withVolume(newTone(spec, b.rate, 0, b.rng), spec.Volume)}
	b.loops[cue] = ctrl
	b.mixer.Add(ctrl)
}

func (b *Bank) StopLoop(cue string) {
	ctrl, ok := b.loops[cue]
	if !ok {
		return
	}
	// a nil streamer drains the ctrl out of the mixer on its next pull
	ctrl.Streamer = nil
	delete(b.loops, cue)
}

// Looping reports whether a loop cue is running.
func (b *Bank) Looping(cue string) bool {
	_, ok := b.loops[cue]
	return ok
}

// Played returns how many one-shots have been queued.
func (b *Bank) Played() int { return b.played }

// Streamer exposes the mixed output for a sink.
func (b *Bank) Streamer() beep.Streamer { return b.mixer }

// Render pulls d worth of samples from the mix and returns the peak level.
func (b *Bank) Render(d time.Duration) float64 {
	buf := make([][2]float64, 512)
	remaining := b.rate.N(d)
	peak := 0.0
	for remaining > 0 {
		n := len(buf)
		if remaining < n {
			n = remaining
		}
		got, ok := b.mixer.Stream(buf[:n])
		for i := 0; i < got; i++ {
			peak = math.Max(peak, math.Max(math.Abs(buf[i][0]), math.Abs(buf[i][1])))
		}
		remaining -= n
		if !ok {
			break
		}
	}
	return peak
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

var _ feedback.Audio = (*Bank)(nil)
