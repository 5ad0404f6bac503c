// Package feedback declares the haptic, audio, camera-shake and hit-effect
// collaborators driven by weapons. Playback itself happens elsewhere.
package feedback

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

//go:generate go tool mockgen -destination=./mocks/feedback_mock.go -package=mocks . Haptics,Audio,Shaker,Effects

// Hand identifies which controller holds a weapon.
type Hand uint8

const (
	HandLeft Hand = iota
	HandRight
)

func (h Hand) String() string {
	if h == HandRight {
		return "right"
	}
	return "left"
}

// ParseHand accepts "left" or "right".
func ParseHand(s string) (Hand, bool) {
	switch s {
	case "left":
		return HandLeft, true
	case "right":
		return HandRight, true
	}
	return HandLeft, false
}

type Haptics interface {
	// Pulse plays a vibration with amplitude in [0,1].
	Pulse(hand Hand, amplitude float64, duration time.Duration)
}

type Audio interface {
	PlayOneShot(cue string)
	StartLoop(cue string)
	StopLoop(cue string)
}

type Shaker interface {
	Shake(intensity float64, duration time.Duration)
}

type Effects interface {
	SpawnHitEffect(point, normal mgl64.Vec3)
}

// HapticProfile is an amplitude/duration pair from weapon tuning.
type HapticProfile struct {
	Amplitude float64       `yaml:"amplitude"`
	Duration  time.Duration `yaml:"duration"`
}

// Play sends the pulse unless the profile is empty.
func (p HapticProfile) Play(h Haptics, hand Hand) {
	if h == nil || p.Amplitude <= 0 || p.Duration <= 0 {
		return
	}
	amp := p.Amplitude
	if amp > 1 {
		amp = 1
	}
	h.Pulse(hand, amp, p.Duration)
}

// Set bundles the collaborators a weapon talks to.
type Set struct {
	Haptics Haptics
	Audio   Audio
	Shaker  Shaker
	Effects Effects
}

// WithDefaults fills missing collaborators with Nop.
func (s Set) WithDefaults() Set {
	if s.Haptics == nil {
		s.Haptics = Nop{}
	}
	if s.Audio == nil {
		s.Audio = Nop{}
	}
	if s.Shaker == nil {
		s.Shaker = Nop{}
	}
	if s.Effects == nil {
		s.Effects = Nop{}
	}
	return s
}

// PlayCue plays a one-shot cue if the name is set.
func (s Set) PlayCue(cue string) {
	if cue == "" || s.Audio == nil {
		return
	}
	s.Audio.PlayOneShot(cue)
}

// Nop discards all feedback.
type Nop struct{}

func (Nop) Pulse(Hand, float64, time.Duration) {}
func (Nop) PlayOneShot(string)                 {}
func (Nop) StartLoop(string)                   {}
func (Nop) StopLoop(string)                    {}
func (Nop) Shake(float64, time.Duration)       {}
func (Nop) SpawnHitEffect(_, _ mgl64.Vec3)     {}
