package weapon

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/curve"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/vmath"
)

// BladeDims is a blade offset and uniform scale.
type BladeDims struct {
	Offset mgl64.Vec3
	Scale  float64
}

// MeleeConfig tunes a punch-deployed blade.
type MeleeConfig struct {
	ActivationSpeed float64 // hand speed along its forward axis
	ActivationTime  float64 // seconds at speed before activation
	LaunchStrength  float64

	DeployTime   float64
	DeployMotion curve.Curve
	DeployScale  curve.Curve
	SheathMotion curve.Curve
	SheathScale  curve.Curve
	Stowed       BladeDims
	Deployed     BladeDims

	DeployCue     string
	ActiveCue     string
	SheathCue     string
	DeployHaptics feedback.HapticProfile
	SheathHaptics feedback.HapticProfile
}

type bladePhase uint8

const (
	bladeIdle bladePhase = iota
	bladeDeploying
	bladeSheathing
)

// Melee is a blade sharing a hand with a primary weapon. Punching deploys
// it and locks the primary out; firing or pulling back sheathes it.
type Melee struct {
	*Weapon
	mc      MeleeConfig
	primary *Weapon

	deployed    bool
	timeAtSpeed float64
	prevHand    mgl64.Vec3
	hasPrev     bool

	phase   bladePhase
	elapsed float64
	blade   BladeDims
	looping bool
}

// NewMelee creates a melee weapon paired with primary, which may be nil.
func NewMelee(cfg Config, mc MeleeConfig, primary *Weapon, deps Deps) *Melee {
	m := &Melee{Weapon: build(cfg, deps), mc: mc, primary: primary, blade: mc.Stowed}
	m.variant = m
	if primary == nil {
		m.log.Error("melee weapon has no primary weapon in the same hand")
	}
	return m
}

func (m *Melee) Deployed() bool   { return m.deployed }
func (m *Melee) Blade() BladeDims { return m.blade }
func (m *Melee) Busy() bool       { return m.phase != bladeIdle }

func (m *Melee) acceptsTrigger() bool { return m.deployed }
func (m *Melee) acceptsEject() bool   { return false }
func (m *Melee) onEject()             {}
func (m *Melee) onCloseBreach() bool  { return false }
func (m *Melee) frame() vmath.Pose    { return vmath.Identity() }

// afterFire sheathes whether or not anything was launched.
func (m *Melee) afterFire(Shot, bool) { m.sheath() }

func (m *Melee) tick(dt float64) {
	m.detectPunch(dt)
	m.tickBlade(dt)
}

func (m *Melee) detectPunch(dt float64) {
	if m.player == nil {
		return
	}
	hand := m.player.HandPose(m.cfg.Hand)
	cur := m.player.ToLocal(hand.Pos)
	if !m.hasPrev {
		m.prevHand, m.hasPrev = cur, true
		return
	}
	motion := cur.Sub(m.prevHand)
	m.prevHand = cur

	fwd := m.player.Origin().InverseTransformDirection(hand.Forward())
	angle := vmath.AngleDeg(motion, fwd)
	if (!m.deployed && angle < 90) || (m.deployed && angle > 90) {
		speed := vmath.Project(motion, fwd).Len() / dt
		if speed >= m.mc.ActivationSpeed && motion.Len() > 0 {
			m.timeAtSpeed += dt
			if m.timeAtSpeed >= m.mc.ActivationTime {
				if !m.deployed {
					m.deploy(hand.Forward())
				} else {
					m.sheath()
					if m.primary != nil {
						m.primary.FullyLoadDefault()
					}
				}
			}
			return
		}
	}
	m.timeAtSpeed = 0
}

func (m *Melee) deploy(dir mgl64.Vec3) {
	m.player.ApplyKnockback(dir.Mul(m.mc.LaunchStrength))
	m.mc.DeployHaptics.Play(m.fb.Haptics, m.cfg.Hand)
	m.fb.PlayCue(m.mc.DeployCue)
	m.phase, m.elapsed = bladeDeploying, 0
	m.timeAtSpeed = 0
	m.deployed = true
	if m.primary != nil {
		m.primary.SetInputDisabled(true)
	}
	m.log.Debug("blade deployed")
}

func (m *Melee) sheath() {
	if !m.deployed {
		return
	}
	m.mc.SheathHaptics.Play(m.fb.Haptics, m.cfg.Hand)
	if m.looping {
		m.fb.Audio.StopLoop(m.mc.ActiveCue)
		m.looping = false
	}
	m.fb.PlayCue(m.mc.SheathCue)
	m.phase, m.elapsed = bladeSheathing, 0
	m.timeAtSpeed = 0
	m.deployed = false
	m.log.Debug("blade sheathed", zap.Bool("primary_locked", m.primary != nil && m.primary.InputDisabled()))
}

func (m *Melee) tickBlade(dt float64) {
	if m.phase == bladeIdle {
		return
	}
	from, to := m.mc.Stowed, m.mc.Deployed
	motion, scale := m.mc.DeployMotion, m.mc.DeployScale
	if m.phase == bladeSheathing {
		from, to = to, from
		motion, scale = m.mc.SheathMotion, m.mc.SheathScale
	}

	if m.elapsed < m.mc.DeployTime {
		t := m.elapsed / m.mc.DeployTime
		m.blade = BladeDims{
			Offset: vmath.LerpVec(from.Offset, to.Offset, motion.Evaluate(t)),
			Scale:  vmath.LerpFloat(from.Scale, to.Scale, scale.Evaluate(t)),
		}
		m.elapsed += dt
		return
	}

	m.blade = to
	if m.phase == bladeDeploying {
		if m.mc.ActiveCue != "" {
			m.fb.Audio.StartLoop(m.mc.ActiveCue)
			m.looping = true
		}
	} else if m.primary != nil {
		m.primary.SetInputDisabled(false)
	}
	m.phase = bladeIdle
}
