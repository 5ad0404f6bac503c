package weapon

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/mock/gomock"

	"github.com/skyshot/armory/internal/curve"
	"github.com/skyshot/armory/internal/feedback"
	fbmocks "github.com/skyshot/armory/internal/feedback/mocks"
	"github.com/skyshot/armory/internal/input"
	"github.com/skyshot/armory/internal/vmath"
)

func blade() MeleeConfig {
	return MeleeConfig{
		ActivationSpeed: 2,
		ActivationTime:  0.05,
		LaunchStrength:  40,
		DeployTime:      0.1,
		DeployMotion:    curve.Linear(0, 1),
		DeployScale:     curve.Linear(0, 1),
		SheathMotion:    curve.Linear(0, 1),
		SheathScale:     curve.Linear(0, 1),
		Stowed:          BladeDims{Offset: mgl64.Vec3{0, 0, -0.1}, Scale: 0.2},
		Deployed:        BladeDims{Offset: mgl64.Vec3{0, 0, 0.3}, Scale: 1},
		DeployCue:       "blade_out",
		ActiveCue:       "blade_hum",
		SheathCue:       "blade_in",
	}
}

type meleeRig struct {
	*rig
	primary *Weapon
	melee   *Melee
}

func newMeleeRig(t *testing.T, audio feedback.Audio) *meleeRig {
	t.Helper()
	r := newRig(t)
	primary := New(baseConfig(2), r.deps(feedback.Set{}))
	primary.SetDefaultRound(r.factory.Template(slug()))
	cfg := baseConfig(1)
	cfg.Name = "blade"
	m := NewMelee(cfg, blade(), primary, r.deps(feedback.Set{Audio: audio}))
	return &meleeRig{rig: r, primary: primary, melee: m}
}

// swing moves the right hand by step every tick until cond holds.
func (mr *meleeRig) swing(step mgl64.Vec3, max int, cond func() bool) bool {
	pos := mr.player.HandPose(feedback.HandRight).Pos
	for i := 0; i < max; i++ {
		if cond() {
			return true
		}
		pos = pos.Add(step)
		mr.player.SetHandPose(feedback.HandRight, vmath.At(pos))
		mr.melee.Tick(0.01)
	}
	return cond()
}

func TestPunchDeploysAndTriggerSheathes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	audio := fbmocks.NewMockAudio(ctrl)
	gomock.InOrder(
		audio.EXPECT().PlayOneShot("blade_out"),
		audio.EXPECT().StartLoop("blade_hum"),
		audio.EXPECT().StopLoop("blade_hum"),
		audio.EXPECT().PlayOneShot("blade_in"),
	)
	mr := newMeleeRig(t, audio)
	m := mr.melee

	m.HandleAction(input.Action{Hand: feedback.HandRight, Name: input.Trigger, Value: 1})
	if m.Shots() != 0 || m.TriggerPulled() {
		t.Fatal("stowed blade accepted the trigger")
	}

	// a slow drift never deploys
	mr.swing(mgl64.Vec3{0, 0, 0.005}, 20, func() bool { return m.Deployed() })
	if m.Deployed() {
		t.Fatal("slow motion deployed the blade")
	}

	if !mr.swing(mgl64.Vec3{0, 0, 0.05}, 20, m.Deployed) {
		t.Fatal("punch did not deploy the blade")
	}
	if !mr.primary.InputDisabled() {
		t.Fatal("primary not locked while the blade is out")
	}
	if v := mr.scene.Velocity(mr.player.Body); v.Z() <= 0 {
		t.Fatalf("deploy did not launch the player: %v", v)
	}

	if !mr.swing(mgl64.Vec3{}, 20, func() bool { return !m.Busy() }) {
		t.Fatal("deploy animation never finished")
	}
	if m.Blade() != blade().Deployed {
		t.Fatalf("blade dims = %+v", m.Blade())
	}

	m.HandleAction(input.Action{Hand: feedback.HandRight, Name: input.Trigger, Value: 1})
	if m.Deployed() {
		t.Fatal("trigger did not sheathe the blade")
	}
	if !mr.primary.InputDisabled() {
		t.Fatal("primary unlocked before the sheath finished")
	}
	mr.swing(mgl64.Vec3{}, 20, func() bool { return !m.Busy() })
	if mr.primary.InputDisabled() || m.Blade() != blade().Stowed {
		t.Fatal("sheath did not restore the primary")
	}
}

func TestWithdrawReloadsPrimary(t *testing.T) {
	mr := newMeleeRig(t, nil)
	m := mr.melee

	mr.swing(mgl64.Vec3{0, 0, 0.05}, 20, m.Deployed)
	mr.swing(mgl64.Vec3{}, 20, func() bool { return !m.Busy() })
	if mr.primary.LoadedCount() != 0 {
		t.Fatal("primary loaded too early")
	}

	if !mr.swing(mgl64.Vec3{0, 0, -0.05}, 20, func() bool { return !m.Deployed() }) {
		t.Fatal("pulling back did not sheathe the blade")
	}
	if mr.primary.LoadedCount() != mr.primary.Capacity() {
		t.Fatalf("primary holds %d rounds", mr.primary.LoadedCount())
	}
}

func TestMeleeWithoutPrimary(t *testing.T) {
	r := newRig(t)
	m := NewMelee(baseConfig(1), blade(), nil, r.deps(feedback.Set{}))
	mr := &meleeRig{rig: r, melee: m}

	if !mr.swing(mgl64.Vec3{0, 0, 0.05}, 20, m.Deployed) {
		t.Fatal("blade without a primary should still deploy")
	}
	m.Fire()
	if m.Deployed() {
		t.Fatal("dry fire should sheathe")
	}
}
