package player

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/mock/gomock"

	"github.com/skyshot/armory/internal/feedback"
	fbmocks "github.com/skyshot/armory/internal/feedback/mocks"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/physics/scene"
	"github.com/skyshot/armory/internal/vmath"
)

func TestKnockbackScalesByMass(t *testing.T) {
	w := scene.New(mgl64.Vec3{}, nil)
	body := w.CreateBody(physics.BodySpec{Pose: vmath.Identity(), Mass: 80})
	p := New(body, 80, w, nil, nil)

	p.ApplyKnockback(mgl64.Vec3{0, 0, -160})
	if v := w.Velocity(body); !v.ApproxEqual(mgl64.Vec3{0, 0, -2}) {
		t.Fatalf("velocity = %v", v)
	}
}

func TestKnockbackWithoutBodyIsNoop(t *testing.T) {
	p := New(0, 80, nil, nil, nil)
	p.ApplyKnockback(mgl64.Vec3{1, 2, 3})
}

func TestShakeForwardsNonZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sh := fbmocks.NewMockShaker(ctrl)
	sh.EXPECT().Shake(0.5, 100*time.Millisecond).Times(1)

	p := New(0, 1, nil, sh, nil)
	p.ShakeScreen(0.5, 100*time.Millisecond)
	p.ShakeScreen(0, time.Second)
}

func TestWingClamped(t *testing.T) {
	p := New(0, 1, nil, nil, nil)
	p.SetWing(feedback.HandRight, 3)
	if p.Wing(feedback.HandRight) != 1 || p.Wing(feedback.HandLeft) != 0 {
		t.Fatalf("wings = %v %v", p.Wing(feedback.HandLeft), p.Wing(feedback.HandRight))
	}
}

func TestToLocal(t *testing.T) {
	p := New(0, 1, nil, nil, nil)
	p.SetOrigin(vmath.At(mgl64.Vec3{10, 0, 0}))
	if got := p.ToLocal(mgl64.Vec3{11, 1, 0}); !got.ApproxEqual(mgl64.Vec3{1, 1, 0}) {
		t.Fatalf("local = %v", got)
	}
}
