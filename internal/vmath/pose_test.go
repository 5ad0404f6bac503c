package vmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLookRotationForward(t *testing.T) {
	dirs := []mgl64.Vec3{
		{0, 0, 1},
		{1, 0, 0},
		{0, 0, -1},
		{0, 1, 0},
		{3, -2, 5},
	}
	for _, d := range dirs {
		q := LookRotation(d, AxisUp)
		got := q.Rotate(AxisForward)
		want := d.Normalize()
		if got.Sub(want).Len() > 1e-9 {
			t.Errorf("LookRotation(%v) forward = %v, want %v", d, got, want)
		}
	}
}

func TestPoseInverseTransform(t *testing.T) {
	p := Pose{Pos: mgl64.Vec3{1, 2, 3}, Rot: mgl64.QuatRotate(0.7, mgl64.Vec3{0, 1, 0})}
	local := mgl64.Vec3{-4, 0.5, 2}
	world := p.TransformPoint(local)
	back := p.InverseTransformPoint(world)
	if !back.ApproxEqualThreshold(local, 1e-9) {
		t.Fatalf("round trip = %v, want %v", back, local)
	}
}

func TestZeroPoseActsAsIdentity(t *testing.T) {
	var p Pose
	if !p.Forward().ApproxEqual(AxisForward) {
		t.Fatalf("forward = %v", p.Forward())
	}
	child := p.Mul(At(mgl64.Vec3{0, 0, 2}))
	if !child.Pos.ApproxEqual(mgl64.Vec3{0, 0, 2}) {
		t.Fatalf("child pos = %v", child.Pos)
	}
}

func TestMoveTowards(t *testing.T) {
	got := MoveTowards(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, 4)
	if !got.ApproxEqual(mgl64.Vec3{0, 0, 6}) {
		t.Fatalf("got %v", got)
	}
	got = MoveTowards(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{}, 4)
	if !got.ApproxEqual(mgl64.Vec3{}) {
		t.Fatalf("overshoot: got %v", got)
	}
}

func TestAngleDeg(t *testing.T) {
	if a := AngleDeg(AxisForward, AxisRight); math.Abs(a-90) > 1e-9 {
		t.Fatalf("angle = %v", a)
	}
	if a := AngleDeg(AxisForward, AxisForward.Mul(-1)); math.Abs(a-180) > 1e-9 {
		t.Fatalf("angle = %v", a)
	}
}

func TestEulerNeverRolls(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		x, y := InsideUnitCircle(rng)
		if x*x+y*y > 1 {
			t.Fatalf("sample outside disc: %v, %v", x, y)
		}
		q := Euler(x*10, y*10)
		right := q.Rotate(AxisRight)
		// pitch then yaw keeps the right axis horizontal
		if math.Abs(right.Y()) > 1e-9 {
			t.Fatalf("rolled: right = %v", right)
		}
		if a := AngleDeg(q.Rotate(AxisForward), AxisForward); a > 10*math.Sqrt2+1e-9 {
			t.Fatalf("spread %v exceeds bound", a)
		}
	}
}
