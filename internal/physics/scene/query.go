package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/skyshot/armory/internal/physics"
)

const sweepEpsilon = 1e-9

// Raycast returns the nearest static or body collider crossed by the
// segment from -> to whose layer is not excluded.
func (w *World) Raycast(from, to mgl64.Vec3, exclude physics.LayerMask) (physics.Hit, bool) {
	d := to.Sub(from)
	length := d.Len()
	if length < sweepEpsilon {
		return physics.Hit{}, false
	}
	return w.sweep(from, d.Mul(1/length), length, 0, exclude)
}

// SphereCast sweeps a sphere of the given radius. Boxes are inflated by the
// radius on each axis, which slightly overestimates contact at box edges.
func (w *World) SphereCast(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, exclude physics.LayerMask) (physics.Hit, bool) {
	l := dir.Len()
	if maxDist <= 0 || l < sweepEpsilon {
		return physics.Hit{}, false
	}
	return w.sweep(origin, dir.Mul(1/l), maxDist, radius, exclude)
}

func (w *World) sweep(origin, dir mgl64.Vec3, maxDist, radius float64, exclude physics.LayerMask) (physics.Hit, bool) {
	best := physics.Hit{Distance: inf}
	found := false

	consider := func(t float64, n mgl64.Vec3, layer physics.Layer, id physics.BodyID, entity any) {
		if t > maxDist || t >= best.Distance {
			return
		}
		center := origin.Add(dir.Mul(t))
		best = physics.Hit{
			Point:    center.Sub(n.Mul(radius)),
			Normal:   n,
			Distance: t,
			Body:     id,
			Layer:    layer,
			Entity:   entity,
		}
		found = true
	}

	for _, c := range w.statics {
		if exclude.Has(c.Layer) {
			continue
		}
		switch c.Shape {
		case ShapeSphere:
			if t, n, ok := raySphere(origin, dir, c.Center, c.Radius+radius); ok {
				consider(t, n, c.Layer, 0, c.Entity)
			}
		case ShapeBox:
			r := mgl64.Vec3{radius, radius, radius}
			if t, n, ok := rayBox(origin, dir, c.Min.Sub(r), c.Max.Add(r)); ok {
				consider(t, n, c.Layer, 0, c.Entity)
			}
		}
	}
	for _, id := range w.order {
		b := w.bodies[id]
		if !b.colliderOn || exclude.Has(b.layer) {
			continue
		}
		if t, n, ok := raySphere(origin, dir, b.pose.Pos, b.radius+radius); ok {
			consider(t, n, b.layer, b.id, b.entity)
		}
	}
	return best, found
}

// raySphere intersects a unit-direction ray with a sphere. A ray starting
// inside reports t=0 with a normal facing back along the ray.
func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, mgl64.Vec3, bool) {
	m := origin.Sub(center)
	b := m.Dot(dir)
	c := m.Dot(m) - radius*radius
	if c > 0 && b > 0 {
		return 0, mgl64.Vec3{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, mgl64.Vec3{}, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		return 0, dir.Mul(-1), true
	}
	p := origin.Add(dir.Mul(t))
	return t, p.Sub(center).Normalize(), true
}

// rayBox is the slab test against an axis-aligned box.
func rayBox(origin, dir, min, max mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	tmin, tmax := -inf, inf
	axis := -1
	sign := 0.0
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < sweepEpsilon {
			if origin[i] < min[i] || origin[i] > max[i] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (min[i] - origin[i]) * inv
		t2 := (max[i] - origin[i]) * inv
		s := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tmin {
			tmin, axis, sign = t1, i, s
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl64.Vec3{}, false
		}
	}
	if tmax < 0 {
		return 0, mgl64.Vec3{}, false
	}
	if tmin < 0 || axis < 0 {
		return 0, dir.Mul(-1), true
	}
	var n mgl64.Vec3
	n[axis] = sign
	return tmin, n, true
}
