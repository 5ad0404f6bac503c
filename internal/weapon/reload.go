package weapon

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/skyshot/armory/internal/ammo"
)

// ReloadVolume fully loads an open weapon whose chamber enters it.
type ReloadVolume struct {
	Center   mgl64.Vec3
	Radius   float64
	Template *ammo.Round

	inside map[*Weapon]bool
}

func NewReloadVolume(center mgl64.Vec3, radius float64, template *ammo.Round) *ReloadVolume {
	return &ReloadVolume{Center: center, Radius: radius, Template: template, inside: make(map[*Weapon]bool)}
}

// ChamberEntered loads w when its breach is open and it has room.
func (v *ReloadVolume) ChamberEntered(w *Weapon) bool {
	if v.Template == nil || !w.BreachOpen() || w.LoadedCount() >= w.Capacity() {
		return false
	}
	w.FullyLoad(v.Template)
	return true
}

// Check tests w's first chamber against the volume and raises
// ChamberEntered on the tick it crosses in.
func (v *ReloadVolume) Check(w *Weapon) bool {
	if w.Capacity() == 0 {
		return false
	}
	in := w.ChamberPose(0).Pos.Sub(v.Center).Len() <= v.Radius
	was := v.inside[w]
	v.inside[w] = in
	if in && !was {
		return v.ChamberEntered(w)
	}
	return false
}
