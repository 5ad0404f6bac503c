package system

import (
	"time"

	coresys "github.com/skyshot/armory/internal/core/system"
	"github.com/skyshot/armory/internal/player"
	"github.com/skyshot/armory/internal/weapon"
)

// WeaponSystem moves every weapon to its tracked hand, ticks it, and checks
// reload volumes. Phase 4 (PostUpdate): it runs after the rigid-body step so
// the pose input-phase firing reads next tick is the tracked one.
type WeaponSystem struct {
	hands   player.PoseSource
	weapons []*weapon.Weapon
	volumes []*weapon.ReloadVolume
	reloads int
}

func NewWeaponSystem(hands player.PoseSource) *WeaponSystem {
	return &WeaponSystem{hands: hands}
}

func (s *WeaponSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *WeaponSystem) Add(w *weapon.Weapon) { s.weapons = append(s.weapons, w) }

func (s *WeaponSystem) AddReloadVolume(v *weapon.ReloadVolume) { s.volumes = append(s.volumes, v) }

func (s *WeaponSystem) Weapons() []*weapon.Weapon { return s.weapons }

// Reloads counts volume-triggered reloads.
func (s *WeaponSystem) Reloads() int { return s.reloads }

func (s *WeaponSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	for _, w := range s.weapons {
		if s.hands != nil {
			w.Follow(s.hands.HandPose(w.Hand()), sec)
		}
		w.Tick(sec)
		for _, v := range s.volumes {
			if v.Check(w) {
				s.reloads++
			}
		}
	}
}
