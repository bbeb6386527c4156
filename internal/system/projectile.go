// internal/system/projectile.go
package system

import (
	"math"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/entity"
)

const blastShake = 20

// ProjectileSystem управляет полетом огненных шаров и их взрывом.
type ProjectileSystem struct {
	world        *entity.World
	combatSystem *CombatSystem
}

func NewProjectileSystem(world *entity.World, combatSystem *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{
		world:        world,
		combatSystem: combatSystem,
	}
}

// Update integrates every fireball. A fireball bursts on the first frame it
// is near a living enemy, leaves open ground, or runs out of life.
func (s *ProjectileSystem) Update(deltaTime float64) {
	cs := s.combatSystem
	c := cs.tuning.Combat
	contactSq := c.FireballContact * c.FireballContact
	for _, pr := range s.world.Projectiles {
		if pr.Removed {
			continue
		}
		pr.Pos = pr.Pos.Add(pr.Vel, deltaTime)
		pr.Life -= deltaTime
		if cs.rng.Chance(config.TrailChance) {
			cs.fx.SpawnTrail(pr.Pos.X, pr.Pos.Y, pr.Vel.X, pr.Vel.Y)
		}

		hit := pr.Life <= 0 || !cs.collision.CanOccupy(pr.Pos.X, pr.Pos.Y)
		if !hit {
			for _, e := range s.world.Enemies {
				if e.Alive() && pr.Pos.DistSq(e.Pos) < contactSq {
					hit = true
					break
				}
			}
		}
		if hit {
			s.detonate(pr)
		}
	}
}

// detonate bursts a fireball at its last integrated position.
func (s *ProjectileSystem) detonate(pr *component.Projectile) {
	if pr.Removed {
		return
	}
	cs := s.combatSystem
	c := cs.tuning.Combat
	pr.Removed = true
	cs.fx.AddShake(blastShake)
	cs.fx.SpawnExplosion(pr.Pos.X, pr.Pos.Y)
	for _, e := range s.world.Enemies {
		if !e.Alive() || pr.Pos.DistSq(e.Pos) >= c.FireballAoESq {
			continue
		}
		a := math.Atan2(e.Pos.Y-pr.Pos.Y, e.Pos.X-pr.Pos.X)
		cs.damageEnemy(e, pr.Damage, math.Cos(a)*c.FireballForce, math.Sin(a)*c.FireballForce)
	}
}
