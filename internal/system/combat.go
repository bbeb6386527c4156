// internal/system/combat.go
package system

import (
	"math"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/defs"
	"go-iso-arena/internal/entity"
	"go-iso-arena/internal/event"
	"go-iso-arena/internal/interfaces"
	"go-iso-arena/internal/utils"
)

const (
	swingWrap        = 1.2
	swingWindowStart = 0.3
	swingWindowEnd   = 0.8
	swingRelease     = 2.0 // отпущенный взмах затухает вдвое быстрее
	spinDecay        = 2.0
	spinTrigger      = 0.5
	breathRate       = 1.5
	breathBlast      = 2.0
	breathEnd        = 3.0
	breathRecover    = -2.0

	spinShake    = 8
	contactShake = 8
	breathShake  = 15
)

// CombatSystem resolves melee swings, the spin, boss breath and minion
// contact, and hands out kill rewards.
type CombatSystem struct {
	world      *entity.World
	collision  *CollisionSystem
	fx         *VisualEffectSystem
	dispatcher *event.Dispatcher
	stats      interfaces.StatsSource
	rng        *utils.PRNGService
	tuning     *config.Tuning

	snapshot component.Stats // снимок на текущий кадр
}

func NewCombatSystem(world *entity.World, collision *CollisionSystem, fx *VisualEffectSystem,
	dispatcher *event.Dispatcher, stats interfaces.StatsSource, rng *utils.PRNGService,
	tuning *config.Tuning) *CombatSystem {
	return &CombatSystem{
		world:      world,
		collision:  collision,
		fx:         fx,
		dispatcher: dispatcher,
		stats:      stats,
		rng:        rng,
		tuning:     tuning,
	}
}

func (s *CombatSystem) Update(deltaTime float64, attacking bool) {
	if s.stats != nil {
		s.snapshot = s.stats.Stats()
	}
	s.updateDeaths(deltaTime)

	swing := s.updateSwing(deltaTime, attacking)
	s.updateSpin(deltaTime)

	p := s.world.Player
	if p.IFrame > 0 {
		p.IFrame -= deltaTime
	}

	c := s.tuning.Combat
	now := s.world.GameTime
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		dx, dy := p.Pos.X-e.Pos.X, p.Pos.Y-e.Pos.Y
		dist := math.Hypot(dx, dy)

		if e.IsBoss() {
			s.updateBreath(deltaTime, e, dist)
			if s.rng.Chance(config.AuraChance) {
				s.fx.SpawnBossAura(e.Pos.X, e.Pos.Y, defs.BossThemeForWave(e.Wave).Aura)
			}
		} else if dist < c.ContactRadius && !p.Invulnerable() {
			s.hitPlayer(e.Damage)
			s.fx.AddShake(contactShake)
			p.IFrame = c.IFrame
		}

		if swing && dist < c.MeleeRadius && (!e.Hit || now-e.LastHit > c.MeleeCooldown) {
			push := c.Knockback
			if e.IsBoss() {
				push = c.BossKnockback
			}
			safe := utils.SafeLen(dx, dy)
			s.damageEnemy(e, s.snapshot.Attack, -dx/safe*push, -dy/safe*push)
		}
	}
}

// updateDeaths fades out dead enemies and marks them for removal.
func (s *CombatSystem) updateDeaths(deltaTime float64) {
	for _, e := range s.world.Enemies {
		if !e.Dead || e.Removed {
			continue
		}
		e.DeathAnim -= deltaTime * s.tuning.Combat.DeathFade
		if e.DeathAnim <= 0 {
			e.DeathAnim = 0
			e.Removed = true
		}
	}
}

// updateSwing advances the attack animation and reports whether this frame
// opens the damage window of the current swing.
func (s *CombatSystem) updateSwing(deltaTime float64, attacking bool) bool {
	p := s.world.Player
	rate := s.tuning.Combat.AttackRate
	if !attacking {
		if p.AttackAnim > 0 {
			p.AttackAnim -= deltaTime * rate * swingRelease
			if p.AttackAnim < 0 {
				p.AttackAnim = 0
				p.AttackDealt = false
			}
		}
		return false
	}

	if p.AttackAnim == 0 {
		s.dispatcher.Sound(event.SFXAttack)
	}
	p.AttackAnim += deltaTime * rate
	if p.AttackAnim >= swingWrap {
		p.AttackAnim = 0
		p.AttackDealt = false
	}
	if p.AttackAnim > swingWindowStart && p.AttackAnim < swingWindowEnd && !p.AttackDealt {
		p.AttackDealt = true
		return true
	}
	return false
}

// updateSpin fires the spin AoE once, on the frame the animation crosses its trigger point.
func (s *CombatSystem) updateSpin(deltaTime float64) {
	p := s.world.Player
	if p.SpinAnim <= 0 {
		return
	}
	prev := p.SpinAnim
	p.SpinAnim -= deltaTime * spinDecay
	if !p.SpinDealt && prev > spinTrigger && p.SpinAnim <= spinTrigger {
		p.SpinDealt = true
		s.spinBlast()
	}
	if p.SpinAnim < 0 {
		p.SpinAnim = 0
	}
}

func (s *CombatSystem) spinBlast() {
	p := s.world.Player
	c := s.tuning.Combat
	s.fx.AddShake(spinShake)
	dmg := s.snapshot.Attack * c.SkillMultiplier
	for _, e := range s.world.Enemies {
		if !e.Alive() || p.Pos.Dist(e.Pos) >= c.SpinRadius {
			continue
		}
		push := c.SpinKnockback
		if e.IsBoss() {
			push = c.SpinBossPush
		}
		a := math.Atan2(e.Pos.Y-p.Pos.Y, e.Pos.X-p.Pos.X)
		s.damageEnemy(e, dmg, math.Cos(a)*push, math.Sin(a)*push)
	}
}

// updateBreath runs the boss breath cycle: charge, blast once at the
// crossing, then a cooldown phase below zero before re-arming.
func (s *CombatSystem) updateBreath(deltaTime float64, boss *component.Enemy, dist float64) {
	c := s.tuning.Combat
	p := s.world.Player

	if boss.Breath < 0 {
		boss.Breath += deltaTime
		if boss.Breath >= 0 {
			boss.Breath = 0
		}
		return
	}
	if boss.Breath == 0 && dist >= c.BreathTrigger {
		return
	}

	prev := boss.Breath
	boss.Breath += deltaTime * breathRate
	if prev < breathBlast && boss.Breath >= breathBlast {
		s.fx.AddShake(breathShake)
		s.fx.SpawnShockwave(boss.Pos.X, boss.Pos.Y, 5, 0.6, defs.BossThemeForWave(boss.Wave).Glow)
		if p.Pos.Dist(boss.Pos) < c.BreathRange && !p.Invulnerable() {
			s.hitPlayer(boss.Damage * c.BreathMultiplier)
			p.IFrame = c.IFrame
		}
	}
	if boss.Breath >= breathEnd {
		boss.Breath = breathRecover
	}
}
