// internal/system/visual_effect.go
package system

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/utils"
)

// VisualEffectSystem владеет частицами и тряской экрана.
// Симуляция сюда только пишет, читает только рендер.
type VisualEffectSystem struct {
	particles []component.Particle
	shake     float64
	rng       *utils.PRNGService
}

func NewVisualEffectSystem(rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{rng: rng}
}

// Particles returns the live particles. The slice is valid until the next Update.
func (s *VisualEffectSystem) Particles() []component.Particle {
	return s.particles
}

// Shake returns the current screen shake magnitude in pixels.
func (s *VisualEffectSystem) Shake() float64 {
	return s.shake
}

// AddShake raises the shake to at least v.
func (s *VisualEffectSystem) AddShake(v float64) {
	if v > s.shake {
		s.shake = v
	}
}

// Spawn enqueues one particle.
func (s *VisualEffectSystem) Spawn(p component.Particle) {
	if p.MaxLife == 0 {
		p.MaxLife = p.Life
	}
	s.particles = append(s.particles, p)
}

// Update integrates every particle and drops the expired ones.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	live := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		p.Life -= deltaTime
		switch {
		case p.Kind.Drifting():
			p.Pos.X += p.Vel.X * deltaTime
			p.Pos.Y += p.Vel.Y * deltaTime
			p.Z += p.VZ * deltaTime
			if p.Kind.Ballistic() {
				p.VZ -= config.Gravity * deltaTime
				if p.Z <= 0 {
					p.Z = 0
					if !p.Bounced {
						// один отскок с потерей энергии
						p.VZ *= config.BounceDamping
						p.Vel.X *= config.BounceFriction
						p.Vel.Y *= config.BounceFriction
						p.Bounced = true
					} else {
						p.VZ = 0
						p.Vel = component.Velocity{}
					}
				}
			}
		case p.Kind == component.Text:
			p.Z += deltaTime * config.TextRiseRate
		case p.Kind == component.Shockwave:
			p.Size += deltaTime * config.ShockwaveGrow
		}
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	s.particles = live

	if s.shake > 0 {
		s.shake = math.Max(0, s.shake-deltaTime*config.ShakeDecay)
	}
}

// SpawnHit emits sparks and a damage number at a struck enemy.
func (s *VisualEffectSystem) SpawnHit(x, y, damage float64, kill bool, weapon string) {
	spark := config.SparkColor
	switch {
	case strings.Contains(weapon, "Obsidian"):
		spark = config.ObsidianSpark
	case kill:
		spark = config.SparkKillColor
	}
	for i := 0; i < 4; i++ {
		a := s.rng.Angle()
		speed := s.rng.Range(2, 6)
		s.Spawn(component.Particle{
			Pos:  component.Position{X: x, Y: y},
			Z:    10,
			Vel:  component.Velocity{X: math.Cos(a) * speed, Y: math.Sin(a) * speed},
			VZ:   s.rng.Range(2, 7),
			Life: 1.0,
			Kind: component.Spark, Color: spark, Size: s.rng.Range(2, 4),
		})
	}
	text := config.DamageTextColor
	if kill {
		text = config.KillTextColor
	}
	s.Spawn(component.Particle{
		Pos:  component.Position{X: x, Y: y},
		Z:    20,
		Vel:  component.Velocity{Y: -1},
		VZ:   2,
		Life: 1.0,
		Kind: component.Text, Color: text, Size: 16,
		Text: fmt.Sprintf("-%d", int(math.Round(damage))),
	})
	if kill {
		s.AddShake(12)
	} else {
		s.AddShake(5)
	}
}

// SpawnBlood splashes a few drops where the player was hit.
func (s *VisualEffectSystem) SpawnBlood(x, y float64) {
	for i := 0; i < 3; i++ {
		a := s.rng.Angle()
		s.Spawn(component.Particle{
			Pos:  component.Position{X: x, Y: y},
			Z:    15,
			Vel:  component.Velocity{X: math.Cos(a) * 1.5, Y: math.Sin(a) * 1.5},
			VZ:   s.rng.Range(1, 4),
			Life: 0.6,
			Kind: component.Blood, Color: config.BloodColor, Size: 3,
		})
	}
}

// SpawnExplosion draws the fireball blast ring and flames.
func (s *VisualEffectSystem) SpawnExplosion(x, y float64) {
	s.SpawnShockwave(x, y, 2, 0.5, config.BlastRingColor)
	for i := 0; i < 10; i++ {
		a := s.rng.Angle()
		speed := s.rng.Range(4, 12)
		c := config.FlameRed
		if s.rng.Chance(0.5) {
			c = config.FlameAmber
		}
		s.Spawn(component.Particle{
			Pos:     component.Position{X: x, Y: y},
			Z:       10,
			Vel:     component.Velocity{X: math.Cos(a) * speed, Y: math.Sin(a) * speed},
			VZ:      s.rng.Range(5, 15),
			Life:    s.rng.Range(0.4, 1.0),
			MaxLife: 1.0,
			Kind:    component.Flame, Color: c, Size: s.rng.Range(3, 7),
		})
	}
	for i := 0; i < 3; i++ {
		s.Spawn(component.Particle{
			Pos:  component.Position{X: x + s.rng.Range(-1, 1), Y: y + s.rng.Range(-1, 1)},
			Z:    5,
			Life: 0.8,
			Kind: component.Smoke, Color: color.RGBA{68, 64, 60, 160}, Size: s.rng.Range(6, 10),
		})
	}
}

// SpawnShockwave adds an expanding ring.
func (s *VisualEffectSystem) SpawnShockwave(x, y, z, life float64, c color.RGBA) {
	size := 1.0
	if z < 5 {
		size = 0.5
	}
	s.Spawn(component.Particle{
		Pos:  component.Position{X: x, Y: y},
		Z:    z,
		Life: life,
		Kind: component.Shockwave, Color: c, Size: size,
	})
}

// SpawnDrop shows the rune reward above a killed enemy.
func (s *VisualEffectSystem) SpawnDrop(x, y float64, runes int) {
	if runes <= 0 {
		return
	}
	s.Spawn(component.Particle{
		Pos:  component.Position{X: x, Y: y},
		Z:    30,
		Vel:  component.Velocity{Y: -0.5},
		VZ:   2,
		Life: 2.0,
		Kind: component.Text, Color: config.RuneTextColor, Size: 14,
		Text: fmt.Sprintf("+%d RUNES", runes),
	})
	s.Spawn(component.Particle{
		Pos:  component.Position{X: x, Y: y},
		Z:    12,
		VZ:   4,
		Life: 1.2,
		Kind: component.Rune, Color: config.RuneTextColor, Size: 4,
	})
}

// SpawnWalkDust puffs dust at the player's feet.
func (s *VisualEffectSystem) SpawnWalkDust(x, y float64) {
	s.Spawn(component.Particle{
		Pos:  component.Position{X: x, Y: y},
		Life: 0.5,
		Kind: component.Walk, Color: config.WalkDustColor, Size: 2,
	})
}

// SpawnBossAura drifts a mote of the archetype colour around a boss.
func (s *VisualEffectSystem) SpawnBossAura(x, y float64, c color.RGBA) {
	s.Spawn(component.Particle{
		Pos:  component.Position{X: x + s.rng.Range(-2, 2), Y: y + s.rng.Range(-2, 2)},
		Vel:  component.Velocity{Y: 1.0},
		Life: 1.0,
		Kind: component.BossAura, Color: c, Size: s.rng.Range(2, 5),
	})
}

// SpawnTrail leaves a flame behind a fireball moving at (vx, vy).
func (s *VisualEffectSystem) SpawnTrail(x, y, vx, vy float64) {
	c := config.FlameRed
	if s.rng.Chance(0.5) {
		c = config.FlameYellow
	}
	s.Spawn(component.Particle{
		Pos:  component.Position{X: x + s.rng.Range(-0.75, 0.75), Y: y + s.rng.Range(-0.75, 0.75)},
		Z:    15,
		Vel:  component.Velocity{X: -vx * 0.2, Y: -vy * 0.2},
		VZ:   s.rng.Range(1, 2),
		Life: 0.4,
		Kind: component.Flame, Color: c, Size: s.rng.Range(2, 5),
	})
}
