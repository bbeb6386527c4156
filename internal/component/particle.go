// internal/component/particle.go
package component

import "image/color"

// ParticleKind: визуальный тип частицы
type ParticleKind uint8

const (
	Spark ParticleKind = iota
	Blood
	Smoke
	Text
	Shockwave
	Walk
	Flame
	Rune
	BossAura
)

// Ballistic reports whether the kind falls under gravity and bounces.
func (k ParticleKind) Ballistic() bool {
	switch k {
	case Spark, Blood, Flame, Rune:
		return true
	}
	return false
}

// Drifting reports whether the kind moves with its velocity.
func (k ParticleKind) Drifting() bool {
	return k.Ballistic() || k == BossAura
}

// Particle is purely cosmetic. Nothing in the simulation reads it.
type Particle struct {
	Pos     Position
	Z       float64 // высота над землей, пиксели
	Vel     Velocity
	VZ      float64
	Life    float64
	MaxLife float64
	Kind    ParticleKind
	Color   color.RGBA
	Size    float64
	Text    string
	Bounced bool
}

// Fade returns the remaining life fraction in [0, 1].
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	f := p.Life / p.MaxLife
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
