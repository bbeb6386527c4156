// internal/system/skill.go
package system

import (
	"math"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/entity"
	"go-iso-arena/internal/event"
	"go-iso-arena/internal/input"
	"go-iso-arena/internal/interfaces"
	"go-iso-arena/pkg/iso"
)

// SkillSystem turns granted skill requests into activations and drives autoplay.
type SkillSystem struct {
	world      *entity.World
	fx         *VisualEffectSystem
	dispatcher *event.Dispatcher
	gate       interfaces.SkillGate
	stats      interfaces.StatsSource
	tuning     *config.Tuning

	queue        input.SkillQueue
	pending      []component.SkillID // одобренные, ждут активации в этом кадре
	autoplay     bool
	nextDecision float64
}

func NewSkillSystem(world *entity.World, fx *VisualEffectSystem, dispatcher *event.Dispatcher,
	gate interfaces.SkillGate, stats interfaces.StatsSource, tuning *config.Tuning) *SkillSystem {
	return &SkillSystem{
		world:      world,
		fx:         fx,
		dispatcher: dispatcher,
		gate:       gate,
		stats:      stats,
		tuning:     tuning,
	}
}

// Queue is where the input layer pushes skill keys.
func (s *SkillSystem) Queue() *input.SkillQueue {
	return &s.queue
}

func (s *SkillSystem) SetAutoplay(on bool) {
	s.autoplay = on
}

func (s *SkillSystem) Autoplay() bool {
	return s.autoplay
}

// Request asks the gate for a skill. Spin and fireball activate on this or
// the next Update. Heal is applied by the gate itself.
func (s *SkillSystem) Request(id component.SkillID) bool {
	switch id {
	case component.SkillSpin, component.SkillHeal, component.SkillFireball:
	default:
		return false
	}
	if s.gate == nil || !s.gate.RequestSkill(id, s.world.GameTime) {
		return false
	}
	s.dispatcher.Emit(event.SkillCast, event.SkillCastData{Skill: int(id)})
	if id == component.SkillHeal {
		s.dispatcher.Sound(event.SFXSkill)
		return true
	}
	s.pending = append(s.pending, id)
	return true
}

// Update drains queued keys, lets autoplay steer, then activates granted skills.
// It returns the input the rest of the frame should use.
func (s *SkillSystem) Update(deltaTime float64, in input.State) input.State {
	for _, id := range s.queue.Drain() {
		s.Request(id)
	}
	if s.autoplay {
		in = s.autopilot(in)
	}
	for _, id := range s.pending {
		s.activate(id)
	}
	s.pending = s.pending[:0]
	return in
}

func (s *SkillSystem) activate(id component.SkillID) {
	p := s.world.Player
	c := s.tuning.Combat
	switch id {
	case component.SkillSpin:
		p.SpinAnim = 1.0
		p.SpinDealt = false
		s.fx.SpawnShockwave(p.Pos.X, p.Pos.Y, 5, 0.5, config.SpinRingColor)
	case component.SkillFireball:
		dx, dy := iso.FacingVector(p.Facing)
		attack := 0.0
		if s.stats != nil {
			attack = s.stats.Stats().Attack
		}
		s.world.AddProjectile(&component.Projectile{
			Pos:    p.Pos,
			Vel:    component.Velocity{X: dx * c.FireballSpeed, Y: dy * c.FireballSpeed},
			Life:   c.FireballLife,
			Damage: attack * c.SkillMultiplier,
		})
	default:
		return
	}
	s.dispatcher.Sound(event.SFXSkill)
}

// autopilot only acts while no direction is held and enemies remain.
func (s *SkillSystem) autopilot(in input.State) input.State {
	if in.Moving() || s.world.LivingEnemies() == 0 {
		return in
	}
	a := s.tuning.Autoplay
	p := s.world.Player
	nearest, dist := s.world.Nearest()
	if nearest == nil || dist >= a.DetectRange {
		return in
	}

	dx, dy := nearest.Pos.X-p.Pos.X, nearest.Pos.Y-p.Pos.Y
	if dist > a.MeleeRange {
		// экранное направление на врага
		vx, vy := dx-dy, (dx+dy)*0.5
		if mag := math.Hypot(vx, vy); mag > 0 {
			in.X, in.Y = vx/mag, vy/mag
		}
		in.Attacking = false
	} else {
		in.X, in.Y = 0, 0
		in.Attacking = true
		p.Facing = screenAngle(dx, dy)
	}

	if s.world.GameTime >= s.nextDecision && s.decide(nearest, dist) {
		s.nextDecision = s.world.GameTime + a.DecisionInterval
	}
	return in
}

// decide tries heal, then spin, then fireball. At most one fires.
func (s *SkillSystem) decide(nearest *component.Enemy, dist float64) bool {
	a := s.tuning.Autoplay
	p := s.world.Player

	if s.stats != nil && s.stats.Stats().HPFraction() < a.HealBelow {
		if s.Request(component.SkillHeal) {
			return true
		}
	}

	nearby := 0
	for _, e := range s.world.Enemies {
		if e.Alive() && p.Pos.Dist(e.Pos) < a.ClusterRadius {
			nearby++
		}
	}
	if nearby >= a.ClusterSize || (nearest.IsBoss() && dist < a.ClusterRadius) {
		if s.Request(component.SkillSpin) {
			return true
		}
	}

	if dist > a.FireballMin && dist < a.FireballMax {
		p.Facing = screenAngle(nearest.Pos.X-p.Pos.X, nearest.Pos.Y-p.Pos.Y)
		if s.Request(component.SkillFireball) {
			return true
		}
	}
	return false
}

// screenAngle converts a world offset to the screen-space facing angle.
func screenAngle(dx, dy float64) float64 {
	return math.Atan2((dx+dy)*0.5, dx-dy)
}
