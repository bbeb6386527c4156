// internal/system/utils.go
package system

import (
	"math"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/defs"
	"go-iso-arena/internal/event"
)

// damageEnemy applies one hit. HP never grows; the kill fires on the first hit that takes HP to zero.
func (s *CombatSystem) damageEnemy(e *component.Enemy, dmg, pushX, pushY float64) {
	if !e.Alive() {
		return
	}
	if dmg < 0 {
		dmg = 0
	}
	e.HP -= dmg
	e.LastHit = s.world.GameTime
	e.Hit = true
	e.Pos = s.collision.Clamp(component.Position{X: e.Pos.X + pushX, Y: e.Pos.Y + pushY})

	kill := e.HP <= 0
	s.fx.SpawnHit(e.Pos.X, e.Pos.Y, dmg, kill, s.snapshot.WeaponName)
	s.dispatcher.Sound(event.SFXHit)
	if kill {
		s.kill(e)
	}
}

func (s *CombatSystem) kill(e *component.Enemy) {
	if e.Dead {
		return
	}
	e.Dead = true
	e.DeathAnim = 1.0

	boss := e.IsBoss()
	xp, gold := defs.Reward(e.Wave, boss)
	runes := 0
	switch {
	case boss:
		runes = int(math.Floor(float64(20*e.Wave) + s.rng.Float64()*10))
	case s.rng.Float64() > 0.6:
		runes = int(math.Floor(float64(e.Wave) + s.rng.Float64()*2))
	}

	s.dispatcher.Emit(event.EnemyKilled, event.EnemyKilledData{
		XP: xp, Gold: gold, Runes: runes, Boss: boss, Wave: e.Wave,
	})
	s.fx.SpawnDrop(e.Pos.X, e.Pos.Y, runes)
	s.dispatcher.Sound(event.SFXKill)
}

func (s *CombatSystem) hitPlayer(damage float64) {
	p := s.world.Player
	s.dispatcher.Emit(event.PlayerHit, event.PlayerHitData{Damage: damage})
	s.dispatcher.Sound(event.SFXHit)
	s.fx.SpawnBlood(p.Pos.X, p.Pos.Y)
}
