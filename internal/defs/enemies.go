// internal/defs/enemies.go
package defs

import "go-iso-arena/internal/component"

// EnemyDefinition holds the per-type base stats. Every stat grows linearly with the wave number.
type EnemyDefinition struct {
	Type        component.EnemyType
	Health      float64
	HealthWave  float64
	Speed       float64
	SpeedWave   float64
	Damage      float64
	DamageWave  float64
	ShadowSize  float64 // горизонтальный радиус тени в пикселях
	ShadowShift float64 // смещение тени вниз от точки ног
}

// EnemyDefs is the library of all enemy definitions, mapped by type.
var EnemyDefs = map[component.EnemyType]EnemyDefinition{
	component.Zombie:   {Type: component.Zombie, Health: 80, HealthWave: 10, Speed: 0.8, Damage: 15, DamageWave: 2, ShadowSize: 25, ShadowShift: 6},
	component.Goblin:   {Type: component.Goblin, Health: 40, HealthWave: 5, Speed: 1.6, Damage: 10, DamageWave: 1, ShadowSize: 25, ShadowShift: 6},
	component.Skeleton: {Type: component.Skeleton, Health: 60, HealthWave: 8, Speed: 1.0, Damage: 20, DamageWave: 2, ShadowSize: 25, ShadowShift: 6},
	component.Ghost:    {Type: component.Ghost, Health: 50, HealthWave: 5, Speed: 1.2, Damage: 25, DamageWave: 3, ShadowSize: 25, ShadowShift: 6},
	component.Boss:     {Type: component.Boss, Health: 2000, HealthWave: 800, Speed: 0.8, SpeedWave: 0.05, Damage: 40, DamageWave: 10, ShadowSize: 60, ShadowShift: 30},
}

// Stats returns hp, speed and damage of the type for wave N.
func (d EnemyDefinition) Stats(wave int) (hp, speed, damage float64) {
	n := float64(wave)
	return d.Health + d.HealthWave*n, d.Speed + d.SpeedWave*n, d.Damage + d.DamageWave*n
}

// NewEnemy builds an enemy of the given type for wave N at (x, y).
func NewEnemy(t component.EnemyType, wave int, tag string, x, y float64) *component.Enemy {
	hp, speed, dmg := EnemyDefs[t].Stats(wave)
	return &component.Enemy{
		Tag:    tag,
		Type:   t,
		Wave:   wave,
		Pos:    component.Position{X: x, Y: y},
		HP:     hp,
		MaxHP:  hp,
		Speed:  speed,
		Damage: dmg,
	}
}
