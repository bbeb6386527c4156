// internal/entity/ecs.go
package entity

import (
	"go-iso-arena/internal/component"
	"go-iso-arena/pkg/terrain"
)

// World: единственный авторитетный снимок состояния симуляции.
// Враги и снаряды живут в аренах: системы помечают сущности на удаление,
// а Compact уплотняет арены один раз в конце кадра.
type World struct {
	GameTime    float64 // игровые часы, секунды; не идут во время паузы
	NextID      component.EntityID
	Map         *terrain.TileMap
	Player      *component.Player
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Wave        int
}

// NewWorld creates a world over a generated map with the player at (sx, sy).
func NewWorld(m *terrain.TileMap, sx, sy float64) *World {
	return &World{
		NextID: 1,
		Map:    m,
		Player: component.NewPlayer(sx, sy),
	}
}

func (w *World) NewEntity() component.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy assigns an id and appends the enemy to the arena.
func (w *World) AddEnemy(e *component.Enemy) *component.Enemy {
	e.ID = w.NewEntity()
	w.Enemies = append(w.Enemies, e)
	return e
}

// AddProjectile assigns an id and appends the projectile to the arena.
func (w *World) AddProjectile(p *component.Projectile) *component.Projectile {
	p.ID = w.NewEntity()
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// LivingEnemies returns the number of enemies that are not dead.
func (w *World) LivingEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Boss returns the living boss, if any.
func (w *World) Boss() *component.Enemy {
	for _, e := range w.Enemies {
		if e.IsBoss() && e.Alive() {
			return e
		}
	}
	return nil
}

// Nearest returns the closest living enemy to the player and its distance.
func (w *World) Nearest() (*component.Enemy, float64) {
	var best *component.Enemy
	bestDist := 0.0
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		d := w.Player.Pos.Dist(e.Pos)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}

// Compact drops every entity marked for removal, in place and order-preserving.
func (w *World) Compact() {
	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Removed {
			enemies = append(enemies, e)
		}
	}
	for i := len(enemies); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = enemies

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.Removed {
			projectiles = append(projectiles, p)
		}
	}
	for i := len(projectiles); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = projectiles
}
