package system

import (
	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/entity"
	"go-iso-arena/internal/event"
	"go-iso-arena/internal/utils"
	"go-iso-arena/pkg/terrain"
)

type stubStats struct {
	stats component.Stats
}

func (s *stubStats) Stats() component.Stats { return s.stats }

// stubGate grants everything unless deny is set or the skill is refused,
// and records each request.
type stubGate struct {
	deny     bool
	refuse   map[component.SkillID]bool
	requests []component.SkillID
}

func (g *stubGate) RequestSkill(id component.SkillID, now float64) bool {
	g.requests = append(g.requests, id)
	return !g.deny && !g.refuse[id]
}

func (g *stubGate) count(id component.SkillID) int {
	n := 0
	for _, r := range g.requests {
		if r == id {
			n++
		}
	}
	return n
}

// harness wires the systems over an all-grass 60×60 map.
type harness struct {
	world      *entity.World
	tuning     *config.Tuning
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	stats      *stubStats
	fx         *VisualEffectSystem
	collision  *CollisionSystem
	combat     *CombatSystem
	projectile *ProjectileSystem

	events map[event.EventType]int
}

func newHarness() *harness {
	t := config.DefaultTuning()
	h := &harness{
		world:      entity.NewWorld(terrain.NewTileMap(60, 60), 30, 30),
		tuning:     &t,
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(7),
		stats: &stubStats{stats: component.Stats{
			HP: 450, MaxHP: 450, MP: 120, MaxMP: 120, Attack: 45, Defense: 20, SpeedMod: 1,
		}},
		events: make(map[event.EventType]int),
	}
	h.fx = NewVisualEffectSystem(h.rng)
	h.collision = NewCollisionSystem(h.world.Map, t.Combat.CollisionRadius)
	h.combat = NewCombatSystem(h.world, h.collision, h.fx, h.dispatcher, h.stats, h.rng, h.tuning)
	h.projectile = NewProjectileSystem(h.world, h.combat)
	for _, et := range []event.EventType{event.PlayerHit, event.EnemyKilled, event.WaveComplete, event.WaveStarted, event.SkillCast} {
		et := et
		h.dispatcher.Subscribe(et, event.ListenerFunc(func(event.Event) { h.events[et]++ }))
	}
	return h
}

func (h *harness) enemy(t component.EnemyType, hp, x, y float64) *component.Enemy {
	return h.world.AddEnemy(&component.Enemy{
		Type:   t,
		Wave:   1,
		Pos:    component.Position{X: x, Y: y},
		HP:     hp,
		MaxHP:  hp,
		Speed:  1,
		Damage: 10,
	})
}

// step advances the game clock and runs combat and projectiles.
func (h *harness) step(dt float64, attacking bool) {
	h.world.GameTime += dt
	h.combat.Update(dt, attacking)
	h.projectile.Update(dt)
}

// waterMap returns a map with a vertical water column at x = col.
func waterMap(w, hgt, col int) *terrain.TileMap {
	m := terrain.NewTileMap(w, hgt)
	for y := 0; y < hgt; y++ {
		m.Set(col, y, terrain.Water)
	}
	return m
}
