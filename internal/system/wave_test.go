package system

import (
	"testing"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/entity"
	"go-iso-arena/internal/event"
	"go-iso-arena/internal/utils"
	"go-iso-arena/pkg/terrain"
)

func TestFirstWaveRoster(t *testing.T) {
	h := newHarness()
	w := NewWaveSystem(h.world, h.dispatcher, h.rng, nil)
	w.Start(1)

	if w.State() != WaveActive {
		t.Errorf("state = %q, want %q", w.State(), WaveActive)
	}
	if len(h.world.Enemies) != 5 {
		t.Fatalf("wave 1 spawned %d enemies, want 4 minions and a boss", len(h.world.Enemies))
	}
	minions := 0
	for _, e := range h.world.Enemies {
		switch {
		case e.IsBoss():
			if e.HP != 2800 || e.Tag != "boss-1" {
				t.Errorf("boss = %s hp %v, want boss-1 hp 2800", e.Tag, e.HP)
			}
			if e.Pos.X != 30 || e.Pos.Y != 5 {
				t.Errorf("boss at %+v, want (30, 5)", e.Pos)
			}
		default:
			minions++
			if e.Type != component.Zombie && e.Type != component.Goblin {
				t.Errorf("wave 1 minion %s is a %v", e.Tag, e.Type)
			}
			if e.Pos.Y > 45 {
				t.Errorf("minion %s spawned near the player at %+v", e.Tag, e.Pos)
			}
		}
	}
	if minions != 4 {
		t.Errorf("minions = %d, want 4", minions)
	}
	if h.events[event.WaveStarted] != 1 {
		t.Errorf("WaveStarted emitted %d times, want 1", h.events[event.WaveStarted])
	}
}

func TestRosterDeterministicPerSeed(t *testing.T) {
	roster := func() []*component.Enemy {
		world := entity.NewWorld(terrain.NewTileMap(60, 60), 30, 55)
		w := NewWaveSystem(world, event.NewDispatcher(), utils.NewPRNGService(42), nil)
		w.Start(5)
		return world.Enemies
	}
	a, b := roster(), roster()
	if len(a) != len(b) {
		t.Fatalf("roster sizes %d and %d differ", len(a), len(b))
	}
	for i := range a {
		if a[i].Type != b[i].Type || a[i].Pos != b[i].Pos || a[i].Tag != b[i].Tag {
			t.Errorf("enemy %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnAvoidsWater(t *testing.T) {
	m := terrain.NewTileMap(60, 60)
	for x := 20; x < 40; x++ {
		for y := 10; y < 30; y++ {
			m.Set(x, y, terrain.Water)
		}
	}
	world := entity.NewWorld(m, 30, 55)
	w := NewWaveSystem(world, nil, utils.NewPRNGService(3), nil)
	w.Start(3)
	wet := 0
	for _, e := range world.Enemies {
		if !e.IsBoss() && m.IsWater(int(e.Pos.X), int(e.Pos.Y)) {
			wet++
		}
	}
	// десять попыток на врага, почти все должны найти сушу
	if wet > 1 {
		t.Errorf("%d minions spawned in water", wet)
	}
}

func TestClearedWaveAdvances(t *testing.T) {
	h := newHarness()
	w := NewWaveSystem(h.world, h.dispatcher, h.rng, nil)
	var cleared event.WaveData
	h.dispatcher.Subscribe(event.WaveComplete, event.ListenerFunc(func(e event.Event) {
		cleared = e.Data.(event.WaveData)
	}))
	w.Start(1)

	w.Update(0.1)
	if w.Current() != 1 {
		t.Fatalf("advanced with enemies alive: wave %d", w.Current())
	}

	for _, e := range h.world.Enemies {
		e.Dead = true
	}
	w.Update(0.1)

	if cleared.Wave != 1 || h.events[event.WaveComplete] != 1 {
		t.Errorf("WaveComplete = %+v x%d, want wave 1 once", cleared, h.events[event.WaveComplete])
	}
	if w.Current() != 2 || w.State() != WaveActive {
		t.Errorf("after clear: wave %d state %q, want 2 active", w.Current(), w.State())
	}
	if n := h.world.LivingEnemies(); n != 7 {
		t.Errorf("wave 2 living enemies = %d, want 7", n)
	}
	if len(h.world.Enemies) != 12 {
		t.Errorf("dying enemies dropped early: %d total", len(h.world.Enemies))
	}
}
