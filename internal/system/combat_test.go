package system

import (
	"testing"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/event"
)

func TestMeleeHitsOncePerSwing(t *testing.T) {
	h := newHarness()
	e := h.enemy(component.Zombie, 80, 31, 30)

	h.step(0.1, true)
	if e.HP != 35 {
		t.Fatalf("hp after first swing = %v, want 35", e.HP)
	}
	if e.Dead {
		t.Fatal("enemy died at 35 hp")
	}
	if e.Pos.X <= 31 {
		t.Errorf("enemy not knocked back: x = %v", e.Pos.X)
	}

	h.step(0.1, true)
	if e.HP != 35 {
		t.Errorf("second frame of the same swing dealt damage: hp = %v", e.HP)
	}
}

func TestMeleeOutOfRange(t *testing.T) {
	h := newHarness()
	e := h.enemy(component.Zombie, 80, 34, 30)
	for i := 0; i < 20; i++ {
		h.step(0.1, true)
	}
	if e.HP != 80 {
		t.Errorf("enemy at 4 tiles took damage: hp = %v", e.HP)
	}
}

func TestKillRewardsOnce(t *testing.T) {
	h := newHarness()
	var got event.EnemyKilledData
	h.dispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		got = e.Data.(event.EnemyKilledData)
	}))
	e := h.enemy(component.Goblin, 40, 31, 30)

	prev := e.HP
	for i := 0; i < 30; i++ {
		h.step(0.1, true)
		if e.HP > prev {
			t.Fatalf("hp grew from %v to %v", prev, e.HP)
		}
		prev = e.HP
	}
	if !e.Dead {
		t.Fatal("enemy survived a 45 damage hit with 40 hp")
	}
	if n := h.events[event.EnemyKilled]; n != 1 {
		t.Errorf("EnemyKilled emitted %d times, want 1", n)
	}
	if got.XP != 20 || got.Gold != 15 || got.Boss {
		t.Errorf("reward = %+v, want 20 xp 15 gold", got)
	}
	if !e.Removed {
		t.Error("dead enemy never finished fading")
	}
}

func TestSpinBlastsOnce(t *testing.T) {
	h := newHarness()
	near := h.enemy(component.Zombie, 1000, 32, 30)
	far := h.enemy(component.Zombie, 1000, 36, 30)
	p := h.world.Player
	p.SpinAnim = 1

	for i := 0; i < 10; i++ {
		h.step(0.1, false)
	}
	if near.HP != 1000-45*1.5 {
		t.Errorf("near hp = %v, want %v", near.HP, 1000-45*1.5)
	}
	if far.HP != 1000 {
		t.Errorf("far hp = %v, want untouched", far.HP)
	}
	if p.SpinAnim != 0 {
		t.Errorf("spin anim = %v, want 0", p.SpinAnim)
	}
}

func TestContactRespectsIFrames(t *testing.T) {
	h := newHarness()
	h.enemy(component.Goblin, 40, 30.5, 30)
	for i := 0; i < 5; i++ {
		h.step(0.1, false)
	}
	if n := h.events[event.PlayerHit]; n != 1 {
		t.Errorf("PlayerHit emitted %d times in 0.5s, want 1", n)
	}
}

func TestBossBreathBlastsOncePerCycle(t *testing.T) {
	h := newHarness()
	boss := h.enemy(component.Boss, 2800, 30, 33)
	boss.Damage = 50
	var dmg float64
	h.dispatcher.Subscribe(event.PlayerHit, event.ListenerFunc(func(e event.Event) {
		dmg = e.Data.(event.PlayerHitData).Damage
	}))

	for i := 0; i < 25; i++ {
		h.step(0.1, false)
	}
	if n := h.events[event.PlayerHit]; n != 1 {
		t.Fatalf("breath hit %d times, want 1", n)
	}
	if dmg != 75 {
		t.Errorf("breath damage = %v, want 75", dmg)
	}
	if boss.Breath >= 0 {
		t.Errorf("breath = %v, want recovering below zero", boss.Breath)
	}
}

func TestBossBreathIdleWhenFar(t *testing.T) {
	h := newHarness()
	boss := h.enemy(component.Boss, 2800, 30, 40)
	for i := 0; i < 30; i++ {
		h.step(0.1, false)
	}
	if boss.Breath != 0 || h.events[event.PlayerHit] != 0 {
		t.Errorf("far boss breathed: phase %v hits %d", boss.Breath, h.events[event.PlayerHit])
	}
}
