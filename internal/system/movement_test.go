package system

import (
	"math"
	"testing"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/input"
)

func newMovement(h *harness) *MovementSystem {
	return NewMovementSystem(h.world, h.collision, h.fx, h.stats, h.rng, h.tuning)
}

func TestPlayerMovesUpScreen(t *testing.T) {
	h := newHarness()
	m := newMovement(h)
	p := h.world.Player

	m.Update(0.1, input.State{Y: -1})

	// вверх по экрану означает -x и -y в мире
	if p.Pos.X >= 30 || p.Pos.Y >= 30 {
		t.Errorf("pos = %+v, want up and left of (30, 30)", p.Pos)
	}
	if !p.Moving {
		t.Error("Moving = false while a key is held")
	}
	if want := math.Atan2(-1, 0); p.Facing != want {
		t.Errorf("facing = %v, want %v", p.Facing, want)
	}
}

func TestIdlePlayerKeepsFacing(t *testing.T) {
	h := newHarness()
	m := newMovement(h)
	p := h.world.Player
	p.Facing = 1.25

	m.Update(0.1, input.State{})
	if p.Pos.X != 30 || p.Pos.Y != 30 || p.Facing != 1.25 || p.Moving {
		t.Errorf("idle player changed: %+v", p)
	}
}

func TestSpeedModScalesStep(t *testing.T) {
	step := func(mod float64) float64 {
		h := newHarness()
		h.stats.stats.SpeedMod = mod
		m := newMovement(h)
		m.Update(0.1, input.State{X: 1})
		return h.world.Player.Pos.Dist(component.Position{X: 30, Y: 30})
	}
	slow, fast := step(1), step(2)
	if math.Abs(fast-2*slow) > 1e-9 {
		t.Errorf("step with mod 2 = %v, want twice %v", fast, slow)
	}
}

func TestEnemyPursuesAndStops(t *testing.T) {
	h := newHarness()
	m := newMovement(h)
	far := h.enemy(component.Zombie, 80, 40, 30)
	near := h.enemy(component.Zombie, 80, 30.5, 30)

	m.Update(0.1, input.State{})

	if far.Pos.X >= 40 || far.Pos.Y != 30 {
		t.Errorf("far enemy at %+v, want closer along x", far.Pos)
	}
	if near.Pos.X != 30.5 {
		t.Errorf("enemy inside the stop radius moved: %+v", near.Pos)
	}
	// слишком близкий враг отталкивает игрока
	if p := h.world.Player.Pos; p.X >= 30 {
		t.Errorf("player not pushed away: %+v", p)
	}
}

func TestDeadEnemiesStandStill(t *testing.T) {
	h := newHarness()
	m := newMovement(h)
	e := h.enemy(component.Zombie, 80, 40, 30)
	e.Dead = true
	m.Update(0.1, input.State{})
	if e.Pos.X != 40 {
		t.Errorf("dead enemy moved to %+v", e.Pos)
	}
}

func TestFacingLeftTracksNearestEnemy(t *testing.T) {
	h := newHarness()
	m := newMovement(h)
	h.enemy(component.Zombie, 80, 25, 30)
	m.Update(0.1, input.State{X: 1})
	if !h.world.Player.FacingLeft {
		t.Error("FacingLeft = false with an enemy to the screen left")
	}
}
