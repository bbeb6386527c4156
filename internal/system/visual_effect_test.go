package system

import (
	"testing"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/utils"
)

func TestBallisticParticleBouncesOnce(t *testing.T) {
	fx := NewVisualEffectSystem(utils.NewPRNGService(1))
	fx.Spawn(component.Particle{
		Z:    0.1,
		Vel:  component.Velocity{X: 1, Y: 1},
		VZ:   -1,
		Life: 10,
		Kind: component.Spark,
	})

	fx.Update(0.1)
	p := fx.Particles()[0]
	if !p.Bounced || p.VZ <= 0 {
		t.Fatalf("after landing: bounced %v vz %v, want an upward bounce", p.Bounced, p.VZ)
	}
	if p.Vel.X != 0.5 {
		t.Errorf("vx = %v, want halved to 0.5", p.Vel.X)
	}

	for i := 0; i < 30; i++ {
		fx.Update(0.1)
	}
	p = fx.Particles()[0]
	if p.Z != 0 || p.VZ != 0 || p.Vel != (component.Velocity{}) {
		t.Errorf("particle still moving after second landing: %+v", p)
	}
}

func TestExpiredParticlesAreDropped(t *testing.T) {
	fx := NewVisualEffectSystem(utils.NewPRNGService(1))
	fx.Spawn(component.Particle{Life: 0.3, Kind: component.Smoke})
	fx.Spawn(component.Particle{Life: 2, Kind: component.Text, Text: "-5"})

	for i := 0; i < 4; i++ {
		fx.Update(0.1)
	}
	ps := fx.Particles()
	if len(ps) != 1 || ps[0].Kind != component.Text {
		t.Fatalf("particles = %+v, want only the text", ps)
	}
	if ps[0].Z <= 0 {
		t.Errorf("text did not rise: z = %v", ps[0].Z)
	}
	if ps[0].MaxLife != 2 {
		t.Errorf("MaxLife = %v, want defaulted to 2", ps[0].MaxLife)
	}
}

func TestShakeTakesMaxAndDecays(t *testing.T) {
	fx := NewVisualEffectSystem(utils.NewPRNGService(1))
	fx.AddShake(12)
	fx.AddShake(5)
	if fx.Shake() != 12 {
		t.Fatalf("shake = %v, want 12", fx.Shake())
	}
	fx.Update(0.1)
	if fx.Shake() != 10 {
		t.Errorf("shake = %v, want 10", fx.Shake())
	}
	fx.Update(1)
	if fx.Shake() != 0 {
		t.Errorf("shake = %v, want 0", fx.Shake())
	}
}

func TestSpawnHitEmitsSparksAndNumber(t *testing.T) {
	fx := NewVisualEffectSystem(utils.NewPRNGService(1))
	fx.SpawnHit(3, 4, 44.6, false, "Iron Sword")
	var sparks, texts int
	for _, p := range fx.Particles() {
		switch p.Kind {
		case component.Spark:
			sparks++
		case component.Text:
			texts++
			if p.Text != "-45" {
				t.Errorf("text = %q, want -45", p.Text)
			}
		}
	}
	if sparks != 4 || texts != 1 {
		t.Errorf("sparks %d texts %d, want 4 and 1", sparks, texts)
	}
	if fx.Shake() != 5 {
		t.Errorf("shake = %v, want 5", fx.Shake())
	}
}
