package terrain

import (
	"math/rand"
	"testing"
)

func TestGenerateValidKinds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m := Generate(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
		if m.Width != DefaultWidth || m.Height != DefaultHeight {
			t.Fatalf("seed %d: size = %dx%d, want %dx%d", seed, m.Width, m.Height, DefaultWidth, DefaultHeight)
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				k, ok := m.At(x, y)
				if !ok {
					t.Fatalf("seed %d: At(%d, %d) reported out of bounds", seed, x, y)
				}
				if k > Sand {
					t.Fatalf("seed %d: At(%d, %d) = %d, not a known kind", seed, x, y, k)
				}
			}
		}
	}
}

func TestGenerateSpawnIsGrass(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		m := Generate(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
		if k, _ := m.At(30, 55); k != Grass {
			t.Errorf("seed %d: spawn tile = %v, want grass", seed, k)
		}
		// Весь круг безопасной зоны
		for _, p := range [][2]int{{28, 55}, {32, 55}, {30, 53}, {30, 57}, {29, 54}} {
			if k, _ := m.At(p[0], p[1]); k != Grass {
				t.Errorf("seed %d: safe zone tile %v = %v, want grass", seed, p, k)
			}
		}
	}
}

func TestGenerateSmallMapClampsSpawn(t *testing.T) {
	m := Generate(10, 10, rand.New(rand.NewSource(7)))
	sx, sy := ClampSpawn(m, DefaultSpawnX, DefaultSpawnY)
	if sx != 9 || sy != 9 {
		t.Fatalf("ClampSpawn() = (%v, %v), want (9, 9)", sx, sy)
	}
	if k, _ := m.At(9, 9); k != Grass {
		t.Errorf("clamped spawn tile = %v, want grass", k)
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a := Generate(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(42)))
	b := Generate(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(42)))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			ka, _ := a.At(x, y)
			kb, _ := b.At(x, y)
			if ka != kb {
				t.Fatalf("tile (%d, %d) differs: %v vs %v", x, y, ka, kb)
			}
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	m := NewTileMap(5, 5)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 4, true},
		{-1, 0, false},
		{0, 5, false},
		{5, 2, false},
	}
	for _, tt := range tests {
		if _, ok := m.At(tt.x, tt.y); ok != tt.want {
			t.Errorf("At(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.want)
		}
	}
}

func TestShoresSurroundWater(t *testing.T) {
	m := NewTileMap(5, 5)
	m.Set(2, 2, Water)
	m.Set(2, 1, Stone)
	m.shores()
	for _, p := range [][2]int{{1, 2}, {3, 2}, {2, 3}} {
		if k, _ := m.At(p[0], p[1]); k != Sand {
			t.Errorf("tile %v = %v, want sand", p, k)
		}
	}
	if k, _ := m.At(2, 1); k != Stone {
		t.Errorf("stone next to water became %v", k)
	}
	if k, _ := m.At(1, 1); k != Grass {
		t.Errorf("diagonal neighbour = %v, want grass", k)
	}
}

func TestSmoothFillsIsolatedCell(t *testing.T) {
	m := NewTileMap(5, 5)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			m.Set(x, y, Dirt)
		}
	}
	m.Set(2, 2, Stone)
	out := m.smooth()
	if k, _ := out.At(2, 2); k != Dirt {
		t.Errorf("isolated stone = %v after smoothing, want dirt", k)
	}
	if k, _ := m.At(2, 2); k != Stone {
		t.Errorf("smooth() modified its input")
	}
}
