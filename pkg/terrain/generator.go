// pkg/terrain/generator.go
package terrain

import "math"

// Rand is the subset of the game PRNG the generator needs.
type Rand interface {
	Float64() float64
}

const (
	DefaultWidth  = 60
	DefaultHeight = 60
	DefaultSpawnX = 30.0
	DefaultSpawnY = 55.0
	SafeZone      = 3.0

	pondCount     = 6
	patchCount    = 15
	smoothPasses  = 3
	outcropRadius = 3.0
)

// Generate builds a map with the spawn point at its default place.
func Generate(width, height int, rng Rand) *TileMap {
	return GenerateWithSpawn(width, height, DefaultSpawnX, DefaultSpawnY, rng)
}

// GenerateWithSpawn builds a map and clears a grass safe zone around (sx, sy).
func GenerateWithSpawn(width, height int, sx, sy float64, rng Rand) *TileMap {
	m := NewTileMap(width, height)
	w, h := float64(m.Width), float64(m.Height)

	// Пруды
	for i := 0; i < pondCount; i++ {
		m.blob(rng.Float64()*w, rng.Float64()*h, 1.5+rng.Float64()*2, Water, 1.0, rng)
	}
	// Пятна земли
	for i := 0; i < patchCount; i++ {
		m.blob(rng.Float64()*w, rng.Float64()*h, 2+rng.Float64()*3, Dirt, 1.5, rng)
	}
	// Каменные выступы в противоположных углах
	m.blob(w*0.85, h*0.15, outcropRadius, Stone, 0.5, rng)
	m.blob(w*0.15, h*0.85, outcropRadius, Stone, 0.5, rng)

	m.shores()
	for i := 0; i < smoothPasses; i++ {
		m = m.smooth()
	}

	sx, sy = ClampSpawn(m, sx, sy)
	m.blob(sx, sy, SafeZone, Grass, 0, rng)
	return m
}

// ClampSpawn keeps a spawn point inside the map.
func ClampSpawn(m *TileMap, sx, sy float64) (float64, float64) {
	return clamp(sx, 0, float64(m.Width-1)), clamp(sy, 0, float64(m.Height-1))
}

// blob stamps kind on every cell whose noisy distance to (cx, cy) is below radius.
func (m *TileMap) blob(cx, cy, radius float64, kind Kind, roughness float64, rng Rand) {
	x0 := int(math.Floor(cx - radius))
	y0 := int(math.Floor(cy - radius))
	for x := x0; float64(x) <= cx+radius; x++ {
		for y := y0; float64(y) <= cy+radius; y++ {
			if !m.InBounds(x, y) {
				continue
			}
			dist := math.Hypot(float64(x)-cx, float64(y)-cy)
			noise := 0.0
			if roughness != 0 {
				noise = (rng.Float64() - 0.5) * roughness
			}
			if dist+noise < radius {
				m.Set(x, y, kind)
			}
		}
	}
}

var orthogonal = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// shores turns land next to water into sand. Stone keeps its kind.
func (m *TileMap) shores() {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			k, _ := m.At(x, y)
			if k == Water || k == Stone {
				continue
			}
			for _, d := range orthogonal {
				if m.IsWater(x+d[0], y+d[1]) {
					m.Set(x, y, Sand)
					break
				}
			}
		}
	}
}

// smooth runs one pass over interior cells. The input map is read, a copy is written.
// A cell with zero matching neighbours takes the kind of its (x+1, y) neighbour.
func (m *TileMap) smooth() *TileMap {
	out := m.clone()
	for x := 1; x < m.Width-1; x++ {
		for y := 1; y < m.Height-1; y++ {
			cur, _ := m.At(x, y)
			same := 0
			for i := -1; i <= 1; i++ {
				for j := -1; j <= 1; j++ {
					if i == 0 && j == 0 {
						continue
					}
					if k, _ := m.At(x+i, y+j); k == cur {
						same++
					}
				}
			}
			switch {
			case same == 0:
				right, _ := m.At(x+1, y)
				out.Set(x, y, right)
			case same < 2:
				out.Set(x, y, Grass)
			}
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
