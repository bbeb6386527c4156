// pkg/terrain/terrain.go
package terrain

// Kind: тип тайла
type Kind uint8

const (
	Grass Kind = iota
	Dirt
	Water
	Stone
	Sand
)

// Kinds lists every tile kind in draw-table order.
var Kinds = []Kind{Grass, Dirt, Water, Stone, Sand}

func (k Kind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Dirt:
		return "dirt"
	case Water:
		return "water"
	case Stone:
		return "stone"
	case Sand:
		return "sand"
	}
	return "unknown"
}

// Blocking reports whether entities may not stand on this kind.
func (k Kind) Blocking() bool {
	return k == Water
}

// TileMap is a W×H grid of tile kinds. It is never modified after Generate returns.
type TileMap struct {
	Width  int
	Height int
	tiles  []Kind
}

// NewTileMap создает карту, заполненную травой.
func NewTileMap(width, height int) *TileMap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &TileMap{
		Width:  width,
		Height: height,
		tiles:  make([]Kind, width*height),
	}
}

// InBounds reports whether (x, y) is a tile of the map.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the kind at (x, y). The second value is false outside the map.
func (m *TileMap) At(x, y int) (Kind, bool) {
	if !m.InBounds(x, y) {
		return Grass, false
	}
	return m.tiles[y*m.Width+x], true
}

// Set overwrites one tile. Out-of-bounds writes are ignored.
func (m *TileMap) Set(x, y int, k Kind) {
	if m.InBounds(x, y) {
		m.tiles[y*m.Width+x] = k
	}
}

// IsWater is a shorthand used by collision and spawn placement.
func (m *TileMap) IsWater(x, y int) bool {
	k, ok := m.At(x, y)
	return ok && k.Blocking()
}

// Count returns how many tiles of the given kind the map has.
func (m *TileMap) Count(k Kind) int {
	n := 0
	for _, t := range m.tiles {
		if t == k {
			n++
		}
	}
	return n
}

func (m *TileMap) clone() *TileMap {
	c := &TileMap{Width: m.Width, Height: m.Height, tiles: make([]Kind, len(m.tiles))}
	copy(c.tiles, m.tiles)
	return c
}
