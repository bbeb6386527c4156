// internal/system/collision.go
package system

import (
	"math"

	"go-iso-arena/internal/component"
	"go-iso-arena/pkg/terrain"
)

// CollisionSystem answers "can an entity stand here" against the tile map.
type CollisionSystem struct {
	tiles  *terrain.TileMap
	radius float64
}

func NewCollisionSystem(tiles *terrain.TileMap, radius float64) *CollisionSystem {
	return &CollisionSystem{tiles: tiles, radius: radius}
}

// CanOccupy reports whether the point is inside the map and clear of water.
// Only water tiles whose centre lies within the collision radius block.
func (s *CollisionSystem) CanOccupy(x, y float64) bool {
	w, h := float64(s.tiles.Width), float64(s.tiles.Height)
	if x < 0 || x > w || y < 0 || y > h {
		return false
	}
	r2 := s.radius * s.radius
	bx, by := int(math.Floor(x)), int(math.Floor(y))
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			tx, ty := bx+dx, by+dy
			// соседи за краем карты не блокируют, если сама точка внутри
			if !s.tiles.IsWater(tx, ty) {
				continue
			}
			cx, cy := float64(tx)+0.5, float64(ty)+0.5
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) < r2 {
				return false
			}
		}
	}
	return true
}

// MoveAxisSplit applies the displacement (dx, dy) one axis at a time.
// When both single-axis moves are free but the diagonal is blocked, the
// axis with the larger displacement wins so the mover slides along the shore.
func (s *CollisionSystem) MoveAxisSplit(pos component.Position, dx, dy float64) component.Position {
	tx, ty := pos.X+dx, pos.Y+dy
	canX := s.CanOccupy(tx, pos.Y)
	canY := s.CanOccupy(pos.X, ty)
	if canX && canY && !s.CanOccupy(tx, ty) {
		if math.Abs(dx) > math.Abs(dy) {
			canY = false
		} else {
			canX = false
		}
	}
	if canX {
		pos.X = tx
	}
	if canY {
		pos.Y = ty
	}
	return pos
}

// Clamp keeps a position inside [0,W]×[0,H].
func (s *CollisionSystem) Clamp(pos component.Position) component.Position {
	pos.X = math.Max(0, math.Min(float64(s.tiles.Width), pos.X))
	pos.Y = math.Max(0, math.Min(float64(s.tiles.Height), pos.Y))
	return pos
}
