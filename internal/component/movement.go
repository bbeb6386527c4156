// internal/component/movement.go
package component

import "math"

// EntityID: стабильный идентификатор сущности в арене мира
type EntityID uint32

// Position: позиция в координатах тайлов (непрерывная)
type Position struct {
	X, Y float64
}

// Velocity: скорость в тайлах в секунду
type Velocity struct {
	X, Y float64
}

// Dist returns the distance between two positions.
func (p Position) Dist(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// DistSq returns the squared distance between two positions.
func (p Position) DistSq(o Position) float64 {
	dx, dy := o.X-p.X, o.Y-p.Y
	return dx*dx + dy*dy
}

// Add returns p moved by v scaled by dt.
func (p Position) Add(v Velocity, dt float64) Position {
	return Position{X: p.X + v.X*dt, Y: p.Y + v.Y*dt}
}
