// internal/component/projectile.go
package component

// Projectile представляет летящий огненный шар.
type Projectile struct {
	ID      EntityID
	Pos     Position
	Vel     Velocity
	Life    float64 // оставшееся время жизни, секунды
	Damage  float64
	Removed bool
}
