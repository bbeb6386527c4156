// pkg/iso/projection.go
package iso

import "math"

// TileSize is the width of one diamond tile in pixels. Its height is TileSize/2.
const TileSize = 64.0

// ToScreen projects a tile-space point to isometric pixel offsets.
func ToScreen(x, y float64) (float64, float64) {
	return (x - y) * TileSize / 2, (x + y) * TileSize / 4
}

// Depth is the sort key for painter's order. Equal to the projected Y.
func Depth(x, y float64) float64 {
	return (x + y) * TileSize / 4
}

// ScreenDirToWorld maps a screen-space input direction to a tile-space
// displacement so that pressing "up" moves the avatar up the screen.
func ScreenDirToWorld(vx, vy float64) (float64, float64) {
	return vx + 2*vy, 2*vy - vx
}

// FacingVector returns the world direction the avatar looks at for the given
// screen-space facing angle.
func FacingVector(facing float64) (float64, float64) {
	return ScreenDirToWorld(math.Cos(facing), math.Sin(facing))
}

// Camera keeps the view centred on a world point.
type Camera struct {
	ScreenW, ScreenH float64
	CenterX, CenterY float64
	ShakeX, ShakeY   float64
}

// NewCamera creates a camera for a screen of the given size.
func NewCamera(screenW, screenH float64) *Camera {
	return &Camera{ScreenW: screenW, ScreenH: screenH}
}

// Follow centres the camera on a world point. The shake offset is drawn from
// jitter in [0,1) scaled by the shake magnitude.
func (c *Camera) Follow(x, y, shake float64, jitter func() float64) {
	c.CenterX, c.CenterY = x, y
	c.ShakeX, c.ShakeY = 0, 0
	if shake > 0 && jitter != nil {
		c.ShakeX = (jitter() - 0.5) * shake
		c.ShakeY = (jitter() - 0.5) * shake
	}
}

// Project returns the on-screen position of a world point.
func (c *Camera) Project(x, y float64) (float64, float64) {
	px, py := ToScreen(x, y)
	cx, cy := ToScreen(c.CenterX, c.CenterY)
	return px - cx + c.ScreenW/2 + c.ShakeX, py - cy + c.ScreenH/2 + c.ShakeY
}

// Visible reports whether a screen point lies within the screen plus margin.
func (c *Camera) Visible(sx, sy, margin float64) bool {
	return sx >= -margin && sx <= c.ScreenW+margin && sy >= -margin && sy <= c.ScreenH+margin
}
