// pkg/render/color.go
package render

import (
	"image/color"

	"go-iso-arena/pkg/terrain"
)

// TileColors holds the base colour and the speckle colour of each tile kind.
type TileColors struct {
	Base    color.RGBA
	Speckle color.RGBA
	Edge    color.RGBA
}

// TilePalette is indexed by terrain.Kind.
var TilePalette = map[terrain.Kind]TileColors{
	terrain.Grass: {Base: color.RGBA{22, 101, 52, 255}, Speckle: color.RGBA{34, 139, 70, 255}, Edge: color.RGBA{20, 83, 45, 255}},
	terrain.Dirt:  {Base: color.RGBA{120, 83, 48, 255}, Speckle: color.RGBA{146, 104, 64, 255}, Edge: color.RGBA{92, 64, 38, 255}},
	terrain.Water: {Base: color.RGBA{29, 78, 216, 255}, Speckle: color.RGBA{96, 165, 250, 255}, Edge: color.RGBA{30, 58, 138, 255}},
	terrain.Stone: {Base: color.RGBA{100, 116, 139, 255}, Speckle: color.RGBA{148, 163, 184, 255}, Edge: color.RGBA{71, 85, 105, 255}},
	terrain.Sand:  {Base: color.RGBA{214, 188, 120, 255}, Speckle: color.RGBA{234, 213, 152, 255}, Edge: color.RGBA{180, 155, 96, 255}},
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return Scale(c, 0.5)
}

// Scale multiplies the RGB channels by f, keeping alpha.
func Scale(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: clampByte(float64(c.R) * f),
		G: clampByte(float64(c.G) * f),
		B: clampByte(float64(c.B) * f),
		A: c.A,
	}
}

// Mix blends a toward b by t in [0, 1].
func Mix(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return color.RGBA{
		R: clampByte(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampByte(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampByte(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: clampByte(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// Lighten adds a fixed amount to every channel, as the hex outlines did.
func Lighten(c color.RGBA, amount int) color.RGBA {
	add := func(v uint8) uint8 {
		return uint8(min(255, int(v)+amount))
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}

// IsLight reports whether dark text reads better on c.
func IsLight(c color.RGBA) bool {
	return (int(c.R)+int(c.G)+int(c.B))/3 > 128
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
