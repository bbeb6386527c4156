// pkg/render/tiles.go
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"go-iso-arena/internal/utils"
	"go-iso-arena/pkg/iso"
	"go-iso-arena/pkg/terrain"
)

const speckles = 14

// TileTextures хранит по одной предрендеренной текстуре на тип тайла.
// Текстура: ромб TileSize × TileSize/2, верхний угол в (TileSize/2, 0).
type TileTextures struct {
	images map[terrain.Kind]*ebiten.Image
}

// NewTileTextures paints every kind once. The speckle layout depends only on seed.
func NewTileTextures(p *Painter, seed int64) *TileTextures {
	rng := utils.NewPRNGService(seed)
	w, h := iso.TileSize, iso.TileSize/2
	t := &TileTextures{images: make(map[terrain.Kind]*ebiten.Image, len(terrain.Kinds))}
	for _, kind := range terrain.Kinds {
		pal := TilePalette[kind]
		img := ebiten.NewImage(int(w), int(h)+1)
		p.Fill(img, DiamondPath(w/2, 0, w, h), pal.Base, 1)

		var geo ebiten.GeoM
		for _, pt := range SpecklePoints(rng, speckles) {
			x, y := pt[0]*w, pt[1]*h
			r := 1 + rng.Float64()*1.5
			if kind == terrain.Water {
				p.Ellipse(img, geo, x, y, r*2.5, r*0.6, pal.Speckle, 0.6)
				continue
			}
			p.Ellipse(img, geo, x, y, r, r*0.6, pal.Speckle, 0.8)
		}
		p.Stroke(img, DiamondPath(w/2, 0, w, h), 1, pal.Edge, 0.5)
		t.images[kind] = img
	}
	return t
}

// Image returns the texture for a kind, or nil for an unknown kind.
func (t *TileTextures) Image(k terrain.Kind) *ebiten.Image {
	return t.images[k]
}

// SpecklePoints returns n points inside the unit diamond in texture space:
// x in [0,1] across, y in [0,1] down.
func SpecklePoints(rng *utils.PRNGService, n int) [][2]float64 {
	out := make([][2]float64, 0, n)
	for len(out) < n {
		x, y := rng.Float64(), rng.Float64()
		if math.Abs(x-0.5)*2+math.Abs(y-0.5)*2 > 0.85 {
			continue
		}
		out = append(out, [2]float64{x, y})
	}
	return out
}

// TileRange is the half-open window of tiles around the player worth drawing.
type TileRange struct {
	MinX, MaxX, MinY, MaxY int
}

// ViewWindow clips the ±viewRange square around (px, py) to the map.
func ViewWindow(px, py float64, viewRange, width, height int) TileRange {
	cx, cy := int(math.Floor(px)), int(math.Floor(py))
	return TileRange{
		MinX: max(0, cx-viewRange),
		MaxX: min(width, cx+viewRange),
		MinY: max(0, cy-viewRange),
		MaxY: min(height, cy+viewRange),
	}
}
