// internal/ui/minimap.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-iso-arena/internal/config"
	"go-iso-arena/internal/defs"
	"go-iso-arena/internal/entity"
	"go-iso-arena/pkg/terrain"
)

// Minimap рисует карту сверху в правом верхнем углу: вода, камень,
// игрок и живые враги. Рельеф рендерится один раз на карту.
type Minimap struct {
	Y       float64
	ScreenW float64
	Scale   float64

	terrainImg *ebiten.Image
	source     *terrain.TileMap
}

func NewMinimap(screenW, y float64) *Minimap {
	return &Minimap{Y: y, ScreenW: screenW, Scale: config.MinimapScale}
}

// Origin returns the top-left corner for a map of the given width.
func (m *Minimap) Origin(mapW int) (float64, float64) {
	return m.ScreenW - float64(mapW)*m.Scale - config.MinimapMargin, m.Y
}

// ToMinimap maps a tile-space point into minimap pixels.
func (m *Minimap) ToMinimap(mapW int, x, y float64) (float64, float64) {
	ox, oy := m.Origin(mapW)
	return ox + x*m.Scale, oy + y*m.Scale
}

func (m *Minimap) prepare(tiles *terrain.TileMap) {
	if m.source == tiles && m.terrainImg != nil {
		return
	}
	if m.terrainImg != nil {
		m.terrainImg.Deallocate()
	}
	s := float32(m.Scale)
	img := ebiten.NewImage(int(float64(tiles.Width)*m.Scale), int(float64(tiles.Height)*m.Scale))
	img.Fill(config.MinimapBackground)
	for x := 0; x < tiles.Width; x++ {
		for y := 0; y < tiles.Height; y++ {
			k, _ := tiles.At(x, y)
			switch k {
			case terrain.Water:
				vector.DrawFilledRect(img, float32(x)*s, float32(y)*s, s, s, config.MinimapWater, false)
			case terrain.Stone:
				vector.DrawFilledRect(img, float32(x)*s, float32(y)*s, s, s, config.MinimapStone, false)
			}
		}
	}
	m.terrainImg = img
	m.source = tiles
}

// Draw рисует мини-карту. clock drives the player's pulse ring.
func (m *Minimap) Draw(screen *ebiten.Image, w *entity.World, clock float64) {
	m.prepare(w.Map)
	ox, oy := m.Origin(w.Map.Width)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(m.terrainImg, op)
	vector.StrokeRect(screen, float32(ox), float32(oy),
		float32(m.terrainImg.Bounds().Dx()), float32(m.terrainImg.Bounds().Dy()), 1, config.MinimapPlayer, true)

	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		ex, ey := m.ToMinimap(w.Map.Width, e.Pos.X, e.Pos.Y)
		if e.IsBoss() {
			vector.DrawFilledCircle(screen, float32(ex), float32(ey), 4, defs.BossThemeForWave(e.Wave).Glow, true)
			vector.DrawFilledCircle(screen, float32(ex), float32(ey), 1.5, config.TextDarkColor, true)
			continue
		}
		vector.DrawFilledRect(screen, float32(ex-1), float32(ey-1), 2, 2, config.MinimapEnemy, false)
	}

	px, py := m.ToMinimap(w.Map.Width, w.Player.Pos.X, w.Player.Pos.Y)
	vector.DrawFilledCircle(screen, float32(px), float32(py), 2.5, config.MinimapPlayer, true)
	pulse := 4 + math.Sin(clock*5)*2
	vector.StrokeCircle(screen, float32(px), float32(py), float32(pulse), 1, config.MinimapPlayer, true)
}
