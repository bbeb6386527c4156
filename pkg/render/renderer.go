// pkg/render/renderer.go
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-iso-arena/internal/app"
	"go-iso-arena/internal/assets"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/defs"
	"go-iso-arena/internal/utils"
	"go-iso-arena/pkg/iso"
)

const (
	heroShadowSize  = 25.0
	heroShadowShift = 6.0
	shadowFlatten   = 0.4
	reachRadius     = 1.5
)

// Renderer рисует мир: тайлы, сущности по глубине, снаряды и частицы.
// HUD рисует пакет ui поверх. Таймеры анимаций живут только здесь.
type Renderer struct {
	painter *Painter
	tiles   *TileTextures
	sprites *assets.SpriteSet
	camera  *iso.Camera
	face    font.Face
	jitter  *utils.PRNGService

	clock      float64
	nextBlink  float64
	blinkUntil float64
	list       []Drawable
}

// NewRenderer builds tile textures once. sprites may be nil, the hero is then procedural.
func NewRenderer(sprites *assets.SpriteSet, seed int64) *Renderer {
	p := NewPainter()
	r := &Renderer{
		painter: p,
		tiles:   NewTileTextures(p, seed),
		sprites: sprites,
		camera:  iso.NewCamera(config.ScreenWidth, config.ScreenHeight),
		face:    DefaultFace(),
		jitter:  utils.NewPRNGService(seed + 1),
	}
	r.nextBlink = r.blinkPeriod()
	return r
}

// Painter exposes the shared vector painter to HUD widgets.
func (r *Renderer) Painter() *Painter {
	return r.painter
}

// Face returns the text face.
func (r *Renderer) Face() font.Face {
	return r.face
}

// Advance moves the render clock. It runs even while the simulation is paused.
func (r *Renderer) Advance(dt float64) {
	r.clock += dt
	if r.clock >= r.nextBlink {
		r.blinkUntil = r.clock + config.BlinkDuration
		r.nextBlink = r.clock + r.blinkPeriod()
	}
}

func (r *Renderer) blinkPeriod() float64 {
	return r.jitter.Range(config.BlinkMinPeriod, config.BlinkMaxPeriod)
}

// Draw renders the world of g onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, g *app.Game) {
	w := g.World
	p := w.Player
	screen.Fill(config.BackgroundColor)
	r.camera.Follow(p.Pos.X, p.Pos.Y, g.VisualEffectSystem.Shake(), r.jitter.Float64)

	r.drawTerrain(screen, g)

	r.list = r.list[:0]
	r.list = append(r.list, Drawable{X: p.Pos.X, Y: p.Pos.Y, Index: -1})
	for i, e := range w.Enemies {
		if e.Removed {
			continue
		}
		r.list = append(r.list, Drawable{X: e.Pos.X, Y: e.Pos.Y, Index: i})
	}
	SortByDepth(r.list)

	stats := g.Ledger.Stats()
	for _, d := range r.list {
		sx, sy := r.camera.Project(d.X, d.Y)
		if !r.camera.Visible(sx, sy, config.CullMargin*2) {
			continue
		}
		if d.Index < 0 {
			r.drawShadow(screen, sx, sy, heroShadowSize, heroShadowShift)
			alpha := 1.0
			if BlinkHidden(p.IFrame, r.clock) {
				alpha = 0.5
			}
			r.drawHero(screen, sx, sy, p, heroLook{
				pose:    HeroPose(r.clock, p.Moving, p.AttackAnim, p.SpinAnim),
				alpha:   alpha,
				blink:   r.clock < r.blinkUntil,
				weapon:  stats.WeaponName,
				clock:   r.clock,
				sprites: r.sprites,
			})
			continue
		}
		e := w.Enemies[d.Index]
		if !e.Dead {
			def := defs.EnemyDefs[e.Type]
			r.drawShadow(screen, sx, sy, def.ShadowSize, def.ShadowShift)
		}
		alpha := 1.0
		if e.Dead {
			alpha = e.DeathAnim
		}
		r.drawEnemy(screen, sx, sy, e, enemyLook{
			pal:   defs.EnemyPalette(e.Type, e.Wave),
			theme: defs.BossThemeForWave(e.Wave),
			alpha: alpha,
			flash: HitFlash(e.Hit, e.LastHit, w.GameTime, config.HitFlashTime),
			dead:  e.Dead,
			reach: p.Pos.Dist(e.Pos) < reachRadius,
			clock: r.clock,
			seed:  e.Pos.X,
		})
	}

	r.drawProjectiles(screen, r.camera, w.Projectiles)
	r.drawParticles(screen, r.camera, g.VisualEffectSystem.Particles())
}

// drawTerrain draws the tiles within view range that land on screen.
func (r *Renderer) drawTerrain(screen *ebiten.Image, g *app.Game) {
	m := g.World.Map
	p := g.World.Player
	win := ViewWindow(p.Pos.X, p.Pos.Y, config.ViewRange, m.Width, m.Height)
	for x := win.MinX; x < win.MaxX; x++ {
		for y := win.MinY; y < win.MaxY; y++ {
			kind, ok := m.At(x, y)
			if !ok {
				continue
			}
			sx, sy := r.camera.Project(float64(x), float64(y))
			if !r.camera.Visible(sx, sy, config.CullMargin) {
				continue
			}
			img := r.tiles.Image(kind)
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(math.Round(sx-iso.TileSize/2), math.Round(sy))
			screen.DrawImage(img, op)
		}
	}
}

func (r *Renderer) drawShadow(screen *ebiten.Image, x, y, size, shift float64) {
	var geo ebiten.GeoM
	cx, cy, rx, ry := ShadowEllipse(x, y, size, shift)
	r.painter.Ellipse(screen, geo, cx, cy, rx, ry, config.ShadowColor, 1)
}

// ShadowEllipse returns centre and radii of a ground shadow under (x, y).
func ShadowEllipse(x, y, size, shift float64) (cx, cy, rx, ry float64) {
	return x, y + shift, size, size * shadowFlatten
}
