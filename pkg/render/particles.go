// pkg/render/particles.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/pkg/iso"
)

var (
	fireOuter = color.RGBA{249, 115, 22, 255}
	fireInner = color.RGBA{254, 240, 138, 255}
)

const projectileLift = 20.0

// drawParticles draws every live particle, faded by remaining life.
func (r *Renderer) drawParticles(dst *ebiten.Image, cam *iso.Camera, particles []component.Particle) {
	var geo ebiten.GeoM
	for i := range particles {
		p := &particles[i]
		sx, sy := cam.Project(p.Pos.X, p.Pos.Y)
		sy -= p.Z
		if !cam.Visible(sx, sy, config.CullMargin) {
			continue
		}
		alpha := p.Fade()
		switch p.Kind {
		case component.Text:
			drawLabel(dst, r.face, p.Text, sx, sy, p.Color, alpha)
		case component.Shockwave:
			r.painter.EllipseOutline(dst, geo, sx, sy, p.Size*20, p.Size*10, 2, p.Color, alpha)
		default:
			r.painter.Ellipse(dst, geo, sx, sy, p.Size, p.Size, p.Color, alpha)
		}
	}
}

func (r *Renderer) drawProjectiles(dst *ebiten.Image, cam *iso.Camera, projectiles []*component.Projectile) {
	var geo ebiten.GeoM
	for _, p := range projectiles {
		if p.Removed {
			continue
		}
		sx, sy := cam.Project(p.Pos.X, p.Pos.Y)
		if !cam.Visible(sx, sy, config.CullMargin) {
			continue
		}
		r.painter.Ellipse(dst, geo, sx, sy, 8, 4, config.ShadowColor, 1)
		pulse := 1 + 0.15*math.Sin(r.clock*20)
		r.painter.Ellipse(dst, geo, sx, sy-projectileLift, 10*pulse, 10*pulse, fireOuter, 0.5)
		r.painter.Ellipse(dst, geo, sx, sy-projectileLift, 6, 6, fireOuter, 1)
		r.painter.Ellipse(dst, geo, sx, sy-projectileLift, 3, 3, fireInner, 1)
	}
}

// drawLabel centres s horizontally on x with its baseline at y.
func drawLabel(dst *ebiten.Image, face font.Face, s string, x, y float64, c color.RGBA, alpha float64) {
	if s == "" || alpha <= 0 {
		return
	}
	w := len(s) * config.TextCharWidth
	text.Draw(dst, s, face, int(x)-w/2, int(y)+config.TextOffsetY, withAlpha(c, alpha))
}

// withAlpha converts to a straight-alpha colour scaled by alpha.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}

// DefaultFace is the bitmap face used for world and HUD text.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}
