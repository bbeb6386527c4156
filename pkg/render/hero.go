// pkg/render/hero.go
package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"go-iso-arena/internal/assets"
	"go-iso-arena/internal/component"
)

const (
	heroWidth       = 80.0 // экранная ширина героя из PNG
	heroAnchorY     = 0.8  // ноги на 80% высоты шаблона
	heroTemplateH   = 500.0
	handTemplateX   = 470.0 / 1600
	handTemplateY   = 830.0 / 2000
	weaponPivotX    = 0.5
	weaponPivotY    = 0.9
	slashStart      = 0.2
	slashEnd        = 0.8
	slashRadius     = 90.0
	proceduralScale = 1.0
)

var (
	heroSkin   = color.RGBA{254, 205, 211, 255}
	heroHair   = color.RGBA{250, 204, 21, 255}
	heroTunic  = color.RGBA{21, 128, 61, 255}
	heroCloak  = color.RGBA{20, 83, 45, 255}
	heroBoots  = color.RGBA{69, 26, 3, 255}
	heroEye    = color.RGBA{30, 41, 59, 255}
	heroLid    = color.RGBA{180, 83, 9, 255}
	bladeColor = color.RGBA{203, 213, 225, 255}
	hiltColor  = color.RGBA{120, 53, 15, 255}
	slashCore  = color.RGBA{255, 255, 255, 255}
)

// WeaponTrail returns the slash colour for an equipped weapon name.
func WeaponTrail(weapon string) color.RGBA {
	switch {
	case strings.Contains(weapon, "Obsidian"):
		return color.RGBA{168, 85, 247, 255}
	case strings.Contains(weapon, "Inferno"):
		return color.RGBA{249, 115, 22, 255}
	case strings.Contains(weapon, "Samurai"):
		return color.RGBA{148, 163, 184, 255}
	case strings.Contains(weapon, "Damascus"):
		return color.RGBA{203, 213, 225, 255}
	case strings.Contains(weapon, "Dragon"):
		return color.RGBA{34, 197, 94, 255}
	}
	return color.RGBA{6, 182, 212, 255}
}

// heroLook collects what the hero drawing needs beyond the player component.
type heroLook struct {
	pose    Pose
	alpha   float64
	blink   bool
	weapon  string
	clock   float64
	sprites *assets.SpriteSet
}

func (r *Renderer) drawHero(dst *ebiten.Image, x, y float64, p *component.Player, look heroLook) {
	if look.sprites != nil && !look.sprites.Procedural && look.sprites.Part(assets.PartBody) != nil {
		r.drawHeroSprites(dst, x, y, p, look)
	} else {
		r.drawHeroProcedural(dst, x, y, p, look)
	}
	if p.SpinAnim > 0 {
		var geo ebiten.GeoM
		r.painter.EllipseOutline(dst, geo, x, y, 70*(1.2-p.SpinAnim*0.2), 35*(1.2-p.SpinAnim*0.2), 3,
			WeaponTrail(look.weapon), p.SpinAnim)
	}
	r.drawSlash(dst, x, y, p, look.weapon)
}

// drawHeroSprites composes the PNG paper-doll, back to front.
func (r *Renderer) drawHeroSprites(dst *ebiten.Image, x, y float64, p *component.Player, look heroLook) {
	s := look.sprites
	w, h := float64(s.Width), float64(s.Height)
	scale := heroWidth / w
	base := ebiten.GeoM{}
	base.Translate(-w/2, -h*heroAnchorY)
	if p.FacingLeft {
		base.Scale(-scale, scale)
	} else {
		base.Scale(scale, scale)
	}
	base.Translate(x, y)
	bob := look.pose.BodyY * (h / heroTemplateH)

	layer := func(name string, dy float64) {
		img := s.Part(name)
		if img == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, dy)
		op.GeoM.Concat(base)
		op.ColorScale.ScaleAlpha(float32(look.alpha))
		dst.DrawImage(img, op)
	}

	layer(assets.PartCloak, bob)
	layer(assets.PartLegL, 0)
	layer(assets.PartLegR, 0)
	layer(assets.PartBody, bob)
	layer(assets.PartHead, bob)
	layer(assets.PartArmL, bob)
	if weapon := s.Part(assets.PartWeapon); weapon != nil {
		ww, wh := float64(weapon.Bounds().Dx()), float64(weapon.Bounds().Dy())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-ww*weaponPivotX, -wh*weaponPivotY)
		op.GeoM.Rotate(look.pose.Swing)
		op.GeoM.Translate(w*handTemplateX, h*handTemplateY+bob)
		op.GeoM.Concat(base)
		op.ColorScale.ScaleAlpha(float32(look.alpha))
		dst.DrawImage(weapon, op)
	}
	layer(assets.PartArmR, bob)
}

// drawHeroProcedural is the vector fallback when no sprite set is on disk.
func (r *Renderer) drawHeroProcedural(dst *ebiten.Image, x, y float64, p *component.Player, look heroLook) {
	pp := r.painter
	a := look.alpha
	geo := Local(x, y, proceduralScale, p.FacingLeft)
	by := -look.pose.BodyY * 0.4

	pp.Polygon(dst, geo, heroCloak, a, -10, -36+by, 10, -36+by, 15, -6+by, -15, -6+by)

	legL := Pivot(geo, -4, -14, look.pose.LegL)
	pp.Rect(dst, legL, -7, -14, 5, 14, heroBoots, a)
	legR := Pivot(geo, 4, -14, look.pose.LegR)
	pp.Rect(dst, legR, 2, -14, 5, 14, heroBoots, a)

	armL := Pivot(geo, -9, -31+by, look.pose.ArmL)
	pp.Rect(dst, armL, -12, -31+by, 4, 13, heroSkin, a)

	pp.Ellipse(dst, geo, 0, -23+by, 10, 12, heroTunic, a)
	pp.Rect(dst, geo, -10, -17+by, 20, 3, heroBoots, a)

	pp.Ellipse(dst, geo, 0, -42+by, 10, 10, heroSkin, a)
	pp.Polygon(dst, geo, heroHair, a, -11, -43+by, -8, -52+by, 0, -55+by, 8, -52+by, 11, -43+by, 4, -48+by, -4, -48+by)
	pp.Polygon(dst, geo, heroSkin, a, 9, -44+by, 16, -49+by, 10, -40+by)
	if look.blink {
		pp.Line(dst, geo, -5, -41+by, -2, -41+by, 1, heroLid, a)
		pp.Line(dst, geo, 2, -41+by, 5, -41+by, 1, heroLid, a)
	} else {
		pp.Ellipse(dst, geo, -3.5, -41+by, 1.6, 2, heroEye, a)
		pp.Ellipse(dst, geo, 3.5, -41+by, 1.6, 2, heroEye, a)
	}

	armR := Pivot(geo, 9, -31+by, look.pose.ArmR)
	hand := Pivot(armR, 10, -19+by, look.pose.Swing)
	r.drawBlade(dst, hand, 10, -19+by, look.weapon, a)
	pp.Rect(dst, armR, 8, -31+by, 4, 13, heroSkin, a)
}

// drawBlade draws a sword whose grip sits at (hx, hy) in local space.
func (r *Renderer) drawBlade(dst *ebiten.Image, geo ebiten.GeoM, hx, hy float64, weapon string, alpha float64) {
	blade := bladeColor
	trail := WeaponTrail(weapon)
	if weapon != "" {
		blade = Mix(bladeColor, trail, 0.35)
	}
	pp := r.painter
	pp.Rect(dst, geo, hx-1.5, hy-2, 3, 7, hiltColor, alpha)
	pp.Rect(dst, geo, hx-5, hy-3, 10, 2, DarkenColor(hiltColor), alpha)
	pp.Polygon(dst, geo, blade, alpha, hx-2.5, hy-3, hx+2.5, hy-3, hx+2, hy-28, hx, hy-33, hx-2, hy-28)
	pp.Line(dst, geo, hx, hy-5, hx, hy-28, 0.8, trail, alpha*0.8)
}

// drawSlash draws the crescent trail during the damage part of a swing.
func (r *Renderer) drawSlash(dst *ebiten.Image, x, y float64, p *component.Player, weapon string) {
	if p.AttackAnim <= slashStart || p.AttackAnim >= slashEnd {
		return
	}
	progress := (p.AttackAnim - slashStart) / (slashEnd - slashStart)
	alpha := 1 - math.Pow(progress, 3)
	start, end := -math.Pi/1.5, math.Pi/3
	angle := start + (end-start)*math.Sqrt(progress)

	var geo ebiten.GeoM
	geo.Rotate(angle)
	if p.FacingLeft {
		geo.Scale(-1, 1)
	}
	geo.Translate(x, y-30)

	pts := make([]float64, 0, 2*(2*crescentSteps+2))
	for i := 0; i <= crescentSteps; i++ {
		t := float64(i) / crescentSteps
		bx, by := bezier(t, 0, 0, slashRadius*0.5, -slashRadius*0.8, slashRadius*1.2, -slashRadius*0.2, slashRadius, 0)
		pts = append(pts, bx, by)
	}
	for i := 0; i <= crescentSteps; i++ {
		t := float64(i) / crescentSteps
		bx, by := bezier(t, slashRadius, 0, slashRadius*0.8, -slashRadius*0.1, slashRadius*0.4, -slashRadius*0.1, 0, 0)
		pts = append(pts, bx, by)
	}
	r.painter.Polygon(dst, geo, WeaponTrail(weapon), alpha*0.8, pts...)
	if progress < 0.2 {
		r.painter.Ellipse(dst, geo, 0, 0, 40*(1-progress*5), 40*(1-progress*5), slashCore, 0.8)
	}
}

const crescentSteps = 10

// bezier evaluates a cubic curve.
func bezier(t, x0, y0, x1, y1, x2, y2, x3, y3 float64) (float64, float64) {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return a*x0 + b*x1 + c*x2 + d*x3, a*y0 + b*y1 + c*y2 + d*y3
}
