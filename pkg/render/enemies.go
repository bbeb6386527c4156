// pkg/render/enemies.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/defs"
)

const (
	minionScale = 1.4
	bossScale   = 3.2
	bossLift    = -20.0
	deathSink   = 20.0
)

var (
	white    = color.RGBA{255, 255, 255, 255}
	black    = color.RGBA{0, 0, 0, 255}
	legColor = color.RGBA{17, 17, 17, 255}
	redEye   = color.RGBA{239, 68, 68, 255}
	goldEye  = color.RGBA{250, 204, 21, 255}
)

// enemyLook is the per-draw state shared by every strategy.
type enemyLook struct {
	pal   defs.Palette
	theme defs.BossTheme
	alpha float64
	flash float64 // 0..1, белая вспышка после удара
	dead  bool
	reach bool // враг вплотную к герою
	clock float64
	seed  float64 // сдвиг фазы анимации
}

// tint applies the death silhouette and the hit flash.
func (l enemyLook) tint(c color.RGBA) color.RGBA {
	if l.dead {
		return black
	}
	return Mix(c, white, l.flash)
}

type enemyDrawer func(r *Renderer, dst *ebiten.Image, geo ebiten.GeoM, e *component.Enemy, l enemyLook)

// Таблицы стратегий отрисовки: по типу миньона и по архетипу босса.
var minionDrawers = map[component.EnemyType]enemyDrawer{
	component.Zombie:   drawBrute,
	component.Goblin:   drawBrute,
	component.Skeleton: drawSkeleton,
	component.Ghost:    drawGhost,
}

var bossDrawers = [4]enemyDrawer{
	component.Rex:    drawRex,
	component.Lich:   drawLich,
	component.Wraith: drawWraith,
	component.Drake:  drawDrake,
}

// enemyDrawerFor picks the strategy for an enemy. Unknown types fall back to the brute.
func enemyDrawerFor(e *component.Enemy) enemyDrawer {
	if e.IsBoss() {
		return bossDrawers[component.ArchetypeForWave(e.Wave)]
	}
	if d, ok := minionDrawers[e.Type]; ok {
		return d
	}
	return drawBrute
}

func (r *Renderer) drawEnemy(dst *ebiten.Image, x, y float64, e *component.Enemy, l enemyLook) {
	if l.alpha <= 0 {
		return
	}
	if l.dead {
		y += (1 - e.DeathAnim) * deathSink
	}
	var geo ebiten.GeoM
	if e.IsBoss() {
		geo.Translate(0, bossLift)
		geo.Scale(bossScale, bossScale)
	} else {
		geo.Scale(minionScale, minionScale)
	}
	geo.Translate(x, y)
	enemyDrawerFor(e)(r, dst, geo, e, l)
}

// drawBrute covers zombies and goblins: block body, square head, stiff arms.
func drawBrute(r *Renderer, dst *ebiten.Image, geo ebiten.GeoM, e *component.Enemy, l enemyLook) {
	pp, a := r.painter, l.alpha
	bob := math.Sin(l.clock*10+l.seed) * 2
	pp.Rect(dst, geo, -8, -15+bob, 16, 15, l.tint(l.pal.Dark), a)
	pp.Rect(dst, geo, -6, -25+bob, 12, 10, l.tint(l.pal.Skin), a)
	pp.Rect(dst, geo, -7, bob, 5, 10, l.tint(legColor), a)
	pp.Rect(dst, geo, 2, bob, 5, 10, l.tint(legColor), a)
	if l.reach {
		pp.Line(dst, geo, -8, -13+bob, -15, -5+bob, 3, l.tint(l.pal.Skin), a)
		pp.Line(dst, geo, 8, -13+bob, 15, -5+bob, 3, l.tint(l.pal.Skin), a)
	} else {
		pp.Rect(dst, geo, -11, -13+bob, 3, 10, l.tint(l.pal.Skin), a)
		pp.Rect(dst, geo, 8, -13+bob, 3, 10, l.tint(l.pal.Skin), a)
	}
	eye := goldEye
	if e.Type == component.Zombie {
		eye = redEye
	}
	pp.Rect(dst, geo, -3, -22+bob, 2, 2, l.tint(eye), a)
	pp.Rect(dst, geo, 2, -22+bob, 2, 2, l.tint(eye), a)
}

func drawSkeleton(r *Renderer, dst *ebiten.Image, geo ebiten.GeoM, e *component.Enemy, l enemyLook) {
	pp, a := r.painter, l.alpha
	bob := math.Sin(l.clock*10+l.seed) * 2
	bone := l.tint(l.pal.Skin)
	pp.Rect(dst, geo, -6, -25+bob, 12, 10, bone, a)
	pp.Rect(dst, geo, -2, -15+bob, 4, 10, bone, a)
	pp.Rect(dst, geo, -8, -15+bob, 16, 4, bone, a)
	pp.Line(dst, geo, -3, -5+bob, -5, 10, 2, l.tint(l.pal.Dark), a)
	pp.Line(dst, geo, 3, -5+bob, 5, 10, 2, l.tint(l.pal.Dark), a)
	pp.Line(dst, geo, -8, -13+bob, -12, 0, 2, bone, a)
	pp.Line(dst, geo, 8, -13+bob, 12, 0, 2, bone, a)
	pp.Rect(dst, geo, -4, -22+bob, 2, 2, black, a)
	pp.Rect(dst, geo, 2, -22+bob, 2, 2, black, a)
}

func drawGhost(r *Renderer, dst *ebiten.Image, geo ebiten.GeoM, e *component.Enemy, l enemyLook) {
	pp, a := r.painter, l.alpha
	hover := math.Sin(l.clock*4+l.seed) * 3
	pp.Polygon(dst, geo, l.tint(l.pal.Skin), a*0.9,
		-10, -20+hover, -6, -28+hover, 0, -30+hover, 6, -28+hover, 10, -20+hover,
		10, -5+hover, -10, -5+hover)
	pp.Polygon(dst, geo, l.tint(l.pal.Dark), a*0.5,
		-10, -5+hover, 10, -5+hover, 10, 10+hover, 5, hover, 0, 10+hover, -5, hover, -10, 10+hover)
	pp.Ellipse(dst, geo, -3, -15+hover, 1.5, 1.5, l.tint(l.pal.Detail), a)
	pp.Ellipse(dst, geo, 3, -15+hover, 1.5, 1.5, l.tint(l.pal.Detail), a)
}

// Breath phases: 0..2 charge, 2..3 blast.
func breathCharge(e *component.Enemy) float64 {
	if e.Breath > 0 && e.Breath < 2 {
		return e.Breath / 2
	}
	return 0
}

func breathBlasting(e *component.Enemy) bool {
	return e.Breath >= 2 && e.Breath < 3
}

// drawBreath draws the charge glow at the mouth and the blast cone.
func drawBreath(r *Renderer, dst *ebiten.Image, geo ebiten.GeoM, e *component.Enemy, l enemyLook, mx, my float64) {
	if l.dead {
		return
	}
	glow := l.theme.Glow
	if c := breathCharge(e); c > 0 {
		r.painter.Ellipse(dst, geo, mx, my, 2+c*6, 2+c*6, glow, l.alpha*(0.3+c*0.6))
	}
	if breathBlasting(e) {
		f := e.Breath - 2
		r.painter.Polygon(dst, geo, glow, l.alpha*(1-f)*0.7, mx, my-2, mx+30+f*20, my-14, mx+30+f*20, my+14, mx, my+2)
	}
}

func drawRex(r *Renderer, dst *ebiten.Image, geo ebiten.GeoM, e *component.Enemy, l enemyLook) {
	pp, a := r.painter, l.alpha
	step := math.Sin(l.clock * 5)
	bob := math.Abs(step) * 2
	wag := math.Sin(l.clock*3) * 0.2

	tail := Pivot(geo, -15, -15+bob, wag)
	pp.Polygon(dst, tail, l.tint(l.pal.Skin), a, -15, -15+bob, -35, -10+bob, -55, -20+bob, -35, -30+bob)

	pp.Ellipse(dst, geo, 0, bob, 25, 18, l.tint(l.pal.Skin), a)
	pp.Polygon(dst, geo, l.tint(l.pal.Detail), a, -5, -15+bob, -2, 10+bob, 2, -15+bob)
	pp.Polygon(dst, geo, l.tint(l.pal.Dark), a, -5, 15+bob, -10, 30+bob, 0, 30+bob)
	pp.Polygon(dst, geo, l.tint(l.pal.Dark), a, 10, 15+bob, 5, 30+bob, 15, 30+bob)

	head := Pivot(geo, 15, -15+bob, math.Sin(l.clock*5)*0.1)
	pp.Polygon(dst, head, l.tint(l.pal.Skin), a, 10, -10+bob, 40, -10+bob, 35, -30+bob, 10, -25+bob)
	pp.Polygon(dst, head, l.tint(l.pal.Dark), a, 15, -10+bob, 35, -10+bob, 30, -5+bob, 15, -7+bob)
	pp.Ellipse(dst, head, 25, -20+bob, 2, 2, l.tint(l.theme.Glow), a)
	pp.Line(dst, geo, 10, -5+bob, 15, math.Sin(l.clock*20)*3+bob, 2, l.tint(l.pal.Skin), a)
	drawBreath(r, dst, head, e, l, 40, -12+bob)
}

func drawLich(r *Renderer, dst *ebiten.Image, geo ebiten.GeoM, e *component.Enemy, l enemyLook) {
	pp, a := r.painter, l.alpha
	bob := math.Sin(l.clock*5) * 5
	pp.Polygon(dst, geo, l.tint(l.pal.Dark), a, -15, 20+bob, 15, 20+bob, 10, -20+bob, -10, -20+bob)
	pp.Rect(dst, geo, -10, -2+bob, 20, 3, l.tint(l.pal.Accent), a)
	pp.Ellipse(dst, geo, 0, -25+bob, 8, 8, l.tint(l.pal.Skin), a)
	pp.Ellipse(dst, geo, -3, -25+bob, 2, 2, l.tint(l.theme.Glow), a)
	pp.Ellipse(dst, geo, 3, -25+bob, 2, 2, l.tint(l.theme.Glow), a)
	pp.Polygon(dst, geo, l.tint(l.pal.Detail), a, -8, -30+bob, -6, -38+bob, -3, -33+bob, 0, -40+bob, 3, -33+bob, 6, -38+bob, 8, -30+bob)
	drawBreath(r, dst, geo, e, l, 8, -22+bob)
}

func drawWraith(r *Renderer, dst *ebiten.Image, geo ebiten.GeoM, e *component.Enemy, l enemyLook) {
	pp, a := r.painter, l.alpha
	bob := math.Sin(l.clock*10) * 5
	pp.Polygon(dst, geo, l.tint(l.pal.Dark), a*0.9, -20, -30+bob, -10, -40+bob, 0, -42+bob, 10, -40+bob, 20, -30+bob, 10, 30+bob, 0, 10+bob, -10, 30+bob)
	pp.Polygon(dst, geo, l.tint(l.pal.Skin), a*0.6, -12, -28+bob, 12, -28+bob, 6, 0+bob, -6, 0+bob)
	pp.Ellipse(dst, geo, -5, -20+bob, 6, 6, l.theme.Glow, a*0.25)
	pp.Ellipse(dst, geo, 5, -20+bob, 6, 6, l.theme.Glow, a*0.25)
	pp.Ellipse(dst, geo, -5, -20+bob, 3, 3, l.tint(l.theme.Glow), a)
	pp.Ellipse(dst, geo, 5, -20+bob, 3, 3, l.tint(l.theme.Glow), a)
	pp.Line(dst, geo, 18, -20+bob, 26, 25+bob, 1.5, l.tint(l.pal.Detail), a)
	pp.Polygon(dst, geo, l.tint(l.pal.Accent), a, 26, -22+bob, 40, -18+bob, 26, -16+bob)
	drawBreath(r, dst, geo, e, l, 10, -18+bob)
}

func drawDrake(r *Renderer, dst *ebiten.Image, geo ebiten.GeoM, e *component.Enemy, l enemyLook) {
	pp, a := r.painter, l.alpha
	flap := math.Sin(l.clock*6) * 6
	pp.Polygon(dst, geo, l.tint(l.pal.Dark), a, -10, -10, -40, -30-flap, -20, 0)
	pp.Polygon(dst, geo, l.tint(l.pal.Dark), a, 10, -10, 40, -30-flap, 20, 0)
	pp.Ellipse(dst, geo, 0, 0, 30, 15, l.tint(l.pal.Skin), a)
	pp.Ellipse(dst, geo, 0, 4, 18, 7, l.tint(l.pal.Accent), a*0.7)
	pp.Polygon(dst, geo, l.tint(l.pal.Skin), a, 15, -5, 25, -18, 35, -25, 45, -20, 35, -5)
	pp.Ellipse(dst, geo, 38, -21, 1.5, 1.5, l.tint(l.theme.Glow), a)
	drawBreath(r, dst, geo, e, l, 45, -20)
}
