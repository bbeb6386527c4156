// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/pkg/render"
)

// SkillIndicator: круглая кнопка умения с номером клавиши и затемнением
// на время перезарядки.
type SkillIndicator struct {
	X, Y          float32
	Radius        float32
	Skill         component.SkillID
	Cost          float64
	Color         color.RGBA
	LastClickTime time.Time
}

func NewSkillIndicator(x, y, radius float32, skill component.SkillID, cost float64, c color.RGBA) *SkillIndicator {
	return &SkillIndicator{X: x, Y: y, Radius: radius, Skill: skill, Cost: cost, Color: c}
}

// Cooldown returns the fraction of the cooldown still to run, in [0, 1].
func Cooldown(readyAt, now, total float64) float64 {
	if total <= 0 || now >= readyAt {
		return 0
	}
	return math.Min(1, (readyAt-now)/total)
}

// Draw рисует индикатор. cooldown: оставшаяся доля перезарядки.
func (i *SkillIndicator) Draw(screen *ebiten.Image, p *render.Painter, face font.Face, mana, cooldown float64) {
	r := i.Radius * clickScale(i.LastClickTime)
	fill := i.Color
	if mana < i.Cost {
		fill = render.DarkenColor(fill)
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, fill, true)
	if cooldown > 0 {
		// сектор перезарядки по часовой стрелке от 12 часов
		var geo ebiten.GeoM
		pts := []float64{float64(i.X), float64(i.Y)}
		steps := int(math.Max(2, 24*cooldown))
		for s := 0; s <= steps; s++ {
			a := -math.Pi/2 + 2*math.Pi*cooldown*float64(s)/float64(steps)
			pts = append(pts, float64(i.X)+math.Cos(a)*float64(r), float64(i.Y)+math.Sin(a)*float64(r))
		}
		p.Polygon(screen, geo, config.TextDarkColor, 0.7, pts...)
	}
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
	drawCentered(screen, face, fmt.Sprint(int(i.Skill)), float64(i.X), float64(i.Y)-7, 1, config.TextLightColor)
	drawCentered(screen, face, i.Skill.String(), float64(i.X), float64(i.Y+r)+4, 1, config.TextLightColor)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *SkillIndicator) IsClicked(mx, my int) bool {
	return inCircle(mx, my, i.X, i.Y, i.Radius)
}

// HandleClick запускает анимацию нажатия
func (i *SkillIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
