// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
)

// PlayerLevelIndicator отображает уровень, опыт, золото и руны.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	levelBoxSize = 28
	levelBoxGap  = 8
	borderWidth  = 1
)

var borderColor = color.White

func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, face font.Face, s component.Stats) {
	// 1. Квадрат уровня
	vector.DrawFilledRect(screen, i.X, i.Y, levelBoxSize, levelBoxSize, config.PanelColor, true)
	vector.StrokeRect(screen, i.X, i.Y, levelBoxSize, levelBoxSize, borderWidth, borderColor, true)
	drawCentered(screen, face, fmt.Sprint(s.Level), float64(i.X)+levelBoxSize/2, float64(i.Y)+7, 1, config.TextLightColor)

	// 2. Полоса опыта справа от уровня
	barX := i.X + levelBoxSize + levelBoxGap
	barW := float32(config.StatBarWidth - levelBoxSize - levelBoxGap)
	barH := float32(config.StatBarHeight / 2)
	vector.DrawFilledRect(screen, barX, i.Y, barW, barH, config.BarBackColor, true)
	if w := float32(Fraction(float64(s.XP), float64(s.MaxXP))) * (barW - borderWidth*2); w > 0 {
		vector.DrawFilledRect(screen, barX+borderWidth, i.Y+borderWidth, w, barH-borderWidth*2, config.XPBarFill, true)
	}
	vector.StrokeRect(screen, barX, i.Y, barW, barH, borderWidth, borderColor, true)

	// 3. Валюта под полосой
	drawText(screen, face, fmt.Sprintf("%dg  %d runes", s.Gold, s.Runes), float64(barX), float64(i.Y+barH)+2, 1, config.XPBarFill)
}
