// internal/ui/player_stats_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
)

// PlayerStatsIndicator отображает полосы здоровья и маны.
type PlayerStatsIndicator struct {
	X, Y float32
}

func NewPlayerStatsIndicator(x, y float32) *PlayerStatsIndicator {
	return &PlayerStatsIndicator{X: x, Y: y}
}

// Fraction returns value/max clamped to [0, 1]; 0 when max is not positive.
func Fraction(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, value/max))
}

// Draw рисует HP и MP с подписями.
func (i *PlayerStatsIndicator) Draw(screen *ebiten.Image, face font.Face, s component.Stats) {
	i.bar(screen, face, i.Y, Fraction(s.HP, s.MaxHP), config.HPBarFill,
		fmt.Sprintf("HP %d/%d", int(math.Ceil(s.HP)), int(s.MaxHP)))
	i.bar(screen, face, i.Y+config.StatBarHeight+6, Fraction(s.MP, s.MaxMP), config.MPBarFill,
		fmt.Sprintf("MP %d/%d", int(s.MP), int(s.MaxMP)))
}

func (i *PlayerStatsIndicator) bar(screen *ebiten.Image, face font.Face, y float32, frac float64, fill color.RGBA, label string) {
	vector.DrawFilledRect(screen, i.X, y, config.StatBarWidth, config.StatBarHeight, config.BarBackColor, true)
	if w := float32(float64(config.StatBarWidth-borderWidth*2) * frac); w > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, y+borderWidth, w, config.StatBarHeight-borderWidth*2, fill, true)
	}
	vector.StrokeRect(screen, i.X, y, config.StatBarWidth, config.StatBarHeight, borderWidth, borderColor, true)
	drawText(screen, face, label, float64(i.X)+6, float64(y), 1, config.TextLightColor)
}
