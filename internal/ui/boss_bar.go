// internal/ui/boss_bar.go
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
	"go-iso-arena/internal/defs"
)

var glint = color.RGBA{51, 51, 51, 51}

// BossBar показывает имя и здоровье живого босса по центру сверху.
type BossBar struct {
	ScreenW float64
}

func NewBossBar(screenW float64) *BossBar {
	return &BossBar{ScreenW: screenW}
}

// Width is the bar width: 60% of the screen, at most BossBarMaxW.
func (b *BossBar) Width() float64 {
	return math.Min(config.BossBarMaxW, b.ScreenW*0.6)
}

// Draw does nothing when boss is nil.
func (b *BossBar) Draw(screen *ebiten.Image, face font.Face, boss *component.Enemy) {
	if boss == nil {
		return
	}
	theme := defs.BossThemeForWave(boss.Wave)
	w := b.Width()
	x := (b.ScreenW - w) / 2
	y := float64(config.BossBarY)
	h := float64(config.BossBarHeight)

	drawOutlined(screen, face, theme.Name, b.ScreenW/2, y-20, 1, theme.Glow, theme.Aura, 1)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), config.BossBarBack, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, theme.Palette.Dark, true)

	fill := float32((w - 4) * Fraction(boss.HP, boss.MaxHP))
	if fill > 0 {
		vector.DrawFilledRect(screen, float32(x+2), float32(y+2), fill, float32(h-4), theme.Glow, true)
		vector.DrawFilledRect(screen, float32(x+2), float32(y+2), fill, float32(h-4)/2, glint, true)
	}
	drawCentered(screen, face, fmt.Sprintf("%d / %d", int(math.Ceil(boss.HP)), int(boss.MaxHP)),
		b.ScreenW/2, y+5, 1, config.TextLightColor)
}
