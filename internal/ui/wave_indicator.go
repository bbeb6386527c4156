// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-iso-arena/internal/config"
	"go-iso-arena/internal/defs"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float64
	Scale            float64
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, scale float64) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Scale:            scale,
		Color:            config.IndicatorColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 2,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	textColor := i.Color
	// каждая десятая волна подсвечивается цветом босса
	if waveNumber%10 == 0 {
		textColor = defs.BossThemeForWave(waveNumber).Glow
	}
	drawOutlined(screen, face, toRoman(waveNumber), i.X, i.Y, i.Scale, textColor, i.OutlineColor, i.OutlineThickness)
}
