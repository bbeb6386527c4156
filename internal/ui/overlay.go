// internal/ui/overlay.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-iso-arena/internal/config"
)

var dimColor = color.RGBA{0, 0, 0, 128}

// DrawOverlay затемняет экран и пишет заголовок с подзаголовком по центру.
func DrawOverlay(screen *ebiten.Image, face font.Face, title, subtitle string, titleColor color.Color) {
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), dimColor, false)
	drawCentered(screen, face, title, w/2, h/2-40, 4, titleColor)
	if subtitle != "" {
		drawCentered(screen, face, subtitle, w/2, h/2+20, 1.5, config.TextLightColor)
	}
}
