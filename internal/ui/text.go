// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-iso-arena/internal/config"
)

const faceAscent = 11 // basicfont 7x13

// TextWidth returns the pixel width of s in the bitmap face at scale.
func TextWidth(s string, scale float64) float64 {
	return float64(len(s)*config.TextCharWidth) * scale
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, face font.Face, s string, x, y, scale float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, faceAscent)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(dst, s, face, op)
}

// drawCentered centres s horizontally on x.
func drawCentered(dst *ebiten.Image, face font.Face, s string, x, y, scale float64, c color.Color) {
	drawText(dst, face, s, x-TextWidth(s, scale)/2, y, scale, c)
}

// drawOutlined draws s with a one-pixel outline, centred on x.
func drawOutlined(dst *ebiten.Image, face font.Face, s string, x, y, scale float64, c, outline color.Color, thickness int) {
	for oy := -thickness; oy <= thickness; oy++ {
		for ox := -thickness; ox <= thickness; ox++ {
			if ox == 0 && oy == 0 {
				continue
			}
			drawCentered(dst, face, s, x+float64(ox), y+float64(oy), scale, outline)
		}
	}
	drawCentered(dst, face, s, x, y, scale, c)
}
