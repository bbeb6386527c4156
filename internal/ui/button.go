// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-iso-arena/internal/config"
)

// Button представляет собой кликабельную кнопку в меню.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonActive,
	}
}

// Contains проверяет, находится ли точка над кнопкой.
func (b *Button) Contains(mx, my int) bool {
	return image.Pt(mx, my).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, mx, my int) {
	bg := b.BgColor
	if b.Contains(mx, my) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextDarkColor, true)
	drawCentered(screen, face, b.Text, float64(x+w/2), float64(y+h/2)-7, 1, b.TextColor)
}
