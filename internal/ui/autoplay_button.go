// internal/ui/autoplay_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-iso-arena/pkg/render"
)

// AutoplayButton: двойной треугольник, цвет показывает включен ли автобой.
type AutoplayButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	On            bool
	OffColor      color.RGBA
	OnColor       color.RGBA
}

func NewAutoplayButton(x, y, size float32, offColor, onColor color.RGBA) *AutoplayButton {
	return &AutoplayButton{X: x, Y: y, Size: size, OffColor: offColor, OnColor: onColor}
}

func (b *AutoplayButton) Draw(screen *ebiten.Image, p *render.Painter) {
	size := float64(b.Size * clickScale(b.LastClickTime))
	c := b.OffColor
	if b.On {
		c = b.OnColor
	}
	height := size * 1.2
	width := size
	offset := width * 0.8
	x, y := float64(b.X), float64(b.Y)
	white := color.RGBA{255, 255, 255, 255}
	var geo ebiten.GeoM

	left := render.PolygonPath(geo, x-width, y-height/2, x, y, x-width, y+height/2)
	p.Fill(screen, left, c, 1)
	p.Stroke(screen, left, 1, white, 1)

	right := render.PolygonPath(geo, x-width+offset, y-height/2, x+offset, y, x-width+offset, y+height/2)
	p.Fill(screen, right, c, 1)
	p.Stroke(screen, right, 1, white, 1)
}

func (b *AutoplayButton) IsClicked(mx, my int) bool {
	return inCircle(mx, my, b.X, b.Y, b.Size*1.5)
}

func (b *AutoplayButton) SetOn(on bool) {
	if on != b.On {
		b.LastClickTime = time.Now()
	}
	b.On = on
}
