// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-iso-arena/pkg/render"
)

// PauseButton рисует "паузу" двумя полосами и "play" треугольником.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// clickScale is the short bounce after a click.
func clickScale(last time.Time) float32 {
	if last.IsZero() {
		return 1
	}
	elapsed := time.Since(last).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func (b *PauseButton) Draw(screen *ebiten.Image, p *render.Painter) {
	size := float64(b.Size * clickScale(b.LastClickTime))
	x, y := float64(b.X), float64(b.Y)
	var geo ebiten.GeoM
	if b.IsPaused {
		// Треугольник (play)
		path := render.PolygonPath(geo, x-size, y-size*1.2, x-size, y+size*1.2, x+size, y)
		p.Fill(screen, path, b.PlayColor, 1)
		p.Stroke(screen, path, 1, color.RGBA{255, 255, 255, 255}, 1)
		return
	}
	// Две полосы (pause)
	width := float32(size * 0.6)
	height := float32(size * 2.0)
	spacing := float32(size * 0.4)
	left := b.X - width - spacing/2
	right := b.X + spacing/2
	top := b.Y - height/2
	vector.DrawFilledRect(screen, left, top, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, left, top, width, height, 1, color.White, true)
	vector.DrawFilledRect(screen, right, top, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, right, top, width, height, 1, color.White, true)
}

// IsClicked uses a circular hit area.
func (b *PauseButton) IsClicked(mx, my int) bool {
	return inCircle(mx, my, b.X, b.Y, b.Size*1.3)
}

func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

func inCircle(mx, my int, cx, cy, r float32) bool {
	dx, dy := float32(mx)-cx, float32(my)-cy
	return dx*dx+dy*dy <= r*r
}
