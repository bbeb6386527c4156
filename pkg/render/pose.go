// pkg/render/pose.go
package render

import (
	"math"
	"sort"

	"go-iso-arena/pkg/iso"
)

// Pose: углы конечностей и подпрыгивание корпуса героя на один кадр.
type Pose struct {
	LegL, LegR float64
	ArmL, ArmR float64
	BodyY      float64
	Swing      float64 // поворот оружия
}

// HeroPose derives the hero's limbs from the render clock and the swing state.
func HeroPose(clock float64, moving bool, attackAnim, spinAnim float64) Pose {
	t := clock * 1000 / 150
	var p Pose
	if moving {
		p.LegL = math.Sin(t) * 0.5
		p.LegR = math.Sin(t+math.Pi) * 0.5
		p.ArmL = math.Sin(t+math.Pi) * 0.5
		p.ArmR = math.Sin(t) * 0.5
		p.BodyY = math.Abs(math.Sin(t*2)) * 10
	} else {
		p.BodyY = math.Sin(t*0.5) * 5
		p.ArmL = math.Sin(t*0.5)*0.05 + 0.1
		p.ArmR = math.Sin(t*0.5+1)*0.05 - 0.1
	}
	switch {
	case attackAnim > 0:
		a := math.Min(attackAnim, 1)
		ease := 1 - math.Pow(1-a, 3)
		p.ArmR = -2.5 + 3.5*ease
	case spinAnim > 0:
		p.ArmR = t * 10
	}
	p.Swing = SwingAngle(clock, attackAnim)
	return p
}

// SwingAngle is the weapon profile: wind-up, fast slash, settle.
// Without a swing the blade sways slightly.
func SwingAngle(clock, attackAnim float64) float64 {
	if attackAnim <= 0 {
		return math.Sin(clock*1000/300) * 0.05
	}
	t := math.Min(1, attackAnim)
	switch {
	case t < 0.25:
		return -1.1 * (t / 0.25)
	case t < 0.8:
		return -1.1 + (t-0.25)/0.55*2.3
	default:
		return 1.2 * (1 - (t-0.8)/0.2)
	}
}

// BlinkHidden reports whether an invulnerable hero is in the faded half of
// its 100 ms blink cycle.
func BlinkHidden(iframe, clock float64) bool {
	return iframe > 0 && int(math.Floor(clock*10))%2 == 0
}

// HitFlash returns how strongly an enemy struck at lastHit should be tinted white.
func HitFlash(hit bool, lastHit, now, window float64) float64 {
	if !hit || window <= 0 {
		return 0
	}
	age := now - lastHit
	if age < 0 || age >= window {
		return 0
	}
	return 1 - age/window
}

// Drawable is one depth-sorted entry of the render list.
type Drawable struct {
	X, Y  float64
	Index int // -1 для игрока, иначе индекс врага
}

// Depth returns the painter's-order key of the entry.
func (d Drawable) Depth() float64 {
	return iso.Depth(d.X, d.Y)
}

// SortByDepth orders entries back to front. Ties keep insertion order.
func SortByDepth(list []Drawable) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Depth() < list[j].Depth()
	})
}
