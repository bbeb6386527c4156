package render

import (
	"image/color"
	"math"
	"testing"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/defs"
	"go-iso-arena/internal/utils"
)

func TestSwingAngleProfile(t *testing.T) {
	tests := []struct {
		anim float64
		want float64
	}{
		{0.125, -0.55},
		{0.25, -1.1},
		{0.8, 1.2},
		{0.9, 0.6},
		{1.0, 0},
		{1.1, 0}, // после 1 фаза обрезается
	}
	for _, tt := range tests {
		if got := SwingAngle(0, tt.anim); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SwingAngle(%v) = %v, want %v", tt.anim, got, tt.want)
		}
	}
	if got := SwingAngle(1, 0); math.Abs(got) > 0.05+1e-9 {
		t.Errorf("idle sway %v exceeds 0.05", got)
	}
}

func TestHeroPose(t *testing.T) {
	idle := HeroPose(0, false, 0, 0)
	if idle.LegL != 0 || idle.LegR != 0 {
		t.Errorf("idle legs moved: %+v", idle)
	}
	if math.Abs(idle.ArmL-0.1) > 1e-9 {
		t.Errorf("idle ArmL = %v, want 0.1", idle.ArmL)
	}

	walk := HeroPose(0.1, true, 0, 0)
	if math.Abs(walk.LegL+walk.LegR) > 1e-9 {
		t.Errorf("legs not in opposition: %v %v", walk.LegL, walk.LegR)
	}
	if walk.BodyY < 0 {
		t.Errorf("walking bob %v must be non-negative", walk.BodyY)
	}

	swing := HeroPose(0, false, 1, 0)
	if math.Abs(swing.ArmR-1.0) > 1e-9 {
		t.Errorf("full swing ArmR = %v, want 1.0", swing.ArmR)
	}
}

func TestBlinkHidden(t *testing.T) {
	if BlinkHidden(0, 0) {
		t.Error("no blink without iframes")
	}
	if !BlinkHidden(0.5, 0.05) {
		t.Error("first 100ms must be faded")
	}
	if BlinkHidden(0.5, 0.15) {
		t.Error("second 100ms must be visible")
	}
}

func TestHitFlash(t *testing.T) {
	tests := []struct {
		name    string
		hit     bool
		lastHit float64
		now     float64
		want    float64
	}{
		{"never hit", false, 0, 0.05, 0},
		{"fresh", true, 1, 1, 1},
		{"half", true, 1, 1.1, 0.5},
		{"expired", true, 1, 1.2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitFlash(tt.hit, tt.lastHit, tt.now, 0.2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HitFlash = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortByDepthStable(t *testing.T) {
	list := []Drawable{
		{X: 10, Y: 10, Index: 0},
		{X: 5, Y: 5, Index: 1},
		{X: 12, Y: 8, Index: 2}, // та же глубина, что у 0
		{X: 0, Y: 1, Index: -1},
	}
	SortByDepth(list)
	want := []int{-1, 1, 0, 2}
	for i, d := range list {
		if d.Index != want[i] {
			t.Fatalf("order = %v, want %v", list, want)
		}
	}
}

func TestViewWindow(t *testing.T) {
	w := ViewWindow(30.5, 30.5, 16, 60, 60)
	if w != (TileRange{MinX: 14, MaxX: 46, MinY: 14, MaxY: 46}) {
		t.Errorf("centre window = %+v", w)
	}
	w = ViewWindow(2, 58.9, 16, 60, 60)
	if w.MinX != 0 || w.MaxY != 60 {
		t.Errorf("edge window not clipped: %+v", w)
	}
}

func TestSpecklePointsInsideDiamond(t *testing.T) {
	pts := SpecklePoints(utils.NewPRNGService(3), 50)
	if len(pts) != 50 {
		t.Fatalf("got %d points", len(pts))
	}
	for _, p := range pts {
		if math.Abs(p[0]-0.5)*2+math.Abs(p[1]-0.5)*2 > 0.85 {
			t.Errorf("point %v outside the diamond", p)
		}
	}
}

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := DarkenColor(c); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
	if got := Mix(c, color.RGBA{0, 0, 0, 255}, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("Mix = %v", got)
	}
	if got := Lighten(c, 100); got.R != 255 || got.G != 200 {
		t.Errorf("Lighten = %v", got)
	}
	if got := WeaponTrail("Obsidian Edge"); got != (color.RGBA{168, 85, 247, 255}) {
		t.Errorf("obsidian trail = %v", got)
	}
}

func TestShadowEllipseFromDefs(t *testing.T) {
	tests := []struct {
		typ        component.EnemyType
		cy, rx, ry float64
	}{
		{component.Zombie, 106, 25, 10},
		{component.Ghost, 106, 25, 10},
		{component.Boss, 130, 60, 24},
	}
	for _, tt := range tests {
		d := defs.EnemyDefs[tt.typ]
		cx, cy, rx, ry := ShadowEllipse(50, 100, d.ShadowSize, d.ShadowShift)
		if cx != 50 || cy != tt.cy || rx != tt.rx || math.Abs(ry-tt.ry) > 1e-9 {
			t.Errorf("%v: ShadowEllipse = (%v, %v, %v, %v), want (50, %v, %v, %v)",
				tt.typ, cx, cy, rx, ry, tt.cy, tt.rx, tt.ry)
		}
	}
}
