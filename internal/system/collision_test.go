package system

import (
	"testing"

	"go-iso-arena/internal/component"
)

func TestCanOccupy(t *testing.T) {
	c := NewCollisionSystem(waterMap(20, 20, 5), 0.45)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"open grass", 2.5, 2.5, true},
		{"water centre", 5.5, 5.5, false},
		{"inside radius of water", 5.1, 3.5, false},
		{"outside radius of water", 4.4, 3.5, true},
		{"left of map", -0.1, 3, false},
		{"below map", 3, 20.1, false},
		{"on the far edge", 20, 20, true},
	}
	for _, tt := range tests {
		if got := c.CanOccupy(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: CanOccupy(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMoveAxisSplitNeverEntersWater(t *testing.T) {
	c := NewCollisionSystem(waterMap(20, 20, 5), 0.45)
	pos := component.Position{X: 2.5, Y: 10.5}
	for i := 0; i < 100; i++ {
		pos = c.MoveAxisSplit(pos, 0.3, 0)
		if !c.CanOccupy(pos.X, pos.Y) {
			t.Fatalf("step %d: moved onto blocked point %+v", i, pos)
		}
	}
	if pos.X >= 5 {
		t.Errorf("crossed the water column: x = %v", pos.X)
	}
}

// На стыке двух тайлов воды оба центра дальше радиуса, проход открыт.
func TestMoveAxisSplitPassesWaterSeam(t *testing.T) {
	c := NewCollisionSystem(waterMap(20, 20, 5), 0.45)
	pos := component.Position{X: 2.5, Y: 10}
	for i := 0; i < 100; i++ {
		pos = c.MoveAxisSplit(pos, 0.3, 0)
		if !c.CanOccupy(pos.X, pos.Y) {
			t.Fatalf("step %d: moved onto blocked point %+v", i, pos)
		}
	}
	if pos.X < 6 {
		t.Errorf("stopped at the seam: x = %v, want past the column", pos.X)
	}
}

func TestMoveAxisSplitSlidesAlongShore(t *testing.T) {
	c := NewCollisionSystem(waterMap(20, 20, 5), 0.45)
	start := component.Position{X: 4.9, Y: 10}
	pos := c.MoveAxisSplit(start, 0.3, 0.3)
	if pos.X != start.X {
		t.Errorf("x changed into water: %v", pos.X)
	}
	if pos.Y != start.Y+0.3 {
		t.Errorf("y = %v, want slide to %v", pos.Y, start.Y+0.3)
	}
}

func TestClamp(t *testing.T) {
	c := NewCollisionSystem(waterMap(10, 10, 5), 0.45)
	got := c.Clamp(component.Position{X: -3, Y: 12})
	if got.X != 0 || got.Y != 10 {
		t.Errorf("Clamp = %+v, want (0, 10)", got)
	}
}
