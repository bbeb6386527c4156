package input

import (
	"math"
	"testing"
)

func TestSlotLatestWins(t *testing.T) {
	var s Slot
	s.Set(1, 0, false)
	s.Set(0, -1, true)
	got := s.Read()
	if got.X != 0 || got.Y != -1 || !got.Attacking {
		t.Fatalf("Read() = %+v, want latest value", got)
	}
	if again := s.Read(); again != got {
		t.Errorf("second Read() = %+v, want %+v", again, got)
	}
}

func TestSlotClampsDiagonal(t *testing.T) {
	var s Slot
	s.Set(1, 1, false)
	got := s.Read()
	if l := math.Hypot(got.X, got.Y); math.Abs(l-1) > 1e-9 {
		t.Errorf("diagonal length = %v, want 1", l)
	}
}

func TestSkillQueueAtMostOnce(t *testing.T) {
	var q SkillQueue
	q.Push(1)
	q.Push(3)
	first := q.Drain()
	if len(first) != 2 || first[0] != 1 || first[1] != 3 {
		t.Fatalf("Drain() = %v, want [1 3]", first)
	}
	if second := q.Drain(); len(second) != 0 {
		t.Errorf("second Drain() = %v, want empty", second)
	}
}
