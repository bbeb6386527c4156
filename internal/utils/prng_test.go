package utils

import (
	"math"
	"testing"
)

func TestChooseWeightedDeterministic(t *testing.T) {
	table := []Weighted[string]{{"a", 1}, {"b", 3}, {"c", 0}}
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for i := 0; i < 100; i++ {
		va := ChooseWeighted(a, table)
		vb := ChooseWeighted(b, table)
		if va != vb {
			t.Fatalf("draw %d differs for the same seed: %q vs %q", i, va, vb)
		}
		if va == "c" {
			t.Fatalf("draw %d picked a zero-weight entry", i)
		}
	}
}

func TestChooseWeightedEdgeCases(t *testing.T) {
	s := NewPRNGService(1)
	if got := ChooseWeighted(s, []Weighted[int]{}); got != 0 {
		t.Errorf("empty table = %d, want zero value", got)
	}
	if got := ChooseWeighted(s, []Weighted[int]{{7, 0}, {8, 0}}); got != 7 {
		t.Errorf("all-zero table = %d, want first entry", got)
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	s := NewPRNGService(12345)
	table := []Weighted[int]{{0, 1}, {1, 9}}
	counts := [2]int{}
	for i := 0; i < 10000; i++ {
		counts[ChooseWeighted(s, table)]++
	}
	ratio := float64(counts[1]) / 10000
	if math.Abs(ratio-0.9) > 0.03 {
		t.Errorf("heavy entry ratio = %.3f, want about 0.9", ratio)
	}
}

func TestSafeLen(t *testing.T) {
	if got := SafeLen(0, 0); got != Epsilon {
		t.Errorf("SafeLen(0, 0) = %v, want %v", got, Epsilon)
	}
	if got := SafeLen(3, 4); got != 5 {
		t.Errorf("SafeLen(3, 4) = %v, want 5", got)
	}
}
