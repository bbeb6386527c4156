// internal/input/input.go
package input

import (
	"math"

	"go-iso-arena/internal/component"
)

// State is one frame of normalised input.
type State struct {
	X, Y      float64 // экранное направление, каждая ось в [-1, 1]
	Attacking bool
}

// Moving reports whether a direction is held.
func (s State) Moving() bool {
	return s.X != 0 || s.Y != 0
}

// Slot holds the latest input. Writers overwrite it, the frame reads it once.
type Slot struct {
	cur State
}

// Set stores a new input. The direction is clamped to the unit disc.
func (s *Slot) Set(x, y float64, attacking bool) {
	if l := math.Hypot(x, y); l > 1 {
		x, y = x/l, y/l
	}
	s.cur = State{X: x, Y: y, Attacking: attacking}
}

// Read returns the latest input without clearing it.
func (s *Slot) Read() State {
	return s.cur
}

// Clear drops any held direction and attack.
func (s *Slot) Clear() {
	s.cur = State{}
}

// SkillQueue buffers skill triggers until the next frame drains them.
// Each pushed trigger is delivered at most once.
type SkillQueue struct {
	pending []component.SkillID
}

func (q *SkillQueue) Push(id component.SkillID) {
	q.pending = append(q.pending, id)
}

// Drain returns all pending triggers and empties the queue.
func (q *SkillQueue) Drain() []component.SkillID {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
