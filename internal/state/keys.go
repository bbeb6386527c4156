// internal/state/keys.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-iso-arena/internal/component"
)

// Direction turns held keys into a screen-space vector. Opposite keys cancel.
func Direction(up, down, left, right bool) (float64, float64) {
	var x, y float64
	if left {
		x--
	}
	if right {
		x++
	}
	if up {
		y--
	}
	if down {
		y++
	}
	return x, y
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readDirection reads WASD and the arrows.
func readDirection() (float64, float64) {
	return Direction(
		anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
	)
}

var skillKeys = map[ebiten.Key]component.SkillID{
	ebiten.Key1: component.SkillSpin,
	ebiten.Key2: component.SkillHeal,
	ebiten.Key3: component.SkillFireball,
}

// pressedSkills returns the skills whose key went down this frame, in key order.
func pressedSkills() []component.SkillID {
	var out []component.SkillID
	for _, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(k) {
			out = append(out, skillKeys[k])
		}
	}
	return out
}

func pausePressed() bool {
	return anyJustPressed(ebiten.KeyP, ebiten.KeyEscape)
}
