// internal/component/player.go
package component

import "math"

// Player хранит состояние аватара, которое принадлежит симуляции.
// HP, MP и прочие характеристики живут в слое прогрессии, см. Stats.
type Player struct {
	Pos        Position
	Facing     float64 // экранный угол взгляда, радианы
	FacingLeft bool    // флаг зеркалирования спрайта
	Moving     bool

	AttackAnim  float64 // фаза взмаха, 0..1.2
	AttackDealt bool    // урон в текущем взмахе уже нанесен
	SpinAnim    float64 // 1 -> 0 после активации вращения
	SpinDealt   bool
	IFrame      float64 // оставшееся время неуязвимости
}

// NewPlayer places the avatar at the spawn point looking down-right.
func NewPlayer(x, y float64) *Player {
	return &Player{
		Pos:    Position{X: x, Y: y},
		Facing: math.Pi / 4,
	}
}

// Invulnerable reports whether contact damage is currently suppressed.
func (p *Player) Invulnerable() bool {
	return p.IFrame > 0
}

// Stats is a read-only snapshot of the progression layer taken once per frame.
type Stats struct {
	HP, MaxHP  float64
	MP, MaxMP  float64
	Attack     float64
	Defense    float64
	SpeedMod   float64
	Level      int
	XP, MaxXP  int
	Gold       int
	Runes      int
	WeaponName string
}

// HPFraction returns HP/MaxHP, or 0 when MaxHP is not positive.
func (s Stats) HPFraction() float64 {
	if s.MaxHP <= 0 {
		return 0
	}
	return s.HP / s.MaxHP
}
