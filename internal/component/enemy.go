// internal/component/enemy.go
package component

import "fmt"

// EnemyType: закрытый набор типов врагов.
type EnemyType uint8

const (
	Zombie EnemyType = iota
	Goblin
	Skeleton
	Ghost
	Boss
)

// MinionTypes lists every non-boss type.
var MinionTypes = []EnemyType{Zombie, Goblin, Skeleton, Ghost}

func (t EnemyType) String() string {
	switch t {
	case Zombie:
		return "zombie"
	case Goblin:
		return "goblin"
	case Skeleton:
		return "skeleton"
	case Ghost:
		return "ghost"
	case Boss:
		return "boss"
	}
	return "unknown"
}

// BossArchetype: внешний вид босса, циклически по номеру волны.
type BossArchetype uint8

const (
	Rex BossArchetype = iota
	Lich
	Wraith
	Drake
)

// ArchetypeForWave maps wave N to (N-1) mod 4.
func ArchetypeForWave(wave int) BossArchetype {
	if wave < 1 {
		wave = 1
	}
	return BossArchetype((wave - 1) % 4)
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID     EntityID
	Tag    string // e-<wave>-<i> или boss-<wave>
	Type   EnemyType
	Wave   int
	Pos    Position
	HP     float64
	MaxHP  float64
	Speed  float64
	Damage float64

	LastHit   float64 // время последнего удара, секунды игровых часов
	Hit       bool    // получал ли удар хоть раз
	Breath    float64 // фаза дыхания босса
	DeathAnim float64 // 1 -> 0 после смерти
	Dead      bool
	Removed   bool
}

// MinionTag builds the tag of the i-th minion of a wave.
func MinionTag(wave, i int) string {
	return fmt.Sprintf("e-%d-%d", wave, i)
}

// BossTag builds the tag of the wave boss.
func BossTag(wave int) string {
	return fmt.Sprintf("boss-%d", wave)
}

// IsBoss reports whether the enemy is the wave boss.
func (e *Enemy) IsBoss() bool {
	return e.Type == Boss
}

// Alive reports whether the enemy still takes part in combat.
func (e *Enemy) Alive() bool {
	return !e.Dead && !e.Removed
}
