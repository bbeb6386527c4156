// internal/component/skill.go
package component

// SkillID: идентификатор умения, совпадает с номером клавиши.
type SkillID int

const (
	SkillSpin     SkillID = 1
	SkillHeal     SkillID = 2
	SkillFireball SkillID = 3
)

func (s SkillID) String() string {
	switch s {
	case SkillSpin:
		return "spin"
	case SkillHeal:
		return "heal"
	case SkillFireball:
		return "fireball"
	}
	return "unknown"
}
