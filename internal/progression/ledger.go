// internal/progression/ledger.go
package progression

import (
	"math"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/event"
)

// Ledger: слой прогрессии: HP, мана, опыт, золото, руны и кулдауны умений.
// Симуляция читает его снимком через Stats и просит умения через RequestSkill.
type Ledger struct {
	stats      component.Stats
	baseAttack float64
	baseDef    float64
	cooldowns  map[component.SkillID]float64 // время готовности, секунды игровых часов
	skills     config.SkillTuning
	regen      float64
	nextRegen  float64
	paused     bool
	dispatcher *event.Dispatcher

	Kills      int
	BossKills  int
	WavesClear int
}

// NewLedger starts a ledger from the tuning's starting stats and equipment.
func NewLedger(t config.Tuning, dispatcher *event.Dispatcher) *Ledger {
	p := t.Player
	l := &Ledger{
		stats: component.Stats{
			HP:       p.HP,
			MaxHP:    p.HP,
			MP:       p.MP,
			MaxMP:    p.MP,
			Level:    p.Level,
			XP:       p.XP,
			MaxXP:    p.MaxXP,
			Gold:     p.Gold,
			SpeedMod: 1,
		},
		baseAttack: p.Attack,
		baseDef:    p.Defense,
		cooldowns:  make(map[component.SkillID]float64),
		skills:     t.Skills,
		regen:      p.ManaRegen,
		nextRegen:  1,
		dispatcher: dispatcher,
	}
	l.Equip(t.Equipment)
	if dispatcher != nil {
		dispatcher.Subscribe(event.PlayerHit, l)
		dispatcher.Subscribe(event.EnemyKilled, l)
		dispatcher.Subscribe(event.WaveComplete, l)
	}
	return l
}

// Equip replaces the equipped items and recomputes derived stats.
func (l *Ledger) Equip(items []config.ItemTuning) {
	l.stats.Attack = l.baseAttack
	l.stats.Defense = l.baseDef
	l.stats.SpeedMod = 1
	l.stats.WeaponName = ""
	for _, it := range items {
		l.stats.Attack += it.Attack
		l.stats.Defense += it.Defense
		l.stats.SpeedMod += it.Speed
		if it.Slot == "weapon" {
			l.stats.WeaponName = it.Name
		}
	}
	if l.stats.SpeedMod < 0.1 {
		l.stats.SpeedMod = 0.1
	}
	if len(items) > 0 {
		l.dispatcher.Sound(event.SFXEquip)
	}
}

// Stats returns the current snapshot.
func (l *Ledger) Stats() component.Stats {
	return l.stats
}

func (l *Ledger) SetPaused(paused bool) {
	l.paused = paused
}

// Dead reports whether HP has run out.
func (l *Ledger) Dead() bool {
	return l.stats.HP <= 0
}

// ReadyAt returns when the skill comes off cooldown.
func (l *Ledger) ReadyAt(id component.SkillID) float64 {
	return l.cooldowns[id]
}

// RequestSkill spends mana and starts cooldowns. It returns false and
// changes nothing if the skill cannot be used right now.
func (l *Ledger) RequestSkill(id component.SkillID, now float64) bool {
	if l.paused {
		return false
	}
	if ready, ok := l.cooldowns[id]; ok && now < ready {
		return false
	}
	s := &l.stats
	switch id {
	case component.SkillSpin:
		if s.MP < l.skills.SpinCost {
			return false
		}
		s.MP -= l.skills.SpinCost
	case component.SkillHeal:
		if s.MP < l.skills.HealCost || s.HP >= s.MaxHP {
			return false
		}
		s.MP -= l.skills.HealCost
		s.HP = math.Min(s.MaxHP, s.HP+s.MaxHP*l.skills.HealFraction)
	case component.SkillFireball:
		if s.MP < l.skills.FireballCost {
			return false
		}
		s.MP -= l.skills.FireballCost
		l.cooldowns[id] = now + l.skills.FireballCooldown
	default:
		return false
	}
	return true
}

// Regen restores mana once per whole second of game time.
func (l *Ledger) Regen(now float64) {
	for now >= l.nextRegen {
		l.nextRegen++
		l.stats.MP = math.Min(l.stats.MaxMP, l.stats.MP+l.regen)
	}
}

// Mitigate applies defense to raw damage. Ten defense blocks one damage.
func Mitigate(damage, defense float64) float64 {
	return math.Max(0, damage-defense*0.1)
}

func (l *Ledger) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerHit:
		if d, ok := e.Data.(event.PlayerHitData); ok {
			l.stats.HP = math.Max(0, l.stats.HP-Mitigate(d.Damage, l.stats.Defense))
		}
	case event.EnemyKilled:
		if d, ok := e.Data.(event.EnemyKilledData); ok {
			l.Kills++
			if d.Boss {
				l.BossKills++
			}
			l.reward(d)
		}
	case event.WaveComplete:
		l.WavesClear++
	}
}

// reward adds a kill's xp, gold and runes and levels up at most once.
func (l *Ledger) reward(d event.EnemyKilledData) {
	s := &l.stats
	s.Gold += d.Gold
	s.Runes += d.Runes
	s.XP += d.XP
	if s.XP < s.MaxXP {
		return
	}
	s.XP -= s.MaxXP
	s.Level++
	s.MaxXP = int(math.Floor(float64(s.MaxXP) * 1.5))
	s.MaxHP += 50
	s.MaxMP += 20
	s.HP = s.MaxHP
	s.MP = s.MaxMP
	l.dispatcher.Sound(event.SFXLevelUp)
}
