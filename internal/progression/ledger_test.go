package progression

import (
	"testing"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/event"
)

func newTestLedger() *Ledger {
	return NewLedger(config.DefaultTuning(), event.NewDispatcher())
}

func TestStartingStats(t *testing.T) {
	s := newTestLedger().Stats()
	if s.HP != 450 || s.MP != 120 || s.Level != 7 || s.Attack != 45 || s.Defense != 20 {
		t.Errorf("starting stats = %+v", s)
	}
	if s.XP != 4500 || s.MaxXP != 10000 || s.Gold != 2500 {
		t.Errorf("starting progress = %+v", s)
	}
}

func TestHealSpendsExactly25(t *testing.T) {
	l := newTestLedger()
	l.stats.HP = 100
	l.stats.MP = 25

	if !l.RequestSkill(component.SkillHeal, 0) {
		t.Fatal("RequestSkill(heal) = false with 25 mp")
	}
	if l.stats.MP != 0 {
		t.Errorf("mp after heal = %v, want 0", l.stats.MP)
	}
	if want := 100 + 450*0.4; l.stats.HP != want {
		t.Errorf("hp after heal = %v, want %v", l.stats.HP, want)
	}
}

func TestHealRejectedWith24Mana(t *testing.T) {
	l := newTestLedger()
	l.stats.HP = 100
	l.stats.MP = 24

	if l.RequestSkill(component.SkillHeal, 0) {
		t.Fatal("RequestSkill(heal) = true with 24 mp")
	}
	if l.stats.MP != 24 || l.stats.HP != 100 {
		t.Errorf("stats changed on refusal: hp %v mp %v", l.stats.HP, l.stats.MP)
	}
}

func TestHealCapsAtMax(t *testing.T) {
	l := newTestLedger()
	l.stats.HP = 400
	if !l.RequestSkill(component.SkillHeal, 0) {
		t.Fatal("RequestSkill(heal) = false")
	}
	if l.stats.HP != 450 {
		t.Errorf("hp = %v, want capped 450", l.stats.HP)
	}
	if l.RequestSkill(component.SkillHeal, 0) {
		t.Error("heal granted at full hp")
	}
}

func TestFireballCooldown(t *testing.T) {
	l := newTestLedger()
	if !l.RequestSkill(component.SkillFireball, 1) {
		t.Fatal("first fireball refused")
	}
	if l.RequestSkill(component.SkillFireball, 5) {
		t.Error("fireball granted during cooldown")
	}
	if !l.RequestSkill(component.SkillFireball, 11) {
		t.Error("fireball refused after cooldown")
	}
	if got := l.stats.MP; got != 110 {
		t.Errorf("mp = %v, want 110 after two fireballs", got)
	}
}

func TestPausedRefusesEverything(t *testing.T) {
	l := newTestLedger()
	l.SetPaused(true)
	for _, id := range []component.SkillID{component.SkillSpin, component.SkillHeal, component.SkillFireball} {
		if l.RequestSkill(id, 0) {
			t.Errorf("RequestSkill(%v) granted while paused", id)
		}
	}
	if l.stats.MP != 120 {
		t.Errorf("mp = %v, want untouched 120", l.stats.MP)
	}
}

func TestMitigate(t *testing.T) {
	tests := []struct {
		dmg, def, want float64
	}{
		{15, 20, 13},
		{10, 10, 9},
		{1, 20, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Mitigate(tt.dmg, tt.def); got != tt.want {
			t.Errorf("Mitigate(%v, %v) = %v, want %v", tt.dmg, tt.def, got, tt.want)
		}
	}
}

func TestPlayerHitAppliesDefense(t *testing.T) {
	d := event.NewDispatcher()
	l := NewLedger(config.DefaultTuning(), d)
	d.Emit(event.PlayerHit, event.PlayerHitData{Damage: 52})
	if l.Stats().HP != 400 {
		t.Errorf("hp = %v, want 400", l.Stats().HP)
	}
	d.Emit(event.PlayerHit, event.PlayerHitData{Damage: 10000})
	if !l.Dead() || l.Stats().HP != 0 {
		t.Errorf("hp = %v, want clamped at 0", l.Stats().HP)
	}
}

func TestLevelUp(t *testing.T) {
	d := event.NewDispatcher()
	l := NewLedger(config.DefaultTuning(), d)
	sounds := 0
	d.Subscribe(event.SFX, event.ListenerFunc(func(e event.Event) {
		if e.Data.(event.SFXTag) == event.SFXLevelUp {
			sounds++
		}
	}))
	l.stats.HP = 10

	d.Emit(event.EnemyKilled, event.EnemyKilledData{XP: 6000, Gold: 15, Runes: 3})

	s := l.Stats()
	if s.Level != 8 || s.XP != 500 || s.MaxXP != 15000 {
		t.Errorf("after level up: level %d xp %d/%d", s.Level, s.XP, s.MaxXP)
	}
	if s.MaxHP != 500 || s.HP != 500 || s.MaxMP != 140 || s.MP != 140 {
		t.Errorf("after level up: hp %v/%v mp %v/%v", s.HP, s.MaxHP, s.MP, s.MaxMP)
	}
	if s.Gold != 2515 || s.Runes != 3 || l.Kills != 1 {
		t.Errorf("rewards not applied: %+v kills %d", s, l.Kills)
	}
	if sounds != 1 {
		t.Errorf("levelUp sounds = %d, want 1", sounds)
	}
}

func TestRunCounters(t *testing.T) {
	d := event.NewDispatcher()
	l := NewLedger(config.DefaultTuning(), d)

	d.Emit(event.EnemyKilled, event.EnemyKilledData{XP: 10, Wave: 1})
	d.Emit(event.EnemyKilled, event.EnemyKilledData{XP: 10, Boss: true, Wave: 1})
	d.Emit(event.WaveComplete, event.WaveData{Wave: 1})
	d.Emit(event.WaveComplete, event.WaveData{Wave: 2})

	if l.Kills != 2 || l.BossKills != 1 || l.WavesClear != 2 {
		t.Errorf("counters: kills %d bosses %d cleared %d, want 2 1 2", l.Kills, l.BossKills, l.WavesClear)
	}
}

func TestRegenPerWholeSecond(t *testing.T) {
	l := newTestLedger()
	l.stats.MP = 50
	l.Regen(0.5)
	if l.stats.MP != 50 {
		t.Errorf("mp = %v after half a second, want 50", l.stats.MP)
	}
	l.Regen(2.1)
	if l.stats.MP != 60 {
		t.Errorf("mp = %v after 2.1s, want 60", l.stats.MP)
	}
	l.stats.MP = 118
	l.Regen(3)
	if l.stats.MP != 120 {
		t.Errorf("mp = %v, want capped 120", l.stats.MP)
	}
}

func TestEquipmentBonuses(t *testing.T) {
	tun := config.DefaultTuning()
	tun.Equipment = []config.ItemTuning{
		{Name: "Obsidian Maw", Slot: "weapon", Attack: 30},
		{Name: "Scale Mail", Slot: "armor", Defense: 15},
		{Name: "Wind Boots", Slot: "boots", Speed: 0.25},
	}
	s := NewLedger(tun, nil).Stats()
	if s.Attack != 75 || s.Defense != 35 || s.SpeedMod != 1.25 || s.WeaponName != "Obsidian Maw" {
		t.Errorf("equipped stats = %+v", s)
	}
}
