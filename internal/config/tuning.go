// internal/config/tuning.go
package config

// Tuning holds every gameplay number that may be overridden from YAML.
type Tuning struct {
	Map       MapTuning      `yaml:"map"`
	Player    PlayerTuning   `yaml:"player"`
	Combat    CombatTuning   `yaml:"combat"`
	Skills    SkillTuning    `yaml:"skills"`
	Autoplay  AutoplayTuning `yaml:"autoplay"`
	Equipment []ItemTuning   `yaml:"equipment"`
	Log       LogTuning      `yaml:"log"`
}

// MapTuning: размеры карты и точка появления
type MapTuning struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// PlayerTuning: стартовые характеристики героя
type PlayerTuning struct {
	Speed     float64 `yaml:"speed"` // тайлов в секунду
	HP        float64 `yaml:"hp"`
	MP        float64 `yaml:"mp"`
	Level     int     `yaml:"level"`
	XP        int     `yaml:"xp"`
	MaxXP     int     `yaml:"max_xp"`
	Gold      int     `yaml:"gold"`
	Attack    float64 `yaml:"attack"`
	Defense   float64 `yaml:"defense"`
	ManaRegen float64 `yaml:"mana_regen"` // за целую секунду
}

type CombatTuning struct {
	CollisionRadius  float64 `yaml:"collision_radius"`
	PursuitStop      float64 `yaml:"pursuit_stop"`
	RepelRadius      float64 `yaml:"repel_radius"`
	RepelSpeed       float64 `yaml:"repel_speed"`
	AttackRate       float64 `yaml:"attack_rate"`
	MeleeRadius      float64 `yaml:"melee_radius"`
	MeleeCooldown    float64 `yaml:"melee_cooldown"`
	Knockback        float64 `yaml:"knockback"`
	BossKnockback    float64 `yaml:"boss_knockback"`
	SpinRadius       float64 `yaml:"spin_radius"`
	SpinKnockback    float64 `yaml:"spin_knockback"`
	SpinBossPush     float64 `yaml:"spin_boss_knockback"`
	SkillMultiplier  float64 `yaml:"skill_multiplier"`
	FireballSpeed    float64 `yaml:"fireball_speed"`
	FireballLife     float64 `yaml:"fireball_life"`
	FireballContact  float64 `yaml:"fireball_contact"`
	FireballAoESq    float64 `yaml:"fireball_aoe_sq"`
	FireballForce    float64 `yaml:"fireball_force"`
	ContactRadius    float64 `yaml:"contact_radius"`
	IFrame           float64 `yaml:"iframe"`
	BreathTrigger    float64 `yaml:"breath_trigger"`
	BreathRange      float64 `yaml:"breath_range"`
	BreathMultiplier float64 `yaml:"breath_multiplier"`
	DeathFade        float64 `yaml:"death_fade"`
}

type SkillTuning struct {
	SpinCost         float64 `yaml:"spin_cost"`
	HealCost         float64 `yaml:"heal_cost"`
	HealFraction     float64 `yaml:"heal_fraction"`
	FireballCost     float64 `yaml:"fireball_cost"`
	FireballCooldown float64 `yaml:"fireball_cooldown"`
}

type AutoplayTuning struct {
	DetectRange      float64 `yaml:"detect_range"`
	MeleeRange       float64 `yaml:"melee_range"`
	DecisionInterval float64 `yaml:"decision_interval"`
	HealBelow        float64 `yaml:"heal_below"`
	ClusterRadius    float64 `yaml:"cluster_radius"`
	ClusterSize      int     `yaml:"cluster_size"`
	FireballMin      float64 `yaml:"fireball_min"`
	FireballMax      float64 `yaml:"fireball_max"`
}

// ItemTuning is an equipped item and its stat bonuses.
type ItemTuning struct {
	Name    string  `yaml:"name"`
	Slot    string  `yaml:"slot"` // weapon, armor, boots
	Attack  float64 `yaml:"attack"`
	Defense float64 `yaml:"defense"`
	Speed   float64 `yaml:"speed"` // прибавка к множителю скорости
}

type LogTuning struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultTuning returns the hard-coded tuning used when no YAML can be read.
func DefaultTuning() Tuning {
	return Tuning{
		Map: MapTuning{
			Width:  60,
			Height: 60,
			SpawnX: 30,
			SpawnY: 55,
		},
		Player: PlayerTuning{
			Speed:     2.5,
			HP:        450,
			MP:        120,
			Level:     7,
			XP:        4500,
			MaxXP:     10000,
			Gold:      2500,
			Attack:    45,
			Defense:   20,
			ManaRegen: 5,
		},
		Combat: CombatTuning{
			CollisionRadius:  0.45,
			PursuitStop:      0.6,
			RepelRadius:      0.9,
			RepelSpeed:       4.0,
			AttackRate:       4.0,
			MeleeRadius:      3.5,
			MeleeCooldown:    0.2,
			Knockback:        2.0,
			BossKnockback:    0.3,
			SpinRadius:       4.0,
			SpinKnockback:    2.5,
			SpinBossPush:     0.5,
			SkillMultiplier:  1.5,
			FireballSpeed:    8,
			FireballLife:     1.5,
			FireballContact:  2.0,
			FireballAoESq:    144,
			FireballForce:    5.0,
			ContactRadius:    1.0,
			IFrame:           1.0,
			BreathTrigger:    5.0,
			BreathRange:      6.0,
			BreathMultiplier: 1.5,
			DeathFade:        1.5,
		},
		Skills: SkillTuning{
			SpinCost:         10,
			HealCost:         25,
			HealFraction:     0.4,
			FireballCost:     5,
			FireballCooldown: 10,
		},
		Autoplay: AutoplayTuning{
			DetectRange:      20,
			MeleeRange:       2.0,
			DecisionInterval: 0.8,
			HealBelow:        0.4,
			ClusterRadius:    5.0,
			ClusterSize:      3,
			FireballMin:      6,
			FireballMax:      15,
		},
		Log: LogTuning{Level: "info"},
	}
}
