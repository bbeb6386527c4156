// internal/event/types.go
package event

const (
	PlayerHit    EventType = "PlayerHit"    // Игрок получил урон, Data: PlayerHitData
	EnemyKilled  EventType = "EnemyKilled"  // Враг убит, Data: EnemyKilledData
	WaveComplete EventType = "WaveComplete" // Волна зачищена, Data: WaveData
	WaveStarted  EventType = "WaveStarted"  // Data: WaveData
	SkillCast    EventType = "SkillCast"    // Data: SkillCastData
	SFX          EventType = "SFX"          // Data: SFXTag
)

// PlayerHitData carries raw damage before defense is applied.
type PlayerHitData struct {
	Damage float64
}

// EnemyKilledData is the reward triple of a single kill.
type EnemyKilledData struct {
	XP    int
	Gold  int
	Runes int
	Boss  bool
	Wave  int
}

type WaveData struct {
	Wave int
}

type SkillCastData struct {
	Skill int
}

// SFXTag: метка звукового эффекта, отправляется без ожидания ответа.
type SFXTag string

const (
	SFXAttack  SFXTag = "attack"
	SFXHit     SFXTag = "hit"
	SFXKill    SFXTag = "kill"
	SFXBuy     SFXTag = "buy"
	SFXEquip   SFXTag = "equip"
	SFXLevelUp SFXTag = "levelUp"
	SFXClick   SFXTag = "click"
	SFXSkill   SFXTag = "skill"
)

// AllSFX lists every tag in a stable order.
var AllSFX = []SFXTag{SFXAttack, SFXHit, SFXKill, SFXBuy, SFXEquip, SFXLevelUp, SFXClick, SFXSkill}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }
