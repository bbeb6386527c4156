// internal/interfaces/game.go
package interfaces

import "go-iso-arena/internal/component"

// Game is what the host states need from the simulation.
type Game interface {
	Tick(now float64)
	TogglePause() bool
	SetPaused(paused bool)
	Paused() bool
	SetAutoplay(on bool)
	Autoplay() bool
	Wave() int
}

// SkillGate checks mana and cooldowns and spends them.
// A false return means nothing was spent and nothing happens.
type SkillGate interface {
	RequestSkill(id component.SkillID, now float64) bool
}

// StatsSource returns the read-only stats snapshot for the current frame.
type StatsSource interface {
	Stats() component.Stats
}

// Progression is the external layer the orchestrator reports to.
// It owns HP, mana, cooldowns and rewards.
type Progression interface {
	SkillGate
	StatsSource
	Regen(now float64)
}
