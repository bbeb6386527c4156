// internal/ui/hud.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-iso-arena/internal/app"
	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/pkg/render"
)

// Action: что пользователь нажал мышью на HUD.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionAutoplay
	ActionSkill
)

var (
	spinColor     = color.RGBA{14, 165, 233, 255}
	healColor     = color.RGBA{34, 197, 94, 255}
	fireballColor = color.RGBA{249, 115, 22, 255}
)

// HUD собирает все экранные виджеты поверх мира.
type HUD struct {
	face     font.Face
	painter  *render.Painter
	stats    *PlayerStatsIndicator
	level    *PlayerLevelIndicator
	wave     *WaveIndicator
	bossBar  *BossBar
	minimap  *Minimap
	pause    *PauseButton
	autoplay *AutoplayButton
	skills   []*SkillIndicator
}

// NewHUD lays the widgets out for a config.ScreenWidth × config.ScreenHeight screen.
func NewHUD(p *render.Painter, face font.Face, t config.SkillTuning) *HUD {
	w := float32(config.ScreenWidth)
	h := float32(config.ScreenHeight)
	cx := w / 2
	return &HUD{
		face:     face,
		painter:  p,
		stats:    NewPlayerStatsIndicator(20, 20),
		level:    NewPlayerLevelIndicator(20, 64),
		wave:     NewWaveIndicator(float64(cx), 14, 3),
		bossBar:  NewBossBar(float64(w)),
		minimap:  NewMinimap(float64(w), 70),
		pause:    NewPauseButton(w-40, 34, 12, config.ButtonColor, config.ButtonActive),
		autoplay: NewAutoplayButton(w-90, 34, 12, config.ButtonColor, config.ButtonActive),
		skills: []*SkillIndicator{
			NewSkillIndicator(cx-70, h-60, 24, component.SkillSpin, t.SpinCost, spinColor),
			NewSkillIndicator(cx, h-60, 24, component.SkillHeal, t.HealCost, healColor),
			NewSkillIndicator(cx+70, h-60, 24, component.SkillFireball, t.FireballCost, fireballColor),
		},
	}
}

// Click maps a mouse click to an action. For ActionSkill the skill is returned too.
func (h *HUD) Click(mx, my int) (Action, component.SkillID) {
	switch {
	case h.pause.IsClicked(mx, my):
		return ActionPause, 0
	case h.autoplay.IsClicked(mx, my):
		return ActionAutoplay, 0
	}
	for _, s := range h.skills {
		if s.IsClicked(mx, my) {
			s.HandleClick()
			return ActionSkill, s.Skill
		}
	}
	return ActionNone, 0
}

// Draw рисует HUD. clock: часы рендера для пульсаций.
func (h *HUD) Draw(screen *ebiten.Image, g *app.Game, clock float64) {
	w := g.World
	s := g.Ledger.Stats()

	h.stats.Draw(screen, h.face, s)
	h.level.Draw(screen, h.face, s)
	h.wave.Draw(screen, h.face, w.Wave)
	h.bossBar.Draw(screen, h.face, w.Boss())
	h.minimap.Draw(screen, w, clock)

	h.pause.SetPaused(g.Paused())
	h.pause.Draw(screen, h.painter)
	h.autoplay.SetOn(g.Autoplay())
	h.autoplay.Draw(screen, h.painter)

	fireballCD := g.Tuning.Skills.FireballCooldown
	for _, ind := range h.skills {
		cd := 0.0
		if ind.Skill == component.SkillFireball {
			cd = Cooldown(g.Ledger.ReadyAt(ind.Skill), w.GameTime, fireballCD)
		}
		ind.Draw(screen, h.painter, h.face, s.MP, cd)
	}
}
