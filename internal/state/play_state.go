// internal/state/play_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-iso-arena/internal/app"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/ui"
	"go-iso-arena/pkg/render"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState гоняет симуляцию: читает клавиатуру и мышь, тикает игру
// и рисует мир с HUD.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
	hud      *ui.HUD
	now      float64 // секунды реального времени с начала состояния

	// RunEnded вызывается перед рестартом упавшего забега
	RunEnded func(*app.Game)
}

func NewPlayState(sm *StateMachine, g *app.Game, r *render.Renderer) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     g,
		renderer: r,
		hud:      ui.NewHUD(r.Painter(), r.Face(), g.Tuning.Skills),
	}
}

// Game returns the running game.
func (s *PlayState) Game() *app.Game {
	return s.game
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	s.now += deltaTime
	s.renderer.Advance(deltaTime)
	g := s.game

	if pausePressed() {
		s.pause()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		switch action, skill := s.hud.Click(mx, my); action {
		case ui.ActionPause:
			s.pause()
			return
		case ui.ActionAutoplay:
			g.SetAutoplay(!g.Autoplay())
		case ui.ActionSkill:
			g.QueueSkill(skill)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.SetAutoplay(!g.Autoplay())
	}
	if g.Fallen() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if s.RunEnded != nil {
			s.RunEnded(g)
		}
		g.Restart()
	}

	x, y := readDirection()
	g.Input.Set(x, y, ebiten.IsKeyPressed(ebiten.KeySpace))
	for _, id := range pressedSkills() {
		g.QueueSkill(id)
	}
	g.Tick(s.now)
}

func (s *PlayState) pause() {
	s.game.SetPaused(true)
	s.sm.SetState(NewPauseState(s.sm, s))
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game)
	s.hud.Draw(screen, s.game, s.now)
	if s.game.Fallen() {
		ui.DrawOverlay(screen, s.renderer.Face(), "YOU FELL",
			fmt.Sprintf("wave %d  -  press R to rise again", s.game.Wave()), config.KillTextColor)
	}
}

func (s *PlayState) Exit() {}
