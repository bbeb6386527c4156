// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-iso-arena/internal/config"
	"go-iso-arena/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженный кадр игры под затемнением.
// Игровые часы стоят: симуляция не тикает, навыки отклоняются.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := pausePressed()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if action, _ := s.previousState.hud.Click(mx, my); action == ui.ActionPause {
			unpause = true
		}
	}
	if unpause {
		s.previousState.Game().SetPaused(false)
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	ui.DrawOverlay(screen, s.previousState.renderer.Face(), "PAUSED", "P or Esc to resume", config.TextLightColor)
}

func (s *PauseState) Exit() {}
