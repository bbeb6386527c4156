// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"go-iso-arena/internal/config"
	"go-iso-arena/internal/ui"
)

// MenuState: стартовый экран: обычный забег или автобой.
type MenuState struct {
	sm       *StateMachine
	face     font.Face
	bestWave int
	play     *ui.Button
	auto     *ui.Button
	start    func(autoplay bool) State
}

// NewMenuState shows the record wave and calls start when a run is chosen.
func NewMenuState(sm *StateMachine, face font.Face, bestWave int, start func(autoplay bool) State) *MenuState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &MenuState{
		sm:       sm,
		face:     face,
		bestWave: bestWave,
		play:     ui.NewButton(image.Rect(cx-110, cy, cx+110, cy+44), "PLAY  (Space)"),
		auto:     ui.NewButton(image.Rect(cx-110, cy+60, cx+110, cy+104), "AUTOPLAY  (A)"),
		start:    start,
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	mx, my := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	switch {
	case anyJustPressed(ebiten.KeySpace, ebiten.KeyEnter) || (clicked && m.play.Contains(mx, my)):
		m.sm.SetState(m.start(false))
	case inpututil.IsKeyJustPressed(ebiten.KeyA) || (clicked && m.auto.Contains(mx, my)):
		m.sm.SetState(m.start(true))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	mx, my := ebiten.CursorPosition()
	subtitle := "no runs recorded yet"
	if m.bestWave > 0 {
		subtitle = fmt.Sprintf("best wave: %d", m.bestWave)
	}
	ui.DrawOverlay(screen, m.face, "ISO ARENA", subtitle, config.XPBarFill)
	m.play.Draw(screen, m.face, mx, my)
	m.auto.Draw(screen, m.face, mx, my)
}

func (m *MenuState) Exit() {}
