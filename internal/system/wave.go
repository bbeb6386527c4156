// internal/system/wave.go
package system

import (
	"context"
	"math"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/defs"
	"go-iso-arena/internal/entity"
	"go-iso-arena/internal/event"
	"go-iso-arena/internal/utils"
)

// Состояния и переходы директора волн
const (
	WaveSpawning = "spawning"
	WaveActive   = "active"
	WaveCleared  = "cleared"

	evSpawned = "spawned"
	evClear   = "clear"
	evNext    = "next"
)

// WaveSystem spawns waves and detects when one is cleared.
type WaveSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	logger     *log.Logger
	machine    *fsm.FSM
	roster     int // размер текущей волны при спавне
}

func NewWaveSystem(world *entity.World, dispatcher *event.Dispatcher, rng *utils.PRNGService, logger *log.Logger) *WaveSystem {
	s := &WaveSystem{
		world:      world,
		dispatcher: dispatcher,
		rng:        rng,
		logger:     logger,
	}
	s.machine = fsm.NewFSM(
		WaveSpawning,
		fsm.Events{
			{Name: evSpawned, Src: []string{WaveSpawning}, Dst: WaveActive},
			{Name: evClear, Src: []string{WaveActive}, Dst: WaveCleared},
			{Name: evNext, Src: []string{WaveCleared}, Dst: WaveSpawning},
		},
		fsm.Callbacks{
			"enter_" + WaveCleared: func(_ context.Context, e *fsm.Event) {
				s.dispatcher.Emit(event.WaveComplete, event.WaveData{Wave: s.world.Wave})
				s.dispatcher.Sound(event.SFXLevelUp)
			},
		},
	)
	return s
}

// State returns the director state name.
func (s *WaveSystem) State() string {
	return s.machine.Current()
}

// Current returns the current wave number.
func (s *WaveSystem) Current() int {
	return s.world.Wave
}

// Start spawns wave n and makes it active.
func (s *WaveSystem) Start(n int) {
	if n < 1 {
		n = 1
	}
	if !s.machine.Is(WaveSpawning) {
		s.machine.SetState(WaveSpawning)
	}
	s.world.Wave = n
	s.spawn(n)
	s.transition(evSpawned)
}

// Update checks the clear condition once per frame.
func (s *WaveSystem) Update(deltaTime float64) {
	if !s.machine.Is(WaveActive) || s.roster == 0 {
		return
	}
	if s.world.LivingEnemies() > 0 {
		return
	}
	if s.logger != nil {
		s.logger.Info("wave cleared", "wave", s.world.Wave)
	}
	s.transition(evClear)
	s.transition(evNext)
	s.Start(s.world.Wave + 1)
}

func (s *WaveSystem) transition(name string) {
	if err := s.machine.Event(context.Background(), name); err != nil && s.logger != nil {
		s.logger.Error("wave transition failed", "event", name, "state", s.machine.Current(), "err", err)
	}
}

// spawn appends the roster of wave n. Dying enemies of the previous wave keep fading.
func (s *WaveSystem) spawn(n int) {
	w := float64(s.world.Map.Width)
	h := float64(s.world.Map.Height)
	count := defs.MinionCount(n)
	weights := defs.MinionWeights(n)

	for i := 0; i < count; i++ {
		t := utils.ChooseWeighted(s.rng, weights)
		x, y := s.placement(w, h)
		s.world.AddEnemy(defs.NewEnemy(t, n, component.MinionTag(n, i), x, y))
	}
	s.world.AddEnemy(defs.NewEnemy(component.Boss, n, component.BossTag(n), w/2, defs.BossSpawnY))
	s.roster = count + 1

	if s.logger != nil {
		s.logger.Info("wave started", "wave", n, "minions", count, "boss", defs.BossThemeForWave(n).Name)
	}
	s.dispatcher.Emit(event.WaveStarted, event.WaveData{Wave: n})
}

// placement picks a random point in the far part of the map, retrying a
// bounded number of times to land off water.
func (s *WaveSystem) placement(w, h float64) (float64, float64) {
	maxX := math.Max(w-2*defs.SpawnSideMargin, 1)
	maxY := math.Max(h-defs.SpawnFarMargin, 1)
	var x, y float64
	for attempt := 0; attempt < defs.SpawnRetries; attempt++ {
		x = s.rng.Float64()*maxX + defs.SpawnSideMargin
		y = s.rng.Float64() * maxY
		if !s.world.Map.IsWater(int(math.Floor(x)), int(math.Floor(y))) {
			break
		}
	}
	return math.Min(x, w), math.Min(y, h)
}
