// internal/app/game.go
package app

import (
	"github.com/charmbracelet/log"

	"go-iso-arena/internal/component"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/entity"
	"go-iso-arena/internal/event"
	"go-iso-arena/internal/input"
	"go-iso-arena/internal/interfaces"
	"go-iso-arena/internal/progression"
	"go-iso-arena/internal/system"
	"go-iso-arena/internal/utils"
	"go-iso-arena/pkg/terrain"
)

var (
	_ interfaces.Game        = (*Game)(nil)
	_ interfaces.Progression = (*progression.Ledger)(nil)
)

// Options задает параметры забега.
type Options struct {
	Seed      int64 // 0 значит от текущего времени
	StartWave int
	Autoplay  bool
	Logger    *log.Logger
}

// Game holds the world, the systems and the progression ledger, and runs
// them in a fixed order once per frame.
type Game struct {
	World      *entity.World
	Tuning     config.Tuning
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService
	Ledger     *progression.Ledger
	Input      input.Slot

	CollisionSystem    *system.CollisionSystem
	VisualEffectSystem *system.VisualEffectSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	SkillSystem        *system.SkillSystem
	WaveSystem         *system.WaveSystem

	logger   *log.Logger
	opts     Options
	paused   bool
	lastTick float64
	hasTick  bool
	bestWave int
	fallen   bool
	hooks    []func(*event.Dispatcher)
}

// NewGame generates the terrain, spawns the first wave and wires the systems.
func NewGame(t config.Tuning, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	g := &Game{
		Tuning: t,
		logger: opts.Logger,
		opts:   opts,
	}
	g.reset(opts.Seed)
	return g
}

// reset builds a fresh run. Subscribers on the old dispatcher are dropped,
// so hosts re-attach sinks through OnReset.
func (g *Game) reset(seed int64) {
	g.Rng = utils.NewPRNGService(seed)
	g.Dispatcher = event.NewDispatcher()

	m := g.Tuning.Map
	tiles := terrain.GenerateWithSpawn(m.Width, m.Height, m.SpawnX, m.SpawnY, g.Rng)
	sx, sy := terrain.ClampSpawn(tiles, m.SpawnX, m.SpawnY)
	g.World = entity.NewWorld(tiles, sx, sy)

	g.Ledger = progression.NewLedger(g.Tuning, g.Dispatcher)
	tuning := &g.Tuning
	g.CollisionSystem = system.NewCollisionSystem(tiles, tuning.Combat.CollisionRadius)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.Rng)
	g.MovementSystem = system.NewMovementSystem(g.World, g.CollisionSystem, g.VisualEffectSystem, g.Ledger, g.Rng, tuning)
	g.CombatSystem = system.NewCombatSystem(g.World, g.CollisionSystem, g.VisualEffectSystem, g.Dispatcher, g.Ledger, g.Rng, tuning)
	g.ProjectileSystem = system.NewProjectileSystem(g.World, g.CombatSystem)
	g.SkillSystem = system.NewSkillSystem(g.World, g.VisualEffectSystem, g.Dispatcher, g.Ledger, g.Ledger, tuning)
	g.SkillSystem.SetAutoplay(g.opts.Autoplay)
	g.WaveSystem = system.NewWaveSystem(g.World, g.Dispatcher, g.Rng, g.logger)

	listener := &gameEventListener{game: g}
	g.Dispatcher.Subscribe(event.WaveStarted, listener)
	g.Dispatcher.Subscribe(event.EnemyKilled, listener)
	for _, hook := range g.hooks {
		hook(g.Dispatcher)
	}

	g.Input.Clear()
	g.paused = false
	g.hasTick = false
	g.fallen = false
	g.bestWave = 0
	g.Ledger.SetPaused(false)

	g.logger.Info("run started", "seed", g.Rng.Seed(), "map", tiles.Width, "water", tiles.Count(terrain.Water))
	g.WaveSystem.Start(g.opts.StartWave)
}

// OnReset attaches fn to the current dispatcher and to every dispatcher a
// later Restart creates.
func (g *Game) OnReset(fn func(*event.Dispatcher)) {
	g.hooks = append(g.hooks, fn)
	fn(g.Dispatcher)
}

// Restart begins a new run on a new seed with the same options.
func (g *Game) Restart() {
	g.reset(int64(g.Rng.Intn(1<<31-1)) + 1)
}

// Tick advances the simulation to wall-clock time now, in seconds.
// A paused tick only drops the baseline so resuming never produces a jump.
func (g *Game) Tick(now float64) {
	if g.paused {
		g.hasTick = false
		return
	}
	dt := 0.0
	if g.hasTick {
		dt = now - g.lastTick
	}
	g.lastTick = now
	g.hasTick = true
	g.Step(dt)
}

// Step runs one frame of dt seconds, clamped to config.MaxDeltaTime.
func (g *Game) Step(dt float64) {
	if g.paused {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt <= 0 {
		return
	}
	if g.fallen {
		// после гибели доигрывают только эффекты
		g.VisualEffectSystem.Update(dt)
		return
	}
	g.World.GameTime += dt

	in := g.Input.Read()
	in = g.SkillSystem.Update(dt, in)
	g.MovementSystem.Update(dt, in)
	g.CombatSystem.Update(dt, in.Attacking)
	g.ProjectileSystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.World.Compact()
	g.VisualEffectSystem.Update(dt)
	g.Ledger.Regen(g.World.GameTime)

	if g.Ledger.Dead() {
		g.fallen = true
		g.logger.Info("player fell", "wave", g.World.Wave, "cleared", g.Ledger.WavesClear, "kills", g.Ledger.Kills)
	}
}

// TogglePause flips pause and returns the new state.
func (g *Game) TogglePause() bool {
	g.SetPaused(!g.paused)
	return g.paused
}

func (g *Game) SetPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	g.hasTick = false
	g.Ledger.SetPaused(paused)
	g.Dispatcher.Sound(event.SFXClick)
}

func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) SetAutoplay(on bool) {
	g.SkillSystem.SetAutoplay(on)
	g.opts.Autoplay = on
}

func (g *Game) Autoplay() bool {
	return g.SkillSystem.Autoplay()
}

// Wave returns the current wave number.
func (g *Game) Wave() int {
	return g.WaveSystem.Current()
}

// BestWave is the highest wave reached in this run.
func (g *Game) BestWave() int {
	return g.bestWave
}

// Fallen reports whether the player died. The run stays frozen until Restart.
func (g *Game) Fallen() bool {
	return g.fallen
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.Rng.Seed()
}

// QueueSkill buffers a skill key for the next frame.
func (g *Game) QueueSkill(id component.SkillID) {
	g.SkillSystem.Queue().Push(id)
}

// gameEventListener следит за рекордом волны и пишет важные события в лог.
type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if d, ok := e.Data.(event.WaveData); ok && d.Wave > l.game.bestWave {
			l.game.bestWave = d.Wave
		}
	case event.EnemyKilled:
		if d, ok := e.Data.(event.EnemyKilledData); ok && d.Boss {
			l.game.logger.Info("boss slain", "wave", d.Wave, "runes", d.Runes)
		}
	}
}
