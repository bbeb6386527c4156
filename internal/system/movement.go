// internal/system/movement.go
package system

import (
	"math"

	"go-iso-arena/internal/config"
	"go-iso-arena/internal/entity"
	"go-iso-arena/internal/input"
	"go-iso-arena/internal/interfaces"
	"go-iso-arena/internal/utils"
	"go-iso-arena/pkg/iso"
)

// MovementSystem двигает игрока по вводу и врагов к игроку.
type MovementSystem struct {
	world     *entity.World
	collision *CollisionSystem
	fx        *VisualEffectSystem
	stats     interfaces.StatsSource
	rng       *utils.PRNGService
	tuning    *config.Tuning
}

func NewMovementSystem(world *entity.World, collision *CollisionSystem, fx *VisualEffectSystem,
	stats interfaces.StatsSource, rng *utils.PRNGService, tuning *config.Tuning) *MovementSystem {
	return &MovementSystem{
		world:     world,
		collision: collision,
		fx:        fx,
		stats:     stats,
		rng:       rng,
		tuning:    tuning,
	}
}

func (s *MovementSystem) Update(deltaTime float64, in input.State) {
	s.movePlayer(deltaTime, in)
	s.moveEnemies(deltaTime)

	p := s.world.Player
	p.Pos = s.collision.Clamp(p.Pos)
	s.updateFacingLeft(in)
}

func (s *MovementSystem) movePlayer(deltaTime float64, in input.State) {
	p := s.world.Player
	p.Moving = in.Moving()
	if !p.Moving {
		return
	}

	speedMod := 1.0
	if s.stats != nil {
		if m := s.stats.Stats().SpeedMod; m > 0 {
			speedMod = m
		}
	}
	step := s.tuning.Player.Speed * speedMod * deltaTime
	wx, wy := iso.ScreenDirToWorld(in.X, in.Y)
	p.Pos = s.collision.MoveAxisSplit(p.Pos, wx*step, wy*step)
	p.Facing = math.Atan2(in.Y, in.X)

	if s.rng.Chance(config.WalkDustChance) {
		s.fx.SpawnWalkDust(p.Pos.X, p.Pos.Y)
	}
}

// moveEnemies: прямое преследование без разделения по осям.
// Слишком близкий враг отталкивает игрока, если точка свободна.
func (s *MovementSystem) moveEnemies(deltaTime float64) {
	p := s.world.Player
	c := s.tuning.Combat
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		dx, dy := p.Pos.X-e.Pos.X, p.Pos.Y-e.Pos.Y
		dist := math.Hypot(dx, dy)
		safe := utils.SafeLen(dx, dy)

		if dist > c.PursuitStop {
			e.Pos.X += dx / safe * e.Speed * deltaTime
			e.Pos.Y += dy / safe * e.Speed * deltaTime
		}
		if dist < c.RepelRadius {
			push := c.RepelSpeed * deltaTime
			px, py := p.Pos.X+dx/safe*push, p.Pos.Y+dy/safe*push
			if s.collision.CanOccupy(px, py) {
				p.Pos.X, p.Pos.Y = px, py
			}
		}
	}
}

// updateFacingLeft mirrors the sprite toward the nearest enemy in range,
// otherwise toward the horizontal input direction.
func (s *MovementSystem) updateFacingLeft(in input.State) {
	p := s.world.Player
	if e, d := s.world.Nearest(); e != nil && d < s.tuning.Autoplay.DetectRange {
		p.FacingLeft = (e.Pos.X-p.Pos.X)-(e.Pos.Y-p.Pos.Y) < 0
		return
	}
	if in.Moving() {
		p.FacingLeft = in.X < 0
	}
}
