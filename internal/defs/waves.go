// internal/defs/waves.go
package defs

import (
	"go-iso-arena/internal/component"
	"go-iso-arena/internal/utils"
)

const (
	BaseMinions     = 3
	MinionsPerWave  = 1.5
	SpawnRetries    = 10
	SpawnSideMargin = 2  // тайлов от левого и правого края
	SpawnFarMargin  = 15 // нижняя часть карты, где стоит игрок, пустая
	BossSpawnY      = 5
	MaxTypeWeight   = 60
)

// MinionCount returns 3 + floor(1.5·N).
func MinionCount(wave int) int {
	return BaseMinions + int(float64(wave)*MinionsPerWave)
}

// MinionWeights returns the weighted type table for wave N.
// Wave 1 is an even Zombie/Goblin split. Later waves shift weight to
// Ghosts and Skeletons as N grows.
func MinionWeights(wave int) []utils.Weighted[component.EnemyType] {
	if wave <= 1 {
		return []utils.Weighted[component.EnemyType]{
			{Value: component.Zombie, Weight: 50},
			{Value: component.Goblin, Weight: 50},
		}
	}
	tough := 30 + wave
	if tough > MaxTypeWeight {
		tough = MaxTypeWeight
	}
	return []utils.Weighted[component.EnemyType]{
		{Value: component.Zombie, Weight: 20},
		{Value: component.Goblin, Weight: 20},
		{Value: component.Ghost, Weight: tough},
		{Value: component.Skeleton, Weight: tough},
	}
}

// Reward returns xp and gold for a kill in wave N.
func Reward(wave int, boss bool) (xp, gold int) {
	m := 1
	if boss {
		m = 10
	}
	return 20 * wave * m, 15 * wave * m
}
