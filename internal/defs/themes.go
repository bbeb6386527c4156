// internal/defs/themes.go
package defs

import (
	"image/color"

	"go-iso-arena/internal/component"
)

// Palette is the four-colour scheme a drawing strategy paints with.
type Palette struct {
	Skin   color.RGBA
	Dark   color.RGBA
	Accent color.RGBA
	Detail color.RGBA
}

// BossTheme: имя и раскраска босса для архетипа
type BossTheme struct {
	Archetype component.BossArchetype
	Name      string
	Palette   Palette
	Glow      color.RGBA
	Aura      color.RGBA
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}

// BossThemes is indexed by archetype.
var BossThemes = [4]BossTheme{
	component.Rex: {
		Archetype: component.Rex,
		Name:      "PRIMEVAL REX",
		Palette:   Palette{Skin: rgb(0x4d7c0f), Dark: rgb(0x365314), Accent: rgb(0xecfccb), Detail: rgb(0x1a2e05)},
		Glow:      rgb(0xef4444),
		Aura:      rgb(0x84cc16),
	},
	component.Lich: {
		Archetype: component.Lich,
		Name:      "THE UNDYING KING",
		Palette:   Palette{Skin: rgb(0xe2e8f0), Dark: rgb(0x1e293b), Accent: rgb(0x7f1d1d), Detail: rgb(0xfbbf24)},
		Glow:      rgb(0x8b5cf6),
		Aura:      rgb(0x581c87),
	},
	component.Wraith: {
		Archetype: component.Wraith,
		Name:      "VOID REAPER",
		Palette:   Palette{Skin: rgb(0x0f172a), Dark: rgb(0x020617), Accent: rgb(0x0ea5e9), Detail: rgb(0x94a3b8)},
		Glow:      rgb(0x22d3ee),
		Aura:      rgb(0x0c4a6e),
	},
	component.Drake: {
		Archetype: component.Drake,
		Name:      "INFERNO DRAKE",
		Palette:   Palette{Skin: rgb(0x7f1d1d), Dark: rgb(0x450a0a), Accent: rgb(0xfdba74), Detail: rgb(0x000000)},
		Glow:      rgb(0xfbbf24),
		Aura:      rgb(0xb91c1c),
	},
}

// BossThemeForWave returns the theme of the wave's boss archetype.
func BossThemeForWave(wave int) BossTheme {
	return BossThemes[component.ArchetypeForWave(wave)]
}

// enemyPalettes holds four tiers per minion type.
var enemyPalettes = map[component.EnemyType][4]Palette{
	component.Zombie: {
		{Skin: rgb(0x78716c), Dark: rgb(0x44403c), Accent: rgb(0x881337), Detail: rgb(0x1c1917)},
		{Skin: rgb(0x57534e), Dark: rgb(0x1e3a8a), Accent: rgb(0x991b1b), Detail: rgb(0x000000)},
		{Skin: rgb(0x3f6212), Dark: rgb(0x3f3f46), Accent: rgb(0x450a0a), Detail: rgb(0x1a2e05)},
		{Skin: rgb(0x5b21b6), Dark: rgb(0x171717), Accent: rgb(0xbe123c), Detail: rgb(0x2e1065)},
	},
	component.Goblin: {
		{Skin: rgb(0x65a30d), Dark: rgb(0x713f12), Accent: rgb(0xa8a29e), Detail: rgb(0x1a2e05)},
		{Skin: rgb(0xb91c1c), Dark: rgb(0x451a03), Accent: rgb(0x78716c), Detail: rgb(0x450a0a)},
		{Skin: rgb(0x0891b2), Dark: rgb(0x1e3a8a), Accent: rgb(0x94a3b8), Detail: rgb(0x0c4a6e)},
		{Skin: rgb(0x9333ea), Dark: rgb(0x4c1d95), Accent: rgb(0xcbd5e1), Detail: rgb(0x2e1065)},
	},
	component.Skeleton: {
		{Skin: rgb(0xe2e8f0), Dark: rgb(0x94a3b8), Accent: rgb(0x475569), Detail: rgb(0x0f172a)},
		{Skin: rgb(0xa8a29e), Dark: rgb(0x78716c), Accent: rgb(0x7f1d1d), Detail: rgb(0x1c1917)},
		{Skin: rgb(0xbae6fd), Dark: rgb(0x7dd3fc), Accent: rgb(0x1e40af), Detail: rgb(0x0c4a6e)},
		{Skin: rgb(0xfef08a), Dark: rgb(0xfacc15), Accent: rgb(0x854d0e), Detail: rgb(0x422006)},
	},
	component.Ghost: {
		{Skin: rgb(0xbfdbfe), Dark: rgb(0x60a5fa), Accent: rgb(0x1e3a8a), Detail: rgb(0x1e3a8a)},
		{Skin: rgb(0xbbf7d0), Dark: rgb(0x4ade80), Accent: rgb(0x14532d), Detail: rgb(0x14532d)},
		{Skin: rgb(0xfecaca), Dark: rgb(0xef4444), Accent: rgb(0x7f1d1d), Detail: rgb(0x7f1d1d)},
		{Skin: rgb(0xe9d5ff), Dark: rgb(0xa855f7), Accent: rgb(0x581c87), Detail: rgb(0x581c87)},
	},
}

// PaletteTier returns (N-1)/2 mod 4.
func PaletteTier(wave int) int {
	if wave < 1 {
		wave = 1
	}
	return ((wave - 1) / 2) % 4
}

// EnemyPalette returns the colours of a minion type for wave N.
// Bosses use their archetype palette.
func EnemyPalette(t component.EnemyType, wave int) Palette {
	if t == component.Boss {
		return BossThemeForWave(wave).Palette
	}
	tiers, ok := enemyPalettes[t]
	if !ok {
		return Palette{Skin: rgb(0xffffff), Dark: rgb(0x000000)}
	}
	return tiers[PaletteTier(wave)]
}
