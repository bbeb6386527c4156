// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.1 // больший шаг после зависания не симулируем

	ViewRange      = 16   // тайлов от игрока в каждую сторону
	CullMargin     = 64.0 // пикселей за краем экрана
	MinimapScale   = 2    // пикселей на тайл
	MinimapMargin  = 16
	BossBarMaxW    = 600
	BossBarHeight  = 24
	BossBarY       = 80
	StatBarWidth   = 220
	StatBarHeight  = 14
	HitFlashTime   = 0.2 // секунды подсветки после удара
	BlinkDuration  = 0.15
	BlinkMinPeriod = 2.0
	BlinkMaxPeriod = 5.0

	TextCharWidth = 7
	TextOffsetY   = 4

	// Частицы
	Gravity        = 9.8
	BounceDamping  = -0.5
	BounceFriction = 0.5
	TextRiseRate   = 10.0
	ShockwaveGrow  = 10.0
	ShakeDecay     = 20.0
	WalkDustChance = 0.1
	AuraChance     = 0.3
	TrailChance    = 0.7
)

var (
	BackgroundColor = color.RGBA{6, 78, 59, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	ShadowColor     = color.RGBA{0, 0, 0, 76}

	SparkColor      = color.RGBA{249, 115, 22, 255}  // оранжевый
	SparkKillColor  = color.RGBA{252, 211, 77, 255}  // золотой
	ObsidianSpark   = color.RGBA{216, 180, 254, 255} // фиолетовый
	DamageTextColor = color.RGBA{255, 255, 255, 255}
	KillTextColor   = color.RGBA{239, 68, 68, 255}
	RuneTextColor   = color.RGBA{192, 132, 252, 255}
	SpinRingColor   = color.RGBA{14, 165, 233, 255}
	BlastRingColor  = color.RGBA{255, 237, 213, 255}
	FlameRed        = color.RGBA{239, 68, 68, 255}
	FlameAmber      = color.RGBA{251, 191, 36, 255}
	FlameYellow     = color.RGBA{252, 211, 77, 255}
	WalkDustColor   = color.RGBA{148, 163, 184, 255}
	BloodColor      = color.RGBA{153, 27, 27, 255}

	MinimapBackground = color.RGBA{15, 23, 42, 200}
	MinimapWater      = color.RGBA{30, 58, 138, 255}
	MinimapStone      = color.RGBA{71, 85, 105, 255}
	MinimapPlayer     = color.RGBA{34, 211, 238, 255}
	MinimapEnemy      = color.RGBA{239, 68, 68, 255}
	MinimapBoss       = color.RGBA{250, 204, 21, 255}

	BossBarBack    = color.RGBA{0, 0, 0, 180}
	BossBarFill    = color.RGBA{220, 38, 38, 255}
	BossBarTrail   = color.RGBA{252, 165, 165, 255}
	HPBarFill      = color.RGBA{34, 197, 94, 255}
	MPBarFill      = color.RGBA{59, 130, 246, 255}
	XPBarFill      = color.RGBA{234, 179, 8, 255}
	BarBackColor   = color.RGBA{30, 41, 59, 220}
	PanelColor     = color.RGBA{15, 23, 42, 220}
	ButtonColor    = color.RGBA{70, 130, 180, 220}
	ButtonActive   = color.RGBA{220, 60, 60, 220}
	IndicatorColor = color.RGBA{240, 240, 240, 255}
)
