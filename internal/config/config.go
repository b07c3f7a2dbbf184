// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	GroundHeight = 100
	LaneY        = ScreenHeight / 2
	LaneHalf     = 75 // lane strip extends this far above and below LaneY

	MaxDeltaTime = 0.06

	TowerHealth     = 3500
	TowerDamage     = 50
	TowerAttackRate = 1.0 // seconds between shots
	TowerRange      = 300.0
	PlayerTowerX    = 50.0
	EnemyTowerX     = ScreenWidth - 50.0

	// A unit whose X crosses within this distance of the opposing tower's
	// center hits the base directly and despawns.
	BaseReachOffset = 60.0

	PlayerSpawnX = 150.0
	EnemySpawnX  = ScreenWidth - 150.0

	WaypointSpacing        = 50.0
	WaypointArriveDistance = 5.0

	// Units scan for targets out to this multiple of their attack range.
	TargetSearchFactor = 1.5
	// Candidates closer together than this count as tied on distance and the
	// tie breaks on HP. Tuned balance value, not derived.
	TargetTieBand = 10.0
	// Splash radius around the primary target for area attackers, same story.
	SplashRadius       = 60.0
	SplashDamageFactor = 0.5

	StartingElixir = 5
	MaxElixir      = 10
	ElixirInterval = 2.0 // seconds per point, both sides

	MatchDuration = 120.0

	FreezeDuration     = 5.0
	FreezeCooldown     = 30.0
	FreezeScatterCount = 20 // decorative tracers on activation

	// Tracer effects advance this much progress per second.
	EffectSpeed = 3.0

	WaveCooldown        = 10.0
	WaveIntervalDamping = 0.9 // applied to every wave on loop-around
	MinSpawnInterval    = 2.0
)

var (
	BackgroundColor = color.RGBA{170, 180, 190, 255}
	LaneColor       = color.RGBA{80, 80, 90, 255}
	GroundColor     = color.RGBA{120, 90, 55, 255}
	MidlineColor    = color.RGBA{250, 220, 60, 255}

	PlayerColor = color.RGBA{60, 110, 235, 255}
	EnemyColor  = color.RGBA{220, 60, 60, 255}
	FrozenColor = color.RGBA{120, 200, 250, 255}

	ElixirColor     = color.RGBA{170, 60, 220, 255}
	PanelColor      = color.RGBA{50, 50, 60, 220}
	HealthBackColor = color.RGBA{200, 40, 40, 255}
	HealthFillColor = color.RGBA{60, 200, 60, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	ReadyColor      = color.RGBA{60, 180, 75, 255}
	CooldownColor   = color.RGBA{40, 60, 110, 255}
	WarningColor    = color.RGBA{235, 160, 40, 255}
)
