package config

import (
	"time"

	"github.com/automoto/notmarioland/gamemath"
)

const ts = gamemath.TileSize

// PlayerConfig contains the fixed-point player tuning. Speeds are in
// sub-pixel units per tick.
type PlayerConfig struct {
	// Horizontal movement
	MaxSpeed         int `yaml:"max_speed"`
	Accel            int `yaml:"accel"`
	AirAccelNum      int `yaml:"air_accel_num"`
	AirAccelDen      int `yaml:"air_accel_den"`
	SlipperyAccelDiv int `yaml:"slippery_accel_div"`
	OverspeedDecay   int `yaml:"overspeed_decay"`
	ReleaseDecayNum  int `yaml:"release_decay_num"`
	SlipperyDecayNum int `yaml:"slippery_decay_num"`
	DecayDen         int `yaml:"decay_den"`

	// Gravity
	Gravity         int `yaml:"gravity"`
	FastFallGravity int `yaml:"fast_fall_gravity"`
	HoldGravity     int `yaml:"hold_gravity"`
	HangFreezeDrain int `yaml:"hang_freeze_drain"`
	GroundFallCap   int `yaml:"ground_fall_cap"`
	SpeedCap        int `yaml:"speed_cap"`

	// Wall slide
	SlideFastCap    int `yaml:"slide_fast_cap"`
	SlideCap        int `yaml:"slide_cap"`
	SlideSeparation int `yaml:"slide_separation"`
	WallJumpFreeze  int `yaml:"wall_jump_freeze"`
	WallJumpSpeedX  int `yaml:"wall_jump_speed_x"`
	WallJumpSpeedY  int `yaml:"wall_jump_speed_y"`
	WallJumpMinAir  int `yaml:"wall_jump_min_air"`

	// Jumping
	JumpSpeed          int `yaml:"jump_speed"`
	DirectionalJumpNum int `yaml:"directional_jump_num"`
	DirectionalJumpDen int `yaml:"directional_jump_den"`
	CoyoteTicks        int `yaml:"coyote_ticks"`
	FastFallAirTicks   int `yaml:"fast_fall_air_ticks"`

	// Collision response
	LandingSpeed int `yaml:"landing_speed"`
	CeilingSpeed int `yaml:"ceiling_speed"`

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// TransitionConfig contains transition countdowns in ticks.
type TransitionConfig struct {
	DeathTicks int `yaml:"death_ticks"`
	DoorTicks  int `yaml:"door_ticks"`
	OpenTicks  int `yaml:"open_ticks"`
	WinTicks   int `yaml:"win_ticks"`
}

// HazardConfig contains saw and launcher tuning.
type HazardConfig struct {
	FastPeriod   int `yaml:"fast_period"`
	SlowPeriod   int `yaml:"slow_period"`
	FastSawSpeed int `yaml:"fast_saw_speed"`
	SlowSawSpeed int `yaml:"slow_saw_speed"`
	SawMargin    int `yaml:"saw_margin"`
}

// PickupConfig contains pickup tuning.
type PickupConfig struct {
	ArrowCooldown int `yaml:"arrow_cooldown"`
}

// ScreenConfig contains host window and timing settings.
type ScreenConfig struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Scale        int           `yaml:"scale"`
	TickRate     int           `yaml:"tick_rate"`
	MaxFrameTime time.Duration `yaml:"max_frame_time"`
}

// LevelsConfig points the host at a levelset directory. An empty Dir
// selects the bundled demo.
type LevelsConfig struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBoxes bool `yaml:"show_boxes"`
	LogLoads  bool `yaml:"log_loads"`
}

// Global configuration instances
var Player PlayerConfig
var Transition TransitionConfig
var Hazards HazardConfig
var Pickups PickupConfig
var Screen ScreenConfig
var Levels LevelsConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every section to its default.
func Reset() {
	Player = PlayerConfig{
		// Horizontal movement
		MaxSpeed:         gamemath.MaxPlayerSpeed,
		Accel:            gamemath.PlayerAccel,
		AirAccelNum:      3,
		AirAccelDen:      4,
		SlipperyAccelDiv: 4,
		OverspeedDecay:   ts / 128,
		ReleaseDecayNum:  11,
		SlipperyDecayNum: 15,
		DecayDen:         16,

		// Gravity
		Gravity:         ts / 32,
		FastFallGravity: ts / 16,
		HoldGravity:     ts / 80,
		HangFreezeDrain: 5,
		GroundFallCap:   ts / 6,
		SpeedCap:        ts,

		// Wall slide
		SlideFastCap:    ts / 4,
		SlideCap:        ts / 32,
		SlideSeparation: 4,
		WallJumpFreeze:  14,
		WallJumpSpeedX:  ts * 5 / 16,
		WallJumpSpeedY:  ts / 4,
		WallJumpMinAir:  1,

		// Jumping
		JumpSpeed:          ts * 5 / 16,
		DirectionalJumpNum: 9,
		DirectionalJumpDen: 8,
		CoyoteTicks:        15,
		FastFallAirTicks:   3,

		// Collision response
		LandingSpeed: 1,
		CeilingSpeed: gamemath.PixelSize,

		// Dimensions
		CollisionWidth:  ts,
		CollisionHeight: ts,
	}

	Transition = TransitionConfig{
		DeathTicks: 80,
		DoorTicks:  20,
		OpenTicks:  30,
		WinTicks:   120,
	}

	Hazards = HazardConfig{
		FastPeriod:   90,
		SlowPeriod:   150,
		FastSawSpeed: ts / 8,
		SlowSawSpeed: ts / 16,
		SawMargin:    gamemath.PixelSize * 3,
	}

	Pickups = PickupConfig{
		ArrowCooldown: 120,
	}

	Screen = ScreenConfig{
		Width:        gamemath.ScreenWidth,
		Height:       gamemath.ScreenHeight,
		Scale:        2,
		TickRate:     60,
		MaxFrameTime: 250 * time.Millisecond,
	}

	Levels = LevelsConfig{}

	Debug = DebugConfig{}
}
