// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// Config contains all tunable gameplay parameters.
type Config struct {
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Speed     SpeedConfig     `yaml:"speed"`
	Parallax  ParallaxConfig  `yaml:"parallax"`
}

// PlayerConfig defines player placement, health, and animation parameters.
type PlayerConfig struct {
	X                  int     `yaml:"x"`                   // Fixed horizontal position
	GroundOffset       int     `yaml:"ground_offset"`       // Rows between the ground line and the bottom edge
	Health             int     `yaml:"health"`              // Starting and maximum health
	InvincibilityTicks int     `yaml:"invincibility_ticks"` // Damage immunity window after a hit
	AnimationStep      float64 `yaml:"animation_step"`      // Per-tick sprite phase increment
}

// PhysicsConfig defines the jump arc. Gravity and jump velocity are
// per-tick quantities; horizontal motion is Δt-scaled elsewhere.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Added to vertical velocity each tick while airborne
	JumpVelocity float64 `yaml:"jump_velocity"`  // Initial upward (negative) velocity
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity cap
}

// ObstacleConfig defines obstacle respawn behavior.
type ObstacleConfig struct {
	SpawnJitterMin int `yaml:"spawn_jitter_min"` // Minimum extra off-screen offset on respawn
	SpawnJitterMax int `yaml:"spawn_jitter_max"` // Maximum extra off-screen offset on respawn
}

// SpeedConfig defines the score-driven speed ratchet.
type SpeedConfig struct {
	Start     float64 `yaml:"start"`     // Speed at session reset, cells per tick
	Max       float64 `yaml:"max"`       // Hard cap, never exceeded
	Increment float64 `yaml:"increment"` // Added every Interval points while below Max
	Interval  int     `yaml:"interval"`  // Score interval between speed increases
}

// ParallaxConfig defines background scroll behavior.
type ParallaxConfig struct {
	Factor float64 `yaml:"factor"` // Per-layer scroll multiplier; layer i scrolls at (i+1)*Factor*speed
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset. Unknown presets
// leave the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Player.Health = 5
		cfg.Speed.Start = 0.4
	case PresetNormal:
		// Config defaults are the normal difficulty.
	case PresetHard:
		cfg.Player.Health = 2
		cfg.Speed.Start = 0.7
		cfg.Speed.Interval = 2
	}
}
