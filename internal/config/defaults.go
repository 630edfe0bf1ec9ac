package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Default returns the default runner configuration. These values assume a
// roughly 80x24 screen at 60 ticks per second.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			X:                  8,
			GroundOffset:       2,
			Health:             3,
			InvincibilityTicks: 60,
			AnimationStep:      0.2,
		},
		Physics: PhysicsConfig{
			Gravity:      0.045,
			JumpVelocity: -0.55,
			MaxFallSpeed: 1.2,
		},
		Obstacles: ObstacleConfig{
			SpawnJitterMin: 0,
			SpawnJitterMax: 20,
		},
		Speed: SpeedConfig{
			Start:     0.5,
			Max:       1.5,
			Increment: 0.05,
			Interval:  3,
		},
		Parallax: ParallaxConfig{
			Factor: 0.25,
		},
	}
}
