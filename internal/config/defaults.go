package config

import (
	_ "embed"
)

//go:embed defaults/brickout.yaml
var defaultYAML []byte

// Default returns the built-in game configuration. It mirrors the
// embedded YAML and serves as the last-resort fallback.
func Default() Config {
	return Config{
		Paddle: PaddleConfig{
			Width:    8,
			Height:   1,
			Accel:    120,
			MaxSpeed: 40,
			Friction: 80,
		},
		Ball: BallConfig{
			Radius:      0.5,
			Speed:       20,
			MaxSpeed:    35,
			SpinFactor:  0.3,
			ImpactBoost: 10,
		},
		Blocks: BlockConfig{
			Rows:      5,
			Cols:      10,
			TopOffset: 2,
			Height:    1,
			Gap:       1,
		},
		Particles: ParticleConfig{
			Count:    6,
			Lifetime: 0.6,
			Gravity:  40,
			Speed:    12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				BallSpeedMultiplier: 15,
				PaddleShrink:        3,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
