// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Blocks     BlockConfig      `yaml:"blocks"`
	Particles  ParticleConfig   `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PaddleConfig defines paddle movement parameters. Speeds are in cells per
// second; the paddle accelerates toward MaxSpeed while input is held and
// decelerates by Friction when released.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Accel    float64 `yaml:"accel"`
	MaxSpeed float64 `yaml:"max_speed"`
	Friction float64 `yaml:"friction"`
}

// BallConfig defines ball physics parameters.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Launch speed (cells/sec)
	MaxSpeed    float64 `yaml:"max_speed"`    // Velocity magnitude cap
	SpinFactor  float64 `yaml:"spin_factor"`  // Fraction of paddle velocity added on hit
	ImpactBoost float64 `yaml:"impact_boost"` // Horizontal speed added per unit of impact offset
}

// BlockConfig defines the destructible block grid.
type BlockConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	TopOffset float64 `yaml:"top_offset"` // Rows between HUD and first block row
	Height    float64 `yaml:"height"`
	Gap       float64 `yaml:"gap"` // Horizontal spacing between blocks
}

// ParticleConfig defines the explosion particles spawned on block destruction.
type ParticleConfig struct {
	Count    int     `yaml:"count"`
	Lifetime float64 `yaml:"lifetime"` // Seconds before a particle expires
	Gravity  float64 `yaml:"gravity"`  // Downward acceleration (cells/sec^2)
	Speed    float64 `yaml:"speed"`    // Initial scatter speed
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	BallSpeedMultiplier float64 `yaml:"ball_speed_multiplier"` // Added to ball speed at max difficulty
	PaddleShrink        float64 `yaml:"paddle_shrink"`         // Paddle width reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset adjusts a config according to a named difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
