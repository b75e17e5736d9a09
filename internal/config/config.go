// Package config provides YAML-based game configuration loading,
// environment defaults and difficulty management for the snake platform.
package config

// SnakeConfig contains all configuration for the snake games and the trainer.
type SnakeConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Classic  ClassicConfig  `yaml:"classic"`
	Neat     NeatConfig     `yaml:"neat"`
	Training TrainingConfig `yaml:"training"`
}

// BoardConfig defines the fixed board geometry.
// CellSize and OriginOffset are pixel values used by the image exporter.
type BoardConfig struct {
	Size         int `yaml:"size"`
	CellSize     int `yaml:"cell_size"`
	OriginOffset int `yaml:"origin_offset"`
}

// ClassicConfig defines the keyboard-controlled game.
type ClassicConfig struct {
	InitialLength  int              `yaml:"initial_length"`
	StartX         int              `yaml:"start_x"`
	StartY         int              `yaml:"start_y"`
	MoveEveryTicks int              `yaml:"move_every_ticks"` // Platform ticks per board move
	Difficulty     DifficultyConfig `yaml:"difficulty"`
}

// NeatConfig defines the episode rules for controller-driven snakes.
type NeatConfig struct {
	InitialLength  int `yaml:"initial_length"`
	StartX         int `yaml:"start_x"`
	StartY         int `yaml:"start_y"`
	Lifespan       int `yaml:"lifespan"`
	LifeBonus      int `yaml:"life_bonus"`
	FoodReward     int `yaml:"food_reward"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// TrainingConfig defines the population and evolution parameters.
type TrainingConfig struct {
	Population    int     `yaml:"population"`
	Generations   int     `yaml:"generations"`
	Hidden        int     `yaml:"hidden"`
	Elite         int     `yaml:"elite"`
	Tournament    int     `yaml:"tournament"`
	MutationRate  float64 `yaml:"mutation_rate"`
	MutationSigma float64 `yaml:"mutation_sigma"`
	MaxTicks      int     `yaml:"max_ticks"` // Hard cap on ticks per generation
}

// DifficultyConfig defines the speed progression of the classic game.
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
