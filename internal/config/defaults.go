package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size:         30,
			CellSize:     20,
			OriginOffset: 10,
		},
		Classic: ClassicConfig{
			InitialLength:  3,
			StartX:         14,
			StartY:         14,
			MoveEveryTicks: 6,
			Difficulty: DifficultyConfig{
				Enabled:      false,
				InitialLevel: 0.0,
				Progression: ProgressionConfig{
					Type:  "score",
					MaxAt: 50,
				},
				Scaling: ScalingConfig{
					SpeedMultiplier: 1.0,
				},
			},
		},
		Neat: NeatConfig{
			InitialLength:  5,
			StartX:         14,
			StartY:         14,
			Lifespan:       200,
			LifeBonus:      100,
			FoodReward:     5,
			MoveEveryTicks: 3,
		},
		Training: TrainingConfig{
			Population:    50,
			Generations:   100,
			Hidden:        8,
			Elite:         2,
			Tournament:    3,
			MutationRate:  0.1,
			MutationSigma: 0.5,
			MaxTicks:      5000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
