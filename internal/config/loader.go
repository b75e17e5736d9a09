package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "snake.yaml"

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are parsed on top of the defaults, so partial files are allowed.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := ParseFile(customPath)
		if err != nil {
			return DefaultSnakeConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, err := ParseFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := ParseFile(filepath.Join("configs", ConfigFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseFile reads and parses a config file.
func ParseFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultSnakeConfig and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	var errs []error

	size := c.Board.Size
	if size < 4 {
		errs = append(errs, fmt.Errorf("board.size must be at least 4, got %d", size))
	}
	if c.Board.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("board.cell_size must be positive, got %d", c.Board.CellSize))
	}
	if c.Board.OriginOffset < 1 {
		errs = append(errs, fmt.Errorf("board.origin_offset must be at least 1, got %d", c.Board.OriginOffset))
	}

	// Initial segments trail to the left of the start cell.
	if c.Classic.InitialLength < 1 || c.Classic.StartX-c.Classic.InitialLength+1 < 0 {
		errs = append(errs, fmt.Errorf("classic snake of length %d does not fit left of x=%d", c.Classic.InitialLength, c.Classic.StartX))
	}
	if c.Neat.InitialLength < 1 || c.Neat.StartX-c.Neat.InitialLength+1 < 0 {
		errs = append(errs, fmt.Errorf("neat snake of length %d does not fit left of x=%d", c.Neat.InitialLength, c.Neat.StartX))
	}
	if c.Classic.StartX >= size || c.Classic.StartY < 0 || c.Classic.StartY >= size {
		errs = append(errs, fmt.Errorf("classic start (%d,%d) is off the board", c.Classic.StartX, c.Classic.StartY))
	}
	if c.Neat.StartX >= size || c.Neat.StartY < 0 || c.Neat.StartY >= size {
		errs = append(errs, fmt.Errorf("neat start (%d,%d) is off the board", c.Neat.StartX, c.Neat.StartY))
	}
	if c.Classic.MoveEveryTicks < 1 || c.Neat.MoveEveryTicks < 1 {
		errs = append(errs, errors.New("move_every_ticks must be at least 1"))
	}
	if c.Neat.Lifespan < 1 {
		errs = append(errs, fmt.Errorf("neat.lifespan must be positive, got %d", c.Neat.Lifespan))
	}

	if c.Training.Population < 1 {
		errs = append(errs, fmt.Errorf("training.population must be positive, got %d", c.Training.Population))
	}
	if c.Training.Hidden < 1 {
		errs = append(errs, fmt.Errorf("training.hidden must be positive, got %d", c.Training.Hidden))
	}
	if c.Training.Elite < 0 || c.Training.Elite > c.Training.Population {
		errs = append(errs, fmt.Errorf("training.elite must be within [0, population], got %d", c.Training.Elite))
	}
	if c.Training.MutationRate < 0 || c.Training.MutationRate > 1 {
		errs = append(errs, fmt.Errorf("training.mutation_rate must be within [0, 1], got %g", c.Training.MutationRate))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplyClassicPreset modifies the classic section based on a difficulty preset.
func ApplyClassicPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Classic.Difficulty.Enabled = false
	default:
		cfg.Classic.Difficulty.Enabled = true
		cfg.Classic.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
