package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default -> fallback
//
// Files are decoded over the hardcoded defaults, so a partial file only
// overrides the keys it names. Only an explicit customPath can fail; the
// implicit locations are skipped when missing or malformed.
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()
	filename := name + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath, fallback()); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", filename), fallback()); ok {
		return c, nil
	}

	// Use embedded default YAML
	if c, ok := decode(embedded, fallback()); ok {
		return c, nil
	}
	return fallback(), nil // Fallback to hardcoded if embed fails
}

func tryFile[T any](path string, cfg T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	return decode(data, cfg)
}

func decode[T any](data []byte, cfg T) (T, bool) {
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadGeometryFighter loads Geometry Fighter configuration.
func LoadGeometryFighter(customPath string) (GeometryFighterConfig, error) {
	return load("geometryfighter", customPath, defaultGeometryFighterYAML, DefaultGeometryFighterConfig)
}

// LoadBreaker loads Breaker configuration.
func LoadBreaker(customPath string) (BreakerConfig, error) {
	return load("breaker", customPath, defaultBreakerYAML, DefaultBreakerConfig)
}

// LoadMarbleMaze loads Marble Maze configuration.
func LoadMarbleMaze(customPath string) (MarbleMazeConfig, error) {
	return load("marblemaze", customPath, defaultMarbleMazeYAML, DefaultMarbleMazeConfig)
}

// LoadMrPig loads Mr. Pig configuration.
func LoadMrPig(customPath string) (MrPigConfig, error) {
	return load("mrpig", customPath, defaultMrPigYAML, DefaultMrPigConfig)
}

// ApplyGeometryFighterPreset modifies the config based on a difficulty preset.
// Progression is handled by NewDifficultyForPreset.
func ApplyGeometryFighterPreset(cfg *GeometryFighterConfig, preset DifficultyPreset) {
	cfg.Gameplay.Lives = livesForPreset(cfg.Gameplay.Lives, preset)
}

// ApplyBreakerPreset modifies the config based on a difficulty preset.
// Breaker has no progression; presets change lives and ball speed.
func ApplyBreakerPreset(cfg *BreakerConfig, preset DifficultyPreset) {
	cfg.Gameplay.Lives = livesForPreset(cfg.Gameplay.Lives, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed *= 0.8
	case DifficultyHard:
		cfg.Ball.Speed *= 1.3
	}
}

// ApplyMarbleMazePreset modifies the config based on a difficulty preset.
// Presets change how fast health drains.
func ApplyMarbleMazePreset(cfg *MarbleMazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Health.DrainEvery *= 2
	case DifficultyHard:
		cfg.Health.DrainEvery = max(1, cfg.Health.DrainEvery*2/3)
	}
}
