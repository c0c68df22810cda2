package config

import (
	_ "embed"
)

//go:embed defaults/geometryfighter.yaml
var defaultGeometryFighterYAML []byte

//go:embed defaults/breaker.yaml
var defaultBreakerYAML []byte

//go:embed defaults/marblemaze.yaml
var defaultMarbleMazeYAML []byte

//go:embed defaults/mrpig.yaml
var defaultMrPigYAML []byte

// DefaultGeometryFighterConfig returns the default Geometry Fighter configuration.
func DefaultGeometryFighterConfig() GeometryFighterConfig {
	return GeometryFighterConfig{
		Spawn: GeometryFighterSpawn{
			MinInterval: 0.2,
			MaxInterval: 1.5,
			ImpulseX:    2.0,
			MinImpulseY: 10.0,
			MaxImpulseY: 18.0,
			BadChance:   0.25,
			CullY:       -2.0,
		},
		Physics: ScenePhysics{
			Gravity: -9.8,
		},
		Gameplay: GeometryFighterGameplay{
			Lives:       3,
			CursorStep:  1.0,
			CursorRange: 8.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.5,
			},
		},
	}
}

// DefaultBreakerConfig returns the default Breaker configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Ball: BreakerBall{
			Speed:          5.0,
			DeflectDegrees: 20.0,
		},
		Paddle: BreakerPaddle{
			Step:  0.5,
			Limit: 4.5,
		},
		Bricks: BreakerBricks{
			Rows:          4,
			Columns:       11,
			RespawnFrames: 120,
		},
		Gameplay: BreakerGameplay{
			Lives: 3,
		},
	}
}

// DefaultMarbleMazeConfig returns the default Marble Maze configuration.
func DefaultMarbleMazeConfig() MarbleMazeConfig {
	return MarbleMazeConfig{
		Ball: MarbleMazeBall{
			Push:        1.5,
			MaxSpeed:    6.0,
			Damping:     0.6,
			Restitution: 0.5,
		},
		Health: MarbleMazeHealth{
			Max:        100,
			DrainEvery: 15,
			PearlBonus: 20,
		},
		Pearls: MarbleMazePearls{
			RespawnFrames: 30,
		},
		Level: LevelMap{Rows: []string{
			"#########",
			"#S..o...#",
			"#.P...X.#",
			"#...o...#",
			"#########",
		}},
	}
}

// DefaultMrPigConfig returns the default Mr. Pig configuration.
func DefaultMrPigConfig() MrPigConfig {
	return MrPigConfig{
		Pig: MrPigPig{
			Step:   1.0,
			BoundX: 15.0,
		},
		Traffic: MrPigTraffic{
			BusSpeed: 2.0,
			CarSpeed: 4.0,
			Wrap:     25.0,
		},
		Coins: MrPigCoins{
			RespawnFrames: 60,
		},
		Camera: MrPigCamera{
			Follow: 0.05,
		},
		Gameplay: MrPigGameplay{
			GameOverFrames: 120,
		},
		Level: LevelMap{Rows: []string{
			"TTTTTTTTTTTTTTTTTTTTTTTTTTTTTTT",
			"T.....$.......H.......$.......T",
			"===c=========c=========c=======",
			"T....$....T.........T....$....T",
			"...............P...............",
			"TTTTTTTTTTTTTTTTTTTTTTTTTTTTTTT",
		}},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "geometryfighter":
		return defaultGeometryFighterYAML
	case "breaker":
		return defaultBreakerYAML
	case "marblemaze":
		return defaultMarbleMazeYAML
	case "mrpig":
		return defaultMrPigYAML
	default:
		return nil
	}
}
