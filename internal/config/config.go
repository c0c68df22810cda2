// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// GeometryFighterConfig contains all configuration for Geometry Fighter.
type GeometryFighterConfig struct {
	Spawn      GeometryFighterSpawn    `yaml:"spawn"`
	Physics    ScenePhysics            `yaml:"physics"`
	Gameplay   GeometryFighterGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig        `yaml:"difficulty"`
}

// GeometryFighterSpawn defines how shapes are launched.
type GeometryFighterSpawn struct {
	MinInterval float64 `yaml:"min_interval"` // seconds
	MaxInterval float64 `yaml:"max_interval"` // seconds
	ImpulseX    float64 `yaml:"impulse_x"`    // horizontal impulse drawn from [-x, x]
	MinImpulseY float64 `yaml:"min_impulse_y"`
	MaxImpulseY float64 `yaml:"max_impulse_y"`
	BadChance   float64 `yaml:"bad_chance"` // probability a shape is bad
	CullY       float64 `yaml:"cull_y"`     // shapes below this height are removed
}

// ScenePhysics holds world-level physics parameters.
type ScenePhysics struct {
	Gravity float64 `yaml:"gravity"` // acceleration on Y, units/s^2 (negative pulls down)
}

// GeometryFighterGameplay defines lives and the slicing cursor.
type GeometryFighterGameplay struct {
	Lives       int     `yaml:"lives"`
	CursorStep  float64 `yaml:"cursor_step"`  // world units per key press
	CursorRange float64 `yaml:"cursor_range"` // cursor is clamped to [-range, range]
}

// BreakerConfig contains all configuration for Breaker.
type BreakerConfig struct {
	Ball     BreakerBall     `yaml:"ball"`
	Paddle   BreakerPaddle   `yaml:"paddle"`
	Bricks   BreakerBricks   `yaml:"bricks"`
	Gameplay BreakerGameplay `yaml:"gameplay"`
}

// BreakerBall defines ball movement.
type BreakerBall struct {
	Speed          float64 `yaml:"speed"`           // constant speed, units/s
	DeflectDegrees float64 `yaml:"deflect_degrees"` // angle change on a paddle side zone
}

// BreakerPaddle defines paddle movement.
type BreakerPaddle struct {
	Step  float64 `yaml:"step"`  // world units per key press
	Limit float64 `yaml:"limit"` // paddle center is clamped to [-limit, limit]
}

// BreakerBricks defines the brick wall.
type BreakerBricks struct {
	Rows          int `yaml:"rows"`
	Columns       int `yaml:"columns"`
	RespawnFrames int `yaml:"respawn_frames"`
}

// BreakerGameplay defines lives.
type BreakerGameplay struct {
	Lives int `yaml:"lives"`
}

// MarbleMazeConfig contains all configuration for Marble Maze.
type MarbleMazeConfig struct {
	Ball   MarbleMazeBall   `yaml:"ball"`
	Health MarbleMazeHealth `yaml:"health"`
	Pearls MarbleMazePearls `yaml:"pearls"`
	Level  LevelMap         `yaml:"level"`
}

// MarbleMazeBall defines how the marble rolls.
type MarbleMazeBall struct {
	Push        float64 `yaml:"push"`      // velocity added per key press
	MaxSpeed    float64 `yaml:"max_speed"` // units/s
	Damping     float64 `yaml:"damping"`   // fraction of velocity lost per second
	Restitution float64 `yaml:"restitution"`
}

// MarbleMazeHealth defines the draining health meter.
type MarbleMazeHealth struct {
	Max        int `yaml:"max"`
	DrainEvery int `yaml:"drain_every"` // frames per point of health lost
	PearlBonus int `yaml:"pearl_bonus"`
}

// MarbleMazePearls defines pearl pickups.
type MarbleMazePearls struct {
	RespawnFrames int `yaml:"respawn_frames"`
}

// MrPigConfig contains all configuration for Mr. Pig.
type MrPigConfig struct {
	Pig        MrPigPig         `yaml:"pig"`
	Traffic    MrPigTraffic     `yaml:"traffic"`
	Coins      MrPigCoins       `yaml:"coins"`
	Camera     MrPigCamera      `yaml:"camera"`
	Gameplay   MrPigGameplay    `yaml:"gameplay"`
	Level      LevelMap         `yaml:"level"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MrPigPig defines the jumping pig.
type MrPigPig struct {
	Step   float64 `yaml:"step"`    // world units per jump
	BoundX float64 `yaml:"bound_x"` // pig X is clamped to [-bound, bound]
}

// MrPigTraffic defines vehicle lanes.
type MrPigTraffic struct {
	BusSpeed float64 `yaml:"bus_speed"` // units/s
	CarSpeed float64 `yaml:"car_speed"` // units/s
	Wrap     float64 `yaml:"wrap"`      // vehicles past ±wrap reappear on the other side
}

// MrPigCoins defines coin pickups.
type MrPigCoins struct {
	RespawnFrames int `yaml:"respawn_frames"`
}

// MrPigCamera defines the follow camera.
type MrPigCamera struct {
	Follow float64 `yaml:"follow"` // smoothing factor per frame
}

// MrPigGameplay defines the session flow.
type MrPigGameplay struct {
	GameOverFrames int `yaml:"game_over_frames"` // length of the spin-away before returning to the title
}

// LevelMap is an ASCII level, one string per row. Each game defines its own legend.
type LevelMap struct {
	Rows []string `yaml:"rows"`
}

// Size returns the width of the widest row and the number of rows.
func (m LevelMap) Size() (w, h int) {
	for _, r := range m.Rows {
		w = max(w, len(r))
	}
	return w, len(m.Rows)
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
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction cut from spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

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

// livesForPreset shifts a base life count: easy grants two extra, hard takes one away.
func livesForPreset(base int, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return base + 2
	case DifficultyHard:
		return max(1, base-1)
	default:
		return base
	}
}
