// Package geometryfighter launches random shapes into the air. Slice the
// good ones before they fall, leave the gray ones alone.
package geometryfighter

import (
	"math"

	"github.com/vovakirdan/scene-arcade/internal/config"
	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/engine"
	"github.com/vovakirdan/scene-arcade/internal/registry"
	"github.com/vovakirdan/scene-arcade/internal/scene"
	"github.com/vovakirdan/scene-arcade/internal/session"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

const (
	cursorHalf  = 0.5 // half width of the slicing column
	slashFrames = 6
	viewSpan    = 20.0 // world units of height on screen
	viewCenterY = 8.0
)

// Game implements Geometry Fighter.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.GeometryFighterConfig
	difficulty *config.DifficultyManager

	world   *scene.World
	loop    *engine.Loop
	spawner *engine.Spawner
	sess    *session.State
	view    scene.Projector

	cursorX float64
	slash   int // frames of slash flash left
	spawned int
	sliced  int
	paused  bool
}

// New creates a new Geometry Fighter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "geometryfighter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Geometry Fighter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadGeometryFighter(configPath)
	if err != nil {
		cfg = config.DefaultGeometryFighterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGeometryFighterPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyForPreset(cfg.Difficulty, difficultyPreset)

	g.world = scene.NewWorld()
	g.world.Gravity = scene.V(0, cfg.Physics.Gravity, 0)
	g.loop = engine.NewLoop(g.world, runtime.TickRate)
	g.loop.OnFrame(g.onFrame)
	g.spawner = engine.NewSpawner(runtime.Seed, cfg.Spawn.MinInterval, cfg.Spawn.MaxInterval)

	g.sess = session.New(g.ID(), session.Defaults{Lives: cfg.Gameplay.Lives}, runtime.Scores)
	g.layout()
	g.restart()
}

func (g *Game) layout() {
	h := max(g.runtime.ScreenH-1, 1)
	scale := float64(max(h-1, 1)) / viewSpan
	g.view = scene.Projector{
		Plane:   scene.PlaneXY,
		Center:  scene.V(0, viewCenterY, 0),
		OriginX: g.runtime.ScreenW / 2,
		OriginY: 1 + h/2,
		ScaleX:  scale * 2,
		ScaleY:  scale,
	}
}

// restart clears the sky and returns to the title with fresh lives.
func (g *Game) restart() {
	g.world.Clear()
	g.loop.Reset()
	g.spawner.Reset(g.runtime.Seed)
	g.sess.Reset()
	g.cursorX = 0
	g.slash, g.spawned, g.sliced = 0, 0, 0
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.sess.Playing() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.sess.Mode() {
	case session.ModeTapToPlay:
		if in.Has(core.ActionJump) {
			g.sess.Start()
		}
		return core.StepResult{State: g.State()}
	case session.ModeGameOver:
		if in.Has(core.ActionRestart) {
			g.restart()
			return core.StepResult{State: g.State()}
		}
	case session.ModePlaying:
		g.moveCursor(in)
		if in.Has(core.ActionJump) {
			g.slice()
		}
	}

	g.loop.Step()
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	step, limit := g.cfg.Gameplay.CursorStep, g.cfg.Gameplay.CursorRange
	if in.Has(core.ActionLeft) {
		g.cursorX = core.ClampF(g.cursorX-step, -limit, limit)
	}
	if in.Has(core.ActionRight) {
		g.cursorX = core.ClampF(g.cursorX+step, -limit, limit)
	}
}

// slice cuts every shape in the cursor column.
func (g *Game) slice() {
	g.slash = slashFrames
	g.world.Each(func(e *scene.Entity) {
		if e.Category() != scene.CategoryShape || e.Hidden {
			return
		}
		if math.Abs(e.Position.X-g.cursorX) > e.Extent.X+cursorHalf {
			return
		}
		g.world.Remove(e.ID())
		g.sliced++
		if e.Kind == KindBad {
			g.loseLife()
			return
		}
		g.sess.AddScore(1)
	})
}

// onFrame spawns on schedule and removes shapes that fell out of view.
func (g *Game) onFrame(now float64) {
	if g.slash > 0 {
		g.slash--
	}

	if g.sess.Playing() {
		if g.difficulty.IsEnabled() {
			ticks := int(g.loop.Tick()) //#nosec G115 -- tick count fits in int
			score := g.sess.Score()
			g.spawner.Min = g.difficulty.Interval(g.cfg.Spawn.MinInterval, score, ticks)
			g.spawner.Max = g.difficulty.Interval(g.cfg.Spawn.MaxInterval, score, ticks)
		}
		if g.spawner.Due(now) {
			g.spawnRandom()
		}
	}

	for _, e := range engine.Cull(g.world, g.cfg.Spawn.CullY) {
		if e.Kind == KindGood && g.sess.Playing() {
			g.loseLife()
		}
	}
}

func (g *Game) loseLife() {
	if g.sess.LoseLife() {
		// Persistence failures are reported by the keeper itself.
		_ = g.sess.End()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.sess.Score(),
		HighScore: g.sess.HighScore(),
		Lives:     g.sess.Lives(),
		GameOver:  g.sess.Mode() == session.ModeGameOver,
		Paused:    g.paused,
	}
}

// Snapshot contains the game state used for determinism checks.
type Snapshot struct {
	Tick    uint64
	Score   int
	Lives   int
	Spawned int
	World   scene.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.loop.Tick(),
		Score:   g.sess.Score(),
		Lives:   g.sess.Lives(),
		Spawned: g.spawned,
		World:   g.world.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Spawned) //#nosec G115 -- hash computation
	return h*31 + s.World.Hash()
}

// Register the game with the registry
func init() {
	registry.Register("geometryfighter", func() registry.Game {
		return New()
	})
}
