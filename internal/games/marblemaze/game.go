// Package marblemaze rolls a marble through a walled maze. Pearls restore
// the marble's draining health.
package marblemaze

import (
	"github.com/vovakirdan/scene-arcade/internal/config"
	"github.com/vovakirdan/scene-arcade/internal/contact"
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

// Game implements Marble Maze.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.MarbleMazeConfig

	world    *scene.World
	loop     *engine.Loop
	contacts *contact.Dispatcher
	sess     *session.State
	view     scene.Projector

	ball   *scene.Entity
	pearls []*scene.Entity
	start  scene.Vec3
	width  int
	height int

	bumps  int
	drain  int // playing frames since the last health point was lost
	paused bool
}

// New creates a new Marble Maze game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "marblemaze"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Marble Maze"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMarbleMaze(configPath)
	if err != nil {
		cfg = config.DefaultMarbleMazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMarbleMazePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.world = scene.NewWorld()
	g.loop = engine.NewLoop(g.world, runtime.TickRate)
	g.loop.OnContact(g.onContact)
	g.loop.OnFrame(g.onFrame)
	g.build(cfg.Level)

	g.contacts = contact.New(contact.ByName(BallName))
	g.contacts.Handle(scene.CategoryPillar, g.bump)
	g.contacts.Handle(scene.CategoryCrate, g.bump)
	g.contacts.Handle(scene.CategoryPearl, g.collectPearl)

	// Health is carried as the session's lives.
	g.sess = session.New(g.ID(), session.Defaults{Lives: cfg.Health.Max}, runtime.Scores)
	g.layout()
	g.bumps, g.drain, g.paused = 0, 0, false
}

func (g *Game) layout() {
	w := max(g.width, 1)
	h := max(g.height, 1)
	scale := min(float64(g.runtime.ScreenH-2)/float64(h), float64(g.runtime.ScreenW-2)/float64(2*w))
	scale = max(scale, 0.5)
	g.view = scene.Projector{
		Plane:   scene.PlaneXZ,
		OriginX: g.runtime.ScreenW / 2,
		OriginY: 1 + (g.runtime.ScreenH-1)/2,
		ScaleX:  scale * 2,
		ScaleY:  scale,
	}
}

// restart rolls the marble back to the start with full health.
func (g *Game) restart() {
	g.loop.Reset()
	g.ball.Position = g.start
	g.ball.Velocity = scene.Vec3{}
	for _, p := range g.pearls {
		p.Hidden = false
	}
	g.contacts.Reset()
	g.sess.Reset()
	g.bumps, g.drain = 0, 0
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
		g.push(in)
	}

	g.loop.Step()
	return core.StepResult{State: g.State()}
}

// push nudges the marble and caps its rolling speed.
func (g *Game) push(in core.InputFrame) {
	p := g.cfg.Ball.Push
	v := g.ball.Velocity
	if in.Has(core.ActionUp) {
		v.Z -= p
	}
	if in.Has(core.ActionDown) {
		v.Z += p
	}
	if in.Has(core.ActionLeft) {
		v.X -= p
	}
	if in.Has(core.ActionRight) {
		v.X += p
	}
	if v.Length() > g.cfg.Ball.MaxSpeed {
		v = v.WithLength(g.cfg.Ball.MaxSpeed)
	}
	g.ball.Velocity = v
}

func (g *Game) onContact(ev scene.ContactEvent) {
	if !g.sess.Playing() {
		return
	}
	g.contacts.Dispatch(ev)
}

// maxHealth is the health a session starts with, which is also the cap.
func (g *Game) maxHealth() int {
	return g.sess.Defaults().Lives
}

func (g *Game) bump(_, _ *scene.Entity) {
	g.bumps++
}

func (g *Game) collectPearl(_, pearl *scene.Entity) {
	pearl.Hidden = true
	g.sess.AddScore(1)
	g.sess.SetLives(min(g.sess.Lives()+g.cfg.Health.PearlBonus, g.maxHealth()))
	g.loop.After(g.cfg.Pearls.RespawnFrames, func() {
		pearl.Hidden = false
	})
}

// onFrame drains health while a session is running.
func (g *Game) onFrame(float64) {
	if !g.sess.Playing() || g.cfg.Health.DrainEvery <= 0 {
		return
	}
	g.drain++
	if g.drain < g.cfg.Health.DrainEvery {
		return
	}
	g.drain = 0
	if g.sess.LoseLife() {
		g.ball.Velocity = scene.Vec3{}
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
	Tick   uint64
	Score  int
	Health int
	Bumps  int
	World  scene.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.loop.Tick(),
		Score:  g.sess.Score(),
		Health: g.sess.Lives(),
		Bumps:  g.bumps,
		World:  g.world.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Health) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Bumps)  //#nosec G115 -- hash computation
	return h*31 + s.World.Hash()
}

// Register the game with the registry
func init() {
	registry.Register("marblemaze", func() registry.Game {
		return New()
	})
}
