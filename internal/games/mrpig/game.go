// Package mrpig is a lane-crossing game: hop the pig between trees and
// traffic, pick up coins and carry them home to bank them.
package mrpig

import (
	"github.com/vovakirdan/scene-arcade/internal/config"
	"github.com/vovakirdan/scene-arcade/internal/contact"
	"github.com/vovakirdan/scene-arcade/internal/control"
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

const hopFrames = 12 // length of the visual bounce after a jump

// Game implements Mr. Pig.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.MrPigConfig
	difficulty *config.DifficultyManager

	world    *scene.World
	loop     *engine.Loop
	contacts *contact.Dispatcher
	sess     *session.State

	pig     *scene.Entity
	sensors map[control.Direction]*scene.Entity
	traffic []vehicle
	roads   []float64 // Z of every road row
	start   scene.Vec3
	bounds  control.Bounds
	jumper  control.Jumper

	camera *control.Follower
	light  scene.Vec3
	view   scene.Projector

	hop    int // frames of bounce left
	spin   int // frames of the game-over spin left
	paused bool
}

// New creates a new Mr. Pig game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "mrpig"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Mr. Pig"
}

// Reset builds the level and shows the title.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMrPig(configPath)
	if err != nil {
		cfg = config.DefaultMrPigConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyForPreset(cfg.Difficulty, difficultyPreset)

	g.world = scene.NewWorld()
	g.traffic = nil
	g.build(cfg.Level)

	g.jumper = control.Jumper{
		Bounds:   g.bounds,
		Step:     cfg.Pig.Step,
		Blocking: sensorCategories,
	}

	g.loop = engine.NewLoop(g.world, runtime.TickRate)
	g.loop.OnContact(g.onContact)
	g.loop.OnFrame(g.onFrame)

	sensorMask := scene.MaskOf(scene.CategoryFront, scene.CategoryBack, scene.CategoryLeft, scene.CategoryRight)
	g.contacts = contact.New(contact.ByName(PigName), contact.WithTracking(sensorMask))
	g.contacts.Handle(scene.CategoryVehicle, g.hitVehicle)
	g.contacts.Handle(scene.CategoryCoin, g.hitCoin)
	g.contacts.Handle(scene.CategoryHouse, g.hitHouse)

	g.sess = session.New(g.ID(), session.Defaults{Lives: 1}, runtime.Scores)
	g.camera = control.NewFollower(g.start, cfg.Camera.Follow)
	g.light = g.camera.Position
	g.hop, g.spin, g.paused = 0, 0, false
	g.layout()
	g.settle()
}

// layout places the pig in the lower third of the screen so more of the
// road ahead is visible.
func (g *Game) layout() {
	h := max(g.runtime.ScreenH-1, 1)
	g.view = scene.Projector{
		Plane:   scene.PlaneXZ,
		Center:  g.camera.Position,
		OriginX: g.runtime.ScreenW / 2,
		OriginY: 1 + h*2/3,
		ScaleX:  2,
		ScaleY:  1,
	}
}

// settle runs a zero-length physics pass so the sensors know what they are
// touching before the first jump.
func (g *Game) settle() {
	for _, ev := range g.world.Simulate(0) {
		g.contacts.Dispatch(ev)
	}
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
		// The scene stays frozen behind the title.
		if in.Has(core.ActionJump) {
			g.sess.Start()
		}
		return core.StepResult{State: g.State()}
	case session.ModePlaying:
		g.jump(control.FromInput(in))
	}

	g.loop.Step()
	return core.StepResult{State: g.State()}
}

func (g *Game) jump(dir control.Direction) {
	if !g.jumper.Jump(g.pig, dir, g.sess.Mode(), g.contacts.Active()) {
		return
	}
	g.syncSensors()
	g.hop = hopFrames
}

// onFrame moves everything that follows the pig and wraps traffic.
func (g *Game) onFrame(float64) {
	if g.hop > 0 {
		g.hop--
	}
	if g.spin > 0 {
		g.spin--
	}

	wrap := g.cfg.Traffic.Wrap
	ticks := int(g.loop.Tick()) //#nosec G115 -- tick count fits in int
	for _, v := range g.traffic {
		v.e.Velocity.X = g.difficulty.Speed(v.speed, g.sess.CoinsBanked(), ticks)
		if v.e.Position.X > wrap {
			v.e.Position.X = -wrap
		} else if v.e.Position.X < -wrap {
			v.e.Position.X = wrap
		}
	}

	if g.sess.Playing() {
		g.view.Center = g.camera.Update(g.pig.Position)
		g.light = g.camera.Position
	}
}

func (g *Game) onContact(ev scene.ContactEvent) {
	g.contacts.Dispatch(ev)
}

func (g *Game) hitVehicle(_, _ *scene.Entity) {
	if !g.sess.Playing() {
		return
	}
	// Persistence failures are reported by the keeper itself.
	_ = g.sess.End()
	g.spin = g.cfg.Gameplay.GameOverFrames
	g.loop.After(g.cfg.Gameplay.GameOverFrames, g.restart)
}

func (g *Game) hitCoin(_, coin *scene.Entity) {
	if !g.sess.Playing() {
		return
	}
	coin.Hidden = true
	g.loop.After(g.cfg.Coins.RespawnFrames, func() {
		coin.Hidden = false
	})
	g.sess.CollectCoin()
}

func (g *Game) hitHouse(_, _ *scene.Entity) {
	if !g.sess.Playing() {
		return
	}
	// Arriving empty-handed is not an error, the visit simply does nothing.
	g.sess.BankCoins()
}

// restart returns the pig home after the game-over spin.
func (g *Game) restart() {
	g.pig.Position = g.start
	g.pig.Heading = 0
	g.syncSensors()
	g.sess.Reset()
	g.camera.Position = g.start
	g.light = g.camera.Position
	g.view.Center = g.camera.Position
	g.hop, g.spin = 0, 0
	g.settle()
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
	Coins  int
	Mode   session.Mode
	Active scene.Mask
	World  scene.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.loop.Tick(),
		Score:  g.sess.Score(),
		Coins:  g.sess.CoinsCollected(),
		Mode:   g.sess.Mode(),
		Active: g.contacts.Active(),
		World:  g.world.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Coins)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Mode)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Active) //#nosec G115 -- hash computation
	return h*31 + s.World.Hash()
}

// Register the game with the registry
func init() {
	registry.Register("mrpig", func() registry.Game {
		return New()
	})
}
