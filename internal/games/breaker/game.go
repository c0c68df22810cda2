// Package breaker is a top-down brick breaker: a constant-speed ball, a
// three-zone paddle that steers it, and bricks that come back after a while.
package breaker

import (
	"fmt"

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

// Game implements Breaker.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.BreakerConfig

	world    *scene.World
	loop     *engine.Loop
	contacts *contact.Dispatcher
	sess     *session.State

	ball   *scene.Entity
	paddle []*scene.Entity // Left, Paddle, Right
	view   scene.Projector
	paused bool
}

// New creates a new Breaker game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breaker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breaker"
}

// Reset builds the field and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreaker(configPath)
	if err != nil {
		cfg = config.DefaultBreakerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.world = scene.NewWorld()
	g.build()

	g.loop = engine.NewLoop(g.world, runtime.TickRate)
	g.loop.OnContact(g.onContact)
	g.loop.OnFrame(g.onFrame)

	g.contacts = contact.New(contact.ByName(BallName), contact.WithDedupe())
	g.contacts.Handle(scene.CategoryBarrier, g.hitBarrier)
	g.contacts.Handle(scene.CategoryBrick, g.hitBrick)
	g.contacts.Handle(scene.CategoryPaddle, g.hitPaddle)

	g.sess = session.New(g.ID(), session.Defaults{Lives: cfg.Gameplay.Lives}, runtime.Scores)
	g.paused = false
	g.layout()
	g.serve()
}

// layout fits the field to the screen. One row is reserved for the HUD.
func (g *Game) layout() {
	h := max(g.runtime.ScreenH-1, 1)
	scaleY := float64(h-1) / (2*fieldHalfH + 1)
	g.view = scene.Projector{
		Plane:   scene.PlaneXZ,
		OriginX: g.runtime.ScreenW / 2,
		OriginY: 1 + h/2,
		ScaleX:  scaleY * 2,
		ScaleY:  scaleY,
	}
}

// serve parks the ball on the paddle and waits for a tap.
func (g *Game) serve() {
	g.ball.Velocity = scene.Vec3{}
	g.ball.Position = scene.V(g.paddleX(), 0, ballRestZ)
	g.contacts.Reset()
}

func (g *Game) paddleX() float64 {
	return g.paddle[1].Position.X
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.sess.Playing() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.movePaddle(in)

	if g.sess.Mode() == session.ModeTapToPlay {
		g.ball.Position.X = g.paddleX()
		if in.Has(core.ActionJump) && g.sess.Start() {
			g.ball.Velocity = scene.V(0, 0, -g.cfg.Ball.Speed).WithXZAngle(launchAngle)
		}
	}

	g.loop.Step()
	return core.StepResult{State: g.State()}
}

// movePaddle slides all three paddle zones together.
func (g *Game) movePaddle(in core.InputFrame) {
	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= g.cfg.Paddle.Step
	}
	if in.Has(core.ActionRight) {
		dx += g.cfg.Paddle.Step
	}
	if dx == 0 {
		return
	}
	center := control.Slide(g.paddle[1], dx, -g.cfg.Paddle.Limit, g.cfg.Paddle.Limit)
	g.paddle[0].Position.X = center - zoneWidth
	g.paddle[2].Position.X = center + zoneWidth
}

// onFrame keeps the camera over the paddle.
func (g *Game) onFrame(float64) {
	g.view.Center.X = g.paddleX()
}

func (g *Game) onContact(ev scene.ContactEvent) {
	if !g.contacts.Dispatch(ev) {
		return
	}
	if g.sess.Playing() {
		g.ball.Velocity = g.ball.Velocity.WithLength(g.cfg.Ball.Speed)
	}
}

func (g *Game) hitBarrier(_, barrier *scene.Entity) {
	if barrier.Name != BottomName {
		return
	}
	if !g.sess.LoseLife() {
		return
	}
	// Persistence failures are reported by the keeper itself.
	_ = g.sess.End()
	g.sess.Reset()
	g.serve()
}

func (g *Game) hitBrick(_, brick *scene.Entity) {
	g.sess.AddScore(1)
	brick.Hidden = true
	g.loop.After(g.cfg.Bricks.RespawnFrames, func() {
		brick.Hidden = false
	})
}

func (g *Game) hitPaddle(ball, zone *scene.Entity) {
	ball.Velocity = deflect(ball.Velocity, zone.Name, g.cfg.Ball.DeflectDegrees)
}

// deflect steers a ball leaving the paddle. The left zone turns it toward
// the left wall and the right zone toward the right wall; the center keeps
// the mirror bounce.
func deflect(v scene.Vec3, zone string, degrees float64) scene.Vec3 {
	switch zone {
	case LeftZoneName:
		return v.WithXZAngle(v.XZAngle() + scene.Radians(degrees))
	case RightZoneName:
		return v.WithXZAngle(v.XZAngle() - scene.Radians(degrees))
	default:
		return v
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
	Tick  uint64
	Score int
	Lives int
	Mode  session.Mode
	World scene.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.loop.Tick(),
		Score: g.sess.Score(),
		Lives: g.sess.Lives(),
		Mode:  g.sess.Mode(),
		World: g.world.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Mode)  //#nosec G115 -- hash computation
	return h*31 + s.World.Hash()
}

// String is handy in test failures.
func (s Snapshot) String() string {
	return fmt.Sprintf("tick=%d score=%d lives=%d mode=%s entities=%d", s.Tick, s.Score, s.Lives, s.Mode, s.World.Count)
}

// Register the game with the registry
func init() {
	registry.Register("breaker", func() registry.Game {
		return New()
	})
}
