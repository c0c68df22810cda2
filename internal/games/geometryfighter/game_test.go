package geometryfighter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/engine"
	"github.com/vovakirdan/scene-arcade/internal/scene"
	"github.com/vovakirdan/scene-arcade/internal/session"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func newPlaying(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	g.Step(core.InputOf(core.ActionJump))
	if !g.sess.Playing() {
		t.Fatalf("mode after tap = %s, want playing", g.sess.Mode())
	}
	return g
}

// quiet pushes the next random spawn far into the future and empties the sky.
func quiet(g *Game) {
	g.cfg.Spawn.MinInterval, g.cfg.Spawn.MaxInterval = 100, 100
	g.spawner = engine.NewSpawner(1, 100, 100)
	g.Step(core.NewInputFrame())
	g.world.Clear()
}

func TestTitleIsFrozen(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for range 120 {
		g.Step(core.NewInputFrame())
	}
	if g.world.Len() != 0 {
		t.Errorf("shapes on title = %d, want 0", g.world.Len())
	}
	if g.loop.Tick() != 0 {
		t.Errorf("tick on title = %d, want 0", g.loop.Tick())
	}
}

// spawnTimes steps the game for n frames and returns the times shapes appeared.
func spawnTimes(g *Game, n int) []float64 {
	var times []float64
	last := g.spawned
	for range n {
		g.Step(core.NewInputFrame())
		if g.spawned != last {
			times = append(times, g.loop.Time())
			last = g.spawned
		}
	}
	return times
}

func checkGaps(t *testing.T, times []float64, lo, hi float64) {
	t.Helper()
	if len(times) < 5 {
		t.Fatalf("spawned %d shapes, want at least 5", len(times))
	}
	frame := 1.0 / 60
	for i := 1; i < len(times); i++ {
		gap := times[i] - times[i-1]
		if gap < lo-1e-9 || gap > hi+frame+1e-9 {
			t.Errorf("gap %d = %.4f, want within [%.2f, %.4f]", i, gap, lo, hi+frame)
		}
	}
}

func TestSpawnIntervals(t *testing.T) {
	g := newPlaying(t)
	g.sess.SetLives(1000)

	checkGaps(t, spawnTimes(g, 1200), 0.2, 1.5)
}

func TestSpawnIntervalsIgnoreScore(t *testing.T) {
	g := newPlaying(t)
	g.sess.SetLives(1000)
	g.sess.AddScore(100)

	checkGaps(t, spawnTimes(g, 600), 0.2, 1.5)
	if g.spawner.Min != 0.2 || g.spawner.Max != 1.5 {
		t.Errorf("spawn range = [%v, %v], want [0.2, 1.5]", g.spawner.Min, g.spawner.Max)
	}
}

func TestPresetShortensSpawnIntervals(t *testing.T) {
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newPlaying(t)
	g.sess.SetLives(1000)
	g.sess.AddScore(100)
	g.Step(core.NewInputFrame())

	if g.spawner.Min != 0.1 || g.spawner.Max != 0.75 {
		t.Errorf("spawn range at full pace = [%v, %v], want [0.1, 0.75]", g.spawner.Min, g.spawner.Max)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Pace: 100%") {
		t.Errorf("HUD = %q, want pace marker", screen.Row(0))
	}
}

func TestNoPaceMarkerByDefault(t *testing.T) {
	g := newPlaying(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if strings.Contains(screen.Row(0), "Pace") {
		t.Errorf("HUD = %q, want no pace marker", screen.Row(0))
	}
}

func TestFallenShapesAreCulled(t *testing.T) {
	g := newPlaying(t)
	g.sess.SetLives(1000)

	for range 600 {
		g.Step(core.NewInputFrame())
		for _, e := range g.world.Entities() {
			if e.Position.Y < g.cfg.Spawn.CullY {
				t.Fatalf("tick %d: %s at y=%.2f survived the cull", g.loop.Tick(), e.Name, e.Position.Y)
			}
		}
	}
	if g.sess.Lives() >= 1000 {
		t.Error("no good shape was missed in 10s of idling")
	}
}

func TestSpawnedShapesRise(t *testing.T) {
	g := newPlaying(t)

	for g.spawned == 0 {
		g.Step(core.NewInputFrame())
	}
	e := g.world.Entities()[0]
	if e.Category() != scene.CategoryShape {
		t.Fatalf("category = %s, want shape", e.Category())
	}
	if e.Velocity.Y <= 0 {
		t.Errorf("launch velocity y = %.2f, want upward", e.Velocity.Y)
	}
	if e.Kind == KindBad && e.Color != badColor {
		t.Errorf("bad shape color = %d, want gray", e.Color)
	}
}

func TestSliceGoodShape(t *testing.T) {
	g := newPlaying(t)
	quiet(g)

	g.spawn(ShapeBox, false, core.ColorBrightRed, scene.V(0, 5, 0))
	far := g.spawn(ShapeSphere, false, core.ColorBrightRed, scene.V(0, 5, 0))
	far.Position = scene.V(3, 0, 0)

	g.Step(core.InputOf(core.ActionJump))

	if g.sess.Score() != 1 {
		t.Errorf("score = %d, want 1", g.sess.Score())
	}
	if g.world.Len() != 1 {
		t.Fatalf("shapes left = %d, want 1 (outside the cursor column)", g.world.Len())
	}
	if _, ok := g.world.Get(far.ID()); !ok {
		t.Error("shape at x=3 should survive a slice at x=0")
	}
}

func TestSliceBadShapeCostsLife(t *testing.T) {
	g := newPlaying(t)
	quiet(g)

	g.spawn(ShapeCone, true, core.ColorBrightRed, scene.V(0, 5, 0))
	g.Step(core.InputOf(core.ActionJump))

	if g.sess.Score() != 0 {
		t.Errorf("score = %d, want 0", g.sess.Score())
	}
	if g.sess.Lives() != 2 {
		t.Errorf("lives = %d, want 2", g.sess.Lives())
	}
}

func TestCursorClamp(t *testing.T) {
	g := newPlaying(t)
	quiet(g)

	for range 20 {
		g.Step(core.InputOf(core.ActionRight))
	}
	if g.cursorX != g.cfg.Gameplay.CursorRange {
		t.Errorf("cursor = %.1f, want %.1f", g.cursorX, g.cfg.Gameplay.CursorRange)
	}
	for range 40 {
		g.Step(core.InputOf(core.ActionLeft))
	}
	if g.cursorX != -g.cfg.Gameplay.CursorRange {
		t.Errorf("cursor = %.1f, want %.1f", g.cursorX, -g.cfg.Gameplay.CursorRange)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newPlaying(t)
	quiet(g)
	g.sess.SetLives(1)

	g.spawn(ShapeTorus, true, core.ColorBrightRed, scene.V(0, 5, 0))
	g.Step(core.InputOf(core.ActionJump))

	if g.sess.Mode() != session.ModeGameOver {
		t.Fatalf("mode = %s, want game-over", g.sess.Mode())
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false")
	}

	g.Step(core.InputOf(core.ActionRestart))
	if g.sess.Mode() != session.ModeTapToPlay {
		t.Errorf("mode after restart = %s, want tap-to-play", g.sess.Mode())
	}
	if g.sess.Lives() != g.cfg.Gameplay.Lives {
		t.Errorf("lives after restart = %d, want %d", g.sess.Lives(), g.cfg.Gameplay.Lives)
	}
	if g.world.Len() != 0 {
		t.Errorf("shapes after restart = %d, want 0", g.world.Len())
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newPlaying(t)
	g.Step(core.InputOf(core.ActionPause))
	tick := g.loop.Tick()

	for range 30 {
		g.Step(core.NewInputFrame())
	}
	if g.loop.Tick() != tick {
		t.Errorf("tick advanced while paused: %d -> %d", tick, g.loop.Tick())
	}
	if !g.State().Paused {
		t.Error("State().Paused = false")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newPlaying(t)
		for i := range 900 {
			in := core.NewInputFrame()
			switch i % 45 {
			case 0:
				in.Set(core.ActionJump)
			case 10, 11:
				in.Set(core.ActionLeft)
			case 30:
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.Snapshot().Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and inputs gave different hashes: %d vs %d", a, b)
	}
}

func TestShapeNames(t *testing.T) {
	if ShapeCapsule.String() != "capsule" {
		t.Errorf("ShapeCapsule = %q", ShapeCapsule.String())
	}
	if ShapeType(99).String() != "unknown" {
		t.Errorf("ShapeType(99) = %q", ShapeType(99).String())
	}
}

func TestRenderTitle(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.String(), "GEOMETRY FIGHTER") {
		t.Error("title overlay missing")
	}
}
