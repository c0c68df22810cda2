package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	for _, id := range []string{"geometryfighter", "breaker", "marblemaze", "mrpig"} {
		if len(GetDefaultYAML(id)) == 0 {
			t.Errorf("no embedded default for %q", id)
		}
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default")
	}

	gf, ok := decode(defaultGeometryFighterYAML, GeometryFighterConfig{})
	if !ok {
		t.Fatal("geometryfighter.yaml does not parse")
	}
	if gf.Spawn.MinInterval != 0.2 || gf.Spawn.MaxInterval != 1.5 {
		t.Errorf("spawn interval = [%v, %v], want [0.2, 1.5]", gf.Spawn.MinInterval, gf.Spawn.MaxInterval)
	}
	if gf.Spawn.CullY != -2 {
		t.Errorf("cull_y = %v, want -2", gf.Spawn.CullY)
	}

	br, ok := decode(defaultBreakerYAML, BreakerConfig{})
	if !ok {
		t.Fatal("breaker.yaml does not parse")
	}
	if br.Ball.Speed != 5 || br.Ball.DeflectDegrees != 20 || br.Bricks.RespawnFrames != 120 {
		t.Errorf("breaker defaults = %+v", br)
	}

	mm, ok := decode(defaultMarbleMazeYAML, MarbleMazeConfig{})
	if !ok {
		t.Fatal("marblemaze.yaml does not parse")
	}
	if mm.Pearls.RespawnFrames != 30 {
		t.Errorf("pearl respawn = %d, want 30", mm.Pearls.RespawnFrames)
	}

	mp, ok := decode(defaultMrPigYAML, MrPigConfig{})
	if !ok {
		t.Fatal("mrpig.yaml does not parse")
	}
	if mp.Coins.RespawnFrames != 60 || mp.Camera.Follow != 0.05 || mp.Pig.BoundX != 15 {
		t.Errorf("mrpig defaults = %+v", mp)
	}
}

func TestLevelMapsAreRectangular(t *testing.T) {
	maps := map[string]LevelMap{}
	if mm, ok := decode(defaultMarbleMazeYAML, MarbleMazeConfig{}); ok {
		maps["marblemaze"] = mm.Level
	}
	if mp, ok := decode(defaultMrPigYAML, MrPigConfig{}); ok {
		maps["mrpig"] = mp.Level
	}
	maps["marblemaze fallback"] = DefaultMarbleMazeConfig().Level
	maps["mrpig fallback"] = DefaultMrPigConfig().Level

	for name, m := range maps {
		w, h := m.Size()
		if h == 0 {
			t.Errorf("%s: empty level", name)
		}
		for i, row := range m.Rows {
			if len(row) != w {
				t.Errorf("%s: row %d has width %d, want %d", name, i, len(row), w)
			}
		}
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breaker.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  speed: 7.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreaker(path)
	if err != nil {
		t.Fatalf("LoadBreaker: %v", err)
	}
	if cfg.Ball.Speed != 7.5 {
		t.Errorf("speed = %v, want 7.5", cfg.Ball.Speed)
	}
	if cfg.Ball.DeflectDegrees != 20 {
		t.Errorf("unset keys should keep defaults, deflect = %v", cfg.Ball.DeflectDegrees)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("lives = %d, want 3", cfg.Gameplay.Lives)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadMrPig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("pig: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMrPig(bad); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"insane", ""},
	}
	for _, tt := range tests {
		if got := ParsePreset(tt.in); got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPresets(t *testing.T) {
	gf := DefaultGeometryFighterConfig()
	ApplyGeometryFighterPreset(&gf, DifficultyEasy)
	if gf.Gameplay.Lives != 5 {
		t.Errorf("easy lives = %d, want 5", gf.Gameplay.Lives)
	}

	br := DefaultBreakerConfig()
	ApplyBreakerPreset(&br, DifficultyHard)
	if br.Gameplay.Lives != 2 {
		t.Errorf("hard lives = %d, want 2", br.Gameplay.Lives)
	}
	if br.Ball.Speed <= 5 {
		t.Errorf("hard ball speed = %v, want > 5", br.Ball.Speed)
	}

	mm := DefaultMarbleMazeConfig()
	ApplyMarbleMazePreset(&mm, DifficultyEasy)
	if mm.Health.DrainEvery != 30 {
		t.Errorf("easy drain = %d, want 30", mm.Health.DrainEvery)
	}
}

func TestProgressionOffByDefault(t *testing.T) {
	gf, ok := decode(defaultGeometryFighterYAML, GeometryFighterConfig{})
	if !ok {
		t.Fatal("geometryfighter.yaml does not parse")
	}
	mp, ok := decode(defaultMrPigYAML, MrPigConfig{})
	if !ok {
		t.Fatal("mrpig.yaml does not parse")
	}

	tests := []struct {
		name string
		cfg  DifficultyConfig
	}{
		{"geometryfighter yaml", gf.Difficulty},
		{"mrpig yaml", mp.Difficulty},
		{"geometryfighter fallback", DefaultGeometryFighterConfig().Difficulty},
		{"mrpig fallback", DefaultMrPigConfig().Difficulty},
	}
	for _, tt := range tests {
		dm := NewDifficultyForPreset(tt.cfg, "")
		if dm.IsEnabled() {
			t.Errorf("%s: progression enabled without a preset", tt.name)
		}
		if got := dm.Interval(1.5, 1000, 0); got != 1.5 {
			t.Errorf("%s: interval after scoring = %v, want 1.5", tt.name, got)
		}
		if got := dm.Speed(4.0, 1000, 0); got != 4.0 {
			t.Errorf("%s: speed after scoring = %v, want 4", tt.name, got)
		}
	}
}

func TestNewDifficultyForPreset(t *testing.T) {
	base := DefaultMrPigConfig().Difficulty

	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{"", false, 0},
		{DifficultyEasy, true, 0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0},
	}
	for _, tt := range tests {
		dm := NewDifficultyForPreset(base, tt.preset)
		if dm.IsEnabled() != tt.enabled {
			t.Errorf("preset %q: enabled = %v, want %v", tt.preset, dm.IsEnabled(), tt.enabled)
		}
		if got := dm.Level(0, 0); got != tt.level {
			t.Errorf("preset %q: starting level = %v, want %v", tt.preset, got, tt.level)
		}
	}
}

func TestDifficultyInterval(t *testing.T) {
	dm := NewDifficultyForPreset(DefaultGeometryFighterConfig().Difficulty, DifficultyEasy)

	if got := dm.Interval(1.0, 0, 0); got != 1.0 {
		t.Errorf("interval at score 0 = %v, want 1.0", got)
	}
	if got := dm.Interval(1.0, 100, 0); got != 0.5 {
		t.Errorf("interval at max = %v, want 0.5", got)
	}
	if got := dm.Interval(1.0, 1000, 0); got != 0.5 {
		t.Errorf("interval past max = %v, want 0.5", got)
	}

	dm.SetEnabled(false)
	if got := dm.Interval(1.0, 100, 0); got != 1.0 {
		t.Errorf("disabled interval = %v, want 1.0", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	dm := NewDifficultyForPreset(DefaultMrPigConfig().Difficulty, DifficultyEasy)

	if got := dm.Speed(2.0, 0, 0); got != 2.0 {
		t.Errorf("speed at score 0 = %v, want 2", got)
	}
	if got := dm.Speed(2.0, 30, 0); got != 4.0 {
		t.Errorf("speed at max = %v, want 4", got)
	}
}
