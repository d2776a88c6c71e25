package flight

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                  "1280",
		"h":                  "720",
		"engine_fail_chance": "0.5",
		"fake_pier_count":    "2",
		"duration_min":       "5s",
		"decor_count":        "-3",
		"capture_radius":     "nope",
	})
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Fatalf("expected 1280x720, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Params.EngineFailChance != 0.5 {
		t.Fatalf("expected fail chance 0.5, got %v", cfg.Params.EngineFailChance)
	}
	if cfg.Params.FakePierCount != 2 {
		t.Fatalf("expected 2 fake piers, got %d", cfg.Params.FakePierCount)
	}
	if cfg.Params.DurationMin != 5*time.Second {
		t.Fatalf("expected 5s minimum duration, got %s", cfg.Params.DurationMin)
	}
	if cfg.Params.DecorCount != 100 {
		t.Fatalf("expected invalid decor count to be ignored, got %d", cfg.Params.DecorCount)
	}
	if cfg.Params.CaptureRadius != 34 {
		t.Fatalf("expected invalid capture radius to be ignored, got %v", cfg.Params.CaptureRadius)
	}
}

func TestFromMapNil(t *testing.T) {
	if got, want := FromMap(nil), DefaultConfig(); got != want {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flight.yaml")
	body := "width: 1024\nparams:\n  crash_timeout: 3s\n  overshoot_chance: 0.25\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 600 {
		t.Fatalf("expected 1024x600, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Params.CrashTimeout != 3*time.Second {
		t.Fatalf("expected crash timeout 3s, got %s", cfg.Params.CrashTimeout)
	}
	if cfg.Params.OvershootChance != 0.25 {
		t.Fatalf("expected overshoot 0.25, got %v", cfg.Params.OvershootChance)
	}
	if cfg.Params.Gravity != 720 {
		t.Fatalf("expected untouched keys to keep defaults, gravity=%v", cfg.Params.Gravity)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults on parse error")
	}
}
