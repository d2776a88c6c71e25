package flight

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Params holds the run-level tunables of the flight sim.
type Params struct {
	DurationMin  time.Duration `yaml:"duration_min"`
	DurationSpan time.Duration `yaml:"duration_span"`

	EngineFailChance float64 `yaml:"engine_fail_chance"`
	EngineFailUMin   float64 `yaml:"engine_fail_u_min"`
	EngineFailUSpan  float64 `yaml:"engine_fail_u_span"`
	OvershootChance  float64 `yaml:"overshoot_chance"`

	CaptureRadius float64 `yaml:"capture_radius"`
	StartScore    float64 `yaml:"start_score"`

	Gravity      float64       `yaml:"gravity"`
	SinkDepth    float64       `yaml:"sink_depth"`
	CrashTimeout time.Duration `yaml:"crash_timeout"`
	LandedHold   time.Duration `yaml:"landed_hold"`
	TextLife     time.Duration `yaml:"text_life"`

	DecorCount    int     `yaml:"decor_count"`
	FakePierCount int     `yaml:"fake_pier_count"`
	DecorAttempts int     `yaml:"decor_attempts"`
	PierAttempts  int     `yaml:"pier_attempts"`
	PlaneBottomPx float64 `yaml:"plane_bottom_px"`
}

// Config controls the flight simulation viewport and tuning.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Params: Params{
			DurationMin:      15 * time.Second,
			DurationSpan:     15 * time.Second,
			EngineFailChance: 0.10,
			EngineFailUMin:   0.18,
			EngineFailUSpan:  0.64,
			OvershootChance:  0.10,
			CaptureRadius:    34,
			StartScore:       1,
			Gravity:          720,
			SinkDepth:        220,
			CrashTimeout:     4200 * time.Millisecond,
			LandedHold:       900 * time.Millisecond,
			TextLife:         900 * time.Millisecond,
			DecorCount:       100,
			FakePierCount:    6,
			DecorAttempts:    40,
			PierAttempts:     120,
			PlaneBottomPx:    7,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load flight config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse flight config %q: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(m map[string]string) Config {
	c := DefaultConfig()
	if m == nil {
		return c
	}
	if v, ok := m["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := m["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := m["engine_fail_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.EngineFailChance = parsed
		}
	}
	if v, ok := m["overshoot_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.OvershootChance = parsed
		}
	}
	if v, ok := m["capture_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.CaptureRadius = parsed
		}
	}
	if v, ok := m["decor_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.DecorCount = parsed
		}
	}
	if v, ok := m["fake_pier_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FakePierCount = parsed
		}
	}
	if v, ok := m["duration_min"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Params.DurationMin = parsed
		}
	}
	if v, ok := m["duration_span"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.Params.DurationSpan = parsed
		}
	}
	c.sanitize()
	return c
}

func (c *Config) sanitize() {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	p := &c.Params
	if p.DurationMin <= 0 {
		p.DurationMin = time.Second
	}
	if p.DurationSpan < 0 {
		p.DurationSpan = 0
	}
	if p.DecorAttempts < 1 {
		p.DecorAttempts = 1
	}
	if p.PierAttempts < 1 {
		p.PierAttempts = 1
	}
	if p.DecorCount < 0 {
		p.DecorCount = 0
	}
	if p.FakePierCount < 0 {
		p.FakePierCount = 0
	}
}
