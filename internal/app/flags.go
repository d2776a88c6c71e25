package app

import (
	"flag"
	"log"
	"time"

	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Seed       string
	Width      int
	Height     int
	TPS        int
	ConfigPath string
	Assets     string
	Launch     string
	Retry      bool
	AutoClose  bool
	GateDelay  time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 800, Height: 600, TPS: 60, Assets: "assets", GateDelay: 2 * time.Second}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "run seed (empty for a clock-derived seed)")
	fs.IntVar(&c.Width, "w", c.Width, "viewport width")
	fs.IntVar(&c.Height, "h", c.Height, "viewport height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with flight tuning")
	fs.StringVar(&c.Assets, "assets", c.Assets, "directory holding bg*.png and pier*.png")
	fs.StringVar(&c.Launch, "launch", c.Launch, "launch query, e.g. \"seed=7&ad=1\"")
	fs.BoolVar(&c.Retry, "retry", c.Retry, "gate every attempt behind the retry prompt")
	fs.BoolVar(&c.AutoClose, "autoclose", c.AutoClose, "exit a few seconds after the result")
	fs.DurationVar(&c.GateDelay, "gate-delay", c.GateDelay, "how long the retry prompt takes to grant an attempt")
}

// Gate returns the retry gate the frontends install.
func (c *Config) Gate() RetryGate { return DelayGate(c.GateDelay) }

// FlightConfig loads the tuning file when one is given. Load failures are
// logged and fall back to the defaults.
func (c *Config) FlightConfig() flight.Config {
	cfg := flight.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := flight.LoadConfig(c.ConfigPath)
		if err != nil {
			log.Printf("config: %v; using defaults", err)
		} else {
			cfg = loaded
		}
	}
	if c.Width > 0 {
		cfg.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Height = c.Height
	}
	return cfg
}

// LaunchOptions merges the launch query with the individual flags. Flags
// win where both are set.
func (c *Config) LaunchOptions() LaunchOptions {
	opts, err := ParseLaunch(c.Launch)
	if err != nil {
		log.Printf("launch: %v; ignoring", err)
		opts = LaunchOptions{}
	}
	if s := core.ParseSeed(c.Seed); s.Valid {
		opts.Seed = s
	}
	opts.AdMode = opts.AdMode || c.Retry
	opts.AutoClose = opts.AutoClose || c.AutoClose
	return opts
}
