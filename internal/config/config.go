package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvPath overrides the config file location.
	EnvPath     = "NAMEWHEEL_CONFIG"
	DefaultPath = "namewheel.yaml"

	minFullTurns   = 10 * math.Pi
	minEasingPower = 3.0
)

type Config struct {
	Spin    SpinConfig    `yaml:"spin"`
	Ambient AmbientConfig `yaml:"ambient"`
	Frame   FrameConfig   `yaml:"frame"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
}

type SpinConfig struct {
	Duration time.Duration `yaml:"duration"`
	// FullTurns is in radians.
	FullTurns     float64 `yaml:"full_turns"`
	EasingPower   float64 `yaml:"easing_power"`
	DragThreshold float64 `yaml:"drag_threshold"`
}

type AmbientConfig struct {
	Interval time.Duration `yaml:"interval"`
	Step     float64       `yaml:"step"`
}

type FrameConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Spin: SpinConfig{
			Duration:      5 * time.Second,
			FullTurns:     minFullTurns,
			EasingPower:   minEasingPower,
			DragThreshold: 3,
		},
		Ambient: AmbientConfig{
			Interval: 50 * time.Millisecond,
			Step:     0.002,
		},
		Frame: FrameConfig{
			Interval: 16 * time.Millisecond,
		},
		Store: StoreConfig{Path: "namewheel.db"},
		Log:   LogConfig{Dir: "logs"},
	}
}

// Path returns the config file location, honouring NAMEWHEEL_CONFIG.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the spin engine cannot honour.
func (c Config) Validate() error {
	var errs []error
	if c.Spin.Duration <= 0 {
		errs = append(errs, errors.New("spin.duration must be positive"))
	}
	if c.Spin.FullTurns < minFullTurns {
		errs = append(errs, fmt.Errorf("spin.full_turns must be at least %.4f", minFullTurns))
	}
	if c.Spin.EasingPower < minEasingPower {
		errs = append(errs, fmt.Errorf("spin.easing_power must be at least %v", minEasingPower))
	}
	if c.Spin.DragThreshold < 0 {
		errs = append(errs, errors.New("spin.drag_threshold must not be negative"))
	}
	if c.Ambient.Interval <= 0 || c.Ambient.Step <= 0 {
		errs = append(errs, errors.New("ambient.interval and ambient.step must be positive"))
	}
	if c.Frame.Interval <= 0 {
		errs = append(errs, errors.New("frame.interval must be positive"))
	}
	if c.Store.Path == "" {
		errs = append(errs, errors.New("store.path must be set"))
	}
	return errors.Join(errs...)
}
