package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/conway/internal/layout"
	"github.com/san-kum/conway/internal/patterns"
	"github.com/san-kum/conway/internal/theme"
)

const (
	DefaultWindowSize = 800
	DefaultCellSize   = 20
	DefaultFPS        = 10
	DefaultAdvanceKey = "space"
	DefaultTheme      = "minimal"
)

// AdvanceKeys lists the keys the window frontend can bind to "advance".
var AdvanceKeys = []string{"space", "enter", "n", "s"}

type Config struct {
	WindowSize int    `yaml:"window_size"`
	CellSize   int    `yaml:"cell_size"`
	FPS        int    `yaml:"fps"`
	AdvanceKey string `yaml:"advance_key"`
	Pattern    string `yaml:"pattern"`
	Theme      string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowSize: DefaultWindowSize,
		CellSize:   DefaultCellSize,
		FPS:        DefaultFPS,
		AdvanceKey: DefaultAdvanceKey,
		Theme:      DefaultTheme,
	}
}

// Load decodes the file at path on top of a copy of base, so keys the file
// leaves out keep base's values. A nil base means DefaultConfig.
func Load(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[config.Load] failed to read file: %s", path)
	}
	cfg := DefaultConfig()
	if base != nil {
		*cfg = *base
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "[config.Load] failed to decode yaml: %s", path)
	}
	return cfg, nil
}

// Override applies one explicitly set command-line value.
type Override func(*Config)

// Resolve layers defaults, the named preset, the config file and overrides,
// each later layer winning, and validates the result. Empty preset or path
// skip that layer.
func Resolve(preset, path string, overrides ...Override) (*Config, error) {
	cfg := DefaultConfig()

	if preset != "" {
		p := GetPreset(preset)
		if p == nil {
			return nil, errors.Errorf("unknown preset: %s (available: %v)", preset, ListPresets())
		}
		cfg = p
	}

	if path != "" {
		fileCfg, err := Load(path, cfg)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	for _, o := range overrides {
		o(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "[config.Save] failed to encode yaml")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "[config.Save] failed to write file: %s", path)
}

// GridSize is the board dimension N derived from the window and cell sizes.
func (c *Config) GridSize() int {
	return layout.GridSize(c.WindowSize, c.CellSize)
}

// Validate rejects configurations that cannot produce a usable board.
func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		return errors.Errorf("window_size must be positive, got %d", c.WindowSize)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if c.CellSize > c.WindowSize {
		return errors.Errorf("cell_size %d larger than window_size %d", c.CellSize, c.WindowSize)
	}
	if c.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	}
	if !validAdvanceKey(c.AdvanceKey) {
		return errors.Errorf("unknown advance_key %q (available: %v)", c.AdvanceKey, AdvanceKeys)
	}
	if c.Pattern != "" {
		p := patterns.Lookup(c.Pattern)
		if p == nil {
			return errors.Errorf("unknown pattern %q (available: %v)", c.Pattern, patterns.Names())
		}
		if !p.Fits(c.GridSize()) {
			return errors.Errorf("pattern %q does not fit a %dx%d grid", c.Pattern, c.GridSize(), c.GridSize())
		}
	}
	if !theme.Exists(c.Theme) {
		return errors.Errorf("unknown theme %q (available: %v)", c.Theme, theme.Names())
	}
	return nil
}

func validAdvanceKey(key string) bool {
	for _, k := range AdvanceKeys {
		if k == key {
			return true
		}
	}
	return false
}
