package hovertip

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the scene-level configuration that can be loaded from YAML.
//
//	placement:
//	  margin: 20
//	  offset: 20
//	  default_width: 200
//	  default_height: 50
//	ui_scale: 1
//	debug: false
type Config struct {
	Placement PlacementConfig `yaml:"placement"`
	UIScale   float64         `yaml:"ui_scale"`
	Debug     bool            `yaml:"debug"`
}

// DefaultConfig returns the default placement constants at UI scale 1.
func DefaultConfig() Config {
	return Config{
		Placement: DefaultPlacementConfig(),
		UIScale:   1,
	}
}

// LoadConfig parses YAML on top of DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	p := c.Placement
	switch {
	case p.Margin < 0:
		return errors.New("placement.margin must not be negative")
	case p.Offset < 0:
		return errors.New("placement.offset must not be negative")
	case p.DefaultWidth < 0:
		return errors.New("placement.default_width must not be negative")
	case p.DefaultHeight < 0:
		return errors.New("placement.default_height must not be negative")
	case c.UIScale <= 0:
		return fmt.Errorf("ui_scale must be positive, got %v", c.UIScale)
	}
	return nil
}
