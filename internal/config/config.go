// Package config provides configuration loading for deltasim.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/talgya/delta-tetrahedron/internal/growth"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete deltasim configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Inputs InputsConfig `yaml:"inputs"`
}

// EngineConfig selects the growth engine behavior.
type EngineConfig struct {
	// Variant is a named preset applied before the fields below (default: streamlined)
	Variant string `yaml:"variant"`
	// Fallback is "override" or "fixed"; empty keeps the variant's policy
	Fallback string `yaml:"fallback"`
	// DefaultKappa is the fixed fallback scalar (default: 1.0)
	DefaultKappa float64 `yaml:"default_kappa"`
	// PerturbFriction shifts C by the secondary number mod 13
	PerturbFriction *bool `yaml:"perturb_friction"`
	// FixedTimeline pins the curve horizon to [0, 30]
	FixedTimeline *bool `yaml:"fixed_timeline"`
}

// InputsConfig holds the starting values of the dashboard controls.
type InputsConfig struct {
	Effort         int      `yaml:"effort"`
	Resources      int      `yaml:"resources"`
	Concept        string   `yaml:"concept"`
	Scalar         *float64 `yaml:"scalar,omitempty"`
	Secondary      *int     `yaml:"secondary,omitempty"`
	TimelineUnit   string   `yaml:"timeline_unit"`
	TimelineLength int      `yaml:"timeline_length"`
}

// DefaultConfig returns the dashboard's initial state.
func DefaultConfig() *Config {
	scalar := growth.DefaultKappa
	return &Config{
		Engine: EngineConfig{
			Variant:      growth.VariantStreamlined,
			DefaultKappa: growth.DefaultKappa,
		},
		Inputs: InputsConfig{
			Effort:         40,
			Resources:      35,
			Concept:        "clarity",
			Scalar:         &scalar,
			TimelineUnit:   growth.UnitHours.String(),
			TimelineLength: 36,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := growth.Variant(c.Engine.Variant); err != nil {
		return fmt.Errorf("%w: engine.variant: %v", ErrInvalid, err)
	}
	if c.Engine.Fallback != "" {
		if _, err := growth.ParseFallbackPolicy(c.Engine.Fallback); err != nil {
			return fmt.Errorf("%w: engine.fallback: %v", ErrInvalid, err)
		}
	}
	if _, err := growth.ParseTimelineUnit(c.Inputs.TimelineUnit); err != nil {
		return fmt.Errorf("%w: inputs.timeline_unit: %v", ErrInvalid, err)
	}
	// Out-of-domain input values are not rejected here; the engine accepts
	// them and the CLI reports them as warnings.
	return nil
}

// EngineOptions converts the engine section into growth options.
func (c *Config) EngineOptions() ([]growth.Option, error) {
	opts, err := growth.Variant(c.Engine.Variant)
	if err != nil {
		return nil, err
	}
	opts = append(opts, growth.WithDefaultKappa(c.Engine.DefaultKappa))
	if c.Engine.Fallback != "" {
		p, err := growth.ParseFallbackPolicy(c.Engine.Fallback)
		if err != nil {
			return nil, err
		}
		opts = append(opts, growth.WithFallback(p))
	}
	if c.Engine.PerturbFriction != nil {
		opts = append(opts, growth.WithFrictionPerturbation(*c.Engine.PerturbFriction))
	}
	if c.Engine.FixedTimeline != nil {
		opts = append(opts, growth.WithFixedTimeline(*c.Engine.FixedTimeline))
	}
	return opts, nil
}

// NewEngine builds a growth engine from the engine section.
func (c *Config) NewEngine() (*growth.Engine, error) {
	opts, err := c.EngineOptions()
	if err != nil {
		return nil, fmt.Errorf("engine options: %w", err)
	}
	return growth.New(opts...), nil
}

// Params converts the inputs section to engine parameters. An unparseable
// unit falls back to Hours; Validate reports it.
func (c *Config) Params() growth.InputParameters {
	unit, err := growth.ParseTimelineUnit(c.Inputs.TimelineUnit)
	if err != nil {
		unit = growth.UnitHours
	}
	var scalar *float64
	if c.Inputs.Scalar != nil {
		v := *c.Inputs.Scalar
		scalar = &v
	}
	var secondary *int
	if c.Inputs.Secondary != nil {
		v := *c.Inputs.Secondary
		secondary = &v
	}
	return growth.InputParameters{
		Effort:         c.Inputs.Effort,
		Resources:      c.Inputs.Resources,
		Concept:        c.Inputs.Concept,
		Scalar:         scalar,
		Secondary:      secondary,
		TimelineLength: c.Inputs.TimelineLength,
		TimelineUnit:   unit,
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile overlays the fields present in path onto c.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
