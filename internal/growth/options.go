package growth

import (
	"fmt"
	"strings"
)

// FallbackPolicy selects where kappa comes from when a concept is unrecognized.
type FallbackPolicy string

const (
	// FallbackOverride uses the caller-supplied override scalar.
	FallbackOverride FallbackPolicy = "override"
	// FallbackFixed uses the engine's configured default kappa.
	FallbackFixed FallbackPolicy = "fixed"
)

// ParseFallbackPolicy accepts "override" or "fixed", case-insensitively.
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch FallbackPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case FallbackOverride:
		return FallbackOverride, nil
	case FallbackFixed:
		return FallbackFixed, nil
	default:
		return "", fmt.Errorf("unknown fallback policy %q", s)
	}
}

// Option configures an Engine.
type Option func(*settings)

type settings struct {
	fallback        FallbackPolicy
	defaultKappa    float64
	perturbFriction bool
	fixedTimeline   bool
}

// WithFallback sets the unrecognized-concept policy. Values other than the two
// named policies select FallbackOverride.
func WithFallback(p FallbackPolicy) Option {
	return func(s *settings) {
		s.fallback = p
	}
}

// WithDefaultKappa sets the scalar used by FallbackFixed.
func WithDefaultKappa(k float64) Option {
	return func(s *settings) {
		s.defaultKappa = k
	}
}

// WithFrictionPerturbation enables shifting C by the secondary number mod 13.
func WithFrictionPerturbation(on bool) Option {
	return func(s *settings) {
		s.perturbFriction = on
	}
}

// WithFixedTimeline ignores the requested timeline length and samples [0, 30].
func WithFixedTimeline(on bool) Option {
	return func(s *settings) {
		s.fixedTimeline = on
	}
}

// Named presets for the three dashboard revisions plus the full-featured one.
const (
	VariantClassic      = "classic"       // override fallback, fixed [0,30] horizon
	VariantStreamlined  = "streamlined"   // override fallback, timeline control
	VariantFixedDefault = "fixed-default" // 1.0 fallback, timeline control
	VariantPerturbed    = "perturbed"     // override fallback, timeline, secondary perturbation
)

// Variant returns the options for a named preset.
func Variant(name string) ([]Option, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case VariantClassic:
		return []Option{WithFallback(FallbackOverride), WithFixedTimeline(true)}, nil
	case VariantStreamlined, "":
		return []Option{WithFallback(FallbackOverride)}, nil
	case VariantFixedDefault:
		return []Option{WithFallback(FallbackFixed), WithDefaultKappa(DefaultKappa)}, nil
	case VariantPerturbed:
		return []Option{WithFallback(FallbackOverride), WithFrictionPerturbation(true)}, nil
	default:
		return nil, fmt.Errorf("unknown variant %q", name)
	}
}

func applyOptions(opts []Option) settings {
	s := settings{
		fallback:     FallbackOverride,
		defaultKappa: DefaultKappa,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.fallback != FallbackFixed {
		s.fallback = FallbackOverride
	}
	return s
}
