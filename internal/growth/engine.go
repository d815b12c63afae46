package growth

import "math"

// Engine evaluates InputParameters into DerivedMetrics. An Engine holds only
// its settings and is safe for concurrent use.
type Engine struct {
	cfg settings
}

// New creates an engine. With no options it falls back to the caller's override
// scalar, samples the requested timeline, and leaves C unperturbed.
func New(opts ...Option) *Engine {
	return &Engine{cfg: applyOptions(opts)}
}

// Fallback returns the unrecognized-concept policy.
func (e *Engine) Fallback() FallbackPolicy { return e.cfg.fallback }

// DefaultKappa returns the scalar used by FallbackFixed.
func (e *Engine) DefaultKappa() float64 { return e.cfg.defaultKappa }

// PerturbsFriction reports whether secondary numbers shift C.
func (e *Engine) PerturbsFriction() bool { return e.cfg.perturbFriction }

// FixedTimeline reports whether the horizon is pinned to [0, 30].
func (e *Engine) FixedTimeline() bool { return e.cfg.fixedTimeline }

// ResolveConcept maps a keyword to its kappa and label. Unrecognized keywords
// are not an error: they get the policy's fallback kappa and DefaultLabel.
// Under FallbackOverride a nil override also falls back to the default kappa.
func (e *Engine) ResolveConcept(keyword string, override *float64) Concept {
	if c, ok := LookupConcept(keyword); ok {
		return c
	}
	kappa := e.cfg.defaultKappa
	if e.cfg.fallback == FallbackOverride && override != nil {
		kappa = *override
	}
	kw := NormalizeKeyword(keyword)
	return Concept{
		Keyword: kw,
		Kappa:   kappa,
		Label:   labelFor(kappa, kw),
	}
}

// Friction returns C for an optional secondary number.
func (e *Engine) Friction(secondary *int) float64 {
	c := BaseFriction
	if e.cfg.perturbFriction && secondary != nil {
		c += floorMod(*secondary, PerturbationModulus)
	}
	return float64(c)
}

// Compute evaluates p. It never fails: out-of-domain inputs yield
// mathematically valid, possibly degenerate, metrics.
func (e *Engine) Compute(p InputParameters) DerivedMetrics {
	concept := e.ResolveConcept(p.Concept, p.Scalar)

	potential := PotentialWeight*p.Effort + PotentialWeight*p.Resources
	c := e.Friction(p.Secondary)
	f := c + FrictionPi

	delta := concept.Kappa * (Rate*(float64(potential)+StrategicBoost) - f) / Phi
	g := GrowthFactor * delta

	length := float64(p.TimelineLength)
	if e.cfg.fixedTimeline {
		length = FixedTimelineLength
	}

	return DerivedMetrics{
		Concept:        concept,
		InputPotential: potential,
		Rate:           Rate,
		BaseFriction:   c,
		FrictionLoad:   f,
		StrategicBoost: StrategicBoost,
		Phi:            Phi,
		Delta:          delta,
		G:              g,
		TimelineLength: length,
		TimelineUnit:   p.TimelineUnit,
		Curve:          Curve(g, length),
	}
}

// PulseRadius returns 6 + |g| mod 6.
func PulseRadius(g float64) float64 {
	return PulseBase + math.Mod(math.Abs(g), PulseModulo)
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// floorMod returns a mod m in [0, m) for m > 0.
func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
