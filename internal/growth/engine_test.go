package growth

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func referenceInput() InputParameters {
	return InputParameters{
		Effort:         40,
		Resources:      35,
		Concept:        "clarity",
		Scalar:         floatPtr(1.0),
		TimelineLength: 36,
		TimelineUnit:   UnitHours,
	}
}

func TestInputPotential_Exhaustive(t *testing.T) {
	eng := New()
	for effort := MinLevel; effort <= MaxLevel; effort++ {
		for resources := MinLevel; resources <= MaxLevel; resources++ {
			m := eng.Compute(InputParameters{Effort: effort, Resources: resources, TimelineLength: 12})
			if m.InputPotential != 9*(effort+resources) {
				t.Fatalf("I(%d,%d) = %d, want %d", effort, resources, m.InputPotential, 9*(effort+resources))
			}
		}
	}
}

func TestCompute_ReferenceScenario(t *testing.T) {
	m := New().Compute(referenceInput())

	assert.Equal(t, 675, m.InputPotential)
	assert.Equal(t, 1.2, m.Rate)
	assert.Equal(t, 100.0, m.BaseFriction)
	assert.InDelta(t, 100+612*math.Pi, m.FrictionLoad, 1e-12)
	assert.InDelta(t, 2022.6547, m.FrictionLoad, 1e-4)
	assert.Equal(t, 1.2, m.Kappa())
	assert.Equal(t, "Lux", m.Label())

	wantDelta := 1.2 * (1.2*(675+40) - (100 + 612*math.Pi)) / 51
	assert.InDelta(t, wantDelta, m.Delta, 1e-12)
	assert.InDelta(t, 3*wantDelta, m.G, 1e-12)

	assert.Equal(t, -27.40, Round2(m.Delta))
	assert.Equal(t, -82.21, Round2(m.G))
}

func TestCompute_UnknownConceptWithoutScalar(t *testing.T) {
	m := New().Compute(InputParameters{Effort: 40, Resources: 35, Concept: "entropy", TimelineLength: 36})

	assert.Equal(t, DefaultKappa, m.Kappa())
	assert.Equal(t, DefaultLabel, m.Label())
	assert.False(t, m.Concept.Recognized)
	assert.Equal(t, -22.84, Round2(m.Delta))
	assert.Equal(t, -68.51, Round2(m.G))
}

func TestDerivedConstants(t *testing.T) {
	assert.Equal(t, 1.2, float64(Rate))
	assert.InDelta(t, 1922.6547, float64(FrictionPi), 1e-4)
}

func TestCompute_Idempotent(t *testing.T) {
	eng := New(WithFrictionPerturbation(true))
	in := referenceInput()
	in.Secondary = intPtr(17)

	first := eng.Compute(in)
	second := eng.Compute(in)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Compute not idempotent (-first +second):\n%s", diff)
	}
}

func TestCompute_Concurrent(t *testing.T) {
	eng := New()
	want := eng.Compute(referenceInput())

	var wg sync.WaitGroup
	results := make([]DerivedMetrics, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = eng.Compute(referenceInput())
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("result %d differs (-want +got):\n%s", i, diff)
		}
	}
}

func TestFriction(t *testing.T) {
	tests := []struct {
		name      string
		perturb   bool
		secondary *int
		want      float64
	}{
		{"perturbation off", false, intPtr(17), 100},
		{"no secondary", true, nil, 100},
		{"seventeen", true, intPtr(17), 104},
		{"multiple of modulus", true, intPtr(26), 100},
		{"twelve", true, intPtr(12), 112},
		{"negative is floored", true, intPtr(-1), 112},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := New(WithFrictionPerturbation(tt.perturb))
			assert.Equal(t, tt.want, eng.Friction(tt.secondary))
		})
	}
}

func TestCompute_PerturbedFrictionFlowsIntoDelta(t *testing.T) {
	in := referenceInput()
	in.Secondary = intPtr(17)

	m := New(WithFrictionPerturbation(true)).Compute(in)
	assert.Equal(t, 104.0, m.BaseFriction)
	assert.InDelta(t, 104+612*math.Pi, m.FrictionLoad, 1e-12)
	assert.InDelta(t, 1.2*(1.2*715-(104+612*math.Pi))/51, m.Delta, 1e-12)
}

func TestCompute_FixedTimeline(t *testing.T) {
	in := referenceInput()
	in.TimelineLength = 120

	m := New(WithFixedTimeline(true)).Compute(in)
	require.Len(t, m.Curve, CurveSamples)
	assert.Equal(t, float64(FixedTimelineLength), m.TimelineLength)
	assert.Equal(t, float64(FixedTimelineLength), m.Curve[CurveSamples-1].T)
}

func TestCompute_UnitDoesNotAffectValues(t *testing.T) {
	eng := New()
	base := eng.Compute(referenceInput())
	for _, u := range []TimelineUnit{UnitDays, UnitWeeks, UnitMonths} {
		in := referenceInput()
		in.TimelineUnit = u
		m := eng.Compute(in)
		assert.Equal(t, u, m.TimelineUnit)
		assert.Equal(t, base.Delta, m.Delta)
		if diff := cmp.Diff(base.Curve, m.Curve); diff != "" {
			t.Errorf("curve changed with unit %s:\n%s", u, diff)
		}
	}
}

func TestPulseRadius(t *testing.T) {
	tests := []struct {
		g    float64
		want float64
	}{
		{0, 6},
		{-7.5, 7.5},
		{12, 6},
		{5.25, 11.25},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, PulseRadius(tt.g), 1e-12, "g=%v", tt.g)
	}

	m := New().Compute(referenceInput())
	assert.InDelta(t, 6+math.Mod(math.Abs(m.G), 6), m.PulseRadius(), 1e-12)
	assert.GreaterOrEqual(t, m.PulseRadius(), 6.0)
	assert.Less(t, m.PulseRadius(), 12.0)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.24, Round2(1.2351))
	assert.Equal(t, -27.4, Round2(-27.40364))
	assert.Equal(t, 0.0, Round2(0.001))
}

func TestVariant(t *testing.T) {
	tests := []struct {
		name      string
		fallback  FallbackPolicy
		perturb   bool
		fixedTime bool
	}{
		{VariantClassic, FallbackOverride, false, true},
		{VariantStreamlined, FallbackOverride, false, false},
		{VariantFixedDefault, FallbackFixed, false, false},
		{VariantPerturbed, FallbackOverride, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Variant(tt.name)
			require.NoError(t, err)
			eng := New(opts...)
			assert.Equal(t, tt.fallback, eng.Fallback())
			assert.Equal(t, tt.perturb, eng.PerturbsFriction())
			assert.Equal(t, tt.fixedTime, eng.FixedTimeline())
			assert.Equal(t, DefaultKappa, eng.DefaultKappa())
		})
	}

	_, err := Variant("nightly")
	assert.Error(t, err)
}

func TestParseFallbackPolicy(t *testing.T) {
	p, err := ParseFallbackPolicy(" Fixed ")
	require.NoError(t, err)
	assert.Equal(t, FallbackFixed, p)

	p, err = ParseFallbackPolicy("override")
	require.NoError(t, err)
	assert.Equal(t, FallbackOverride, p)

	_, err = ParseFallbackPolicy("scalar")
	assert.Error(t, err)
}

func TestWithFallback_UnknownPolicy(t *testing.T) {
	assert.Equal(t, FallbackOverride, New(WithFallback(FallbackPolicy("bogus"))).Fallback())
	assert.Equal(t, FallbackOverride, New(WithFallback("")).Fallback())
	assert.Equal(t, FallbackFixed, New(WithFallback(FallbackFixed)).Fallback())
}
