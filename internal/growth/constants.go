// Package growth provides the delta/growth engine: concept resolution,
// the Δ and G metrics, and the damped growth curve derived from G.
package growth

import "math"

// Core formula constants. Every term of Δ = κ·(M·(I+S) − F)/Φ traces back here.
const (
	// Efficiency is E, the numerator of the rate M.
	Efficiency = 1.2

	// Time is T, the denominator of the rate M.
	Time = 1.0

	// BaseFriction is C before any secondary-number perturbation.
	BaseFriction = 100

	// FrictionCoefficient scales π in the friction load F = C + 612·π.
	FrictionCoefficient = 612

	// StrategicBoost is S, added to the input potential.
	StrategicBoost = 40

	// Phi is the normalization divisor Φ.
	Phi = 51

	// PotentialWeight multiplies both effort and resources in I.
	PotentialWeight = 9

	// GrowthFactor relates G to Δ.
	GrowthFactor = 3

	// PerturbationModulus bounds the secondary-number shift of C to [0, 12].
	PerturbationModulus = 13
)

// Rate is M = E/T.
const Rate = Efficiency / Time // 1.2

// FrictionPi is the π-proportional part of F.
const FrictionPi = FrictionCoefficient * math.Pi // 1922.65470...

// Growth curve shape.
const (
	// CurveSamples is the fixed number of samples in every growth curve.
	CurveSamples = 300

	// CurveFrequency is the angular frequency of the sinusoid.
	CurveFrequency = 0.2

	// CurveDamping is the exponential decay rate.
	CurveDamping = 0.03

	// FixedTimelineLength is the horizon used when the timeline control is absent.
	FixedTimelineLength = 30
)

// Fallbacks for unrecognized concepts.
const (
	// DefaultKappa is the fixed fallback scalar.
	DefaultKappa = 1.0

	// DefaultLabel is the Latin label for any unrecognized concept.
	DefaultLabel = "Veritas"
)

// Pulse circle bounds for the tetrahedron diagram.
const (
	PulseBase   = 6.0
	PulseModulo = 6.0
)
