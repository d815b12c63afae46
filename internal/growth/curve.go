package growth

import "math"

// Linspace returns n evenly spaced values over [start, stop]. Both endpoints
// are exact. A reversed interval yields descending values; start == stop
// yields n copies of start.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// GrowthAt is G·sin(0.2t)·e^(−0.03t).
func GrowthAt(g, t float64) float64 {
	return g * math.Sin(CurveFrequency*t) * math.Exp(-CurveDamping*t)
}

// Curve samples the growth function CurveSamples times over [0, length].
func Curve(g, length float64) []Point {
	ts := Linspace(0, length, CurveSamples)
	pts := make([]Point, len(ts))
	for i, t := range ts {
		pts[i] = Point{T: t, Growth: GrowthAt(g, t)}
	}
	return pts
}
