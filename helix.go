package spacecurve

import (
	"math"
)

// Helix is a circular helix around the z axis. It starts in the z = 0 plane
// and rises by Step for every full turn, that is, for every 2π of t.
type Helix struct {
	radius float64
	step   float64
}

// NewHelix returns a helix with the given radius and rise per turn.
func NewHelix(radius, step float64) (Helix, error) {
	if err := checkFinite(HelixKind, "radius", radius); err != nil {
		return Helix{}, err
	}
	if err := checkFinite(HelixKind, "step", step); err != nil {
		return Helix{}, err
	}
	return Helix{radius: radius, step: step}, nil
}

func (h Helix) Radius() float64 { return h.radius }

// Step returns the vertical distance covered by one full turn.
func (h Helix) Step() float64 { return h.step }

func (h Helix) Kind() Kind { return HelixKind }

// Eval implements Curve.
func (h Helix) Eval(t float64) Point3 {
	p, _ := h.EvalDeriv(t)
	return p
}

// Deriv implements Curve.
func (h Helix) Deriv(t float64) Vec3 {
	_, d := h.EvalDeriv(t)
	return d
}

// EvalDeriv implements EvalDeriver.
func (h Helix) EvalDeriv(t float64) (Point3, Vec3) {
	sin, cos := math.Sincos(t)
	r := h.radius
	rise := h.step / (2 * math.Pi)
	return Pt3(r*cos, r*sin, rise*t), Vec(-r*sin, r*cos, rise)
}

func (h Helix) IsInf() bool {
	return math.IsInf(h.radius, 0) || math.IsInf(h.step, 0)
}

func (h Helix) IsNaN() bool {
	return math.IsNaN(h.radius) || math.IsNaN(h.step)
}

func (h Helix) String() string {
	return "Helix(" + formatFloat(h.radius) + ", " + formatFloat(h.step) + ")"
}
