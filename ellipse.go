package spacecurve

import (
	"math"
)

// Ellipse is an axis-aligned ellipse centered on the origin and lying in the
// z = 0 plane.
type Ellipse struct {
	radiusX float64
	radiusY float64
}

// NewEllipse returns an ellipse with radius radiusX along the x axis and
// radiusY along the y axis.
func NewEllipse(radiusX, radiusY float64) (Ellipse, error) {
	if err := checkFinite(EllipseKind, "radiusX", radiusX); err != nil {
		return Ellipse{}, err
	}
	if err := checkFinite(EllipseKind, "radiusY", radiusY); err != nil {
		return Ellipse{}, err
	}
	return Ellipse{radiusX: radiusX, radiusY: radiusY}, nil
}

// Radii returns the horizontal and vertical radius of the ellipse.
func (e Ellipse) Radii() (float64, float64) {
	return e.radiusX, e.radiusY
}

func (e Ellipse) Kind() Kind { return EllipseKind }

// Eval implements Curve.
func (e Ellipse) Eval(t float64) Point3 {
	p, _ := e.EvalDeriv(t)
	return p
}

// Deriv implements Curve.
func (e Ellipse) Deriv(t float64) Vec3 {
	_, d := e.EvalDeriv(t)
	return d
}

// EvalDeriv implements EvalDeriver.
func (e Ellipse) EvalDeriv(t float64) (Point3, Vec3) {
	sin, cos := math.Sincos(t)
	rx, ry := e.radiusX, e.radiusY
	return Pt3(rx*cos, ry*sin, 0), Vec(-rx*sin, ry*cos, 0)
}

func (e Ellipse) IsInf() bool {
	return math.IsInf(e.radiusX, 0) || math.IsInf(e.radiusY, 0)
}

func (e Ellipse) IsNaN() bool {
	return math.IsNaN(e.radiusX) || math.IsNaN(e.radiusY)
}

func (e Ellipse) String() string {
	return "Ellipse(" + formatFloat(e.radiusX) + ", " + formatFloat(e.radiusY) + ")"
}
