package spacecurve

import (
	"math"
)

// Circle is a circle of a given radius, centered on the origin and lying in
// the z = 0 plane. It is traversed counter-clockwise, completing one turn per
// 2π of t.
type Circle struct {
	radius float64
}

// NewCircle returns a circle with the given radius.
//
// Radius is expected to be positive but only NaN and infinite values are
// rejected.
func NewCircle(radius float64) (Circle, error) {
	if err := checkFinite(CircleKind, "radius", radius); err != nil {
		return Circle{}, err
	}
	return Circle{radius: radius}, nil
}

func (c Circle) Radius() float64 { return c.radius }

func (c Circle) Kind() Kind { return CircleKind }

// Eval implements Curve.
func (c Circle) Eval(t float64) Point3 {
	p, _ := c.EvalDeriv(t)
	return p
}

// Deriv implements Curve.
func (c Circle) Deriv(t float64) Vec3 {
	_, d := c.EvalDeriv(t)
	return d
}

// EvalDeriv implements EvalDeriver.
func (c Circle) EvalDeriv(t float64) (Point3, Vec3) {
	sin, cos := math.Sincos(t)
	r := c.radius
	return Pt3(r*cos, r*sin, 0), Vec(-r*sin, r*cos, 0)
}

func (c Circle) IsInf() bool {
	return math.IsInf(c.radius, 0)
}

func (c Circle) IsNaN() bool {
	return math.IsNaN(c.radius)
}

// Ellipse returns the ellipse with both radii equal to the circle's radius.
func (c Circle) Ellipse() Ellipse {
	return Ellipse{radiusX: c.radius, radiusY: c.radius}
}

func (c Circle) String() string {
	return "Circle(" + formatFloat(c.radius) + ")"
}
