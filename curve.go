package spacecurve

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidParameter is returned by curve constructors when a parameter is
// NaN or infinite.
var ErrInvalidParameter = errors.New("invalid curve parameter")

// Kind identifies the variant of a [Curve] for reporting purposes.
//
// Kind is not meant for narrowing a Curve to its concrete type; use a type
// assertion or [Filter] for that.
type Kind uint8

const (
	CircleKind Kind = iota + 1
	EllipseKind
	HelixKind
)

func (k Kind) String() string {
	switch k {
	case CircleKind:
		return "Circle"
	case EllipseKind:
		return "Ellipse"
	case HelixKind:
		return "Helix"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Curve describes a space curve parametrized by a scalar.
//
// Unlike curves that are only meaningful for t ∈ [0, 1], the curves in this
// package are defined for all finite t. Implementations are immutable and may
// be evaluated concurrently.
type Curve interface {
	// Eval evaluates the curve's position at parameter t.
	Eval(t float64) Point3
	// Deriv returns the derivative of the position with respect to t.
	//
	// The result is not normalized; its magnitude is the speed at which the
	// curve is traversed.
	Deriv(t float64) Vec3
	// Kind returns the variant of the curve.
	Kind() Kind
}

// EvalDeriver is an optional interface implemented by curves that can compute
// their position and derivative more efficiently together than separately.
type EvalDeriver interface {
	EvalDeriv(t float64) (Point3, Vec3)
}

// Radiuser describes curves that have a radius, which acts as their shape
// parameter when sorting and summing.
type Radiuser interface {
	Radius() float64
}

var (
	_ Curve = Circle{}
	_ Curve = Ellipse{}
	_ Curve = Helix{}

	_ EvalDeriver = Circle{}
	_ EvalDeriver = Ellipse{}
	_ EvalDeriver = Helix{}

	_ Radiuser = Circle{}
	_ Radiuser = Helix{}
)

// EvalDeriv returns the position and derivative of c at t, using
// [EvalDeriver] if c implements it.
func EvalDeriv(c Curve, t float64) (Point3, Vec3) {
	if ed, ok := c.(EvalDeriver); ok {
		return ed.EvalDeriv(t)
	}
	return c.Eval(t), c.Deriv(t)
}

// checkFinite returns an error wrapping ErrInvalidParameter if v is NaN or
// infinite.
func checkFinite(kind Kind, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("spacecurve: %s %s: %w: %v", kind, name, ErrInvalidParameter, v)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
