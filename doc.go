// Package spacecurve provides parametric curves in 3D space and routines for
// evaluating and aggregating collections of them.
//
// # Curves
//
// [Curve] describes curves parametrized by a scalar t. Evaluating a curve
// returns its position as a [Point3], and its derivative with respect to t as
// a [Vec3]. The derivative is the curve's tangent; it is not normalized, and
// its magnitude is the speed at which the curve is traversed.
//
// This package includes the following curves:
//   - [Circle]
//   - [Ellipse]
//   - [Helix]
//
// All of them are periodic in their x and y coordinates and are defined for
// any finite t. Curves are immutable values and are created with [NewCircle],
// [NewEllipse] and [NewHelix], which reject NaN and infinite parameters with
// [ErrInvalidParameter].
//
// [Radiuser] and [EvalDeriver] are optional interfaces. The former is
// implemented by curves that have a radius, the latter by curves that can
// compute their position and derivative in one go.
//
// # Aggregation
//
// [Evaluate] samples a list of curves at a single parameter. [Filter] narrows
// a list of curves to a single concrete type with checked type assertions.
// [SortByRadius] and [SumRadii] order and reduce curves by their radius, the
// latter summing in parallel over disjoint ranges of its input.
//
// [Run] combines these steps: it samples every curve, selects the circles,
// sorts them and sums their radii.
package spacecurve
