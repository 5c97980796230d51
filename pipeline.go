package spacecurve

import (
	"cmp"
	"runtime"
	"slices"

	"honnef.co/go/spacecurve/internal/parallel"
)

// Sample is the position and derivative of a curve at some parameter.
type Sample struct {
	Kind    Kind
	Point   Point3
	Tangent Vec3
}

// Evaluate evaluates every curve at t. The samples are in the same order as
// curves.
func Evaluate(curves []Curve, t float64) []Sample {
	out := make([]Sample, len(curves))
	for i, c := range curves {
		p, d := EvalDeriv(c, t)
		out[i] = Sample{
			Kind:    c.Kind(),
			Point:   p,
			Tangent: d,
		}
	}
	return out
}

// Filter returns the curves whose dynamic type is exactly T, in their
// original order.
//
// Filter[Circle] does not select helices, even though they too have a radius.
func Filter[T Curve](curves []Curve) []T {
	var out []T
	for _, c := range curves {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// FilterKind returns the curves of the given kind, in their original order.
func FilterKind(curves []Curve, kind Kind) []Curve {
	var out []Curve
	for _, c := range curves {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// SortByRadius sorts s in ascending order of radius. The sort is not stable.
func SortByRadius[T Radiuser](s []T) {
	slices.SortFunc(s, func(a, b T) int {
		return cmp.Compare(a.Radius(), b.Radius())
	})
}

// SumRadii returns the sum of the radii in s, using up to workers goroutines.
// A workers value of less than one uses runtime.GOMAXPROCS(0).
//
// Addition is only associative up to rounding, so the result may differ from
// a sequential sum in the last bits. It does not vary between calls with the
// same arguments.
func SumRadii[T Radiuser](s []T, workers int) float64 {
	if len(s) == 0 {
		return 0
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	radii := make([]float64, len(s))
	for i, r := range s {
		radii[i] = r.Radius()
	}
	return parallel.Sum(radii, workers)
}

// RunOptions configures [Run]. The zero value is ready to use.
type RunOptions struct {
	// Workers is the maximum number of goroutines used to sum radii. If
	// zero, runtime.GOMAXPROCS(0) is used.
	Workers int
}

// Result holds the output of [Run].
type Result struct {
	// Samples holds one sample per input curve, in input order.
	Samples []Sample
	// Circles holds the circles among the input curves, sorted by radius.
	Circles []Circle
	// TotalRadius is the sum of the radii of Circles.
	TotalRadius float64
}

// Run evaluates all curves at t, selects the circles, sorts them by radius
// and sums their radii.
//
// An empty list of curves, or one without circles, is not an error; the
// corresponding fields of the result are empty or zero.
func Run(curves []Curve, t float64, opts RunOptions) Result {
	samples := Evaluate(curves, t)
	circles := Filter[Circle](curves)
	SortByRadius(circles)
	return Result{
		Samples:     samples,
		Circles:     circles,
		TotalRadius: SumRadii(circles, opts.Workers),
	}
}
