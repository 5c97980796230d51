package spacecurve

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats"
)

func radii[T Radiuser](s []T) []float64 {
	out := make([]float64, len(s))
	for i, r := range s {
		out[i] = r.Radius()
	}
	return out
}

func TestRunReferenceScenario(t *testing.T) {
	curves := testCurves(t)
	res := Run(curves, math.Pi/4, RunOptions{})

	if len(res.Samples) != 3 {
		t.Fatalf("got %d samples, expected 3", len(res.Samples))
	}
	var kinds []Kind
	for _, s := range res.Samples {
		kinds = append(kinds, s.Kind)
	}
	diff(t, kinds, []Kind{CircleKind, EllipseKind, HelixKind})

	loose := cmpopts.EquateApprox(0, 1e-4)
	diff(t, res.Samples[0].Point, Pt3(3.5355, 3.5355, 0), loose)
	diff(t, res.Samples[0].Tangent, Vec(-3.5355, 3.5355, 0), loose)
	diff(t, res.Samples[1].Point, Pt3(2.1213, 2.8284, 0), loose)
	diff(t, res.Samples[2].Point, Pt3(1.4142, 1.4142, 0.125), loose)

	diff(t, radii(res.Circles), []float64{5})
	diff(t, res.TotalRadius, 5.0)
}

func TestRunEmpty(t *testing.T) {
	for _, curves := range [][]Curve{nil, {}} {
		res := Run(curves, math.Pi/4, RunOptions{})
		if len(res.Samples) != 0 {
			t.Errorf("got %d samples, expected none", len(res.Samples))
		}
		if len(res.Circles) != 0 {
			t.Errorf("got %d circles, expected none", len(res.Circles))
		}
		if res.TotalRadius != 0 {
			t.Errorf("got total radius %v, expected 0", res.TotalRadius)
		}
	}
}

func TestRunWithoutCircles(t *testing.T) {
	e, err := NewEllipse(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	h, err := NewHelix(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	res := Run([]Curve{e, h, h}, 1, RunOptions{Workers: 2})
	if len(res.Samples) != 3 {
		t.Errorf("got %d samples, expected 3", len(res.Samples))
	}
	if len(res.Circles) != 0 || res.TotalRadius != 0 {
		t.Errorf("got circles %v with total %v, expected none", res.Circles, res.TotalRadius)
	}
}

func TestFilterExactType(t *testing.T) {
	curves := testCurves(t)
	c2, err := NewCircle(1)
	if err != nil {
		t.Fatal(err)
	}
	curves = append(curves, c2, curves[2], curves[0])

	circles := Filter[Circle](curves)
	diff(t, radii(circles), []float64{5, 1, 5})

	helices := Filter[Helix](curves)
	diff(t, radii(helices), []float64{2, 2})

	ellipses := Filter[Ellipse](curves)
	if len(ellipses) != 1 {
		t.Errorf("got %d ellipses, expected 1", len(ellipses))
	}

	byKind := FilterKind(curves, CircleKind)
	if len(byKind) != 3 {
		t.Fatalf("got %d curves of kind Circle, expected 3", len(byKind))
	}
	for i, c := range byKind {
		if _, ok := c.(Circle); !ok {
			t.Errorf("curve %d of kind Circle is a %T", i, c)
		}
	}
	if got := FilterKind(curves, Kind(0)); got != nil {
		t.Errorf("got %v for unknown kind, expected nil", got)
	}
}

func TestSortByRadius(t *testing.T) {
	var circles []Circle
	for _, r := range []float64{3, 1, 4, 1, 5, 9, 2, 6} {
		c, err := NewCircle(r)
		if err != nil {
			t.Fatal(err)
		}
		circles = append(circles, c)
	}
	SortByRadius(circles)
	diff(t, radii(circles), []float64{1, 1, 2, 3, 4, 5, 6, 9})

	var none []Circle
	SortByRadius(none)
}

func TestRunIdempotent(t *testing.T) {
	curves := randomCurves(t, rand.New(rand.NewPCG(1, 2)), 5000)
	opts := RunOptions{Workers: 4}
	r1 := Run(curves, 0.3, opts)
	r2 := Run(curves, 0.3, opts)
	diff(t, r1, r2, cmp.AllowUnexported(Circle{}))
}

func TestRunPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	curves := randomCurves(t, rng, 3000)
	want := floats.Sum(radii(Filter[Circle](curves)))

	for i := range 5 {
		perm := slices.Clone(curves)
		rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })
		res := Run(perm, 0, RunOptions{Workers: i + 1})
		diff(t, res.TotalRadius, want, cmpopts.EquateApprox(1e-12, 0))
		if !slices.IsSortedFunc(res.Circles, func(a, b Circle) int {
			switch {
			case a.Radius() < b.Radius():
				return -1
			case a.Radius() > b.Radius():
				return 1
			default:
				return 0
			}
		}) {
			t.Errorf("permutation %d: circles are not sorted by radius", i)
		}
	}
}

func TestSumRadiiWorkers(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	circles := Filter[Circle](randomCurves(t, rng, 10000))
	want := floats.Sum(radii(circles))
	for _, workers := range []int{-1, 0, 1, 2, 3, 8, 64} {
		got := SumRadii(circles, workers)
		diff(t, got, want, cmpopts.EquateApprox(1e-12, 0))
	}
	if got := SumRadii([]Circle(nil), 4); got != 0 {
		t.Errorf("got %v for no circles, expected 0", got)
	}
}

func randomCurves(t *testing.T, rng *rand.Rand, n int) []Curve {
	t.Helper()
	out := make([]Curve, 0, n)
	for range n {
		var (
			c   Curve
			err error
		)
		switch rng.IntN(3) {
		case 0:
			c, err = NewCircle(rng.Float64() * 100)
		case 1:
			c, err = NewEllipse(rng.Float64()*10, rng.Float64()*10)
		case 2:
			c, err = NewHelix(rng.Float64()*10, rng.Float64())
		}
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, c)
	}
	return out
}
