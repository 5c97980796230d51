// Package parallel implements reductions that fan out over disjoint ranges
// of a slice.
package parallel

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// minChunk is the smallest number of elements worth handing to a goroutine.
// Shorter inputs, or chunks that would be shorter, are summed on fewer
// goroutines.
const minChunk = 1024

// Chunks splits the range [0, n) into at most workers contiguous, disjoint
// ranges of roughly equal length, each at least minLen long where possible.
// The ranges cover [0, n) exactly once and are returned in increasing order.
func Chunks(n, workers, minLen int) [][2]int {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if minLen < 1 {
		minLen = 1
	}
	if maxWorkers := (n + minLen - 1) / minLen; workers > maxWorkers {
		workers = maxWorkers
	}
	size := n / workers
	rem := n % workers
	out := make([][2]int, 0, workers)
	start := 0
	for i := range workers {
		end := start + size
		if i < rem {
			end++
		}
		out = append(out, [2]int{start, end})
		start = end
	}
	return out
}

// Sum returns the sum of xs, computed by up to workers goroutines.
//
// Each goroutine sums one chunk returned by [Chunks] into its own slot, and
// the partial sums are added in chunk order once all goroutines are done.
// The result therefore only depends on xs and the number of chunks, and it
// equals the sequential sum up to rounding.
func Sum(xs []float64, workers int) float64 {
	return SumChunked(xs, workers, minChunk)
}

// SumChunked is like [Sum] but lets the caller choose the minimum chunk
// length.
func SumChunked(xs []float64, workers, minLen int) float64 {
	chunks := Chunks(len(xs), workers, minLen)
	switch len(chunks) {
	case 0:
		return 0
	case 1:
		return floats.Sum(xs)
	}

	partials := make([]float64, len(chunks))
	var g errgroup.Group
	g.SetLimit(len(chunks))
	for i, c := range chunks {
		g.Go(func() error {
			partials[i] = floats.Sum(xs[c[0]:c[1]])
			return nil
		})
	}
	// Summing cannot fail.
	_ = g.Wait()

	var total float64
	for _, p := range partials {
		total += p
	}
	return total
}
