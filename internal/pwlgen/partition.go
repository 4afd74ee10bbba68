// Package pwlgen implements the design-time piecewise-linear partition and
// coefficient search for the sigmoid family. It produces, per Q-format, a
// non-uniform interval partition with per-interval slope/offset pairs
// minimizing approximation error, and flattens them into the dense
// uniform-index tables consumed at runtime. Symmetry covers negative
// inputs for free, so the search works on [0, max] only.
//
// This is batch tooling off the runtime critical path: single-threaded,
// no latency contract.
package pwlgen

import (
	"fmt"
	"math"

	"github.com/silagokth/NACU/internal/fixed"
)

// Partition is an ascending sequence of raw breakpoints over the
// non-negative magnitude range: first point 0, last point the format's
// maximum representable value.
type Partition struct {
	Frac   int
	Points []int64
}

// Intervals returns the number of intervals the breakpoints delimit.
func (p Partition) Intervals() int { return len(p.Points) - 1 }

// Validate checks the partition invariants: at least one interval,
// non-decreasing breakpoints, first 0, last the format maximum.
func (p Partition) Validate() error {
	if len(p.Points) < 2 {
		return fmt.Errorf("pwlgen: partition needs at least 2 breakpoints, has %d", len(p.Points))
	}
	if p.Points[0] != 0 {
		return fmt.Errorf("pwlgen: first breakpoint is %d, want 0", p.Points[0])
	}
	f := fixed.Format{Bits: fixed.PipelineBits, Frac: p.Frac}
	if last := p.Points[len(p.Points)-1]; last != f.MaxRaw() {
		return fmt.Errorf("pwlgen: last breakpoint is %d, want %d", last, f.MaxRaw())
	}
	for i := 1; i < len(p.Points); i++ {
		if p.Points[i] < p.Points[i-1] {
			return fmt.Errorf("pwlgen: breakpoint %d decreases (%d < %d)", i, p.Points[i], p.Points[i-1])
		}
	}
	return nil
}

// SaturationPoint returns the smallest raw magnitude at which sigmoid is
// numerically saturated to 1 for the given fractional width, i.e. where
// 1-sigmoid(x) drops below half an LSB.
func SaturationPoint(frac int) int64 {
	scale := float64(int64(1) << frac)
	x := math.Log(2*scale - 1)
	raw := int64(math.Ceil(x * scale))
	max := fixed.Format{Bits: fixed.PipelineBits, Frac: frac}.MaxRaw()
	if raw > max {
		return max
	}
	return raw
}

// seed builds the initial partition: n-1 uniform intervals over
// [0, saturation point] plus one final interval reserved for the
// saturated tail up to the format maximum.
func seed(frac, n int) Partition {
	sat := SaturationPoint(frac)
	max := fixed.Format{Bits: fixed.PipelineBits, Frac: frac}.MaxRaw()

	points := make([]int64, n+1)
	for i := 0; i < n; i++ {
		points[i] = int64(i) * sat / int64(n-1)
	}
	points[n] = max
	return Partition{Frac: frac, Points: points}
}

// reuniform redistributes the breakpoints left of index i uniformly over
// [0, Points[i]], the downstream recompute step of the greedy search.
func (p Partition) reuniform(i int) {
	for j := 1; j < i; j++ {
		p.Points[j] = int64(j) * p.Points[i] / int64(i)
	}
}

func sigma(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
