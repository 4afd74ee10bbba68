package pwlgen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/silagokth/NACU/internal/fixed"
)

// Metric selects the error objective the breakpoint search minimizes.
type Metric int

const (
	// MetricSum minimizes the cumulative absolute error.
	MetricSum Metric = iota
	// MetricMax minimizes the worst-case absolute error.
	MetricMax
)

// Options parameterizes one search run.
type Options struct {
	Frac      int
	Intervals int
	Metric    Metric

	// SearchRadius is the coefficient neighborhood explored around the
	// analytic seed, in LSBs. Zero means the default of 5.
	SearchRadius int64
}

// Segment is one interval's discrete coefficients: raw slope and
// y-intercept offset in the target format.
type Segment struct {
	Slope  int64
	Offset int64
}

// Result is a finished search: the partition, one segment per interval,
// and the error figures callers should inspect before accepting the
// table. The greedy search stops at local minima, so the figures are the
// only quality signal.
type Result struct {
	Partition Partition
	Segments  []Segment

	SumAbsErr float64 // cumulative |error| in LSBs, integrated over x
	MaxAbsErr float64 // worst-case |error| in LSBs
}

// Search derives a partition and coefficient set for sigmoid on
// [0, max] under the given options.
func Search(opts Options) (*Result, error) {
	if opts.Frac < 0 || opts.Frac > 15 {
		return nil, fmt.Errorf("pwlgen: fractional width %d out of range [0,15]", opts.Frac)
	}
	if opts.Intervals < 2 {
		return nil, fmt.Errorf("pwlgen: need at least 2 intervals, got %d", opts.Intervals)
	}
	radius := opts.SearchRadius
	if radius == 0 {
		radius = 5
	}

	p := seed(opts.Frac, opts.Intervals)
	best := partitionError(p, opts.Metric)

	// Greedy hill-climb, right to left over interior breakpoints: shrink
	// the breakpoint by one LSB, re-uniform the sub-partition to its left,
	// keep the move while the objective does not increase. The first
	// increase reverts the move and advances to the next breakpoint. No
	// global optimum is guaranteed.
	for i := opts.Intervals - 1; i >= 1; i-- {
		for p.Points[i]-1 > p.Points[i-1] {
			saved := append([]int64(nil), p.Points...)
			p.Points[i]--
			p.reuniform(i)
			if err := partitionError(p, opts.Metric); err <= best {
				best = err
				continue
			}
			p.Points = saved
			break
		}
	}

	segs := make([]Segment, p.Intervals())
	for i := range segs {
		segs[i] = refineSegment(p.Frac, p.Points[i], p.Points[i+1], radius)
	}

	res := &Result{Partition: p, Segments: segs}
	res.SumAbsErr, res.MaxAbsErr = measure(p, segs)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// analyticSegment centers a segment on the interval midpoint: slope from
// the derivative, offset as the matching intercept, both quantized to the
// format.
func analyticSegment(frac int, lo, hi int64) Segment {
	scale := float64(int64(1) << frac)
	mid := float64(lo+hi) / 2 / scale
	sg := sigma(mid)
	slopeReal := sg * (1 - sg)

	f := fixed.Format{Bits: fixed.PipelineBits, Frac: frac}
	slope := int64(math.Round(slopeReal * scale))
	offset := f.Clamp(int64(math.Round((sg - slopeReal*mid) * scale)))
	if offset < 0 {
		offset = 0
	}
	return Segment{Slope: slope, Offset: offset}
}

// segmentErrors samples the absolute approximation error of seg over
// [lo, hi) in LSBs, returning the samples and the stride used.
func segmentErrors(frac int, lo, hi int64, seg Segment, maxSamples int64) ([]float64, int64) {
	width := hi - lo
	if width <= 0 {
		return nil, 1
	}
	stride := width / maxSamples
	if stride < 1 {
		stride = 1
	}
	scale := float64(int64(1) << frac)

	var errs []float64
	for x := lo; x < hi; x += stride {
		approx := (seg.Slope*x)>>uint(frac) + seg.Offset
		errs = append(errs, math.Abs(sigma(float64(x)/scale)*scale-float64(approx)))
	}
	return errs, stride
}

// partitionError scores a whole partition under the metric, using the
// analytic per-interval coefficients. MetricSum integrates |error| over
// the domain; MetricMax takes the worst sample.
func partitionError(p Partition, m Metric) float64 {
	var total, worst float64
	for i := 0; i < p.Intervals(); i++ {
		lo, hi := p.Points[i], p.Points[i+1]
		if lo == hi {
			continue
		}
		seg := analyticSegment(p.Frac, lo, hi)
		errs, stride := segmentErrors(p.Frac, lo, hi, seg, 256)
		if len(errs) == 0 {
			continue
		}
		total += floats.Sum(errs) * float64(stride)
		if w := floats.Max(errs); w > worst {
			worst = w
		}
	}
	if m == MetricMax {
		return worst
	}
	return total
}

// refineSegment searches the discrete neighborhood around the analytic
// seed for the (slope, offset) pair minimizing summed absolute error over
// the positive interval and its mirrored negative interval together, so
// one pair serves both halves through the symmetry transforms.
func refineSegment(frac int, lo, hi int64, radius int64) Segment {
	seed := analyticSegment(frac, lo, hi)
	if hi <= lo {
		return seed
	}

	one := int64(1) << frac
	scale := float64(one)
	maxRaw := fixed.Format{Bits: fixed.PipelineBits, Frac: frac}.MaxRaw()

	width := hi - lo
	stride := width / 64
	if stride < 1 {
		stride = 1
	}

	bestSeg := seed
	bestErr := math.Inf(1)
	for slope := max(0, seed.Slope-radius); slope <= seed.Slope+radius; slope++ {
		for offset := max(0, seed.Offset-radius); offset <= min(maxRaw, seed.Offset+radius); offset++ {
			var err float64
			for x := lo; x < hi; x += stride {
				pos := (slope*x)>>uint(frac) + offset
				err += math.Abs(sigma(float64(x)/scale)*scale - float64(pos))
				neg := (slope*-x)>>uint(frac) + (one - offset)
				err += math.Abs(sigma(float64(-x)/scale)*scale - float64(neg))
			}
			if err < bestErr {
				bestErr = err
				bestSeg = Segment{Slope: slope, Offset: offset}
			}
		}
	}
	return bestSeg
}

// measure reports both error figures for the finished table.
func measure(p Partition, segs []Segment) (sum, worst float64) {
	for i := 0; i < p.Intervals(); i++ {
		lo, hi := p.Points[i], p.Points[i+1]
		if lo == hi {
			continue
		}
		errs, stride := segmentErrors(p.Frac, lo, hi, segs[i], 1024)
		if len(errs) == 0 {
			continue
		}
		sum += floats.Sum(errs) * float64(stride)
		if w := floats.Max(errs); w > worst {
			worst = w
		}
	}
	return sum, worst
}

