package pwlgen

import (
	"fmt"
	"math"
	"sort"

	"github.com/silagokth/NACU/internal/fixed"
	"github.com/silagokth/NACU/internal/lut"
)

// Flatten burns a search result into the dense uniform-index table the
// runtime consumes. Each cell starts from the coefficients of the
// partition interval containing the cell's midpoint, then a short
// neighborhood search refits the pair over the cell's own range. Two
// constraints shape the refit: slopes never increase and intercepts never
// decrease from cell to cell (the exact curve does neither), and the cell
// containing the origin keeps its intercept at exactly one half, so the
// sign-symmetry transforms agree at x = 0.
func Flatten(res *Result, numInLUT int) ([]lut.Entry, error) {
	if err := res.Partition.Validate(); err != nil {
		return nil, err
	}
	if numInLUT < 1 || numInLUT >= fixed.PipelineBits-1 {
		return nil, fmt.Errorf("pwlgen: numInLUT %d out of range", numInLUT)
	}

	points := res.Partition.Points
	cells := 1 << (fixed.PipelineBits - 1 - numInLUT)
	entries := make([]lut.Entry, cells)
	var prev *lut.Entry
	for i := 0; i < cells; i++ {
		lo := int64(i) << uint(numInLUT)
		hi := int64(i+1) << uint(numInLUT)
		mid := lo + int64(1)<<uint(numInLUT-1)
		// Interval k covers [points[k], points[k+1]).
		k := sort.Search(len(points)-2, func(j int) bool { return points[j+1] > mid })
		entries[i] = refineCell(res.Partition.Frac, lo, hi, res.Segments[k], i == 0, prev)
		prev = &entries[i]
	}
	return entries, nil
}

// refineCell searches the discrete neighborhood of seed for the pair
// minimizing summed absolute error over one uniform cell and its mirrored
// negative range. pin fixes the intercept to one half for the origin
// cell; prev caps the slope and floors the intercept so the finished
// table stays monotone. When the constraints leave no candidate, the
// previous cell's segment simply continues.
func refineCell(frac int, lo, hi int64, seed Segment, pin bool, prev *lut.Entry) lut.Entry {
	one := int64(1) << uint(frac)
	scale := float64(one)
	maxRaw := fixed.Format{Bits: fixed.PipelineBits, Frac: frac}.MaxRaw()

	const radius = 5
	sLo, sHi := max(int64(0), seed.Slope-radius), seed.Slope+radius
	oLo, oHi := max(int64(0), seed.Offset-radius), min(maxRaw, seed.Offset+radius)
	if pin {
		oLo, oHi = one/2, one/2
	}
	if prev != nil {
		sHi = min(sHi, prev.Slope)
		oLo = max(oLo, prev.Offset)
		if sLo > sHi || oLo > oHi {
			return *prev
		}
	}

	stride := (hi - lo) / 64
	if stride < 1 {
		stride = 1
	}

	var best lut.Entry
	bestErr := math.Inf(1)
	for slope := sLo; slope <= sHi; slope++ {
		for offset := oLo; offset <= oHi; offset++ {
			var err float64
			for x := lo; x < hi; x += stride {
				pos := (slope*x)>>uint(frac) + offset
				err += math.Abs(sigma(float64(x)/scale)*scale - float64(pos))
				neg := (slope*-x)>>uint(frac) + (one - offset)
				err += math.Abs(sigma(float64(-x)/scale)*scale - float64(neg))
			}
			if err < bestErr {
				bestErr = err
				best = lut.Entry{Slope: slope, Offset: offset}
			}
		}
	}
	return best
}

// FlattenTable is Flatten with the runtime's own granularity constant for
// the result's format, yielding a table directly loadable by internal/lut.
func FlattenTable(res *Result) (*lut.Table, error) {
	n := lut.NumInLUT(res.Partition.Frac)
	entries, err := Flatten(res, n)
	if err != nil {
		return nil, err
	}
	return &lut.Table{Frac: res.Partition.Frac, NumInLUT: n, Entries: entries}, nil
}
