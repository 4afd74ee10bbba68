package pwlgen

import (
	"math"
	"testing"

	"github.com/silagokth/NACU/internal/fixed"
)

func TestSaturationPoint(t *testing.T) {
	// At fb=11 sigmoid reaches 1 within half an LSB around x = ln(2*2048-1) ~ 8.3.
	sat := SaturationPoint(11)
	x := float64(sat) / 2048
	if x < 8.0 || x > 8.7 {
		t.Errorf("saturation point = %v, want ~8.3", x)
	}
	// Residual at the saturation point is below half an LSB.
	if resid := (1 - 1/(1+math.Exp(-x))) * 2048; resid > 0.5 {
		t.Errorf("residual at saturation point = %v LSB, want < 0.5", resid)
	}

	// Coarse formats saturate within range too.
	coarse := fixed.Format{Bits: 16, Frac: 2}
	if SaturationPoint(2) > coarse.MaxRaw() {
		t.Error("saturation point exceeds representable range")
	}
}

func TestSeedPartition(t *testing.T) {
	p := seed(11, 8)
	if err := p.Validate(); err != nil {
		t.Fatalf("seed partition invalid: %v", err)
	}
	if p.Intervals() != 8 {
		t.Errorf("intervals = %d, want 8", p.Intervals())
	}
	// The second-to-last breakpoint is the saturation point; the final
	// interval is the reserved saturated tail.
	if p.Points[7] != SaturationPoint(11) {
		t.Errorf("points[7] = %d, want saturation point %d", p.Points[7], SaturationPoint(11))
	}
}

func TestPartitionValidate(t *testing.T) {
	maxRaw := fixed.Format{Bits: 16, Frac: 6}.MaxRaw()

	bad := Partition{Frac: 6, Points: []int64{0, 100, 50, maxRaw}}
	if bad.Validate() == nil {
		t.Error("decreasing breakpoints should fail validation")
	}
	bad = Partition{Frac: 6, Points: []int64{1, 100, maxRaw}}
	if bad.Validate() == nil {
		t.Error("first breakpoint != 0 should fail validation")
	}
	bad = Partition{Frac: 6, Points: []int64{0, 100, 200}}
	if bad.Validate() == nil {
		t.Error("last breakpoint != max should fail validation")
	}
	good := Partition{Frac: 6, Points: []int64{0, 100, 100, maxRaw}}
	if err := good.Validate(); err != nil {
		t.Errorf("non-decreasing partition rejected: %v", err)
	}
}

func TestSearchSmall(t *testing.T) {
	res, err := Search(Options{Frac: 6, Intervals: 4, Metric: MetricSum})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if err := res.Partition.Validate(); err != nil {
		t.Errorf("result partition invalid: %v", err)
	}
	if got := len(res.Segments); got != 4 {
		t.Errorf("segments = %d, want 4", got)
	}
	for i, s := range res.Segments {
		if s.Slope < 0 || s.Offset < 0 {
			t.Errorf("segment %d has negative coefficients: %+v", i, s)
		}
	}
	// The greedy search must not do worse than the uniform seed.
	seedP := seed(6, 4)
	if seedErr := partitionError(seedP, MetricSum); partitionError(res.Partition, MetricSum) > seedErr {
		t.Errorf("searched partition error exceeds seed error %v", seedErr)
	}
	t.Logf("fb=6 N=4: sum=%.2f max=%.2f LSB", res.SumAbsErr, res.MaxAbsErr)
}

func TestSearchMaxMetric(t *testing.T) {
	res, err := Search(Options{Frac: 6, Intervals: 4, Metric: MetricMax})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.MaxAbsErr <= 0 {
		t.Errorf("max error = %v, expected positive (approximation is not exact)", res.MaxAbsErr)
	}
}

func TestSearchRejectsBadOptions(t *testing.T) {
	if _, err := Search(Options{Frac: 16, Intervals: 4}); err == nil {
		t.Error("fb=16 should be rejected")
	}
	if _, err := Search(Options{Frac: 6, Intervals: 1}); err == nil {
		t.Error("one interval should be rejected")
	}
}

func TestFlatten(t *testing.T) {
	res, err := Search(Options{Frac: 6, Intervals: 4, Metric: MetricSum})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	tbl, err := FlattenTable(res)
	if err != nil {
		t.Fatalf("FlattenTable: %v", err)
	}
	wantCells := 1 << (fixed.PipelineBits - 1 - tbl.NumInLUT)
	if len(tbl.Entries) != wantCells {
		t.Fatalf("flattened cells = %d, want %d", len(tbl.Entries), wantCells)
	}

	// The origin cell's intercept must sit at exactly one half, and the
	// per-cell refit must keep slopes falling and intercepts climbing.
	one := int64(1) << 6
	if got := tbl.Entries[0].Offset; got != one/2 {
		t.Errorf("origin cell intercept = %d, want %d", got, one/2)
	}
	for i := 1; i < len(tbl.Entries); i++ {
		prev, e := tbl.Entries[i-1], tbl.Entries[i]
		if e.Slope > prev.Slope {
			t.Errorf("cell %d: slope increases (%d > %d)", i, e.Slope, prev.Slope)
		}
		if e.Offset < prev.Offset {
			t.Errorf("cell %d: offset decreases (%d < %d)", i, e.Offset, prev.Offset)
		}
	}

	if _, err := Flatten(res, 0); err == nil {
		t.Error("numInLUT=0 should be rejected")
	}
}
