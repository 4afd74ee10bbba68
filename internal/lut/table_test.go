package lut

import (
	"testing"

	"github.com/silagokth/NACU/internal/fixed"
)

func q16(frac int) fixed.Format { return fixed.Format{Bits: fixed.PipelineBits, Frac: frac} }

func TestForFormat(t *testing.T) {
	for frac := 0; frac <= 15; frac++ {
		tbl, err := ForFormat(q16(frac))
		if err != nil {
			t.Fatalf("ForFormat(fb=%d): %v", frac, err)
		}
		wantFrac := frac
		if frac > FinestFrac {
			wantFrac = FinestFrac
		}
		if tbl.Frac != wantFrac {
			t.Errorf("fb=%d served by table fb=%d, want %d", frac, tbl.Frac, wantFrac)
		}
	}

	if _, err := ForFormat(fixed.Format{Bits: 8, Frac: 4}); err == nil {
		t.Error("ForFormat should reject non-pipeline widths")
	}
}

func TestFinestTableSharing(t *testing.T) {
	// fb beyond the finest tabulated format reuses the finest table's
	// entries verbatim, never a copy.
	fine, _ := ForFormat(q16(FinestFrac))
	for _, frac := range []int{12, 13, 14, 15} {
		tbl, _ := ForFormat(q16(frac))
		if tbl != fine {
			t.Errorf("fb=%d got its own table, want the fb=%d table shared", frac, FinestFrac)
		}
	}
}

func TestTableExtent(t *testing.T) {
	// Every table must cover the full post-saturation magnitude range:
	// the largest magnitude indexes the last entry, never past it.
	for frac := 0; frac <= FinestFrac; frac++ {
		tbl, _ := ForFormat(q16(frac))
		maxMag := q16(frac).MaxRaw()
		if got, want := tbl.IndexBits(maxMag), len(tbl.Entries)-1; got != want {
			t.Errorf("fb=%d: IndexBits(max) = %d, want last entry %d", frac, got, want)
		}
		if tbl.IndexBits(0) != 0 {
			t.Errorf("fb=%d: IndexBits(0) != 0", frac)
		}
	}
}

func TestIndexBits(t *testing.T) {
	tbl, _ := ForFormat(q16(11))
	if tbl.NumInLUT != 10 {
		t.Fatalf("fb=11 NumInLUT = %d, want 10", tbl.NumInLUT)
	}
	cases := []struct {
		mag  int64
		want int
	}{
		{0, 0}, {1023, 0}, {1024, 1}, {2048, 2}, {32767, 31},
	}
	for _, tc := range cases {
		if got := tbl.IndexBits(tc.mag); got != tc.want {
			t.Errorf("IndexBits(%d) = %d, want %d", tc.mag, got, tc.want)
		}
	}

	idx, err := SelectIndexBits(q16(11), 2048)
	if err != nil || idx != 2 {
		t.Errorf("SelectIndexBits = (%d, %v), want (2, nil)", idx, err)
	}
}

func TestEntriesShape(t *testing.T) {
	// Stored segments are the sigmoid positive-input case: slopes are
	// non-negative and intercepts stay in the [0.5, 1] band.
	for frac := 5; frac <= FinestFrac; frac++ {
		tbl, _ := ForFormat(q16(frac))
		one := q16(frac).OneRaw()
		for i, e := range tbl.Entries {
			if e.Slope < 0 {
				t.Errorf("fb=%d entry %d: negative slope %d", frac, i, e.Slope)
			}
			if e.Offset < one/2-1 || e.Offset > one {
				t.Errorf("fb=%d entry %d: offset %d outside [0.5,1] band", frac, i, e.Offset)
			}
		}
	}

	// The discrete coefficients also track the exact shape: intercepts
	// climb toward 1.0, slopes decay toward 0.
	for frac := 5; frac <= FinestFrac; frac++ {
		tbl, _ := ForFormat(q16(frac))
		for i := 1; i < len(tbl.Entries); i++ {
			prev, e := tbl.Entries[i-1], tbl.Entries[i]
			if e.Offset < prev.Offset {
				t.Errorf("fb=%d entry %d: offset decreases (%d < %d)", frac, i, e.Offset, prev.Offset)
			}
			if e.Slope > prev.Slope {
				t.Errorf("fb=%d entry %d: slope increases (%d > %d)", frac, i, e.Slope, prev.Slope)
			}
		}
	}
}

func TestOriginIntercept(t *testing.T) {
	// Both signs of a zero input resolve through entry 0, so the symmetry
	// law sigmoid(-x) = 1 - sigmoid(x) holds at the origin only if the
	// stored intercept sits at one half of the table's own format.
	for frac := 0; frac <= FinestFrac; frac++ {
		tbl, err := ForFormat(q16(frac))
		if err != nil {
			t.Fatalf("ForFormat(fb=%d): %v", frac, err)
		}
		one := q16(frac).OneRaw()
		dev := 2*tbl.Entries[0].Offset - one
		if dev < 0 {
			dev = -dev
		}
		if dev > 1 {
			t.Errorf("fb=%d entry 0 intercept %d deviates %d LSB from one half", frac, tbl.Entries[0].Offset, dev)
		}
	}
}
