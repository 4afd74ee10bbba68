package fixed

import "testing"

func TestAddOverflowFlag(t *testing.T) {
	f := q(11)

	sum, overflow := Add(f.Max(), Value{Raw: 1, Fmt: f})
	if !overflow {
		t.Error("max + 1 LSB should report overflow")
	}
	if sum.Raw != f.MaxRaw()+1 {
		t.Errorf("widened sum = %d, want %d", sum.Raw, f.MaxRaw()+1)
	}

	sum, overflow = Add(Value{Raw: 100, Fmt: f}, Value{Raw: -250, Fmt: f})
	if overflow {
		t.Error("in-range sum should not report overflow")
	}
	if sum.Raw != -150 {
		t.Errorf("sum = %d, want -150", sum.Raw)
	}
}

func TestAddSat(t *testing.T) {
	f := q(11)
	if got := AddSat(f.Max(), f.Max()); got.Raw != f.MaxRaw() {
		t.Errorf("max+max = %d, want saturated %d", got.Raw, f.MaxRaw())
	}
	if got := AddSat(f.Min(), f.Min()); got.Raw != f.MinRaw() {
		t.Errorf("min+min = %d, want saturated %d", got.Raw, f.MinRaw())
	}
}

func TestMulShift(t *testing.T) {
	f := q(11)

	// 0.5 * 0.5 = 0.25 exactly.
	half := f.FromFloat(0.5)
	if got := MulShift(half, half); got.Raw != 512 {
		t.Errorf("0.5*0.5 = raw %d, want 512", got.Raw)
	}

	// Truncation floors in two's complement: -0.5 * 0.000488 = -0.000244,
	// which floors to -1 LSB rather than rounding to 0.
	tiny := Value{Raw: 1, Fmt: f}
	if got := MulShift(f.FromFloat(-0.5), tiny); got.Raw != -1 {
		t.Errorf("(-0.5)*(1 LSB) = raw %d, want -1 (floor)", got.Raw)
	}
}

func TestNegateSaturation(t *testing.T) {
	// Negating the most negative Q5.11 value (-16.0) saturates to the
	// maximum representable 15.99951171875, since +16.0 does not exist.
	f := q(11)
	got := NegateSat(f.Min())
	if got.Raw != f.MaxRaw() {
		t.Fatalf("NegateSat(min) = raw %d, want %d", got.Raw, f.MaxRaw())
	}
	if got.Float() != 15.99951171875 {
		t.Errorf("NegateSat(-16.0) = %v, want 15.99951171875", got.Float())
	}

	if got := NegateSat(f.FromFloat(2.5)); got.Float() != -2.5 {
		t.Errorf("NegateSat(2.5) = %v, want -2.5", got.Float())
	}
}

func TestDivide(t *testing.T) {
	f := q(11)

	t.Run("exact", func(t *testing.T) {
		qv, r := Divide(f.FromFloat(6.0), f.FromFloat(2.0))
		if qv.Float() != 3.0 {
			t.Errorf("6/2 = %v, want 3", qv.Float())
		}
		if r.Raw != 0 {
			t.Errorf("6/2 remainder = %d, want 0", r.Raw)
		}
	})

	t.Run("reciprocal", func(t *testing.T) {
		qv, _ := Divide(f.One(), f.FromFloat(0.5))
		if qv.Float() != 2.0 {
			t.Errorf("1/0.5 = %v, want 2", qv.Float())
		}
	})

	t.Run("saturating quotient", func(t *testing.T) {
		// 15.9/0.001 is far beyond Q5.11's range.
		qv, _ := Divide(f.FromFloat(15.9), Value{Raw: 2, Fmt: f})
		if qv.Raw != f.MaxRaw() {
			t.Errorf("oversized quotient = %d, want saturated max", qv.Raw)
		}
	})

	t.Run("divide by zero", func(t *testing.T) {
		// Policy: divisor := 1.0, dividend := max, so 5.0/0 yields the
		// format's maximum representable quotient with remainder 0.
		qv, r := Divide(f.FromFloat(5.0), f.Zero())
		if qv.Raw != f.MaxRaw() {
			t.Errorf("5/0 quotient = raw %d, want max %d", qv.Raw, f.MaxRaw())
		}
		if r.Raw != 0 {
			t.Errorf("5/0 remainder = %d, want 0", r.Raw)
		}

		qv, _ = Divide(f.FromFloat(-5.0), f.Zero())
		if qv.Raw != f.MinRaw() {
			t.Errorf("-5/0 quotient = raw %d, want min %d", qv.Raw, f.MinRaw())
		}
	})

	t.Run("signs", func(t *testing.T) {
		qv, _ := Divide(f.FromFloat(-6.0), f.FromFloat(2.0))
		if qv.Float() != -3.0 {
			t.Errorf("-6/2 = %v, want -3", qv.Float())
		}
		qv, _ = Divide(f.FromFloat(6.0), f.FromFloat(-2.0))
		if qv.Float() != -3.0 {
			t.Errorf("6/-2 = %v, want -3", qv.Float())
		}
	})
}

func TestLongDivideMatchesNative(t *testing.T) {
	cases := []struct{ num, den uint64 }{
		{0, 3}, {1, 1}, {7, 3}, {1 << 20, 2048}, {123456789, 997}, {1<<30 - 1, 1},
	}
	for _, tc := range cases {
		gotQ, gotR := longDivide(tc.num, tc.den, 31)
		if gotQ != tc.num/tc.den || gotR != tc.num%tc.den {
			t.Errorf("longDivide(%d,%d) = (%d,%d), want (%d,%d)",
				tc.num, tc.den, gotQ, gotR, tc.num/tc.den, tc.num%tc.den)
		}
	}
}
