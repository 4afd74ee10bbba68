package fixed

import "testing"

func q(frac int) Format { return Format{Bits: PipelineBits, Frac: frac} }

func TestNewFormat(t *testing.T) {
	if _, err := NewFormat(16, 11); err != nil {
		t.Fatalf("NewFormat(16,11): %v", err)
	}
	if _, err := NewFormat(16, 16); err == nil {
		t.Error("NewFormat(16,16) should reject frac == bits")
	}
	if _, err := NewFormat(1, 0); err == nil {
		t.Error("NewFormat(1,0) should reject width 1")
	}
}

func TestConvertRoundTripIdempotence(t *testing.T) {
	// Requantizing an in-range value to its own format returns it unchanged.
	f := q(11)
	for _, raw := range []int64{f.MinRaw(), -2048, -1, 0, 1, 1024, f.MaxRaw()} {
		v := Value{Raw: raw, Fmt: f}
		got := Convert(v, f)
		if got.Raw != raw {
			t.Errorf("Convert(%d, same format) = %d, want unchanged", raw, got.Raw)
		}
	}
}

func TestConvertNarrowing(t *testing.T) {
	// Q5.11 -> Q8.8 drops three fractional bits by truncation.
	from, to := q(11), q(8)

	cases := []struct {
		name string
		raw  int64
		want int64
	}{
		{"exact", 1 << 11, 1 << 8},      // 1.0
		{"truncates", 2047, 255},        // 0.99951... -> 0.996...
		{"negative floor", -1, -1},      // -0.000488 -> -0.0039 (floor)
		{"zero", 0, 0},
		{"max passes", from.MaxRaw(), from.MaxRaw() >> 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Convert(Value{Raw: tc.raw, Fmt: from}, to)
			if got.Raw != tc.want {
				t.Errorf("Convert(%d) = %d, want %d", tc.raw, got.Raw, tc.want)
			}
		})
	}
}

func TestConvertWideningSaturates(t *testing.T) {
	// Q8.8 -> Q5.11: values beyond +-16 saturate to Q5.11's extremes.
	from, to := q(8), q(11)

	got := Convert(Value{Raw: 20 << 8, Fmt: from}, to) // 20.0
	if got.Raw != to.MaxRaw() {
		t.Errorf("widening 20.0 = raw %d, want saturated max %d", got.Raw, to.MaxRaw())
	}

	got = Convert(Value{Raw: -20 << 8, Fmt: from}, to)
	if got.Raw != to.MinRaw() {
		t.Errorf("widening -20.0 = raw %d, want saturated min %d", got.Raw, to.MinRaw())
	}

	// In-range values shift exactly, zero-filling low bits.
	got = Convert(Value{Raw: 3 << 8, Fmt: from}, to) // 3.0
	if got.Raw != 3<<11 {
		t.Errorf("widening 3.0 = raw %d, want %d", got.Raw, int64(3<<11))
	}
}

func TestConvertMonotonic(t *testing.T) {
	// Saturating requantization preserves order: a <= b implies
	// Convert(a) <= Convert(b), for every target fraction width.
	from := q(11)
	samples := []int64{from.MinRaw(), -30000, -4096, -1, 0, 1, 5, 2048, 30000, from.MaxRaw()}

	for frac := 0; frac < PipelineBits; frac++ {
		to := q(frac)
		for i := 1; i < len(samples); i++ {
			a := Convert(Value{Raw: samples[i-1], Fmt: from}, to)
			b := Convert(Value{Raw: samples[i], Fmt: from}, to)
			if a.Raw > b.Raw {
				t.Errorf("fb=%d: Convert(%d)=%d > Convert(%d)=%d breaks monotonicity",
					frac, samples[i-1], a.Raw, samples[i], b.Raw)
			}
		}
	}
}

func TestOneRawSaturates(t *testing.T) {
	f := q(15)
	if f.OneRaw() != f.MaxRaw() {
		t.Errorf("Q1.15 OneRaw = %d, want saturated max %d", f.OneRaw(), f.MaxRaw())
	}
	if q(11).OneRaw() != 2048 {
		t.Errorf("Q5.11 OneRaw = %d, want 2048", q(11).OneRaw())
	}
}

func TestFromFloat(t *testing.T) {
	f := q(11)
	if v := f.FromFloat(0.5); v.Raw != 1024 {
		t.Errorf("FromFloat(0.5) = %d, want 1024", v.Raw)
	}
	if v := f.FromFloat(100.0); v.Raw != f.MaxRaw() {
		t.Errorf("FromFloat(100) = %d, want saturated max", v.Raw)
	}
	if v := f.FromFloat(-100.0); v.Raw != f.MinRaw() {
		t.Errorf("FromFloat(-100) = %d, want saturated min", v.Raw)
	}
}
