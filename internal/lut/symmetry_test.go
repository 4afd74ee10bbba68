package lut

import (
	"testing"
)

func TestResolveOffset(t *testing.T) {
	f := q16(11)
	one := f.OneRaw() // 2048
	e := Entry{Slope: 300, Offset: 1500}

	cases := []struct {
		name string
		fn   Function
		neg  bool
		want int64
	}{
		{"sigmoid positive", Sigmoid, false, 1500},
		{"tanh positive", Tanh, false, 2*1500 - one}, // 952
		{"sigmoid negative", Sigmoid, true, one - 1500}, // 548
		{"tanh negative", Tanh, true, one - 2*1500}, // -952
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveOffset(e, tc.fn, tc.neg, f); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestResolveOffsetComplementary(t *testing.T) {
	// The positive and negative branches of each function sum to the
	// fixed combination (1 for sigmoid, 0 for tanh) for any stored offset.
	f := q16(11)
	one := f.OneRaw()
	for _, o := range []int64{one / 2, 1200, 1800, one} {
		e := Entry{Offset: o}
		if s := ResolveOffset(e, Sigmoid, false, f) + ResolveOffset(e, Sigmoid, true, f); s != one {
			t.Errorf("offset %d: sigmoid branches sum to %d, want %d", o, s, one)
		}
		if s := ResolveOffset(e, Tanh, false, f) + ResolveOffset(e, Tanh, true, f); s != 0 {
			t.Errorf("offset %d: tanh branches sum to %d, want 0", o, s)
		}
	}
}

func TestResolveSlope(t *testing.T) {
	e := Entry{Slope: 125}
	if got := ResolveSlope(e, Sigmoid); got != 125 {
		t.Errorf("sigmoid slope = %d, want unchanged 125", got)
	}
	// Tanh quadruples regardless of input sign.
	if got := ResolveSlope(e, Tanh); got != 500 {
		t.Errorf("tanh slope = %d, want 500", got)
	}
}

func TestResolveOffsetSaturatedOne(t *testing.T) {
	// At fb=15 exact 1.0 is unrepresentable; derived offsets clamp instead
	// of wrapping.
	f := q16(15)
	e := Entry{Offset: f.OneRaw()} // saturated "1.0"
	if got := ResolveOffset(e, Sigmoid, true, f); got != 0 {
		t.Errorf("1-o for saturated one = %d, want 0", got)
	}
	if got := ResolveOffset(e, Tanh, false, f); got != f.MaxRaw() {
		t.Errorf("2o-1 for saturated one = %d, want clamped max", got)
	}
}
