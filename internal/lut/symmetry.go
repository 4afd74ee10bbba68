package lut

import "github.com/silagokth/NACU/internal/fixed"

// Function selects which curve a lookup serves. The stored table covers
// sigmoid on non-negative inputs only; tanh and the negative branches are
// derived algebraically.
type Function int

const (
	Sigmoid Function = iota
	Tanh
)

// ResolveOffset derives the effective segment offset for the four
// sign/function cases from the stored sigmoid positive-input offset o:
//
//	sigmoid, x>=0:  o
//	tanh,    x>=0:  2*o - 1
//	sigmoid, x<0:   1 - o
//	tanh,    x<0:   1 - 2*o
//
// All arithmetic is in the table format f: the shift doubles within the
// same fractional scale and "1" is f's representation of 1.0. For the
// stored range o in [0.5, 1] every derived offset stays representable.
func ResolveOffset(e Entry, fn Function, negative bool, f fixed.Format) int64 {
	o := e.Offset
	one := f.OneRaw()
	switch {
	case fn == Sigmoid && !negative:
		return o
	case fn == Tanh && !negative:
		return f.Clamp(o<<1 - one)
	case fn == Sigmoid && negative:
		return f.Clamp(one - o)
	default: // tanh, negative
		return f.Clamp(one - o<<1)
	}
}

// ResolveSlope derives the effective segment slope. Tanh quadruples the
// stored sigmoid slope (d/dx[2*sigmoid(2x)-1] = 4*sigmoid'(2x)) regardless
// of input sign; sigmoid uses it unchanged.
func ResolveSlope(e Entry, fn Function) int64 {
	if fn == Tanh {
		return e.Slope << 2
	}
	return e.Slope
}
