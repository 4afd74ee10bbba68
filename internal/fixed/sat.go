package fixed

// Add widens both operands by one bit and adds them. The returned Value
// carries the exact sum (possibly outside a.Fmt's range); overflow reports
// whether it exceeds the format. No implicit saturation is applied - the
// caller decides, typically via Convert or AddSat.
func Add(a, b Value) (Value, bool) {
	sum := a.Raw + b.Raw
	overflow := sum > a.Fmt.MaxRaw() || sum < a.Fmt.MinRaw()
	return Value{Raw: sum, Fmt: a.Fmt}, overflow
}

// AddSat adds two values in the same format and saturates the sum.
func AddSat(a, b Value) Value {
	return Value{Raw: a.Fmt.Clamp(a.Raw + b.Raw), Fmt: a.Fmt}
}

// MulRaw returns the full-precision double-width product of two values.
// The result is scaled by 2^(2*Frac); callers realign with a right shift.
func MulRaw(a, b Value) int64 {
	return a.Raw * b.Raw
}

// MulShift multiplies two values in the same format and truncates the low
// Frac bits of the full product to realign the fractional scale:
// (a*b) >> Frac. The arithmetic shift floors in two's complement (truncation,
// not round-to-nearest). The result may exceed the format's range; the
// caller saturates via Convert when storing it.
func MulShift(a, b Value) Value {
	return Value{Raw: (a.Raw * b.Raw) >> uint(a.Fmt.Frac), Fmt: a.Fmt}
}

// NegateSat returns the two's-complement negation of a. Negating the most
// negative representable value is the one unrepresentable case; it saturates
// to the maximum instead.
func NegateSat(a Value) Value {
	if a.Raw == a.Fmt.MinRaw() {
		return Value{Raw: a.Fmt.MaxRaw(), Fmt: a.Fmt}
	}
	return Value{Raw: -a.Raw, Fmt: a.Fmt}
}

// Divide computes the fixed-point quotient and remainder of dividend by
// divisor (both in the same format). The quotient is expressed in the
// operand format: q = (dividend << Frac) / divisor, computed by restoring
// long division; the remainder is at the widened dividend scale.
//
// Divide-by-zero saturates toward signed infinity instead of faulting: the
// divisor is substituted with the format's 1.0 and the dividend with the
// maximum (dividend > 0) or minimum (otherwise) representable value before
// dividing.
func Divide(dividend, divisor Value) (q, r Value) {
	f := dividend.Fmt
	if divisor.Raw == 0 {
		divisor = f.One()
		if dividend.Raw > 0 {
			dividend = f.Max()
		} else {
			dividend = f.Min()
		}
	}

	num := dividend.Raw << uint(f.Frac)
	den := divisor.Raw

	negQ := (num < 0) != (den < 0)
	negR := num < 0
	un := uint64(num)
	if num < 0 {
		un = uint64(-num)
	}
	ud := uint64(den)
	if den < 0 {
		ud = uint64(-den)
	}

	uq, ur := longDivide(un, ud, f.Bits+f.Frac)

	qr := int64(uq)
	if negQ {
		qr = -qr
	}
	rr := int64(ur)
	if negR {
		rr = -rr
	}
	return Value{Raw: f.Clamp(qr), Fmt: f}, Value{Raw: rr, Fmt: f}
}

// longDivide is unsigned restoring division over the given bit width: it
// shifts the numerator in one bit per step, subtracting the denominator
// whenever the partial remainder allows. This mirrors the shift-subtract
// divider stage for stage.
func longDivide(num, den uint64, bits int) (q, r uint64) {
	for i := bits - 1; i >= 0; i-- {
		r = r<<1 | (num>>uint(i))&1
		if r >= den {
			r -= den
			q |= 1 << uint(i)
		}
	}
	return q, r
}
