package fixed

// Convert requantizes v into format to.
//
// Narrowing the fraction (to.Frac <= v.Fmt.Frac) truncates the low
// fractional bits with an arithmetic right shift (no rounding, matching
// hardware signed truncation), then saturates into to's range.
//
// Widening the fraction first saturates against to's representable bounds
// expressed at the source scale, then left-shifts, zero-filling the new low
// bits. Saturation is silent; Convert never fails.
func Convert(v Value, to Format) Value {
	from := v.Fmt
	if to == from {
		return Value{Raw: to.Clamp(v.Raw), Fmt: to}
	}

	raw := v.Raw
	if to.Frac <= from.Frac {
		raw >>= uint(from.Frac - to.Frac)
		return Value{Raw: to.Clamp(raw), Fmt: to}
	}

	shift := uint(to.Frac - from.Frac)
	// Bounds of the target format expressed in the source scale. The
	// arithmetic shift keeps the negative bound exact (-2^k >> s == -2^(k-s)).
	maxAtFrom := to.MaxRaw() >> shift
	minAtFrom := to.MinRaw() >> shift
	if raw > maxAtFrom {
		raw = maxAtFrom
	} else if raw < minAtFrom {
		raw = minAtFrom
	}
	return Value{Raw: raw << shift, Fmt: to}
}
