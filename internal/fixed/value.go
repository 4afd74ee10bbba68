package fixed

import "math"

// Value is a fixed-point number: a sign-extended raw integer plus the format
// it is expressed in. Raw always lies within Fmt's representable range for
// values produced by this package; intermediate wide results are carried as
// bare int64 by the arithmetic functions instead.
type Value struct {
	Raw int64
	Fmt Format
}

// FromRaw builds a Value from a raw integer, saturating it into f's range.
func (f Format) FromRaw(raw int64) Value {
	return Value{Raw: f.Clamp(raw), Fmt: f}
}

// FromFloat converts a real number into f, rounding to nearest and
// saturating at the representable extremes.
func (f Format) FromFloat(x float64) Value {
	scaled := math.Round(x * float64(int64(1)<<f.Frac))
	if scaled > float64(f.MaxRaw()) {
		return Value{Raw: f.MaxRaw(), Fmt: f}
	}
	if scaled < float64(f.MinRaw()) {
		return Value{Raw: f.MinRaw(), Fmt: f}
	}
	return Value{Raw: int64(scaled), Fmt: f}
}

// Float returns the real number the value represents.
func (v Value) Float() float64 {
	return float64(v.Raw) / float64(int64(1)<<v.Fmt.Frac)
}

// IsNegative reports whether the value is below zero.
func (v Value) IsNegative() bool { return v.Raw < 0 }

// Zero returns 0.0 in format f.
func (f Format) Zero() Value { return Value{Fmt: f} }

// One returns 1.0 in format f (saturated when unrepresentable, see OneRaw).
func (f Format) One() Value { return Value{Raw: f.OneRaw(), Fmt: f} }

// Max returns the largest representable value in f.
func (f Format) Max() Value { return Value{Raw: f.MaxRaw(), Fmt: f} }

// Min returns the smallest representable value in f.
func (f Format) Min() Value { return Value{Raw: f.MinRaw(), Fmt: f} }
