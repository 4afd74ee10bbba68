// Package fixed implements the signed Q-format arithmetic used by the
// non-linear arithmetic unit: format description, requantization between
// formats, and saturating add/multiply/negate/divide primitives.
//
// All anomalous conditions (overflow, divide-by-zero, negation of the most
// negative value) are defined numeric policies, not errors: results saturate
// to the nearest representable extreme.
package fixed

import "fmt"

// PipelineBits is the total width carried through the NACU data path.
const PipelineBits = 16

// Format describes a signed Q-format: Bits total width (including sign),
// Frac fractional bits. A raw integer v in this format represents the real
// number v / 2^Frac.
type Format struct {
	Bits int
	Frac int
}

// NewFormat validates and returns a Format. Frac may be anything from 0
// (pure integer) to Bits-1 (sign bit plus fraction only).
func NewFormat(bits, frac int) (Format, error) {
	if bits < 2 || bits > 32 {
		return Format{}, fmt.Errorf("fixed: total width %d out of range [2,32]", bits)
	}
	if frac < 0 || frac > bits-1 {
		return Format{}, fmt.Errorf("fixed: fractional bits %d out of range [0,%d]", frac, bits-1)
	}
	return Format{Bits: bits, Frac: frac}, nil
}

// IntBits returns the number of integer bits, sign included.
func (f Format) IntBits() int { return f.Bits - f.Frac }

// MaxRaw returns the largest representable raw value, 2^(Bits-1)-1.
func (f Format) MaxRaw() int64 { return int64(1)<<(f.Bits-1) - 1 }

// MinRaw returns the smallest representable raw value, -2^(Bits-1).
func (f Format) MinRaw() int64 { return -(int64(1) << (f.Bits - 1)) }

// OneRaw returns the raw representation of 1.0, saturated to MaxRaw for
// formats whose fraction occupies every non-sign bit (Frac == Bits-1,
// where exact 1.0 is unrepresentable).
func (f Format) OneRaw() int64 {
	one := int64(1) << f.Frac
	if one > f.MaxRaw() {
		return f.MaxRaw()
	}
	return one
}

// Resolution returns the real value of one LSB, 2^-Frac.
func (f Format) Resolution() float64 {
	return 1 / float64(int64(1)<<f.Frac)
}

// Clamp saturates raw into f's representable range.
func (f Format) Clamp(raw int64) int64 {
	if raw > f.MaxRaw() {
		return f.MaxRaw()
	}
	if raw < f.MinRaw() {
		return f.MinRaw()
	}
	return raw
}

// String renders the format in Qm.n notation.
func (f Format) String() string {
	return fmt.Sprintf("Q%d.%d", f.IntBits(), f.Frac)
}
