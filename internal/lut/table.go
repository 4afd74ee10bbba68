// Package lut holds the piecewise-linear coefficient tables for the sigmoid
// family and the symmetry transforms that derive the four sign/function
// variants (sigmoid/tanh, positive/negative input) from the single stored
// sigmoid positive-input table.
package lut

import (
	"fmt"

	"github.com/silagokth/NACU/internal/fixed"
)

// Entry is one piecewise-linear segment: raw slope and offset in the
// table's own Q-format. The offset is the segment's y-intercept, so the
// segment evaluates as slope*x + offset for x in the segment's interval.
type Entry struct {
	Slope  int64
	Offset int64
}

// Table is a dense uniform-index coefficient table for one Q-format.
// The index is the magnitude's top bits after dropping NumInLUT low bits,
// so Entries has 1<<(Bits-1-NumInLUT) elements covering the whole
// non-negative magnitude range.
type Table struct {
	Frac     int
	NumInLUT int
	Entries  []Entry
}

// FinestFrac is the largest fractional-bit count with its own table.
// Formats with more fractional bits requantize the input down to this
// format and reuse its entries (the table contents are never duplicated).
const FinestFrac = 11

// NumInLUT returns the per-format count of low magnitude bits dropped
// before indexing. Formats with more fractional bits (fewer integer bits,
// so less input range) drop more low bits; the floor bounds table size for
// the coarse formats. The exact granularity is an empirical trade-off
// between table size and accuracy.
func NumInLUT(frac int) int {
	if n := frac - 1; n > 5 {
		return n
	}
	return 5
}

// TableFrac maps an operating fractional width to the fractional width of
// the table serving it.
func TableFrac(frac int) int {
	if frac > FinestFrac {
		return FinestFrac
	}
	return frac
}

// ForFormat returns the coefficient table serving format f, applying the
// finest-table reuse rule for f.Frac > FinestFrac.
func ForFormat(f fixed.Format) (*Table, error) {
	if f.Bits != fixed.PipelineBits {
		return nil, fmt.Errorf("lut: no tables for %d-bit formats", f.Bits)
	}
	t := tables[TableFrac(f.Frac)]
	if t == nil {
		return nil, fmt.Errorf("lut: no table for fractional width %d", f.Frac)
	}
	return t, nil
}

// IndexBits extracts the table index from a non-negative raw magnitude:
// the magnitude's high-order bits after dropping the NumInLUT low bits.
// Post-saturation magnitudes are always within the table's extent.
func (t *Table) IndexBits(magRaw int64) int {
	return int(magRaw >> uint(t.NumInLUT))
}

// Lookup returns the entry for an index produced by IndexBits.
func (t *Table) Lookup(index int) Entry {
	return t.Entries[index]
}

// SelectIndexBits collapses format-specific bit slicing into one call:
// it picks the table serving f and extracts the index for magRaw, which
// must already be expressed in the table's format.
func SelectIndexBits(f fixed.Format, magRaw int64) (int, error) {
	t, err := ForFormat(f)
	if err != nil {
		return 0, err
	}
	return t.IndexBits(magRaw), nil
}
