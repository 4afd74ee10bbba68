package nacu

import "github.com/silagokth/NACU/internal/fixed"

// DivisionEngine is the shift-subtract divider with the unit's fixed-latency
// pipeline contract. Divide is the functional form; Issue/Step model the
// staged version, where each result becomes available a fixed number of
// steps after issue and results retire in issue order. Latency shapes
// timing only, never the quotient.
type DivisionEngine struct {
	latency int
	tick    int64
	queue   []divSlot
}

type divSlot struct {
	quot  fixed.Value
	rem   fixed.Value
	ready int64
}

// NewDivisionEngine builds a divider with the given stage count.
func NewDivisionEngine(latency int) *DivisionEngine {
	if latency < 1 {
		latency = 1
	}
	return &DivisionEngine{latency: latency}
}

// Divide returns quotient and remainder immediately, with the same
// divide-by-zero saturation policy as fixed.Divide.
func (d *DivisionEngine) Divide(dividend, divisor fixed.Value) (fixed.Value, fixed.Value) {
	return fixed.Divide(dividend, divisor)
}

// Issue enters one division into the pipeline. At most one issue per Step
// keeps the single-producer/single-consumer handoff of the staged model.
func (d *DivisionEngine) Issue(dividend, divisor fixed.Value) {
	q, r := fixed.Divide(dividend, divisor)
	d.queue = append(d.queue, divSlot{quot: q, rem: r, ready: d.tick + int64(d.latency)})
}

// Step advances the pipeline one stage and returns the retiring result, if
// any reached the last stage.
func (d *DivisionEngine) Step() (quot, rem fixed.Value, ok bool) {
	d.tick++
	if len(d.queue) == 0 || d.queue[0].ready > d.tick {
		return fixed.Value{}, fixed.Value{}, false
	}
	s := d.queue[0]
	d.queue = d.queue[1:]
	return s.quot, s.rem, true
}

// Latency returns the configured stage count.
func (d *DivisionEngine) Latency() int { return d.latency }
