package nacu

import (
	"github.com/silagokth/NACU/internal/fixed"
	"github.com/silagokth/NACU/internal/lut"
)

// Opcode selects the active data path for one invocation.
type Opcode uint8

const (
	OpIdle Opcode = iota
	OpMAC
	OpSigmoid
	OpTanh
	OpExponential
	OpSoftmaxDiv
)

// String returns the opcode mnemonic.
func (op Opcode) String() string {
	switch op {
	case OpIdle:
		return "IDLE"
	case OpMAC:
		return "MAC"
	case OpSigmoid:
		return "SIGMOID"
	case OpTanh:
		return "TANH"
	case OpExponential:
		return "EXPONENTIAL"
	case OpSoftmaxDiv:
		return "SOFTMAX_DIV"
	default:
		return "UNKNOWN"
	}
}

// Request is one operation invocation. Fields unused by the opcode are
// ignored: B only feeds MAC, Denominator only SOFTMAX_DIV. ClearAcc zeroes
// the MAC accumulator before the request executes.
type Request struct {
	Op          Opcode
	A           fixed.Value
	B           fixed.Value
	Denominator fixed.Value
	ClearAcc    bool
}

// Result carries both output ports. Softmax is meaningful only for
// SOFTMAX_DIV; Primary for everything else. The unused port is the
// format's zero.
type Result struct {
	Primary fixed.Value
	Softmax fixed.Value
}

// Unit is one non-linear arithmetic unit instance. It is a pure function
// of its inputs and the precomputed tables except for the MAC accumulator,
// which persists across invocations until explicitly cleared. The caller
// must serialize MAC invocations against accumulator reads; a Unit has no
// internal locking.
type Unit struct {
	cfg  Config
	fmt  fixed.Format
	work fixed.Format // table-side format, Frac capped at lut.FinestFrac
	tbl  *lut.Table
	div  *DivisionEngine

	acc int64 // widened accumulator at the operating fractional scale
}

// New builds a Unit for the configured format.
func New(cfg Config) (*Unit, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tbl, err := lut.ForFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	work := fixed.Format{Bits: cfg.Format.Bits, Frac: lut.TableFrac(cfg.Format.Frac)}
	return &Unit{
		cfg:  cfg,
		fmt:  cfg.Format,
		work: work,
		tbl:  tbl,
		div:  NewDivisionEngine(cfg.DivLatency),
	}, nil
}

// Format returns the unit's operating format.
func (u *Unit) Format() fixed.Format { return u.fmt }

// Execute runs one operation and returns both output ports. It never
// fails: saturation and divide-by-zero are silent numeric policies.
func (u *Unit) Execute(req Request) Result {
	if req.ClearAcc {
		u.acc = 0
	}

	switch req.Op {
	case OpMAC:
		u.acc += fixed.MulShift(req.A, req.B).Raw
		return Result{Primary: u.fmt.FromRaw(u.acc), Softmax: u.fmt.Zero()}
	case OpSigmoid:
		v := u.evalPWL(req.A, lut.Sigmoid, false)
		return Result{Primary: fixed.Convert(v, u.fmt), Softmax: u.fmt.Zero()}
	case OpTanh:
		v := u.evalPWL(req.A, lut.Tanh, false)
		return Result{Primary: fixed.Convert(v, u.fmt), Softmax: u.fmt.Zero()}
	case OpExponential:
		return Result{Primary: u.exponential(req.A), Softmax: u.fmt.Zero()}
	case OpSoftmaxDiv:
		q, _ := u.div.Divide(req.A, req.Denominator)
		return Result{Primary: u.fmt.Zero(), Softmax: q}
	default: // IDLE
		return Result{Primary: u.fmt.Zero(), Softmax: u.fmt.Zero()}
	}
}

// ClearAccumulator zeroes the MAC accumulator immediately.
func (u *Unit) ClearAccumulator() { u.acc = 0 }

// Accumulator returns the current MAC accumulator saturated into the
// operating format.
func (u *Unit) Accumulator() fixed.Value { return u.fmt.FromRaw(u.acc) }

// evalPWL runs the shared piecewise-linear path and returns the result in
// the table-side work format, before the final requantization into the
// caller's format.
//
// forceNeg forces the negative symmetry branch when the input magnitude is
// exactly zero. Only the exponential path sets it; the behavior corrects a
// derivation asymmetry of the reciprocal identity at the origin and is
// preserved as-is.
func (u *Unit) evalPWL(x fixed.Value, fn lut.Function, forceNeg bool) fixed.Value {
	neg := x.IsNegative()
	mag := x
	if neg {
		mag = fixed.NegateSat(x)
	}
	if forceNeg && mag.Raw == 0 {
		neg = true
	}

	// Down-requantize into the finest tabulated format when the operating
	// format is finer; otherwise this is the identity.
	magw := fixed.Convert(mag, u.work)

	// Tanh evaluates sigmoid at twice the argument; the doubling saturates
	// rather than wrapping so the index stays within the table's extent.
	idxMag := magw
	if fn == lut.Tanh {
		idxMag = fixed.AddSat(magw, magw)
	}

	e := u.tbl.Lookup(u.tbl.IndexBits(idxMag.Raw))
	offset := lut.ResolveOffset(e, fn, neg, u.work)
	slope := lut.ResolveSlope(e, fn)

	// The slope multiplies the true signed input at the table scale.
	xw := magw
	if neg {
		xw = fixed.NegateSat(magw)
	}
	sum := (slope*xw.Raw)>>uint(u.work.Frac) + offset
	return u.work.FromRaw(sum)
}

// exponential computes e^x through the reciprocal identity
// 1/sigmoid(-x) - 1, reusing the sigmoid path and the divider. There is no
// separate exponential table. The identity takes the signed input, not its
// magnitude: negative x feeds sigmoid a positive argument and decays
// toward zero instead of mirroring the positive curve.
func (u *Unit) exponential(x fixed.Value) fixed.Value {
	nx := fixed.NegateSat(x)
	sg := u.evalPWL(nx, lut.Sigmoid, true)

	one := u.work.One()
	quot, _ := u.div.Divide(one, sg)
	diff := fixed.Value{Raw: quot.Raw - one.Raw, Fmt: u.work}
	return fixed.Convert(diff, u.fmt)
}
