package nacu

import (
	"math"
	"testing"

	"github.com/silagokth/NACU/internal/fixed"
)

func newUnit(t *testing.T, frac int) *Unit {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Format.Frac = frac
	u, err := New(cfg)
	if err != nil {
		t.Fatalf("New(frac=%d): %v", frac, err)
	}
	return u
}

func sigmoidOf(u *Unit, x float64) fixed.Value {
	return u.Execute(Request{Op: OpSigmoid, A: u.Format().FromFloat(x)}).Primary
}

func TestSigmoidAccuracy(t *testing.T) {
	u := newUnit(t, 11)
	for _, x := range []float64{-8, -4, -2.5, -1, -0.25, 0, 0.25, 0.5, 1, 2, 3.75, 6, 10, 15.5} {
		got := sigmoidOf(u, x).Float()
		want := 1 / (1 + math.Exp(-x))
		if math.Abs(got-want) > 0.01 {
			t.Errorf("sigmoid(%v) = %v, want %v (err %v)", x, got, want, math.Abs(got-want))
		}
	}
}

func TestSigmoidSymmetryLaw(t *testing.T) {
	// sigmoid(-x) == 1 - sigmoid(x) up to one LSB: the two branches share
	// one table entry but round independently. x=0 exercises entry 0,
	// where both signs land in the same cell and the law holds only
	// because that cell's intercept is pinned to one half; x=16 drives
	// both branches through the saturated tail.
	u := newUnit(t, 11)
	lsb := u.Format().Resolution()
	for _, x := range []float64{0, 0.1, 0.5, 1, 1.7, 2.5, 4, 7.3, 12, 16} {
		pos := sigmoidOf(u, x).Float()
		neg := sigmoidOf(u, -x).Float()
		if diff := math.Abs(neg - (1 - pos)); diff > lsb {
			t.Errorf("x=%v: sigmoid(-x)=%v vs 1-sigmoid(x)=%v, diff %v > 1 LSB", x, neg, 1-pos, diff)
		}
	}
}

func TestTanhIdentity(t *testing.T) {
	// tanh(x) == 2*sigmoid(2x) - 1 up to two LSBs: the doubling and the
	// linear transform each round once.
	u := newUnit(t, 11)
	lsb := u.Format().Resolution()
	for _, x := range []float64{-3, -1.25, -0.5, 0, 0.25, 0.5, 1.25, 3, 6} {
		th := u.Execute(Request{Op: OpTanh, A: u.Format().FromFloat(x)}).Primary.Float()
		sg := sigmoidOf(u, 2*x).Float()
		if diff := math.Abs(th - (2*sg - 1)); diff > 2*lsb {
			t.Errorf("x=%v: tanh=%v vs 2*sigmoid(2x)-1=%v, diff %v > 2 LSB", x, th, 2*sg-1, diff)
		}
	}
}

func TestTanhAccuracy(t *testing.T) {
	u := newUnit(t, 11)
	for _, x := range []float64{-5, -2, -0.75, 0, 0.25, 0.75, 2, 5} {
		got := u.Execute(Request{Op: OpTanh, A: u.Format().FromFloat(x)}).Primary.Float()
		want := math.Tanh(x)
		if math.Abs(got-want) > 0.02 {
			t.Errorf("tanh(%v) = %v, want %v (err %v)", x, got, want, math.Abs(got-want))
		}
	}
}

func TestExponential(t *testing.T) {
	u := newUnit(t, 11)

	t.Run("identity range", func(t *testing.T) {
		for _, x := range []float64{-3, -1, -0.5, 0, 0.5, 1, 2} {
			got := u.Execute(Request{Op: OpExponential, A: u.Format().FromFloat(x)}).Primary.Float()
			want := math.Exp(x)
			if math.Abs(got-want) > 0.03+0.03*want {
				t.Errorf("exp(%v) = %v, want %v", x, got, want)
			}
		}
	})

	t.Run("deep negative decays to zero", func(t *testing.T) {
		got := u.Execute(Request{Op: OpExponential, A: u.Format().FromFloat(-10)}).Primary.Float()
		if got != 0 {
			t.Errorf("exp(-10) = %v, want 0", got)
		}
	})

	t.Run("large positive saturates", func(t *testing.T) {
		// sigmoid(-10) quantizes to zero, so the reciprocal takes the
		// divide-by-zero saturation path.
		got := u.Execute(Request{Op: OpExponential, A: u.Format().FromFloat(10)}).Primary.Float()
		if got < 14.0 {
			t.Errorf("exp(10) = %v, want near the format maximum", got)
		}
	})

	t.Run("origin", func(t *testing.T) {
		// The zero-input case takes the forced negative branch; the result
		// stays within a few LSBs of exactly 1.
		got := u.Execute(Request{Op: OpExponential, A: u.Format().Zero()}).Primary.Float()
		if math.Abs(got-1) > 8*u.Format().Resolution() {
			t.Errorf("exp(0) = %v, want 1 within 8 LSB", got)
		}
	})
}

func TestFinestTableReuse(t *testing.T) {
	// Operating formats beyond the finest tabulated fraction requantize
	// down to it and reuse its entries, so results agree up to the
	// conversion granularity.
	ref := newUnit(t, 11)
	for _, frac := range []int{12, 13} { // fb=14+ cannot even represent the sample inputs
		u := newUnit(t, frac)
		for _, x := range []float64{-2, -0.5, 0, 0.5, 1} {
			got := sigmoidOf(u, x).Float()
			want := sigmoidOf(ref, x).Float()
			if math.Abs(got-want) > ref.Format().Resolution() {
				t.Errorf("fb=%d: sigmoid(%v) = %v, want %v (finest-table reuse)", frac, x, got, want)
			}
		}
	}
}

func TestMACAccumulation(t *testing.T) {
	u := newUnit(t, 11)
	f := u.Format()

	r := u.Execute(Request{Op: OpMAC, A: f.FromFloat(0.5), B: f.FromFloat(0.5), ClearAcc: true})
	if r.Primary.Float() != 0.25 {
		t.Fatalf("after MAC(0.5,0.5): acc = %v, want 0.25", r.Primary.Float())
	}

	r = u.Execute(Request{Op: OpMAC, A: f.FromFloat(0.25), B: f.FromFloat(0.25)})
	if r.Primary.Float() != 0.3125 {
		t.Fatalf("after MAC(0.25,0.25): acc = %v, want 0.3125", r.Primary.Float())
	}

	// The accumulator persists across non-MAC operations.
	u.Execute(Request{Op: OpSigmoid, A: f.FromFloat(1)})
	if got := u.Accumulator().Float(); got != 0.3125 {
		t.Errorf("accumulator after unrelated op = %v, want 0.3125", got)
	}

	// Explicit clear applies before the next invocation.
	r = u.Execute(Request{Op: OpMAC, A: f.FromFloat(1), B: f.FromFloat(1), ClearAcc: true})
	if r.Primary.Float() != 1.0 {
		t.Errorf("after clear+MAC(1,1): acc = %v, want 1.0", r.Primary.Float())
	}

	u.ClearAccumulator()
	if got := u.Accumulator().Float(); got != 0 {
		t.Errorf("after ClearAccumulator: %v, want 0", got)
	}
}

func TestSoftmaxDivision(t *testing.T) {
	u := newUnit(t, 11)
	f := u.Format()

	r := u.Execute(Request{Op: OpSoftmaxDiv, A: f.FromFloat(1.0), Denominator: f.FromFloat(4.0)})
	if r.Softmax.Float() != 0.25 {
		t.Errorf("1/4 = %v, want 0.25", r.Softmax.Float())
	}
	if r.Primary.Raw != 0 {
		t.Errorf("softmax primary port = %d, want zero", r.Primary.Raw)
	}

	// Zero denominator saturates toward signed infinity.
	r = u.Execute(Request{Op: OpSoftmaxDiv, A: f.FromFloat(1.0), Denominator: f.Zero()})
	if r.Softmax.Raw != f.MaxRaw() {
		t.Errorf("1/0 = raw %d, want %d", r.Softmax.Raw, f.MaxRaw())
	}
}

func TestIdle(t *testing.T) {
	u := newUnit(t, 11)
	u.Execute(Request{Op: OpMAC, A: u.Format().FromFloat(1), B: u.Format().FromFloat(1)})

	r := u.Execute(Request{Op: OpIdle})
	if r.Primary.Raw != 0 || r.Softmax.Raw != 0 {
		t.Errorf("idle result = %+v, want zeros", r)
	}
	if got := u.Accumulator().Float(); got != 1.0 {
		t.Errorf("idle touched the accumulator: %v", got)
	}
}

func TestSoftmaxNormalization(t *testing.T) {
	// End-to-end softmax over shifted logits: exponentials via the unit,
	// then the division port. Probabilities must sum to roughly 1.
	u := newUnit(t, 11)
	f := u.Format()

	logits := []float64{0, -0.5, -1.5, -3}
	exps := make([]fixed.Value, len(logits))
	var sum fixed.Value = f.Zero()
	for i, x := range logits {
		exps[i] = u.Execute(Request{Op: OpExponential, A: f.FromFloat(x)}).Primary
		sum = fixed.AddSat(sum, exps[i])
	}

	var total float64
	for i := range exps {
		r := u.Execute(Request{Op: OpSoftmaxDiv, A: exps[i], Denominator: sum})
		p := r.Softmax.Float()
		if p < 0 || p > 1 {
			t.Errorf("probability %d = %v out of [0,1]", i, p)
		}
		total += p
	}
	if math.Abs(total-1) > 0.02 {
		t.Errorf("softmax total = %v, want ~1", total)
	}
	t.Logf("softmax(%v) total = %v", logits, total)
}

func TestOpcodeString(t *testing.T) {
	if OpSoftmaxDiv.String() != "SOFTMAX_DIV" || OpMAC.String() != "MAC" {
		t.Error("opcode mnemonics wrong")
	}
	if Opcode(99).String() != "UNKNOWN" {
		t.Error("unknown opcode should stringify as UNKNOWN")
	}
}
