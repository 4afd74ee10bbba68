package nacu

import (
	"testing"

	"github.com/silagokth/NACU/internal/fixed"
)

func TestDivisionEnginePipelined(t *testing.T) {
	u := newUnit(t, 11)
	f := u.Format()
	d := NewDivisionEngine(4)

	d.Issue(f.FromFloat(6.0), f.FromFloat(2.0))

	for i := 0; i < 3; i++ {
		if _, _, ok := d.Step(); ok {
			t.Fatalf("result available after %d steps, latency is 4", i+1)
		}
	}
	q, r, ok := d.Step()
	if !ok {
		t.Fatal("no result after 4 steps")
	}
	if q.Float() != 3.0 || r.Raw != 0 {
		t.Errorf("6/2 = (%v, %d), want (3, 0)", q.Float(), r.Raw)
	}
}

func TestDivisionEngineIssueOrder(t *testing.T) {
	u := newUnit(t, 11)
	f := u.Format()
	d := NewDivisionEngine(2)

	d.Issue(f.FromFloat(4.0), f.FromFloat(2.0))
	d.Issue(f.FromFloat(9.0), f.FromFloat(3.0))

	var got []float64
	for i := 0; i < 5; i++ {
		if q, _, ok := d.Step(); ok {
			got = append(got, q.Float())
		}
	}
	if len(got) != 2 || got[0] != 2.0 || got[1] != 3.0 {
		t.Errorf("retired %v, want [2 3] in issue order", got)
	}
}

func TestPipelineFixedLatency(t *testing.T) {
	u := newUnit(t, 11)
	p := NewPipeline(u)

	_, ok := p.Step(Request{Op: OpSigmoid, A: u.Format().FromFloat(1)})
	if ok {
		t.Fatal("result retired at issue")
	}

	// NonlinearLatency is 3: the result retires on the third step after issue.
	steps := 0
	var res Result
	for !ok && steps < 10 {
		res, ok = p.Step(Request{Op: OpIdle})
		steps++
	}
	if !ok {
		t.Fatal("sigmoid never retired")
	}
	if steps != 3 {
		t.Errorf("sigmoid retired after %d idle steps, want 3", steps)
	}
	want := u.Execute(Request{Op: OpSigmoid, A: u.Format().FromFloat(1)}).Primary
	if res.Primary != want {
		t.Errorf("pipelined result %v != direct result %v", res.Primary, want)
	}
}

func TestPipelineInOrderRetire(t *testing.T) {
	// A short-latency MAC issued behind a long-latency exponential must not
	// overtake it through the single result port.
	u := newUnit(t, 11)
	f := u.Format()
	p := NewPipeline(u)

	p.Step(Request{Op: OpExponential, A: f.FromFloat(-1)})
	p.Step(Request{Op: OpMAC, A: f.FromFloat(0.5), B: f.FromFloat(0.5), ClearAcc: true})

	results := p.Drain()
	if len(results) != 2 {
		t.Fatalf("drained %d results, want 2", len(results))
	}
	if results[1].Primary.Float() != 0.25 {
		t.Errorf("second retire = %v, want the MAC result 0.25", results[1].Primary.Float())
	}
	wantExp := u.Execute(Request{Op: OpExponential, A: f.FromFloat(-1)}).Primary
	if results[0].Primary != wantExp {
		t.Errorf("first retire = %v, want the exponential result %v", results[0].Primary, wantExp)
	}
}

func TestPipelineIdleIssuesNothing(t *testing.T) {
	u := newUnit(t, 11)
	p := NewPipeline(u)
	for i := 0; i < 5; i++ {
		if _, ok := p.Step(Request{Op: OpIdle}); ok {
			t.Fatal("idle produced a result")
		}
	}
	if p.InFlight() != 0 {
		t.Errorf("in-flight = %d after idles, want 0", p.InFlight())
	}
}

func TestConfigValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format.Frac = 16
	if _, err := New(cfg); err == nil {
		t.Error("New should reject Frac == Bits")
	}

	cfg = DefaultConfig()
	cfg.DivLatency = 0
	if _, err := New(cfg); err == nil {
		t.Error("New should reject zero divider latency")
	}

	cfg = DefaultConfig()
	cfg.Format = fixed.Format{Bits: 8, Frac: 3}
	if _, err := New(cfg); err == nil {
		t.Error("New should reject widths without tables")
	}
}
