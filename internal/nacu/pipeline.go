package nacu

// Pipeline wraps a Unit with the issue/retire timing contract of the staged
// hardware model: one request may be issued per Step, each opcode has a
// fixed latency, and results retire strictly in issue order through a
// single result port. A request whose slot would land on or before an
// earlier in-flight result retires on the next free step instead, keeping
// the port conflict-free.
//
// Results are computed at issue; the pipeline only delays their visibility.
// Callers that do not need cycle-shaped behavior use Unit.Execute directly.
type Pipeline struct {
	unit      *Unit
	tick      int64
	lastReady int64
	queue     []pipeSlot
}

type pipeSlot struct {
	res   Result
	ready int64
}

// NewPipeline builds a pipeline around an existing unit.
func NewPipeline(u *Unit) *Pipeline {
	return &Pipeline{unit: u}
}

// Step advances one cycle: it issues req (OpIdle issues nothing) and
// returns the result retiring this cycle, if any.
func (p *Pipeline) Step(req Request) (Result, bool) {
	p.tick++

	if req.Op != OpIdle {
		res := p.unit.Execute(req)
		ready := p.tick + int64(p.unit.cfg.Latency(req.Op))
		if ready <= p.lastReady {
			ready = p.lastReady + 1
		}
		p.lastReady = ready
		p.queue = append(p.queue, pipeSlot{res: res, ready: ready})
	}

	if len(p.queue) > 0 && p.queue[0].ready <= p.tick {
		out := p.queue[0]
		p.queue = p.queue[1:]
		return out.res, true
	}
	return Result{}, false
}

// Drain steps the pipeline with idle requests until every in-flight result
// has retired, returning them in issue order.
func (p *Pipeline) Drain() []Result {
	var out []Result
	for len(p.queue) > 0 {
		if res, ok := p.Step(Request{Op: OpIdle}); ok {
			out = append(out, res)
		}
	}
	return out
}

// InFlight returns the number of issued but not yet retired results.
func (p *Pipeline) InFlight() int { return len(p.queue) }
