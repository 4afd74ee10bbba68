// Package nacu implements the non-linear arithmetic unit: a fixed-point
// evaluator for multiply-accumulate, sigmoid, tanh, exponential and softmax
// division, built on piecewise-linear coefficient tables.
package nacu

import (
	"fmt"

	"github.com/silagokth/NACU/internal/fixed"
	"github.com/silagokth/NACU/internal/lut"
)

// Config gathers the construction-time parameters of a Unit: the operating
// Q-format and the pipeline depths. The format is fixed per Unit; latencies
// shape the Pipeline's timing model only, never results.
type Config struct {
	Format fixed.Format

	MACLatency       int
	NonlinearLatency int
	DivLatency       int
}

// DefaultConfig returns the standard 16-bit configuration: Q5.11 operands
// with the reference stage counts.
func DefaultConfig() Config {
	return Config{
		Format:           fixed.Format{Bits: fixed.PipelineBits, Frac: 11},
		MACLatency:       2,
		NonlinearLatency: 3,
		DivLatency:       16,
	}
}

// Latency returns the fixed stage count for an opcode under this
// configuration. Exponential chains the non-linear path into the divider.
func (c Config) Latency(op Opcode) int {
	switch op {
	case OpMAC:
		return c.MACLatency
	case OpSigmoid, OpTanh:
		return c.NonlinearLatency
	case OpExponential:
		return c.NonlinearLatency + c.DivLatency
	case OpSoftmaxDiv:
		return c.DivLatency
	default:
		return 1
	}
}

func (c Config) validate() error {
	if _, err := fixed.NewFormat(c.Format.Bits, c.Format.Frac); err != nil {
		return err
	}
	if _, err := lut.ForFormat(c.Format); err != nil {
		return err
	}
	if c.MACLatency < 1 || c.NonlinearLatency < 1 || c.DivLatency < 1 {
		return fmt.Errorf("nacu: pipeline latencies must be at least 1")
	}
	return nil
}
