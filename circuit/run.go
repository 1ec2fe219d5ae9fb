package circuit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	log    *zap.Logger
	finish bool
}

// WithLogger routes "@pragma print" dumps to log. The default discards them.
func WithLogger(log *zap.Logger) RunOption {
	return func(c *runConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithoutFinish skips the FinishExecution call at the end of the run,
// leaving the state ready for more gates.
func WithoutFinish() RunOption {
	return func(c *runConfig) { c.finish = false }
}

// Run executes p against st and returns the classical register file.
// Registers never written hold -1. The program is validated against
// st.SystemSize() before the first gate, so a returned error means st is
// untouched.
func Run(st quantum.State, p *Program, opts ...RunOption) ([]int, error) {
	cfg := runConfig{log: zap.NewNop(), finish: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if p.NumQubits > st.SystemSize() {
		return nil, fmt.Errorf("circuit.Run: program needs %d qubits, state has %d: %w",
			p.NumQubits, st.SystemSize(), ErrRegister)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("circuit.Run: %w", err)
	}

	regs := make([]int, p.NumCbits)
	for i := range regs {
		regs[i] = -1
	}
	for _, in := range p.Instructions {
		switch in.Kind {
		case KindPrint:
			cfg.log.Info("state", zap.String("dump", fmt.Sprint(st)), zap.Ints("registers", regs))
		case KindGate:
			m := quantum.Apply(st, in.Gate, in.Qubits...)
			if in.Gate.IsMeasurement() {
				regs[in.Reg] = m
			}
		}
	}
	if cfg.finish {
		quantum.Finish(st)
	}

	return regs, nil
}
