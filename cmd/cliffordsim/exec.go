package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/sweep"
)

// circuitFlags are shared by exec and entropy.
type circuitFlags struct {
	fs        *pflag.FlagSet
	simulator *string
	seed      *uint64
	debug     *bool
}

func newCircuitFlags(name string) circuitFlags {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	return circuitFlags{
		fs:        fs,
		simulator: fs.StringP("simulator", "s", string(sweep.SimulatorCHP), "state representation: chp, graph or vector"),
		seed:      fs.Uint64("seed", 0, "measurement seed (0 draws one)"),
		debug:     fs.Bool("debug", false, "development logging"),
	}
}

// load parses the single positional circuit file and runs it on a
// fresh state.
func (f circuitFlags) load(args []string) (quantum.Simulator, []int, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if f.fs.NArg() != 1 {
		return nil, nil, fmt.Errorf("%s: expected one circuit file: %w", f.fs.Name(), errUsage)
	}

	log, err := newLogger(*f.debug)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = log.Sync() }()

	file, err := os.Open(f.fs.Arg(0))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	prog, err := circuit.Parse(file)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", f.fs.Arg(0), err)
	}

	var opts []quantum.Option
	if *f.seed != 0 {
		opts = append(opts, quantum.WithSeed(*f.seed))
	}
	st, err := sweep.NewState(sweep.Simulator(*f.simulator), prog.NumQubits, opts...)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("executing circuit",
		zap.String("file", f.fs.Arg(0)),
		zap.String("simulator", *f.simulator),
		zap.Int("qubits", prog.NumQubits),
		zap.Int("instructions", len(prog.Instructions)))

	regs, err := circuit.Run(st, prog, circuit.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	return st, regs, nil
}

func execCircuit(_ context.Context, args []string, stdout io.Writer) error {
	st, regs, err := newCircuitFlags("exec").load(args)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, st)
	if len(regs) > 0 {
		fmt.Fprintf(stdout, "registers: %v\n", regs)
	}

	return nil
}

func printEntropy(_ context.Context, args []string, stdout io.Writer) error {
	f := newCircuitFlags("entropy")
	qubits := f.fs.IntSlice("qubits", nil, "subsystem to measure (default: every prefix [0,k))")
	st, _, err := f.load(args)
	if err != nil {
		return err
	}

	if f.fs.Changed("qubits") {
		seen := make(map[int]bool, len(*qubits))
		for _, q := range *qubits {
			if q < 0 || q >= st.SystemSize() || seen[q] {
				return fmt.Errorf("entropy: bad qubit list %v for %d qubits: %w", *qubits, st.SystemSize(), errUsage)
			}
			seen[q] = true
		}
		fmt.Fprintf(stdout, "S2(%v) = %g\n", *qubits, st.RenyiEntropy(*qubits))
		return nil
	}
	prefix := make([]int, 0, st.SystemSize())
	for k := 0; k <= st.SystemSize(); k++ {
		fmt.Fprintf(stdout, "S2([0,%d)) = %g\n", k, st.RenyiEntropy(prefix))
		prefix = append(prefix, k)
	}

	return nil
}
