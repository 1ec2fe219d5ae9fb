// Command cliffordsim runs stabilizer-circuit experiments.
//
// Usage:
//
//	cliffordsim run     --config sweep.json [--workers N] [--seed S] [--resume RUN_ID]
//	cliffordsim exec    --simulator chp circuit.txt
//	cliffordsim entropy --simulator graph [--qubits 0,1] circuit.txt
//
// Every subcommand accepts --debug for a development logger.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// errUsage reports a bad command line; main exits 2 on it.
var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string, stdout io.Writer) error
}

var commands = []command{
	{"run", "run a parameter sweep from a config file", runSweep},
	{"exec", "execute a circuit file and print the final state", execCircuit},
	{"entropy", "execute a circuit file and print subsystem entropies", printEntropy},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := dispatch(ctx, os.Args[1:], os.Stdout)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, errUsage), errors.Is(err, pflag.ErrHelp):
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "cliffordsim:", err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(os.Stderr)
		return fmt.Errorf("missing command: %w", errUsage)
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, args[1:], stdout)
		}
	}
	usage(os.Stderr)

	return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: cliffordsim <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
}

// newLogger builds a production logger, or a development one with debug.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
