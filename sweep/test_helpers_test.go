package sweep_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliffordsim/sweep"
)

// baseConfig is a small seeded automaton sweep that writes no file.
func baseConfig() sweep.Config {
	return sweep.Config{
		RunName:        "test",
		CircuitType:    sweep.CircuitQuantumAutomaton,
		GateWidth:      2,
		SimulatorType:  sweep.SimulatorCHP,
		SystemSizes:    []int{4},
		PartitionSizes: []int{2},
		MzrProbs:       []float64{0.25},
		Timesteps:      []int{4},
		NumRuns:        2,
		Spacing:        1,
		NumThreads:     2,
		Seed:           42,
	}
}

// run executes cfg with a fresh runner and fails the test on error.
func run(t *testing.T, cfg sweep.Config, opts ...sweep.Option) *sweep.DataFrame {
	t.Helper()
	df, err := sweep.NewRunner(opts...).Run(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, df)
	return df
}

// means returns the entropy means of every slide.
func means(df *sweep.DataFrame) [][]float64 {
	out := make([][]float64, len(df.Slides))
	for i, s := range df.Slides {
		for _, x := range s.Data[sweep.SeriesEntropy] {
			out[i] = append(out[i], x.Mean)
		}
	}
	return out
}

// counter sums the samples of a counter family whose labels include want.
func counter(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metrics:
		for _, m := range f.GetMetric() {
			labels := make(map[string]string)
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue metrics
				}
			}
			total += m.GetCounter().GetValue()
		}
	}
	return total
}
