package sweep

import "fmt"

// Point is one cell of the parameter grid.
type Point struct {
	Index         int
	SystemSize    int
	Timesteps     int
	PartitionSize int
	MzrProb       float64

	Simulator          Simulator
	Circuit            Circuit
	GateWidth          int
	NumRuns            int
	EquilibrationSteps int
	MeasurementFreq    int
	TemporalAvg        bool
	SpaceAvg           bool
	Spacing            int
}

// Key identifies the point within a run; it names checkpoint blobs.
func (p Point) Key() string {
	return fmt.Sprintf("%03d-%s-n%d-t%d-a%d-p%g", p.Index, p.Simulator, p.SystemSize, p.Timesteps, p.PartitionSize, p.MzrProb)
}

// schedule returns the steps per interval and the number of intervals.
// Zero timesteps still sample once.
func (p Point) schedule() (steps, intervals int) {
	if p.Timesteps == 0 {
		return 0, 1
	}
	freq := p.MeasurementFreq
	if freq == 0 {
		freq = p.Timesteps
	}

	return freq, p.Timesteps / freq
}

// Points expands c into its grid, system size outermost, then
// timesteps, partition size and probability.
func (c Config) Points() ([]Point, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	circ := c.CircuitType
	if circ == CircuitDefault {
		circ = CircuitQuantumAutomaton
	}

	out := make([]Point, 0, len(c.SystemSizes)*len(c.Timesteps)*len(c.PartitionSizes)*len(c.MzrProbs))
	for _, n := range c.SystemSizes {
		for _, t := range c.Timesteps {
			for _, a := range c.PartitionSizes {
				if a > n {
					return nil, fmt.Errorf("Points: partition size %d > system size %d: %w", a, n, ErrConfig)
				}
				if circ == CircuitRandomClifford && c.GateWidth > n {
					return nil, fmt.Errorf("Points: gate_width %d > system size %d: %w", c.GateWidth, n, ErrConfig)
				}
				for _, p := range c.MzrProbs {
					out = append(out, Point{
						Index:              len(out),
						SystemSize:         n,
						Timesteps:          t,
						PartitionSize:      a,
						MzrProb:            p,
						Simulator:          c.SimulatorType,
						Circuit:            circ,
						GateWidth:          c.GateWidth,
						NumRuns:            c.NumRuns,
						EquilibrationSteps: c.EquilibrationSteps,
						MeasurementFreq:    c.MeasurementFreq,
						TemporalAvg:        c.TemporalAvg,
						SpaceAvg:           c.SpaceAvg,
						Spacing:            c.Spacing,
					})
				}
			}
		}
	}

	return out, nil
}
