// Package sweep runs entanglement-entropy experiments over a grid of
// parameters.
//
// A Config names lists of system sizes, partition sizes, measurement
// probabilities and timestep counts. Points expands it into their
// Cartesian product. For every Point the Runner builds a fresh state of
// the chosen representation, and for each of NumRuns runs it:
//
//  1. clones the state;
//  2. polarizes it (automaton circuits only) and runs the equilibration
//     steps, or resumes both from a checkpoint;
//  3. advances MeasurementFreq steps at a time and samples the Rényi-2
//     entropy of the partition [0, PartitionSize) after each interval, or
//     the spatial average over offsets i·Spacing when SpaceAvg is set.
//
// The runs are pooled with Sample.Combine and, with TemporalAvg, folded
// over time. Each Point yields one DataSlide; a DataFrame collects them,
// is written as JSON to Filename, and is appended to any configured
// results sinks.
//
// Points run on a bounded worker pool (errgroup). Every run is seeded
// from the sweep seed and the point index, so a seeded sweep is
// reproducible regardless of the worker count.
package sweep
